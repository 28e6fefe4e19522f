package model

import "time"

// UserContext carries the free-form context a user supplies before running
// an analysis. All fields are optional, opaque strings; any validation
// (placeholder rejection, required selections) belongs to the presentation
// layer, not the engine.
type UserContext struct {
	Name    string `json:"name,omitempty"`
	Role    string `json:"role,omitempty"`
	Domain  string `json:"domain,omitempty"`
	Purpose string `json:"purpose,omitempty"`
}

// AnalysisReport is the single artifact produced by one analysis run. It
// is assembled once and never modified; every presentation surface (table
// UI, JSON export, spreadsheet) reads it as-is and derives nothing new.
type AnalysisReport struct {
	GeneratedAt      time.Time             `json:"generatedAt"`
	ID               string                `json:"id"`
	SourceFile       string                `json:"sourceFile,omitempty"`
	Context          UserContext           `json:"context"`
	Classification   ClassificationResult  `json:"classification"`
	ProxyElements    []ElementRef          `json:"proxyElements,omitempty"`
	WallsMissingPset MissingPropertyReport `json:"wallsMissingPset"`
	Severity         Severity              `json:"severity"`
}
