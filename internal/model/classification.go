package model

// ClassificationResult holds the element census for one analyzed model:
// how many elements kept a semantic type and how many degraded into
// generic proxies. All percentages are 0 when Total is 0.
type ClassificationResult struct {
	Total         int     `json:"total"`
	Walls         int     `json:"walls"`
	Doors         int     `json:"doors"`
	Windows       int     `json:"windows"`
	Semantic      int     `json:"semantic"`
	Proxy         int     `json:"proxy"`
	OtherSemantic int     `json:"otherSemantic"`
	SemanticPct   float64 `json:"semanticPct"`
	ProxyPct      float64 `json:"proxyPct"`
	OtherPct      float64 `json:"otherPct"`
}

// ElementRef identifies an element in a report listing without carrying
// the full element payload.
type ElementRef struct {
	GlobalID string `json:"globalId"`
	Name     string `json:"name"`
	TypeTag  string `json:"typeTag,omitempty"`
}

// MissingPropertyReport lists the elements of one semantic category that
// lack a required property group. Order follows the input element order.
type MissingPropertyReport struct {
	GroupName string       `json:"groupName"`
	Elements  []ElementRef `json:"elements,omitempty"`
	Count     int          `json:"count"`
}
