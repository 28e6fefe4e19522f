package engine

import (
	"time"

	"github.com/google/uuid"
	"github.com/monika2305/BIM/internal/model"
)

// AssembleReport combines the analysis outputs into the final immutable
// report. It performs no computation beyond composition: severity is
// derived from the classification's proxy percentage and nothing else is
// recalculated, so every presentation surface sees identical figures.
func AssembleReport(
	userCtx model.UserContext,
	sourceFile string,
	classification model.ClassificationResult,
	proxies []model.ElementRef,
	wallsMissing model.MissingPropertyReport,
) model.AnalysisReport {
	return model.AnalysisReport{
		ID:               uuid.New().String(),
		GeneratedAt:      time.Now().UTC(),
		SourceFile:       sourceFile,
		Context:          userCtx,
		Classification:   classification,
		ProxyElements:    proxies,
		WallsMissingPset: wallsMissing,
		Severity:         SeverityForProxyPct(classification.ProxyPct),
	}
}
