package engine

import "github.com/monika2305/BIM/internal/model"

// Proxy-percentage thresholds for the severity grades. Evaluated in
// ascending order, first match wins: exactly 10 is LOW, exactly 20 is
// HIGH, exactly 50 is CRITICAL.
const (
	lowThreshold      = 10.0
	mediumThreshold   = 20.0
	criticalThreshold = 50.0
)

// SeverityForProxyPct maps a proxy percentage (0-100) to its severity
// grade. The mapping is a total, monotonically non-decreasing step
// function: every real-valued input yields exactly one grade.
func SeverityForProxyPct(proxyPct float64) model.Severity {
	switch {
	case proxyPct <= lowThreshold:
		return model.SeverityLow
	case proxyPct < mediumThreshold:
		return model.SeverityMedium
	case proxyPct < criticalThreshold:
		return model.SeverityHigh
	default:
		return model.SeverityCritical
	}
}
