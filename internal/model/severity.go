package model

import "fmt"

// Severity is the discrete verdict summarizing overall semantic
// degradation of a model. Values are ordered: Low < Medium < High < Critical.
type Severity int

// Severity levels.
const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

// String returns the canonical upper-case label for the severity.
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "LOW"
	case SeverityMedium:
		return "MEDIUM"
	case SeverityHigh:
		return "HIGH"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// Conclusion returns the one-sentence verdict shown to users for this
// severity level.
func (s Severity) Conclusion() string {
	switch s {
	case SeverityLow:
		return "The IFC model preserves semantic representation across all analyzed elements. No semantic degradation detected."
	case SeverityMedium:
		return "The IFC model largely preserves semantic meaning, with minor semantic degradation observed in a small subset of elements."
	case SeverityHigh:
		return "The IFC model exhibits mixed semantic representation. Several building components are represented as proxy elements."
	case SeverityCritical:
		return "The IFC model shows significant semantic degradation. A large portion of elements are represented as generic proxy objects."
	default:
		return ""
	}
}

// MarshalText implements encoding.TextMarshaler so severities serialize as
// their labels in JSON and YAML.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, ok := ParseSeverity(string(text))
	if !ok {
		return fmt.Errorf("unknown severity %q", text)
	}
	*s = parsed
	return nil
}

// ParseSeverity converts a stored label back into a Severity.
func ParseSeverity(label string) (Severity, bool) {
	switch label {
	case "LOW":
		return SeverityLow, true
	case "MEDIUM":
		return SeverityMedium, true
	case "HIGH":
		return SeverityHigh, true
	case "CRITICAL":
		return SeverityCritical, true
	default:
		return SeverityLow, false
	}
}
