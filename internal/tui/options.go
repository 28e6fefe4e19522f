// Package tui implements the interactive context wizard shown before an
// analysis run. The wizard is pure presentation: it gates the CLI until a
// complete UserContext exists and hands that context to the engine
// unchanged.
package tui

// Selection options offered by the wizard. The engine treats the chosen
// values as opaque strings.
var (
	RoleOptions = []string{
		"Architect",
		"Structural Engineer",
		"BIM Manager",
		"Contractor",
		"Facility Manager",
		"Student / Researcher",
	}

	DomainOptions = []string{
		"Architecture",
		"Structural",
		"MEP",
		"Infrastructure",
		"Facility Management",
	}

	PurposeOptions = []string{
		"Design coordination",
		"Compliance",
		"Construction",
		"Handover / FM",
		"Academic / Research",
	}
)
