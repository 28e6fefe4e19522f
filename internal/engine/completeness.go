package engine

import "github.com/monika2305/BIM/internal/model"

// MissingPropertyGroup returns the subset of elements lacking the required
// property group, in input order.
//
// An element "has" the group when at least one attachment's name equals
// groupName exactly; matching is case-sensitive with no normalization.
// Elements with no attachments at all are missing by definition, which
// also covers elements whose attachment data could not be read upstream
// (the facade degrades those to an empty list rather than failing the run).
func MissingPropertyGroup(elements []model.Element, groupName string) model.MissingPropertyReport {
	report := model.MissingPropertyReport{GroupName: groupName}

	for _, e := range elements {
		if e.HasPropertyGroup(groupName) {
			continue
		}
		report.Elements = append(report.Elements, model.ElementRef{
			GlobalID: e.GlobalID,
			Name:     e.DisplayName(),
			TypeTag:  e.TypeTag,
		})
	}

	report.Count = len(report.Elements)
	return report
}
