// Package ifc provides access to BIM model data for the analysis engine.
//
// Parsing the IFC STEP grammar itself is out of scope; models arrive as
// element snapshots extracted by an external toolkit. The package exposes
// the Model interface the engine consumes and a snapshot-backed
// implementation of it.
package ifc

import "github.com/monika2305/BIM/internal/model"

// IFC type tags the analyzer inspects.
const (
	TypeWall             = "IfcWall"
	TypeWallStandardCase = "IfcWallStandardCase"
	TypeDoor             = "IfcDoor"
	TypeWindow           = "IfcWindow"
	TypeProxy            = "IfcBuildingElementProxy"
	TypeProduct          = "IfcProduct"
)

// Model is the read-only facade over a loaded BIM model. Implementations
// return fully hydrated elements; the engine performs no I/O of its own.
type Model interface {
	// Products returns every product element in the model.
	Products() []model.Element
	// ByType returns the elements whose type tag equals the given tag.
	// IfcProduct is the one pseudo-tag: it returns all products.
	ByType(tag string) []model.Element
	// Source returns the origin of the model data, for report metadata.
	Source() string
}

// CollectWalls merges the IfcWall and IfcWallStandardCase subsets into one
// wall population, deduplicated by GlobalId. Legacy exports occasionally
// list a wall under both subtypes; it must count once.
func CollectWalls(m Model) []model.Element {
	walls := m.ByType(TypeWall)
	standard := m.ByType(TypeWallStandardCase)

	seen := make(map[string]struct{}, len(walls)+len(standard))
	merged := make([]model.Element, 0, len(walls)+len(standard))

	for _, e := range walls {
		if _, dup := seen[e.GlobalID]; dup {
			continue
		}
		seen[e.GlobalID] = struct{}{}
		merged = append(merged, e)
	}
	for _, e := range standard {
		if _, dup := seen[e.GlobalID]; dup {
			continue
		}
		seen[e.GlobalID] = struct{}{}
		merged = append(merged, e)
	}

	return merged
}
