// Package model defines the core domain models used throughout the application.
package model

// RelationKind identifies the kind of relationship record that attaches
// data to an element. The IFC schema has many relationship entities; only
// the ones the analyzer inspects are enumerated here.
type RelationKind string

// Relationship kind constants.
const (
	RelDefinesByProperties RelationKind = "IfcRelDefinesByProperties"
	RelDefinesByType       RelationKind = "IfcRelDefinesByType"
	RelContainedInSpatial  RelationKind = "IfcRelContainedInSpatialStructure"
)

// PropertyGroup is a named bundle of attributes attached to an element
// through a property-definition relationship.
type PropertyGroup struct {
	Name      string `json:"name"      yaml:"name"`
	ElementID string `json:"elementId" yaml:"elementId"`
}

// Element is a read-only view of a single product element in a BIM model.
// Elements are produced by the model facade; the engine never mutates them.
type Element struct {
	GlobalID       string          `json:"globalId"                 yaml:"globalId"`
	Name           string          `json:"name,omitempty"           yaml:"name,omitempty"`
	TypeTag        string          `json:"typeTag"                  yaml:"typeTag"`
	PropertyGroups []PropertyGroup `json:"propertyGroups,omitempty" yaml:"propertyGroups,omitempty"`
}

// DisplayName returns the element name, or "Unnamed" when the source model
// left the optional name attribute blank.
func (e Element) DisplayName() string {
	if e.Name == "" {
		return "Unnamed"
	}
	return e.Name
}

// HasPropertyGroup reports whether the element carries at least one
// property group with exactly the given name. Matching is case-sensitive;
// an element with no attachments never matches.
func (e Element) HasPropertyGroup(name string) bool {
	for _, pg := range e.PropertyGroups {
		if pg.Name == name {
			return true
		}
	}
	return false
}
