package ifc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/monika2305/BIM/internal/common"
	"github.com/monika2305/BIM/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSnapshot(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadSnapshotJSON(t *testing.T) {
	path := writeSnapshot(t, "office.json", `{
		"source": "office.ifc",
		"schema": "IFC4",
		"elements": [
			{"globalId": "w1", "name": "Wall-001", "typeTag": "IfcWall"},
			{"globalId": "w2", "typeTag": "IfcWallStandardCase"},
			{"globalId": "d1", "name": "Door-001", "typeTag": "IfcDoor"},
			{"globalId": "p1", "typeTag": "IfcBuildingElementProxy"}
		],
		"relations": [
			{"kind": "IfcRelDefinesByProperties", "propertySet": "Pset_WallCommon", "relatedElements": ["w1"]},
			{"kind": "IfcRelContainedInSpatialStructure", "propertySet": "ignored", "relatedElements": ["w2"]}
		]
	}`)

	snap, err := LoadSnapshot(path)
	require.NoError(t, err)

	assert.Equal(t, "office.ifc", snap.Source())
	assert.Equal(t, "IFC4", snap.Schema())
	assert.Len(t, snap.Products(), 4)
	assert.Len(t, snap.ByType(TypeWall), 1)
	assert.Len(t, snap.ByType(TypeWallStandardCase), 1)
	assert.Len(t, snap.ByType(TypeProxy), 1)
	assert.Len(t, snap.ByType(TypeProduct), 4, "IfcProduct covers all elements")

	wall := snap.ByType(TypeWall)[0]
	assert.True(t, wall.HasPropertyGroup("Pset_WallCommon"))

	// Relations of other kinds never attach property groups.
	standard := snap.ByType(TypeWallStandardCase)[0]
	assert.Empty(t, standard.PropertyGroups)
	assert.Equal(t, "Unnamed", standard.DisplayName())
}

func TestLoadSnapshotYAML(t *testing.T) {
	path := writeSnapshot(t, "plant.yaml", `
source: plant.ifc
elements:
  - globalId: w1
    name: Wall A
    typeTag: IfcWall
relations:
  - kind: IfcRelDefinesByProperties
    propertySet: Pset_WallCommon
    relatedElements: [w1]
`)

	snap, err := LoadSnapshot(path)
	require.NoError(t, err)
	require.Len(t, snap.ByType(TypeWall), 1)
	assert.True(t, snap.ByType(TypeWall)[0].HasPropertyGroup("Pset_WallCommon"))
}

func TestLoadSnapshotErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSnapshot(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
	})

	t.Run("unknown extension", func(t *testing.T) {
		path := writeSnapshot(t, "model.ifc", "ISO-10303-21;")
		_, err := LoadSnapshot(path)
		require.ErrorIs(t, err, common.ErrUnknownFormat)
	})

	t.Run("invalid json", func(t *testing.T) {
		path := writeSnapshot(t, "bad.json", "{not json")
		_, err := LoadSnapshot(path)
		require.ErrorIs(t, err, common.ErrInvalidSnapshot)
	})

	t.Run("element without GlobalId is fatal", func(t *testing.T) {
		path := writeSnapshot(t, "anon.json", `{
			"elements": [{"name": "ghost", "typeTag": "IfcWall"}]
		}`)
		_, err := LoadSnapshot(path)
		require.ErrorIs(t, err, common.ErrMalformedElement)
	})
}

func TestLoadSnapshotDefaultsSourceToFilename(t *testing.T) {
	path := writeSnapshot(t, "campus.json", `{"elements": []}`)
	snap, err := LoadSnapshot(path)
	require.NoError(t, err)
	assert.Equal(t, "campus.json", snap.Source())
	assert.Empty(t, snap.Products())
}

func TestCollectWallsDeduplicatesSubtypes(t *testing.T) {
	path := writeSnapshot(t, "dup.json", `{
		"elements": [
			{"globalId": "w1", "typeTag": "IfcWall"},
			{"globalId": "w2", "typeTag": "IfcWallStandardCase"},
			{"globalId": "w3", "typeTag": "IfcWallStandardCase"}
		]
	}`)
	snap, err := LoadSnapshot(path)
	require.NoError(t, err)

	walls := CollectWalls(snap)
	assert.Len(t, walls, 3)

	// A model that lists one wall under both subtypes counts it once.
	double := &fakeModel{elements: map[string][]model.Element{
		TypeWall:             {{GlobalID: "w1"}, {GlobalID: "w2"}},
		TypeWallStandardCase: {{GlobalID: "w2"}, {GlobalID: "w3"}},
	}}
	walls = CollectWalls(double)
	require.Len(t, walls, 3)
	assert.Equal(t, "w1", walls[0].GlobalID)
	assert.Equal(t, "w2", walls[1].GlobalID)
	assert.Equal(t, "w3", walls[2].GlobalID)
}

type fakeModel struct {
	elements map[string][]model.Element
}

func (f *fakeModel) Products() []model.Element {
	var all []model.Element
	for _, subset := range f.elements {
		all = append(all, subset...)
	}
	return all
}

func (f *fakeModel) ByType(tag string) []model.Element { return f.elements[tag] }

func (f *fakeModel) Source() string { return "fake" }
