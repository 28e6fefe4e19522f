package engine

import (
	"testing"

	"github.com/monika2305/BIM/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wallWith(id, name string, groups ...string) model.Element {
	e := model.Element{GlobalID: id, Name: name, TypeTag: "IfcWall"}
	for _, g := range groups {
		e.PropertyGroups = append(e.PropertyGroups, model.PropertyGroup{Name: g, ElementID: id})
	}
	return e
}

func TestMissingPropertyGroup(t *testing.T) {
	tests := []struct {
		name     string
		group    string
		walls    []model.Element
		wantIDs  []string
		wantZero bool
	}{
		{
			name:  "two of three walls missing",
			group: "Pset_WallCommon",
			walls: []model.Element{
				wallWith("w1", "Wall A", "Pset_WallCommon"),
				wallWith("w2", "Wall B"),
				wallWith("w3", ""),
			},
			wantIDs: []string{"w2", "w3"},
		},
		{
			name:  "all walls compliant",
			group: "Pset_WallCommon",
			walls: []model.Element{
				wallWith("w1", "Wall A", "Pset_WallCommon", "Dimensions"),
				wallWith("w2", "Wall B", "Pset_WallCommon"),
			},
			wantZero: true,
		},
		{
			name:  "case mismatch does not satisfy the requirement",
			group: "Pset_WallCommon",
			walls: []model.Element{
				wallWith("w1", "Wall A", "pset_wallcommon"),
			},
			wantIDs: []string{"w1"},
		},
		{
			name:     "no elements at all",
			group:    "Pset_WallCommon",
			wantZero: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MissingPropertyGroup(tt.walls, tt.group)

			assert.Equal(t, tt.group, got.GroupName)
			if tt.wantZero {
				assert.Zero(t, got.Count)
				assert.Empty(t, got.Elements)
				return
			}

			require.Len(t, got.Elements, len(tt.wantIDs))
			assert.Equal(t, len(tt.wantIDs), got.Count)
			for i, id := range tt.wantIDs {
				assert.Equal(t, id, got.Elements[i].GlobalID)
			}
		})
	}
}

func TestMissingPropertyGroupPreservesOrderAndNames(t *testing.T) {
	walls := []model.Element{
		wallWith("w9", "Zulu"),
		wallWith("w1", ""),
		wallWith("w5", "Alpha"),
	}

	got := MissingPropertyGroup(walls, "Pset_WallCommon")
	require.Equal(t, 3, got.Count)
	assert.Equal(t, "w9", got.Elements[0].GlobalID)
	assert.Equal(t, "Zulu", got.Elements[0].Name)
	assert.Equal(t, "Unnamed", got.Elements[1].Name)
	assert.Equal(t, "w5", got.Elements[2].GlobalID)
}

func TestMissingPropertyGroupIdempotent(t *testing.T) {
	walls := []model.Element{
		wallWith("w1", "Wall A", "Pset_WallCommon"),
		wallWith("w2", "Wall B"),
	}

	first := MissingPropertyGroup(walls, "Pset_WallCommon")
	second := MissingPropertyGroup(walls, "Pset_WallCommon")
	assert.Equal(t, first, second)
}
