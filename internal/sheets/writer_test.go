package sheets

import (
	"testing"
	"time"

	"github.com/monika2305/BIM/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{
			name:    "no auth",
			config:  DefaultConfig(),
			wantErr: "no authentication method",
		},
		{
			name: "oauth only",
			config: Config{
				ClientID: "id", ClientSecret: "secret", RefreshToken: "token",
			},
		},
		{
			name: "service account only",
			config: Config{
				ServiceAccountPath: "/tmp/sa.json",
			},
		},
		{
			name: "both auth methods",
			config: Config{
				ClientID: "id", ClientSecret: "secret", RefreshToken: "token",
				ServiceAccountPath: "/tmp/sa.json",
			},
			wantErr: "multiple authentication methods",
		},
		{
			name: "negative retries",
			config: Config{
				ServiceAccountPath: "/tmp/sa.json",
				RetryAttempts:      -1,
			},
			wantErr: "retry attempts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPrepareReportData(t *testing.T) {
	w := &Writer{config: DefaultConfig()}

	report := &model.AnalysisReport{
		ID:          "r1",
		GeneratedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		SourceFile:  "office.ifc",
		Context:     model.UserContext{Role: "Architect"},
		Classification: model.ClassificationResult{
			Total: 100, Walls: 30, Doors: 10, Windows: 10,
			Semantic: 50, Proxy: 15, OtherSemantic: 35,
			SemanticPct: 50, ProxyPct: 15, OtherPct: 35,
		},
		ProxyElements: []model.ElementRef{
			{GlobalID: "p1", Name: "Unnamed", TypeTag: "IfcBuildingElementProxy"},
		},
		WallsMissingPset: model.MissingPropertyReport{
			GroupName: "Pset_WallCommon",
			Elements:  []model.ElementRef{{GlobalID: "w2", Name: "Wall B"}},
			Count:     1,
		},
		Severity: model.SeverityMedium,
	}

	values := w.prepareReportData(report)

	flat := make(map[any]bool)
	for _, row := range values {
		for _, cell := range row {
			flat[cell] = true
		}
	}

	assert.True(t, flat["office.ifc"])
	assert.True(t, flat["Architect"])
	assert.True(t, flat["N/A"], "blank context fields export as N/A")
	assert.True(t, flat[100])
	assert.True(t, flat["MEDIUM"])
	assert.True(t, flat["p1"])
	assert.True(t, flat["Walls Missing Pset_WallCommon"])
	assert.True(t, flat["Wall B"])
}

func TestPrepareReportDataOmitsEmptyListings(t *testing.T) {
	w := &Writer{config: DefaultConfig()}

	report := &model.AnalysisReport{
		GeneratedAt:      time.Now(),
		WallsMissingPset: model.MissingPropertyReport{GroupName: "Pset_WallCommon"},
		Severity:         model.SeverityLow,
	}

	values := w.prepareReportData(report)
	for _, row := range values {
		for _, cell := range row {
			assert.NotEqual(t, "Proxy Elements Detail", cell)
			assert.NotEqual(t, "Walls Missing Pset_WallCommon", cell)
		}
	}
}
