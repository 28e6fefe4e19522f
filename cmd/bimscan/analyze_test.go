package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/monika2305/BIM/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectUserContextFromFlags(t *testing.T) {
	cmd := analyzeCmd()
	require.NoError(t, cmd.Flags().Set("name", "Dana"))
	require.NoError(t, cmd.Flags().Set("role", "Architect"))
	require.NoError(t, cmd.Flags().Set("domain", "Structural"))
	require.NoError(t, cmd.Flags().Set("purpose", "Compliance"))

	userCtx, err := collectUserContext(cmd)
	require.NoError(t, err)
	assert.Equal(t, model.UserContext{
		Name:    "Dana",
		Role:    "Architect",
		Domain:  "Structural",
		Purpose: "Compliance",
	}, userCtx)
}

func TestPrintReportJSON(t *testing.T) {
	cmd := analyzeCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	report := &model.AnalysisReport{
		ID: "r1",
		Classification: model.ClassificationResult{
			Total: 10, Proxy: 6, ProxyPct: 60,
		},
		WallsMissingPset: model.MissingPropertyReport{GroupName: "Pset_WallCommon"},
		Severity:         model.SeverityCritical,
	}

	require.NoError(t, printReport(cmd, report, "json"))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "r1", decoded["id"])
	assert.Equal(t, "CRITICAL", decoded["severity"])
}

func TestPrintReportUnknownFormat(t *testing.T) {
	cmd := analyzeCmd()
	err := printReport(cmd, &model.AnalysisReport{}, "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestRunAnalyzeEndToEnd(t *testing.T) {
	snapshot := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(snapshot, []byte(`{
		"source": "tower.ifc",
		"elements": [
			{"globalId": "w1", "name": "Wall A", "typeTag": "IfcWall"},
			{"globalId": "p1", "typeTag": "IfcBuildingElementProxy"}
		],
		"relations": [
			{"kind": "IfcRelDefinesByProperties", "propertySet": "Pset_WallCommon", "relatedElements": ["w1"]}
		]
	}`), 0o600))

	cmd := analyzeCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{snapshot, "--output", "json", "--role", "Architect"})

	require.NoError(t, cmd.Execute())

	var report model.AnalysisReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	assert.Equal(t, "tower.ifc", report.SourceFile)
	assert.Equal(t, 2, report.Classification.Total)
	assert.Equal(t, 1, report.Classification.Proxy)
	assert.Equal(t, "Architect", report.Context.Role)
	assert.Equal(t, model.SeverityCritical, report.Severity) // 50% proxies
	assert.Zero(t, report.WallsMissingPset.Count)
}
