package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/monika2305/BIM/internal/common"
	"github.com/monika2305/BIM/internal/model"
	"github.com/monika2305/BIM/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	s, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "reports.db"))
	require.NoError(t, err)
	require.NoError(t, s.Migrate(context.Background()))
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleReport(id string, generatedAt time.Time) *model.AnalysisReport {
	return &model.AnalysisReport{
		ID:          id,
		GeneratedAt: generatedAt,
		SourceFile:  "office.ifc",
		Context: model.UserContext{
			Name:    "Dana",
			Role:    "BIM Manager",
			Domain:  "Architecture",
			Purpose: "Design coordination",
		},
		Classification: model.ClassificationResult{
			Total: 100, Walls: 30, Doors: 10, Windows: 10,
			Semantic: 50, Proxy: 15, OtherSemantic: 35,
			SemanticPct: 50, ProxyPct: 15, OtherPct: 35,
		},
		ProxyElements: []model.ElementRef{
			{GlobalID: "p1", Name: "Unnamed", TypeTag: "IfcBuildingElementProxy"},
			{GlobalID: "p2", Name: "Generic block", TypeTag: "IfcBuildingElementProxy"},
		},
		WallsMissingPset: model.MissingPropertyReport{
			GroupName: "Pset_WallCommon",
			Elements: []model.ElementRef{
				{GlobalID: "w2", Name: "Wall B"},
			},
			Count: 1,
		},
		Severity: model.SeverityMedium,
	}
}

func TestSaveAndGetReport(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	original := sampleReport("r1", time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC))
	require.NoError(t, s.SaveReport(ctx, original))

	loaded, err := s.GetReport(ctx, "r1")
	require.NoError(t, err)

	assert.Equal(t, original.ID, loaded.ID)
	assert.True(t, original.GeneratedAt.Equal(loaded.GeneratedAt))
	assert.Equal(t, original.SourceFile, loaded.SourceFile)
	assert.Equal(t, original.Context, loaded.Context)
	assert.Equal(t, original.Classification, loaded.Classification)
	assert.Equal(t, original.ProxyElements, loaded.ProxyElements)
	assert.Equal(t, original.WallsMissingPset, loaded.WallsMissingPset)
	assert.Equal(t, original.Severity, loaded.Severity)
}

func TestSaveReportDuplicate(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	report := sampleReport("r1", time.Now().UTC())
	require.NoError(t, s.SaveReport(ctx, report))

	err := s.SaveReport(ctx, report)
	require.ErrorIs(t, err, common.ErrDuplicateEntry)
}

func TestSaveReportValidation(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.ErrorIs(t, s.SaveReport(ctx, nil), ErrNilParameter)

	missing := sampleReport("", time.Now().UTC())
	require.ErrorIs(t, s.SaveReport(ctx, missing), ErrInvalidReport)

	unstamped := sampleReport("r2", time.Time{})
	require.ErrorIs(t, s.SaveReport(ctx, unstamped), ErrInvalidReport)
}

func TestGetReportNotFound(t *testing.T) {
	s := newTestStorage(t)
	_, err := s.GetReport(context.Background(), "missing")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetReportEmptyListings(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	report := sampleReport("r1", time.Now().UTC())
	report.ProxyElements = nil
	report.WallsMissingPset.Elements = nil
	report.WallsMissingPset.Count = 0
	report.Severity = model.SeverityLow
	require.NoError(t, s.SaveReport(ctx, report))

	loaded, err := s.GetReport(ctx, "r1")
	require.NoError(t, err)
	assert.Empty(t, loaded.ProxyElements)
	assert.Zero(t, loaded.WallsMissingPset.Count)
}

func TestListReports(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"r1", "r2", "r3"} {
		report := sampleReport(id, base.AddDate(0, 0, i))
		require.NoError(t, s.SaveReport(ctx, report))
	}

	t.Run("newest first", func(t *testing.T) {
		summaries, err := s.ListReports(ctx, service.ReportFilter{})
		require.NoError(t, err)
		require.Len(t, summaries, 3)
		assert.Equal(t, "r3", summaries[0].ID)
		assert.Equal(t, "r1", summaries[2].ID)
		assert.Equal(t, model.SeverityMedium, summaries[0].Severity)
		assert.Equal(t, 100, summaries[0].Total)
		assert.InDelta(t, 15.0, summaries[0].ProxyPct, 0.001)
	})

	t.Run("limit and offset", func(t *testing.T) {
		summaries, err := s.ListReports(ctx, service.ReportFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, "r2", summaries[0].ID)
	})

	t.Run("since filter", func(t *testing.T) {
		since := base.AddDate(0, 0, 2)
		summaries, err := s.ListReports(ctx, service.ReportFilter{Since: &since})
		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, "r3", summaries[0].ID)
	})
}

func TestMigrateIsIdempotent(t *testing.T) {
	s := newTestStorage(t)
	require.NoError(t, s.Migrate(context.Background()))
}
