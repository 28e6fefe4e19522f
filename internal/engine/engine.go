package engine

import (
	"context"
	"log/slog"

	"github.com/monika2305/BIM/internal/ifc"
	"github.com/monika2305/BIM/internal/model"
)

// WallPsetName is the property group every wall is expected to carry.
const WallPsetName = "Pset_WallCommon"

// ProgressCallback receives coarse progress updates during an analysis run.
type ProgressCallback func(stage string, percent int)

// Analyzer runs the full semantic fidelity analysis over one model. It
// holds no mutable state, so a single Analyzer is safe to use across
// concurrent analysis requests.
type Analyzer struct {
	logger   *slog.Logger
	progress ProgressCallback
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithProgress installs a progress callback.
func WithProgress(fn ProgressCallback) Option {
	return func(a *Analyzer) { a.progress = fn }
}

// NewAnalyzer creates an analyzer. A nil logger falls back to the default.
func NewAnalyzer(logger *slog.Logger, opts ...Option) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	a := &Analyzer{logger: logger}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze runs classification, wall property completeness checking, and
// severity grading over the model and assembles the report. The context is
// only consulted between stages; each stage is pure and runs to completion.
func (a *Analyzer) Analyze(ctx context.Context, m ifc.Model, userCtx model.UserContext) (*model.AnalysisReport, error) {
	a.report("collecting elements", 0)

	products := m.Products()
	walls := ifc.CollectWalls(m)
	doors := m.ByType(ifc.TypeDoor)
	windows := m.ByType(ifc.TypeWindow)
	proxies := m.ByType(ifc.TypeProxy)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	a.report("classifying elements", 30)

	classification := Classify(products, walls, doors, windows, proxies)

	a.logger.Debug("classification complete",
		"total", classification.Total,
		"semantic", classification.Semantic,
		"proxy", classification.Proxy,
		"other", classification.OtherSemantic)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	a.report("checking wall property sets", 60)

	wallsMissing := MissingPropertyGroup(walls, WallPsetName)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	a.report("assembling report", 90)

	report := AssembleReport(userCtx, m.Source(), classification, ElementRefs(proxies), wallsMissing)

	a.logger.Info("analysis complete",
		"source", report.SourceFile,
		"total_elements", classification.Total,
		"proxy_pct", classification.ProxyPct,
		"severity", report.Severity.String())

	a.report("done", 100)
	return &report, nil
}

func (a *Analyzer) report(stage string, percent int) {
	if a.progress != nil {
		a.progress(stage, percent)
	}
}
