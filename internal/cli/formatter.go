package cli

import (
	"fmt"
	"strings"

	"github.com/monika2305/BIM/internal/model"
)

// ReportFormatter renders an AnalysisReport for terminal display. It is a
// read-only consumer: every figure comes straight from the report, nothing
// is recomputed.
type ReportFormatter struct{}

// NewReportFormatter creates a report formatter.
func NewReportFormatter() *ReportFormatter {
	return &ReportFormatter{}
}

// Format renders the complete report.
func (f *ReportFormatter) Format(report *model.AnalysisReport) string {
	if report == nil {
		return ErrorStyle.Render("No report available")
	}

	sections := []string{
		f.formatHeader(report),
		f.formatSummary(report.Classification),
		f.formatClassificationTable(report.Classification),
		f.formatConclusion(report),
		f.formatProxyTrace(report.ProxyElements),
		f.formatMissingPset(report.WallsMissingPset),
	}

	return strings.Join(sections, "\n\n")
}

// formatHeader renders the title and the user context block.
func (f *ReportFormatter) formatHeader(report *model.AnalysisReport) string {
	lines := []string{FormatTitle("IFC Semantic Data-Loss Analyzer")}

	if report.SourceFile != "" {
		lines = append(lines, SubtitleStyle.Render("Model: "+report.SourceFile))
	}

	ctxFields := []struct{ label, value string }{
		{"Name", report.Context.Name},
		{"Role", report.Context.Role},
		{"Domain", report.Context.Domain},
		{"Purpose", report.Context.Purpose},
	}
	for _, field := range ctxFields {
		if field.value == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %s",
			BoldStyle.Render(field.label+":"), field.value))
	}

	return strings.Join(lines, "\n")
}

// formatSummary renders the headline metrics.
func (f *ReportFormatter) formatSummary(cls model.ClassificationResult) string {
	title := TitleStyle.Render(ChartIcon + " Summary Metrics")

	metrics := fmt.Sprintf(
		"Total Elements: %d\nSemantic: %.2f%%\nProxy: %.2f%%\nOther Semantic: %.2f%%",
		cls.Total, cls.SemanticPct, cls.ProxyPct, cls.OtherPct)

	return title + "\n" + metrics
}

// formatClassificationTable renders the element-wise classification counts.
func (f *ReportFormatter) formatClassificationTable(cls model.ClassificationResult) string {
	title := TitleStyle.Render(BrickIcon + " Element-wise Classification")

	rows := [][]string{
		{"Walls", fmt.Sprintf("%d", cls.Walls)},
		{"Doors", fmt.Sprintf("%d", cls.Doors)},
		{"Windows", fmt.Sprintf("%d", cls.Windows)},
		{"Proxy Elements", fmt.Sprintf("%d", cls.Proxy)},
		{"Other Semantic Elements", fmt.Sprintf("%d", cls.OtherSemantic)},
	}

	return title + "\n" + renderTable([]string{"Element Type", "Count"}, rows)
}

// formatConclusion renders the severity verdict.
func (f *ReportFormatter) formatConclusion(report *model.AnalysisReport) string {
	title := TitleStyle.Render("🧠 Automated Conclusion")

	style := SeverityStyle(report.Severity)
	verdict := style.Render(report.Severity.Conclusion())
	level := fmt.Sprintf("Severity level: %s", style.Bold(true).Render(report.Severity.String()))

	return title + "\n" + verdict + "\n" + level
}

// formatProxyTrace renders the per-element proxy listing.
func (f *ReportFormatter) formatProxyTrace(proxies []model.ElementRef) string {
	title := TitleStyle.Render(TraceIcon + " Element-Level Tracing (Proxy Elements)")

	if len(proxies) == 0 {
		return title + "\n" + FormatSuccess("No proxy elements detected.")
	}

	rows := make([][]string, len(proxies))
	for i, p := range proxies {
		rows[i] = []string{p.Name, p.GlobalID, p.TypeTag, "Semantic meaning lost (generic proxy)"}
	}

	return title + "\n" + renderTable([]string{"Name", "GlobalId", "IFC Type", "Issue"}, rows)
}

// formatMissingPset renders the walls lacking the required property set.
func (f *ReportFormatter) formatMissingPset(missing model.MissingPropertyReport) string {
	title := TitleStyle.Render("Walls Missing " + missing.GroupName)
	count := fmt.Sprintf("Count: %d", missing.Count)

	if missing.Count == 0 {
		return title + "\n" + count + "\n" + FormatSuccess("All walls contain "+missing.GroupName+".")
	}

	rows := make([][]string, len(missing.Elements))
	for i, e := range missing.Elements {
		rows[i] = []string{e.Name, e.GlobalID, missing.GroupName + " missing"}
	}

	return title + "\n" + count + "\n" + renderTable([]string{"Wall Name", "GlobalId", "Issue"}, rows)
}

// renderTable lays out rows under a styled header with aligned columns.
func renderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder

	headerCells := make([]string, len(headers))
	for i, h := range headers {
		headerCells[i] = pad(h, widths[i])
	}
	b.WriteString(TableHeaderStyle.Render(strings.Join(headerCells, "  ")))
	b.WriteString("\n")

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = pad(cell, widths[i])
		}
		b.WriteString(TableCellStyle.Render(strings.Join(cells, "  ")))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
