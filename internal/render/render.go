// Package render produces output from fully assembled reports: pretty JSON,
// the human-readable Markdown comparison report, and per-fix patch files.
package render

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dshills/specfix/internal/schema"
)

// ReportJSON produces a pretty-printed JSON rendering of the comparison
// report. The output round-trips through json.Unmarshal back to an equal
// report, and is byte-identical across calls with equal input.
func ReportJSON(report *schema.ComparisonReport) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("render: nil report")
	}
	b, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render: json marshal: %w", err)
	}
	return b, nil
}

// RunSummaryJSON produces a pretty-printed JSON rendering of a run summary.
func RunSummaryJSON(run *schema.RunSummary) ([]byte, error) {
	if run == nil {
		return nil, fmt.Errorf("render: nil run summary")
	}
	b, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render: json marshal: %w", err)
	}
	return b, nil
}

// ReportMarkdown produces the Markdown variant of a comparison report:
// executive summary, severity table, recommendations, and one section per
// finding category. Every finding in the report appears in the output.
func ReportMarkdown(report *schema.ComparisonReport) string {
	if report == nil {
		return ""
	}
	s := report.Summary
	var sb strings.Builder

	sb.WriteString("# Specification Comparison Report\n\n")
	fmt.Fprintf(&sb, "**Generated:** %s  \n", report.Metadata.ComparisonTimestamp)
	fmt.Fprintf(&sb, "**Health Score:** %.1f/100  \n", s.HealthScore)
	fmt.Fprintf(&sb, "**Overall Status:** %s\n\n", s.OverallStatus)

	sb.WriteString("## Executive Summary\n\n")
	fmt.Fprintf(&sb, "- **Total Issues Found:** %d\n", s.TotalIssues)
	fmt.Fprintf(&sb, "- **Missing Features:** %d\n", s.MissingCount)
	fmt.Fprintf(&sb, "- **Implementation Deviations:** %d\n", s.DeviationsCount)
	fmt.Fprintf(&sb, "- **Logical Mismatches:** %d\n", s.MismatchesCount)
	fmt.Fprintf(&sb, "- **Extra Features:** %d\n\n", s.ExtraCount)

	sb.WriteString("### Severity Distribution\n\n")
	sb.WriteString("| Severity | Count |\n")
	sb.WriteString("|---|---|\n")
	fmt.Fprintf(&sb, "| critical | %d |\n", s.SeverityDistribution.Critical)
	fmt.Fprintf(&sb, "| high | %d |\n", s.SeverityDistribution.High)
	fmt.Fprintf(&sb, "| medium | %d |\n", s.SeverityDistribution.Medium)
	fmt.Fprintf(&sb, "| low | %d |\n\n", s.SeverityDistribution.Low)

	sb.WriteString("## Recommendations\n\n")
	for _, rec := range s.Recommendations {
		fmt.Fprintf(&sb, "- %s\n", rec)
	}
	sb.WriteString("\n")

	if len(report.MissingFeatures) > 0 {
		sb.WriteString("## Missing Features\n\n")
		for _, m := range report.MissingFeatures {
			fmt.Fprintf(&sb, "### %s (%s)\n", mdEscape(m.Name), m.Type)
			fmt.Fprintf(&sb, "**Priority:** %s | **Impact:** %s\n\n", m.Priority, m.Impact)
			fmt.Fprintf(&sb, "%s\n\n", orNoDescription(m.Description))
		}
	}

	if len(report.Deviations) > 0 {
		sb.WriteString("## Implementation Deviations\n\n")
		for _, d := range report.Deviations {
			fmt.Fprintf(&sb, "### %s\n", mdEscape(d.Name))
			fmt.Fprintf(&sb, "**Type:** %s | **Severity:** %s\n\n", d.Type, d.Severity)
			fmt.Fprintf(&sb, "**Expected:** %s  \n", mdEscape(d.Expected))
			fmt.Fprintf(&sb, "**Actual:** %s\n\n", mdEscape(d.Actual))
			fmt.Fprintf(&sb, "%s\n\n", mdEscape(d.Description))
		}
	}

	if len(report.LogicalMismatches) > 0 {
		sb.WriteString("## Logical Mismatches\n\n")
		for _, lm := range report.LogicalMismatches {
			fmt.Fprintf(&sb, "### %s\n", mdEscape(lm.Name))
			fmt.Fprintf(&sb, "**Type:** %s | **Severity:** %s\n\n", lm.Type, lm.Severity)
			if lm.Expected != "" || lm.Actual != "" {
				fmt.Fprintf(&sb, "**Expected:** %s  \n", mdEscape(lm.Expected))
				fmt.Fprintf(&sb, "**Actual:** %s\n\n", mdEscape(lm.Actual))
			}
			fmt.Fprintf(&sb, "%s\n\n", mdEscape(lm.Description))
		}
	}

	if len(report.ExtraFeatures) > 0 {
		sb.WriteString("## Extra Features (Not in Specification)\n\n")
		for _, e := range report.ExtraFeatures {
			fmt.Fprintf(&sb, "### %s\n", mdEscape(e.Name))
			fmt.Fprintf(&sb, "**Type:** %s | **Impact:** %s\n\n", e.Type, e.Impact)
			fmt.Fprintf(&sb, "%s\n\n", orNoDescription(e.Description))
			fmt.Fprintf(&sb, "**Recommendation:** %s\n\n", mdEscape(e.Recommendation))
		}
	}

	sb.WriteString("---\n*Report generated by specfix*\n")
	return sb.String()
}

// Patch renders the content of a .patch file for one fix: a comment header
// naming the bug, file, and line range, followed by the unified diff.
func Patch(f *schema.Fix) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Bug Fix: %s\n", f.BugID)
	fmt.Fprintf(&sb, "# File: %s\n", f.FilePath)
	fmt.Fprintf(&sb, "# Lines: %d-%d\n\n", f.StartLine, f.EndLine)
	sb.WriteString(f.UnifiedDiff)
	return sb.String()
}

// PatchFileName names a fix's patch file by bug id and run timestamp.
func PatchFileName(bugID string, at time.Time) string {
	return fmt.Sprintf("%s_%s.patch", bugID, at.UTC().Format("20060102_150405"))
}

// orNoDescription substitutes the placeholder used in the Markdown report
// for findings without a description.
func orNoDescription(s string) string {
	if s == "" {
		return "No description available"
	}
	return mdEscape(s)
}

// mdEscape replaces characters that would break Markdown table cells.
func mdEscape(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", "")
	return s
}
