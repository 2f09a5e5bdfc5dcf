// Package classify maps comparison findings, source-scan hits, runtime-log
// entries, and UI-flow issues into a uniform bug list. Each bug derives from
// exactly one upstream entry; no merging or deduplication happens across
// sources. A deviation and a runtime error concerning the same file remain
// two independent bugs.
package classify

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/dshills/specfix/internal/policy"
	"github.com/dshills/specfix/internal/schema"
)

// Fixed confidence values per bug source.
const (
	confidenceMissing = 0.8
	confidenceGap     = 0.7
	confidenceScan    = 0.6
	confidenceRuntime = 0.9
	confidencePerf    = 0.7
	confidenceUI      = 0.8
)

// securityNameRe recognizes security-flavored feature names for the
// optional escalation rule (policy.EscalateSecurityMissing).
var securityNameRe = regexp.MustCompile(`(?i)\b(auth|login|security|encrypt|password|token|permission|access control)\b`)

// severityRank orders bugs for the final stable sort: critical first.
var severityRank = map[schema.BugSeverity]int{
	schema.BugCritical: 0,
	schema.BugMajor:    1,
	schema.BugMinor:    2,
	schema.BugInfo:     3,
}

// Classify produces the bug list for one run.
//
// Rules apply in fixed order: missing features, then deviations and logical
// mismatches, then source-excerpt pattern scanning, then runtime-log errors,
// slow queries, and UI issues. Bug id ordinals are assigned sequentially
// across the whole run in that order; the returned list is then stable-sorted
// by severity, so ids record creation order, not position.
//
// runtimeLog and uiFlow may be nil. Source excerpts with empty content are
// skipped by the scanning rules; everything else still runs.
func Classify(report *schema.ComparisonReport, sources []schema.SourceFile, runtimeLog *schema.RuntimeLog, uiFlow *schema.UIFlowTrace, pol policy.Policy) []schema.Bug {
	var bugs []schema.Bug
	next := func(prefix string) string {
		return fmt.Sprintf("%s_%d", prefix, len(bugs))
	}

	if report != nil {
		for _, m := range report.MissingFeatures {
			sev := schema.BugMajor
			if pol.EscalateSecurityMissing &&
				(m.Type == schema.TagSecurityRequirement || securityNameRe.MatchString(m.Name)) {
				sev = schema.BugCritical
			}
			bugs = append(bugs, schema.Bug{
				ID:          next("missing"),
				Title:       fmt.Sprintf("Missing Feature: %s", m.Name),
				Description: orDefault(m.Description, "Feature not implemented"),
				Severity:    sev,
				Category:    schema.CategoryMissingImplementation,
				ProposedFix: featureFixText(m.Name, m.Description),
				Explanation: "This feature was specified but not found in the codebase",
				Confidence:  confidenceMissing,
			})
		}

		for _, d := range report.Deviations {
			bugs = append(bugs, schema.Bug{
				ID:          next("gap"),
				Title:       fmt.Sprintf("Implementation Gap: %s", d.Name),
				Description: fmt.Sprintf("%s (expected %q, actual %q)", d.Description, d.Expected, d.Actual),
				Severity:    schema.BugMajor,
				Category:    schema.CategoryImplementationGap,
				Explanation: "Implementation does not match the specified attribute",
				Confidence:  confidenceGap,
			})
		}
		for _, lm := range report.LogicalMismatches {
			bugs = append(bugs, schema.Bug{
				ID:          next("gap"),
				Title:       fmt.Sprintf("Implementation Gap: %s", lm.Name),
				Description: lm.Description,
				Severity:    mapReportSeverity(lm.Severity),
				Category:    schema.CategoryImplementationGap,
				Explanation: "Logical inconsistency between specification and implementation",
				Confidence:  confidenceGap,
			})
		}
	}

	for _, src := range sources {
		if src.Content == "" {
			continue // absent or unreadable excerpt: scanning rules skipped
		}
		bugs = scanSource(bugs, src)
	}

	if runtimeLog != nil {
		for _, e := range runtimeLog.Errors {
			sev := schema.BugMajor
			if e.Level == "error" {
				sev = schema.BugCritical
			}
			bugs = append(bugs, schema.Bug{
				ID:          next("log_error"),
				Title:       fmt.Sprintf("Runtime Error: %s", truncate(e.Message, 50)),
				Description: e.Message,
				Severity:    sev,
				FilePath:    "runtime",
				Category:    schema.CategoryRuntimeError,
				ProposedFix: errorFixText(e.Message),
				Explanation: fmt.Sprintf("Error occurred at %s", e.Timestamp),
				Confidence:  confidenceRuntime,
			})
		}
		for _, q := range runtimeLog.Performance.SlowQueries {
			bugs = append(bugs, schema.Bug{
				ID:          next("perf"),
				Title:       fmt.Sprintf("Performance Issue: Slow %s", q),
				Description: fmt.Sprintf("Function %s is performing slowly", q),
				Severity:    schema.BugMajor,
				FilePath:    "performance",
				Category:    schema.CategoryPerformance,
				ProposedFix: fmt.Sprintf("// Optimize %s with caching or a better algorithm", q),
				Explanation: "Function execution time exceeds acceptable limits",
				Confidence:  confidencePerf,
			})
		}
	}

	if uiFlow != nil {
		for _, issue := range uiFlow.UIIssues {
			bugs = append(bugs, schema.Bug{
				ID:          next("ui"),
				Title:       fmt.Sprintf("UI Issue: %s", issue.Issue),
				Description: fmt.Sprintf("UI problem detected at %.1fs", issue.Timestamp),
				Severity:    uiSeverity(issue.Severity),
				FilePath:    "ui_component",
				Category:    schema.CategoryUserInterface,
				ProposedFix: uiFixText(issue.Issue),
				Explanation: "Issue detected during user interaction flow",
				Confidence:  confidenceUI,
			})
		}
	}

	sort.SliceStable(bugs, func(i, j int) bool {
		return severityRank[bugs[i].Severity] < severityRank[bugs[j].Severity]
	})
	return bugs
}

// mapReportSeverity translates a finding severity onto the bug scale.
func mapReportSeverity(sev schema.Severity) schema.BugSeverity {
	switch sev {
	case schema.SeverityCritical:
		return schema.BugCritical
	case schema.SeverityHigh:
		return schema.BugMajor
	case schema.SeverityMedium:
		return schema.BugMinor
	default:
		return schema.BugInfo
	}
}

// uiSeverity translates a UI flow trace's severity label, defaulting to
// minor for anything unrecognized.
func uiSeverity(label string) schema.BugSeverity {
	switch label {
	case "critical":
		return schema.BugCritical
	case "major":
		return schema.BugMajor
	default:
		return schema.BugMinor
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// truncate shortens s to n runes, never splitting a multi-byte rune.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
