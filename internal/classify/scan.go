package classify

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dshills/specfix/internal/schema"
)

// scanPattern is one regex rule applied line-by-line to source excerpts.
// The table is read-only after package init; concurrent runs share it safely.
type scanPattern struct {
	name     string
	re       *regexp.Regexp
	category schema.BugCategory
	severity schema.BugSeverity
	title    string
	fixText  string
}

// scanPatterns are evaluated in order for every line. Ordering is part of
// the output contract: bug ids depend on it.
var scanPatterns = []scanPattern{
	{
		name:     "todo_placeholder",
		re:       regexp.MustCompile(`\b(TODO|FIXME|NotImplemented|placeholder)\b`),
		category: schema.CategoryMissingImplementation,
		severity: schema.BugMajor,
		title:    "Placeholder code",
		fixText:  "// Implement the actual functionality here",
	},
	{
		name:     "debug_print",
		re:       regexp.MustCompile(`console\.(log|debug|info|warn|error)\s*\(`),
		category: schema.CategoryCodeQuality,
		severity: schema.BugMinor,
		title:    "Stray debug statement",
		fixText:  "// Remove debug console statement",
	},
	{
		name:     "hardcoded_secret",
		re:       regexp.MustCompile(`(?i)(api[_-]?key|secret|password|token)\s*[:=]\s*["'][^"']+["']`),
		category: schema.CategoryCodeQuality,
		severity: schema.BugCritical, // security pattern
		title:    "Hardcoded secret",
		fixText:  "// Load the credential from an environment variable",
	},
	{
		name:     "hardcoded_url",
		re:       regexp.MustCompile(`http://localhost|127\.0\.0\.1`),
		category: schema.CategoryCodeQuality,
		severity: schema.BugMajor,
		title:    "Hardcoded URL",
		fixText:  "// Use an environment variable or configuration value",
	},
	{
		name:     "missing_error_handling",
		re:       regexp.MustCompile(`\b(fetch|axios|api)\s*\(`),
		category: schema.CategoryCodeQuality,
		severity: schema.BugMinor, // escalated to major when the file has no try/catch at all
		title:    "Missing error handling",
		fixText:  "// Wrap the call in try/catch and handle the failure",
	},
	{
		name:     "missing_accessibility",
		re:       regexp.MustCompile(`<(button|input|img)\b[^>]*>`),
		category: schema.CategoryCodeQuality,
		severity: schema.BugMinor,
		title:    "Missing accessibility attributes",
		fixText:  "// Add aria-label or alt attributes to the interactive element",
	},
}

// scanSource applies every pattern to every line of src, in pattern-table
// order within each line, appending one bug per hit. Ids are derived from
// the slice being appended to, so ordinals stay unique across hits.
func scanSource(bugs []schema.Bug, src schema.SourceFile) []schema.Bug {
	hasTryCatch := strings.Contains(src.Content, "try") && strings.Contains(src.Content, "catch")
	lines := strings.Split(src.Content, "\n")

	for lineNo, line := range lines {
		for _, p := range scanPatterns {
			loc := p.re.FindString(line)
			if loc == "" {
				continue
			}
			severity := p.severity
			switch p.name {
			case "missing_error_handling":
				if strings.Contains(line, ".catch") {
					continue
				}
				if !hasTryCatch {
					severity = schema.BugMajor
				}
			case "missing_accessibility":
				if strings.Contains(loc, "aria-") || strings.Contains(loc, "alt=") {
					continue
				}
			}
			bugs = append(bugs, schema.Bug{
				ID:           fmt.Sprintf("quality_%d", len(bugs)),
				Title:        fmt.Sprintf("%s: %s", categoryLabel(p.category), p.title),
				Description:  fmt.Sprintf("%s detected in %s", p.title, src.Path),
				Severity:     severity,
				FilePath:     src.Path,
				LineNumber:   lineNo + 1,
				Category:     p.category,
				OriginalCode: line,
				ProposedFix:  p.fixText,
				Explanation:  fmt.Sprintf("Matched pattern %q", p.name),
				Confidence:   confidenceScan,
			})
		}
	}
	return bugs
}

func categoryLabel(c schema.BugCategory) string {
	if c == schema.CategoryMissingImplementation {
		return "Missing Implementation"
	}
	return "Code Quality"
}
