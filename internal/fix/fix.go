// Package fix synthesizes source-level fixes for classified bugs. Every fix
// covers a contiguous line range of one file and carries a unified-diff
// rendering suitable for a standard patch tool. Categories without a
// generator produce no fix; that is an expected outcome, not an error, and
// a run with fewer fixes than bugs is normal.
package fix

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dshills/specfix/internal/schema"
)

var (
	secretRe = regexp.MustCompile(`(?i)(api[_-]?key|secret|password|token)(\s*[:=]\s*)["'][^"']+["']`)
	urlRe    = regexp.MustCompile(`http://localhost(:\d+)?|127\.0\.0\.1(:\d+)?`)
	debugRe  = regexp.MustCompile(`console\.(log|debug|info|warn|error)\s*\(`)
	callRe   = regexp.MustCompile(`\b(fetch|axios|api)\s*\(`)
	tagRe    = regexp.MustCompile(`<(button|input|img)\b`)
	indentRe = regexp.MustCompile(`^[ \t]*`)
)

// Synthesize generates a fix for bug, or nil when the bug's category has no
// generator or the bug carries no usable location. The returned fix always
// starts in pending status and its unified diff is validated for syntactic
// correctness before being returned.
func Synthesize(bug schema.Bug) (*schema.Fix, error) {
	var fixed []string
	switch bug.Category {
	case schema.CategoryMissingImplementation:
		fixed = scaffoldLines(bug)
	case schema.CategoryImplementationGap:
		fixed = wrapLines(bug)
	case schema.CategoryCodeQuality:
		fixed = qualityLines(bug)
	default:
		return nil, nil
	}
	if fixed == nil {
		return nil, nil
	}

	orig := strings.Split(bug.OriginalCode, "\n")
	start := bug.LineNumber
	if start < 1 {
		start = 1
	}
	f := &schema.Fix{
		BugID:         bug.ID,
		FilePath:      bug.FilePath,
		StartLine:     start,
		EndLine:       start + len(orig) - 1,
		OriginalLines: orig,
		FixedLines:    fixed,
		LinesChanged:  len(fixed),
		Status:        schema.FixPending,
	}
	ud, err := RenderUnifiedDiff(f)
	if err != nil {
		return nil, fmt.Errorf("fix: %s: %w", bug.ID, err)
	}
	f.UnifiedDiff = ud
	return f, nil
}

// located reports whether contextual generation is possible for the bug.
func located(bug schema.Bug) bool {
	return bug.FilePath != "" && bug.FilePath != "unknown" && bug.OriginalCode != ""
}

// scaffoldLines replaces a placeholder line with an implementation stub,
// preserving indentation.
func scaffoldLines(bug schema.Bug) []string {
	if !located(bug) {
		return nil
	}
	indent := indentRe.FindString(bug.OriginalCode)
	return []string{
		indent + "// Implement the actual functionality here",
		indent + "throw new Error('Not implemented');",
	}
}

// wrapLines surrounds the original snippet with error-handling scaffolding.
// Business logic lines are preserved unchanged inside the wrapper.
func wrapLines(bug schema.Bug) []string {
	if !located(bug) {
		return nil
	}
	orig := strings.Split(bug.OriginalCode, "\n")
	out := make([]string, 0, len(orig)+4)
	out = append(out, "try {")
	for _, line := range orig {
		out = append(out, "    "+line)
	}
	out = append(out,
		"} catch (error) {",
		"    console.error('Operation failed:', error);",
		"}",
	)
	return out
}

// qualityLines dispatches on the sub-pattern visible in the original
// snippet. Sub-patterns are checked in severity order; secrets first.
func qualityLines(bug schema.Bug) []string {
	if !located(bug) {
		return nil
	}
	line := bug.OriginalCode
	switch {
	case secretRe.MatchString(line):
		// The literal secret token is removed, not commented out.
		return []string{secretRe.ReplaceAllStringFunc(line, func(m string) string {
			parts := secretRe.FindStringSubmatch(m)
			return parts[1] + parts[2] + "process.env." + envVarName(parts[1])
		})}
	case urlRe.MatchString(line):
		return []string{urlRe.ReplaceAllString(line, "${process.env.API_BASE_URL}")}
	case debugRe.MatchString(line):
		return []string{} // drop the debug statement
	case tagRe.MatchString(line):
		return []string{tagRe.ReplaceAllStringFunc(line, func(m string) string {
			if strings.HasPrefix(m, "<img") {
				return m + ` alt=""`
			}
			return m + ` aria-label=""`
		})}
	case callRe.MatchString(line):
		indent := indentRe.FindString(line)
		return []string{
			indent + "try {",
			indent + "    " + strings.TrimLeft(line, " \t"),
			indent + "} catch (error) {",
			indent + "    console.error('API Error:', error);",
			indent + "}",
		}
	default:
		return nil
	}
}

// envVarName converts a matched credential keyword into an environment
// variable name.
func envVarName(keyword string) string {
	name := strings.ToUpper(keyword)
	return strings.ReplaceAll(name, "-", "_")
}
