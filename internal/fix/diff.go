package fix

import (
	"fmt"
	"strings"

	"github.com/sourcegraph/go-diff/diff"

	"github.com/dshills/specfix/internal/schema"
)

// RenderUnifiedDiff renders a fix as a unified diff: a header naming the
// file, one hunk covering the start-end line range, `-` lines for the
// original snippet and `+` lines for the replacement. The rendering is
// parsed back before being returned, so a returned diff is always
// syntactically valid.
func RenderUnifiedDiff(f *schema.Fix) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- a/%s\n", f.FilePath)
	fmt.Fprintf(&sb, "+++ b/%s\n", f.FilePath)
	fmt.Fprintf(&sb, "@@ -%d,%d +%d,%d @@\n", f.StartLine, len(f.OriginalLines), f.StartLine, len(f.FixedLines))
	for _, line := range f.OriginalLines {
		sb.WriteString("-")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	for _, line := range f.FixedLines {
		sb.WriteString("+")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	rendered := sb.String()

	if _, err := diff.ParseFileDiff([]byte(rendered)); err != nil {
		return "", fmt.Errorf("rendered diff failed to parse: %w", err)
	}
	return rendered, nil
}
