package classify

import (
	"fmt"
	"strings"
)

// Proposed-fix text generators. These are deterministic templates keyed on
// the upstream entry; no natural-language generation happens anywhere in
// the engine.

// featureFixText renders a scaffold for a missing feature.
func featureFixText(name, description string) string {
	if description == "" {
		description = "No description"
	}
	return fmt.Sprintf(`// Implement %s
// Description: %s
function implement%s() {
    throw new Error('Feature not implemented: %s');
}
`, name, description, camelName(name), name)
}

// errorFixText renders a remediation snippet for a runtime error message.
func errorFixText(message string) string {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "api"):
		return `try {
    // API call here
} catch (error) {
    console.error('API Error:', error);
}
`
	case strings.Contains(lower, "undefined"):
		return "// Add null/undefined checks before accessing properties"
	default:
		return fmt.Sprintf("// Handle error: %s", message)
	}
}

// uiFixText renders a remediation snippet for an observed UI issue.
func uiFixText(issue string) string {
	lower := strings.ToLower(issue)
	switch {
	case strings.Contains(lower, "button"):
		return `<button
    onClick={handleClick}
    disabled={isLoading}
    aria-label="Action button"
>
    {isLoading ? 'Loading...' : 'Click me'}
</button>
`
	case strings.Contains(lower, "loading"):
		return `const [isLoading, setIsLoading] = useState(false);

{isLoading && <LoadingSpinner />}
`
	default:
		return fmt.Sprintf("// Fix UI issue: %s", issue)
	}
}

// camelName strips spaces from a feature name to build an identifier.
func camelName(name string) string {
	return strings.ReplaceAll(name, " ", "")
}
