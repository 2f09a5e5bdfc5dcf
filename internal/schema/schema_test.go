package schema

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDistributionTotal(t *testing.T) {
	cases := []struct {
		dist Distribution
		want int
	}{
		{Distribution{}, 0},
		{Distribution{Critical: 1, High: 3, Medium: 2, Low: 2}, 8},
		{Distribution{High: 5}, 5},
	}
	for _, c := range cases {
		if got := c.dist.Total(); got != c.want {
			t.Errorf("Total(%+v) = %d, want %d", c.dist, got, c.want)
		}
	}
}

func TestComparisonReportJSONFieldNames(t *testing.T) {
	report := ComparisonReport{
		MissingFeatures:   []MissingFeature{{Type: TagCoreFeature, Name: "x", Priority: "high", Impact: SeverityHigh}},
		Deviations:        []Deviation{},
		LogicalMismatches: []LogicalMismatch{},
		ExtraFeatures:     []ExtraFeature{},
		Summary: Summary{
			TotalIssues:          1,
			SeverityDistribution: Distribution{High: 1},
			HealthScore:          90,
			OverallStatus:        "Good",
		},
	}
	data, err := json.Marshal(report)
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	for _, want := range []string{
		`"missing_features"`,
		`"logical_mismatches"`,
		`"extra_features"`,
		`"total_issues"`,
		`"severity_distribution"`,
		`"health_score"`,
		`"overall_status"`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("report JSON missing key %s", want)
		}
	}
}

func TestBugJSONRoundTrip(t *testing.T) {
	in := Bug{
		ID:         "missing_0",
		Title:      "Missing Feature: x",
		Severity:   BugMajor,
		Category:   CategoryMissingImplementation,
		Confidence: 0.8,
	}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	var out Bug
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Errorf("round trip changed bug: %+v != %+v", out, in)
	}
}

func TestInvalidInputErrorMessage(t *testing.T) {
	e := &InvalidInputError{Field: "feature_map.features", Reason: "required"}
	want := "invalid input at feature_map.features: required"
	if e.Error() != want {
		t.Errorf("Error() = %q, want %q", e.Error(), want)
	}
	bare := &InvalidInputError{Reason: "truncated"}
	if e := bare.Error(); e != "invalid input: truncated" {
		t.Errorf("Error() = %q", e)
	}
}

func TestUnmatchedReferenceErrorMessage(t *testing.T) {
	e := &UnmatchedReferenceError{Kind: "fix", ID: "ghost"}
	if !strings.Contains(e.Error(), `"ghost"`) {
		t.Errorf("Error() = %q, want bug id quoted", e.Error())
	}
}
