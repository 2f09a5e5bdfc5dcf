package score

import (
	"testing"

	"github.com/dshills/specfix/internal/policy"
	"github.com/dshills/specfix/internal/schema"
)

func TestSeverityFromPriority(t *testing.T) {
	cases := []struct {
		priority string
		want     schema.Severity
	}{
		{"high", schema.SeverityHigh},
		{"medium", schema.SeverityMedium},
		{"low", schema.SeverityLow},
		{"", schema.SeverityMedium},
		{"urgent", schema.SeverityMedium},
	}
	for _, c := range cases {
		if got := SeverityFromPriority(c.priority); got != c.want {
			t.Errorf("SeverityFromPriority(%q) = %q, want %q", c.priority, got, c.want)
		}
	}
}

func TestDistributionCountsAllThreeLists(t *testing.T) {
	missing := []schema.MissingFeature{
		{Impact: schema.SeverityHigh},
		{Impact: schema.SeverityMedium},
	}
	deviations := []schema.Deviation{
		{Severity: schema.SeverityLow},
		{Severity: schema.SeverityLow},
	}
	mismatches := []schema.LogicalMismatch{
		{Severity: schema.SeverityCritical},
		{Severity: schema.SeverityHigh},
	}
	dist := Distribution(missing, deviations, mismatches)
	want := schema.Distribution{Critical: 1, High: 2, Medium: 1, Low: 2}
	if dist != want {
		t.Errorf("Distribution = %+v, want %+v", dist, want)
	}
	if dist.Total() != 6 {
		t.Errorf("Total() = %d, want 6", dist.Total())
	}
}

func TestHealthScore(t *testing.T) {
	pol := policy.Default()
	cases := []struct {
		dist schema.Distribution
		want float64
	}{
		{schema.Distribution{}, 100},
		{schema.Distribution{Critical: 1, High: 3, Medium: 2, Low: 2}, 33.3},
		{schema.Distribution{High: 1}, 90},
		{schema.Distribution{Medium: 1}, 96},
		{schema.Distribution{Low: 1}, 98},
		{schema.Distribution{Critical: 5}, 0}, // 100 - 123.5, clamped
	}
	for _, c := range cases {
		if got := HealthScore(c.dist, pol); got != c.want {
			t.Errorf("HealthScore(%+v) = %v, want %v", c.dist, got, c.want)
		}
	}
}

func TestStatusLabel(t *testing.T) {
	pol := policy.Default()
	cases := []struct {
		score float64
		want  string
	}{
		{100, "Good"},
		{80, "Good"},
		{79.9, "Needs Attention"},
		{60, "Needs Attention"},
		{59.9, "Poor"},
		{40, "Poor"},
		{39.9, "Critical Issues Found"},
		{33.3, "Critical Issues Found"},
		{0, "Critical Issues Found"},
	}
	for _, c := range cases {
		if got := StatusLabel(c.score, pol); got != c.want {
			t.Errorf("StatusLabel(%v) = %q, want %q", c.score, got, c.want)
		}
	}
}

func TestRecommendationsOrderAndClean(t *testing.T) {
	report := &schema.ComparisonReport{
		MissingFeatures:   []schema.MissingFeature{{Name: "x"}},
		Deviations:        []schema.Deviation{{Name: "y"}},
		LogicalMismatches: []schema.LogicalMismatch{{Name: "z"}},
		ExtraFeatures:     []schema.ExtraFeature{{Name: "w"}},
	}
	recs := Recommendations(report)
	want := []string{recMissing, recMismatch, recDeviation, recExtra}
	if len(recs) != len(want) {
		t.Fatalf("Recommendations = %v, want %v", recs, want)
	}
	for i := range want {
		if recs[i] != want[i] {
			t.Errorf("Recommendations[%d] = %q, want %q", i, recs[i], want[i])
		}
	}

	clean := Recommendations(&schema.ComparisonReport{})
	if len(clean) != 1 || clean[0] != recClean {
		t.Errorf("Recommendations(empty) = %v, want [%q]", clean, recClean)
	}
}

func TestSummarizeExcludesExtrasFromDistribution(t *testing.T) {
	report := &schema.ComparisonReport{
		MissingFeatures: []schema.MissingFeature{{Impact: schema.SeverityHigh}},
		ExtraFeatures: []schema.ExtraFeature{
			{Impact: schema.SeverityLow},
			{Impact: schema.SeverityLow},
		},
	}
	s := Summarize(report, policy.Default())
	if s.TotalIssues != 1 {
		t.Errorf("TotalIssues = %d, want 1", s.TotalIssues)
	}
	if s.ExtraCount != 2 {
		t.Errorf("ExtraCount = %d, want 2", s.ExtraCount)
	}
	if s.SeverityDistribution.Total() != 1 {
		t.Errorf("distribution total = %d, want 1 (extras excluded)", s.SeverityDistribution.Total())
	}
	if s.HealthScore != 90 {
		t.Errorf("HealthScore = %v, want 90", s.HealthScore)
	}
}
