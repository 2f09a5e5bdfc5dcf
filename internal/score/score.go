// Package score provides deterministic local logic for summarizing a
// comparison run: severity counting, the weighted 0-100 health score, the
// overall status label, and ranked recommendations.
package score

import (
	"math"

	"github.com/dshills/specfix/internal/policy"
	"github.com/dshills/specfix/internal/schema"
)

// Recommendation templates, emitted in fixed priority order:
// missing > logical mismatch > deviation > extra.
const (
	recMissing   = "Implement missing core features to meet specification requirements"
	recMismatch  = "Review and fix logical mismatches to ensure proper functionality"
	recDeviation = "Address implementation deviations to align with specification"
	recExtra     = "Review extra features and decide whether each should be kept"
	recClean     = "Implementation closely matches specification - good work!"
)

// SeverityFromPriority derives a finding severity from a spec entity's
// priority. Unknown or absent priorities default to medium.
func SeverityFromPriority(priority string) schema.Severity {
	switch priority {
	case "high":
		return schema.SeverityHigh
	case "low":
		return schema.SeverityLow
	default:
		return schema.SeverityMedium
	}
}

// Distribution counts missing, deviation, and logical-mismatch findings by
// severity. Missing findings without an explicit severity use their
// priority-derived impact. Extra findings are excluded: they carry a fixed
// low impact and do not penalize the score.
func Distribution(missing []schema.MissingFeature, deviations []schema.Deviation, mismatches []schema.LogicalMismatch) schema.Distribution {
	var dist schema.Distribution
	bump := func(sev schema.Severity) {
		switch sev {
		case schema.SeverityCritical:
			dist.Critical++
		case schema.SeverityHigh:
			dist.High++
		case schema.SeverityMedium:
			dist.Medium++
		case schema.SeverityLow:
			dist.Low++
		}
	}
	for _, m := range missing {
		bump(m.Impact)
	}
	for _, d := range deviations {
		bump(d.Severity)
	}
	for _, lm := range mismatches {
		bump(lm.Severity)
	}
	return dist
}

// HealthScore computes the 0-100 health score: 100 minus the weighted
// penalty, floored at 0 and rounded to one decimal.
func HealthScore(dist schema.Distribution, pol policy.Policy) float64 {
	penalty := float64(dist.Critical)*pol.SeverityWeights[schema.SeverityCritical] +
		float64(dist.High)*pol.SeverityWeights[schema.SeverityHigh] +
		float64(dist.Medium)*pol.SeverityWeights[schema.SeverityMedium] +
		float64(dist.Low)*pol.SeverityWeights[schema.SeverityLow]
	s := 100 - penalty
	if s < 0 {
		s = 0
	}
	return math.Round(s*10) / 10
}

// StatusLabel translates a health score into the overall status label using
// the policy's threshold table.
func StatusLabel(healthScore float64, pol policy.Policy) string {
	for _, t := range pol.StatusThresholds {
		if healthScore >= t.MinScore {
			return t.Label
		}
	}
	return pol.FallbackStatus
}

// Recommendations returns the fixed template recommendations for the
// non-empty finding categories, in stable priority order.
func Recommendations(report *schema.ComparisonReport) []string {
	var recs []string
	if len(report.MissingFeatures) > 0 {
		recs = append(recs, recMissing)
	}
	if len(report.LogicalMismatches) > 0 {
		recs = append(recs, recMismatch)
	}
	if len(report.Deviations) > 0 {
		recs = append(recs, recDeviation)
	}
	if len(report.ExtraFeatures) > 0 {
		recs = append(recs, recExtra)
	}
	if len(recs) == 0 {
		recs = append(recs, recClean)
	}
	return recs
}

// Summarize fills in the summary for a report whose findings lists are
// already populated.
func Summarize(report *schema.ComparisonReport, pol policy.Policy) schema.Summary {
	dist := Distribution(report.MissingFeatures, report.Deviations, report.LogicalMismatches)
	health := HealthScore(dist, pol)
	return schema.Summary{
		TotalIssues:          len(report.MissingFeatures) + len(report.Deviations) + len(report.LogicalMismatches),
		MissingCount:         len(report.MissingFeatures),
		DeviationsCount:      len(report.Deviations),
		MismatchesCount:      len(report.LogicalMismatches),
		ExtraCount:           len(report.ExtraFeatures),
		SeverityDistribution: dist,
		HealthScore:          health,
		OverallStatus:        StatusLabel(health, pol),
		Recommendations:      Recommendations(report),
	}
}
