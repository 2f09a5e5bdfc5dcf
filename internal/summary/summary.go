// Package summary aggregates the bugs and fixes of one run into a
// write-once snapshot. No business logic lives here; the snapshot exists as
// the stable persisted artifact of a run.
package summary

import (
	"time"

	"github.com/google/uuid"

	"github.com/dshills/specfix/internal/schema"
)

// Build assembles the run summary for bugs and fixes, stamped at the given
// run time. It asserts referential integrity: every fix must reference an
// existing bug id, and no two fixes may share one. A violation returns
// *schema.UnmatchedReferenceError and indicates a bug in the caller, not bad
// input.
func Build(bugs []schema.Bug, fixes []schema.Fix, at time.Time) (*schema.RunSummary, error) {
	known := make(map[string]bool, len(bugs))
	for _, b := range bugs {
		known[b.ID] = true
	}
	claimed := make(map[string]bool, len(fixes))
	for _, f := range fixes {
		if !known[f.BugID] {
			return nil, &schema.UnmatchedReferenceError{Kind: "fix", ID: f.BugID}
		}
		if claimed[f.BugID] {
			return nil, &schema.UnmatchedReferenceError{Kind: "duplicate fix", ID: f.BugID}
		}
		claimed[f.BugID] = true
	}

	counts := map[schema.BugSeverity]int{
		schema.BugCritical: 0,
		schema.BugMajor:    0,
		schema.BugMinor:    0,
		schema.BugInfo:     0,
	}
	for _, b := range bugs {
		counts[b.Severity]++
	}

	return &schema.RunSummary{
		RunID:          uuid.NewString(),
		Timestamp:      at.UTC().Format(time.RFC3339),
		TotalBugs:      len(bugs),
		TotalFixes:     len(fixes),
		BugsBySeverity: counts,
		Bugs:           bugs,
		Fixes:          fixes,
	}, nil
}
