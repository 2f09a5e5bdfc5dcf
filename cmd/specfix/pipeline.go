package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/dshills/specfix/internal/classify"
	"github.com/dshills/specfix/internal/compare"
	"github.com/dshills/specfix/internal/fix"
	"github.com/dshills/specfix/internal/input"
	"github.com/dshills/specfix/internal/logging"
	"github.com/dshills/specfix/internal/policy"
	"github.com/dshills/specfix/internal/render"
	"github.com/dshills/specfix/internal/schema"
	"github.com/dshills/specfix/internal/summary"
)

type compareFlags struct {
	specFile       string
	featureMapFile string
	policyName     string
	policyFile     string
	outDir         string
	verbose        bool
}

type analyzeFlags struct {
	compareFlags
	logsFile   string
	uiFlowFile string
	fixesDir   string
}

const (
	reportJSONName = "spec_comparison_report.json"
	reportMDName   = "spec_comparison_report.md"
)

func loadPolicy(flags compareFlags) (policy.Policy, error) {
	if flags.policyFile != "" {
		return policy.LoadFile(flags.policyFile)
	}
	return policy.Load(flags.policyName)
}

func runCompare(flags compareFlags) error {
	log, err := logging.New(flags.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	report, _, err := doCompare(flags, log)
	if err != nil {
		return err
	}
	return writeReport(report, flags.outDir, log)
}

func runAnalyze(flags analyzeFlags) error {
	log, err := logging.New(flags.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	report, impl, err := doCompare(flags.compareFlags, log)
	if err != nil {
		return err
	}
	if err := writeReport(report, flags.outDir, log); err != nil {
		return err
	}

	pol, err := loadPolicy(flags.compareFlags)
	if err != nil {
		return err
	}

	var runtimeLog *schema.RuntimeLog
	if flags.logsFile != "" {
		runtimeLog, err = input.LoadRuntimeLog(flags.logsFile)
		if err != nil {
			return err
		}
	}
	var uiFlow *schema.UIFlowTrace
	if flags.uiFlowFile != "" {
		uiFlow, err = input.LoadUIFlowTrace(flags.uiFlowFile)
		if err != nil {
			return err
		}
	}

	bugs := classify.Classify(report, impl.SourceFiles, runtimeLog, uiFlow, pol)
	log.Info("classified bugs", zap.Int("count", len(bugs)))

	now := time.Now()
	var fixes []schema.Fix
	if err := os.MkdirAll(flags.fixesDir, 0o755); err != nil {
		return fmt.Errorf("create fixes dir: %w", err)
	}
	for _, bug := range bugs {
		f, err := fix.Synthesize(bug)
		if err != nil {
			return fmt.Errorf("synthesize fix for %s: %w", bug.ID, err)
		}
		if f == nil {
			continue
		}
		fixes = append(fixes, *f)
		name := render.PatchFileName(bug.ID, now)
		path := filepath.Join(flags.fixesDir, name)
		if err := os.WriteFile(path, []byte(render.Patch(f)), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		log.Debug("wrote patch", zap.String("path", path), zap.String("bug", bug.ID))
	}

	run, err := summary.Build(bugs, fixes, now)
	if err != nil {
		return err
	}
	data, err := render.RunSummaryJSON(run)
	if err != nil {
		return err
	}
	summaryPath := filepath.Join(flags.outDir, fmt.Sprintf("fixes_summary_%s.json", now.UTC().Format("20060102_150405")))
	if err := os.WriteFile(summaryPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", summaryPath, err)
	}

	log.Info("analysis complete",
		zap.Int("total_bugs", run.TotalBugs),
		zap.Int("total_fixes", run.TotalFixes),
		zap.String("summary", summaryPath))
	return nil
}

// doCompare loads and validates both inputs, runs the comparison, and returns
// the report along with the parsed feature map for downstream classification.
func doCompare(flags compareFlags, log *zap.Logger) (*schema.ComparisonReport, *schema.FeatureMap, error) {
	pol, err := loadPolicy(flags)
	if err != nil {
		return nil, nil, err
	}
	log.Debug("policy loaded", zap.String("name", pol.Name))

	spec, err := input.LoadSpecification(flags.specFile)
	if err != nil {
		return nil, nil, err
	}
	impl, err := input.LoadFeatureMap(flags.featureMapFile)
	if err != nil {
		return nil, nil, err
	}

	report, err := compare.New(pol).Compare(spec, impl)
	if err != nil {
		return nil, nil, err
	}
	log.Info("comparison complete",
		zap.Int("total_issues", report.Summary.TotalIssues),
		zap.Float64("health_score", report.Summary.HealthScore),
		zap.String("status", report.Summary.OverallStatus))
	return report, impl, nil
}

func writeReport(report *schema.ComparisonReport, outDir string, log *zap.Logger) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	data, err := render.ReportJSON(report)
	if err != nil {
		return err
	}
	jsonPath := filepath.Join(outDir, reportJSONName)
	if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", jsonPath, err)
	}
	mdPath := filepath.Join(outDir, reportMDName)
	if err := os.WriteFile(mdPath, []byte(render.ReportMarkdown(report)), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", mdPath, err)
	}
	log.Info("report written", zap.String("json", jsonPath), zap.String("markdown", mdPath))
	return nil
}
