// Command specfix compares an enhanced specification against a feature map
// extracted from a codebase, reports compliance, classifies bugs, and
// generates reviewable patch files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "specfix",
		Short:         "Specification compliance checking and bug-fix generation",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newCompareCmd())
	root.AddCommand(newAnalyzeCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCompareCmd() *cobra.Command {
	var flags compareFlags
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare an enhanced specification against a feature map",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(flags)
		},
	}
	addCompareFlags(cmd, &flags)
	return cmd
}

func newAnalyzeCmd() *cobra.Command {
	var flags analyzeFlags
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the full pipeline: compare, classify bugs, generate fixes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(flags)
		},
	}
	addCompareFlags(cmd, &flags.compareFlags)
	cmd.Flags().StringVar(&flags.logsFile, "logs", "", "optional runtime log JSON file")
	cmd.Flags().StringVar(&flags.uiFlowFile, "ui-flow", "", "optional UI flow trace JSON file")
	cmd.Flags().StringVar(&flags.fixesDir, "fixes-dir", "fixes", "directory for generated .patch files")
	return cmd
}

func addCompareFlags(cmd *cobra.Command, flags *compareFlags) {
	cmd.Flags().StringVar(&flags.specFile, "spec", "enhanced_spec.json", "enhanced specification JSON file")
	cmd.Flags().StringVar(&flags.featureMapFile, "feature-map", "feature_map.json", "feature map JSON file")
	cmd.Flags().StringVar(&flags.policyName, "policy", "default", "built-in policy name")
	cmd.Flags().StringVar(&flags.policyFile, "policy-file", "", "YAML policy override file")
	cmd.Flags().StringVar(&flags.outDir, "out", ".", "output directory for reports")
	cmd.Flags().BoolVar(&flags.verbose, "verbose", false, "enable debug logging")
}
