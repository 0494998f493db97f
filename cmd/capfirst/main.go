package main

import (
	"fmt"
	"os"

	"capfirst/pkg/rename"
	"capfirst/pkg/walker"

	"github.com/spf13/cobra"
)

var (
	caseFlag   string
	reportPath string
	quiet      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "capfirst [flags] directory",
		Short: "Capitalize the first letter of every file and directory name",
		Long: `capfirst walks a directory tree bottom-up and renames every entry so its
name starts with an uppercase letter. Case-only renames take effect on
case-insensitive volumes through a two-phase rename, collisions are skipped
with a warning, and re-running over an already processed tree is a no-op.

Example:
  capfirst --case auto --report run.yaml ~/incoming/music`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVar(&caseFlag, "case", "auto", "Filesystem case mode: auto, sensitive or insensitive")
	rootCmd.Flags().StringVar(&reportPath, "report", "", "Write a YAML summary of the run to this file")
	rootCmd.Flags().BoolVar(&quiet, "quiet", false, "Suppress the success message")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	mode, err := rename.ParseCaseMode(caseFlag)
	if err != nil {
		return err
	}

	var report *walker.Report
	if reportPath != "" {
		report = &walker.Report{}
	}

	w := walker.New(walker.Config{
		CaseMode: mode,
		Warn:     os.Stderr,
		Report:   report,
	})

	final, err := w.Run(args[0])
	if err != nil {
		return err
	}

	if report != nil {
		if err := report.WriteFile(reportPath); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}
	if !quiet {
		fmt.Printf("capitalized first letters under %s\n", final)
	}
	return nil
}
