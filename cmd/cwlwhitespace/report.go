package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mattgallagher/cwlwhitespace/pkg/store"
)

var (
	reportDatastore string
	reportFormat    string
	reportColor     string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a report from stored check results",
	Long:  "Read findings from a results database and output a report",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportDatastore, "datastore", "cwlwhitespace.db", "Path to results database")
	reportCmd.Flags().StringVar(&reportFormat, "format", "human", "Output format: human, json, sarif")
	reportCmd.Flags().StringVar(&reportColor, "color", "auto", "Color output: auto, always, never")
}

func runReport(cmd *cobra.Command, args []string) error {
	if reportDatastore == ":memory:" {
		return fmt.Errorf("cannot report from in-memory store")
	}
	if _, err := os.Stat(reportDatastore); err != nil {
		return fmt.Errorf("datastore not found: %s", reportDatastore)
	}

	s, err := store.New(store.Config{Path: reportDatastore})
	if err != nil {
		return fmt.Errorf("opening datastore: %w", err)
	}
	defer s.Close()

	findings, err := s.GetFindings()
	if err != nil {
		return fmt.Errorf("retrieving findings: %w", err)
	}

	switch reportFormat {
	case "human":
		configureColor(reportColor)
		outputFindingsHuman(cmd.OutOrStdout(), findings)
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "%d findings\n", len(findings))
		}
		return nil
	case "json":
		return outputFindingsJSON(cmd, findings)
	case "sarif":
		return outputFindingsSARIF(cmd, findings)
	default:
		return fmt.Errorf("unknown output format: %s", reportFormat)
	}
}
