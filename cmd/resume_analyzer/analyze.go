package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/observability"
)

var (
	analyzeRole      string
	analyzeJob       string
	analyzeIndustry  string
	analyzeLocation  string
	analyzeTimeframe int
	analyzeJSON      bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume-file>",
	Short: "Analyze one resume",
	Long: `Analyze a resume file (plain text or HTML) against a job profile.
The job comes from --role (a knowledge-base profile), --job (a posting
file), or auto-detection from the resume's skills.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeRole, "role", "", "Target role from the knowledge base")
	analyzeCmd.Flags().StringVar(&analyzeJob, "job", "", "Path to a job posting file (text or HTML)")
	analyzeCmd.Flags().StringVar(&analyzeIndustry, "industry", "", "Industry salary table (default Tech)")
	analyzeCmd.Flags().StringVar(&analyzeLocation, "location", "", "Location for salary adjustment")
	analyzeCmd.Flags().IntVar(&analyzeTimeframe, "timeframe", 0, "Learning roadmap horizon in months")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the full analysis as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, reg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	text, err := ingestion.ReadFile(args[0])
	if err != nil {
		return err
	}

	req := analyzer.Request{
		Text:            text,
		Name:            filepath.Base(args[0]),
		Role:            firstNonEmpty(analyzeRole, cfg.Role),
		Industry:        firstNonEmpty(analyzeIndustry, cfg.Industry),
		Location:        firstNonEmpty(analyzeLocation, cfg.Location),
		TimeframeMonths: analyzeTimeframe,
	}
	if req.TimeframeMonths == 0 {
		req.TimeframeMonths = cfg.TimeframeMonths
	}
	if analyzeJob != "" {
		jobText, err := ingestion.ReadFile(analyzeJob)
		if err != nil {
			return err
		}
		req.JobText = jobText
		req.Role = ""
	}

	analysis, err := analyzer.New(reg, logger).Analyze(cmd.Context(), req)
	if err != nil {
		return err
	}

	if analyzeJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(analysis)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintProfile(analysis.Profile)
	printer.PrintMatch(analysis.Match)
	printer.PrintSalary(analysis.Salary)
	printer.PrintAdvisor(analysis.Advisor)
	for _, warning := range analysis.Warnings {
		fmt.Fprintf(os.Stdout, "warning: %s\n", warning)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
