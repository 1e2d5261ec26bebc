package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/observability"
)

var (
	batchRole     string
	batchJob      string
	batchIndustry string
	batchWorkers  int
	batchJSON     bool
)

var batchCmd = &cobra.Command{
	Use:   "batch <resume-file>...",
	Short: "Analyze and rank multiple resumes",
	Long: `Analyze several resumes against the same job and rank them by
screening score, best candidate first.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&batchRole, "role", "", "Target role from the knowledge base")
	batchCmd.Flags().StringVar(&batchJob, "job", "", "Path to a job posting file (text or HTML)")
	batchCmd.Flags().StringVar(&batchIndustry, "industry", "", "Industry salary table (default Tech)")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "Concurrent analyses (default 4)")
	batchCmd.Flags().BoolVar(&batchJSON, "json", false, "Print the ranked results as JSON")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, reg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	var jobText string
	if batchJob != "" {
		jobText, err = ingestion.ReadFile(batchJob)
		if err != nil {
			return err
		}
	}

	role := firstNonEmpty(batchRole, cfg.Role)
	if jobText != "" {
		role = ""
	}

	reqs := make([]analyzer.Request, 0, len(args))
	for _, path := range args {
		text, err := ingestion.ReadFile(path)
		if err != nil {
			return err
		}
		reqs = append(reqs, analyzer.Request{
			Text:            text,
			Name:            filepath.Base(path),
			Role:            role,
			JobText:         jobText,
			Industry:        firstNonEmpty(batchIndustry, cfg.Industry),
			TimeframeMonths: cfg.TimeframeMonths,
		})
	}

	workers := batchWorkers
	if workers == 0 {
		workers = cfg.Workers
	}
	ranked, err := analyzer.New(reg, logger).AnalyzeBatch(cmd.Context(), reqs, workers)
	if err != nil {
		return err
	}

	if batchJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(ranked)
	}

	observability.NewPrinter(os.Stdout).PrintRanking(ranked)
	return nil
}
