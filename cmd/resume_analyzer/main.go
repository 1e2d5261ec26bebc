// Package main provides the entry point for the resume analyzer CLI and
// HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/knowledge"
	"github.com/jonathan/resume-analyzer/internal/observability"
)

var rootCmd = &cobra.Command{
	Use:   "resume_analyzer",
	Short: "Resume analysis and job matching engine",
	Long:  "Analyzes resumes against job profiles: skill matching, quality and screening scores, salary estimates, and career guidance.",
}

var (
	flagConfig  string
	flagDataDir string
	flagVerbose bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Directory overriding the embedded knowledge base")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print detailed progress information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup resolves configuration, builds the logger, and loads the knowledge
// base. Every subcommand starts here.
func setup() (config.Config, *knowledge.Registry, *zap.Logger, error) {
	cfg := config.Defaults()
	if flagConfig != "" {
		fileCfg, err := config.LoadConfig(flagConfig)
		if err != nil {
			return cfg, nil, nil, err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}
	if err := cfg.FromEnv(); err != nil {
		return cfg, nil, nil, err
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if flagVerbose {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, nil, err
	}

	logger, err := observability.NewLogger(cfg.Verbose)
	if err != nil {
		return cfg, nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	var reg *knowledge.Registry
	if cfg.DataDir != "" {
		reg, err = knowledge.LoadDir(cfg.DataDir, logger)
	} else {
		reg, err = knowledge.Load(logger)
	}
	if err != nil {
		return cfg, nil, nil, fmt.Errorf("failed to load knowledge base: %w", err)
	}
	return cfg, reg, logger, nil
}
