package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the analyzer over REST endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default :8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, reg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	addr := serveAddr
	if addr == "" {
		addr = cfg.ListenAddr
	}

	srv := server.New(server.Config{
		ListenAddr: addr,
		Workers:    cfg.Workers,
	}, reg, logger)
	return srv.Start()
}
