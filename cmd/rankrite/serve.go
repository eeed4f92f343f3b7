package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Bharanieeswaran/RankRite/internal/server"
)

var (
	servePort      int
	serveRateLimit int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for ranking resumes, comparing them pairwise and browsing analysis history.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().IntVar(&serveRateLimit, "rate-limit", 60, "Requests per client burst capacity, 0 disables")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	log, err := buildLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	analyzer, cleanup, err := buildAnalyzer(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := server.New(server.Config{
		Port:            cfg.Port,
		RateLimit:       serveRateLimit,
		RateLimitRefill: 1.0,
	}, analyzer, log)

	return srv.Start()
}
