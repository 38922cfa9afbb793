package main

import (
	"fmt"

	"github.com/jonathan/ats-engine/internal/config"
	"github.com/jonathan/ats-engine/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort       int
	serveConfigFile string
	serveTaxonomy   string
	serveThreshold  float64
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for evaluating resumes against job descriptions.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveConfigFile, "config", "", "Path to JSON config file")
	serveCmd.Flags().StringVar(&serveTaxonomy, "taxonomy", "", "Path to taxonomy override JSON file")
	serveCmd.Flags().Float64Var(&serveThreshold, "fuzzy-threshold", 0, "Minimum similarity for a fuzzy match (0.0-1.0)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Port:           servePort,
		FuzzyThreshold: serveThreshold,
		TaxonomyFile:   serveTaxonomy,
	}

	if serveConfigFile != "" {
		fileCfg, err := config.LoadConfig(serveConfigFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	} else {
		cfg = cfg.MergeWithDefaults(config.Config{})
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:           cfg.Port,
		FuzzyThreshold: cfg.FuzzyThreshold,
		TaxonomyFile:   cfg.TaxonomyFile,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
