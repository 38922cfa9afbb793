package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/ats-engine/internal/ingest"
	"github.com/jonathan/ats-engine/internal/jd"
	"github.com/jonathan/ats-engine/internal/taxonomy"
	"github.com/spf13/cobra"
)

var parseJDCmd = &cobra.Command{
	Use:   "parse-jd",
	Short: "Parse a job description into its structured keyword model",
	Long:  "Parse a job description text or HTML file into a structured model with sections and weighted, categorized keywords.",
	RunE:  runParseJD,
}

var (
	parseJDInputFile  string
	parseJDOutputFile string
	parseJDTaxonomy   string
)

func init() {
	parseJDCmd.Flags().StringVarP(&parseJDInputFile, "in", "i", "", "Path to job description file (required)")
	parseJDCmd.Flags().StringVarP(&parseJDOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseJDCmd.Flags().StringVar(&parseJDTaxonomy, "taxonomy", "", "Path to taxonomy override JSON file")
	_ = parseJDCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseJDCmd)
}

func runParseJD(_ *cobra.Command, _ []string) error {
	tax, err := loadTaxonomy(parseJDTaxonomy)
	if err != nil {
		return err
	}

	text, err := ingest.ReadFile(parseJDInputFile)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	model := jd.Build(text, tax)

	jsonBytes, err := json.MarshalIndent(model, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	return writeOutput(parseJDOutputFile, jsonBytes)
}

// loadTaxonomy returns the default taxonomy or one loaded from an override file.
func loadTaxonomy(path string) (*taxonomy.Taxonomy, error) {
	if path == "" {
		return taxonomy.Default(), nil
	}
	tax, err := taxonomy.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load taxonomy: %w", err)
	}
	return tax, nil
}

// writeOutput writes JSON to a file, or stdout when no path is given.
func writeOutput(path string, jsonBytes []byte) error {
	if path == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", path)
	return nil
}
