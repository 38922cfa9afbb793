package main

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/ats-engine/internal/ingest"
	"github.com/jonathan/ats-engine/internal/resume"
	"github.com/spf13/cobra"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Parse a resume into sections and contact info",
	Long:  "Parse a resume text or HTML file into named sections plus extracted contact details and candidate name.",
	RunE:  runParseResume,
}

var (
	parseResumeInputFile  string
	parseResumeOutputFile string
)

func init() {
	parseResumeCmd.Flags().StringVarP(&parseResumeInputFile, "in", "i", "", "Path to resume file (required)")
	parseResumeCmd.Flags().StringVarP(&parseResumeOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	_ = parseResumeCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(_ *cobra.Command, _ []string) error {
	text, err := ingest.ReadFile(parseResumeInputFile)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	parsed := resume.Parse(text)

	jsonBytes, err := json.MarshalIndent(parsed, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	return writeOutput(parseResumeOutputFile, jsonBytes)
}
