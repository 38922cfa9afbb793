// Package main provides the entry point for the ATS evaluation engine CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ats_engine",
	Short: "ATS Resume Evaluation Engine",
	Long:  "ATS Engine scores resumes against job descriptions using deterministic keyword extraction, tiered matching, and weighted scoring, via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
