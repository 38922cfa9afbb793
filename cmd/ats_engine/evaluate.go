package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jonathan/ats-engine/internal/config"
	"github.com/jonathan/ats-engine/internal/engine"
	"github.com/jonathan/ats-engine/internal/ingest"
	"github.com/jonathan/ats-engine/internal/observability"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate one or more resumes against a job description",
	Long:  "Evaluate resume files against a job description and print the full score breakdown, keyword match results, and recommendations as JSON.",
	RunE:  runEvaluate,
}

var (
	evalResumeFiles []string
	evalJDFile      string
	evalOutputDir   string
	evalConfigFile  string
	evalTaxonomy    string
	evalThreshold   float64
	evalConcurrency int
	evalVerbose     bool
)

func init() {
	evaluateCmd.Flags().StringSliceVarP(&evalResumeFiles, "resume", "r", nil, "Path to resume file (repeatable)")
	evaluateCmd.Flags().StringVarP(&evalJDFile, "jd", "j", "", "Path to job description file (required)")
	evaluateCmd.Flags().StringVarP(&evalOutputDir, "out", "o", "", "Directory for per-resume JSON output (default: stdout)")
	evaluateCmd.Flags().StringVar(&evalConfigFile, "config", "", "Path to JSON config file")
	evaluateCmd.Flags().StringVar(&evalTaxonomy, "taxonomy", "", "Path to taxonomy override JSON file")
	evaluateCmd.Flags().Float64Var(&evalThreshold, "fuzzy-threshold", 0, "Minimum similarity for a fuzzy match (0.0-1.0)")
	evaluateCmd.Flags().IntVar(&evalConcurrency, "concurrency", 0, "Max resumes evaluated in parallel")
	evaluateCmd.Flags().BoolVarP(&evalVerbose, "verbose", "v", false, "Print a formatted evaluation summary to stderr")
	_ = evaluateCmd.MarkFlagRequired("resume")
	_ = evaluateCmd.MarkFlagRequired("jd")

	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		FuzzyThreshold: evalThreshold,
		TaxonomyFile:   evalTaxonomy,
		MaxConcurrency: evalConcurrency,
	}
	if evalConfigFile != "" {
		fileCfg, err := config.LoadConfig(evalConfigFile)
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

	tax, err := loadTaxonomy(cfg.TaxonomyFile)
	if err != nil {
		return err
	}

	jdText, err := ingest.ReadFile(evalJDFile)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	opts := engine.Options{
		Taxonomy:       tax,
		FuzzyThreshold: cfg.FuzzyThreshold,
	}

	if evalOutputDir != "" {
		if err := os.MkdirAll(evalOutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// Evaluate resumes in parallel with a bounded worker group. Stdout
	// writes are serialized so interleaved output stays parseable.
	var stdoutMu sync.Mutex
	var g errgroup.Group
	g.SetLimit(cfg.MaxConcurrency)

	for _, resumePath := range evalResumeFiles {
		g.Go(func() error {
			resumeText, err := ingest.ReadFile(resumePath)
			if err != nil {
				return fmt.Errorf("failed to read resume %s: %w", resumePath, err)
			}

			result := engine.EvaluateWithOptions(resumeText, jdText, opts)

			if evalVerbose {
				stdoutMu.Lock()
				_, _ = fmt.Fprintf(os.Stderr, "== %s ==\n", resumePath)
				observability.NewPrinter(os.Stderr).PrintEvaluation(result)
				stdoutMu.Unlock()
			}

			jsonBytes, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal result for %s: %w", resumePath, err)
			}

			if evalOutputDir == "" {
				stdoutMu.Lock()
				defer stdoutMu.Unlock()
				_, _ = fmt.Fprintf(os.Stdout, "%s\n", string(jsonBytes))
				return nil
			}

			outPath := filepath.Join(evalOutputDir, outputName(resumePath))
			if err := os.WriteFile(outPath, jsonBytes, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outPath, err)
			}

			stdoutMu.Lock()
			defer stdoutMu.Unlock()
			_, _ = fmt.Fprintf(os.Stdout, "%s: total=%d -> %s\n", resumePath, result.ScoreBreakdown.Total, outPath)
			return nil
		})
	}

	return g.Wait()
}

// outputName derives the output JSON filename from a resume path.
func outputName(resumePath string) string {
	base := filepath.Base(resumePath)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + ".evaluation.json"
}
