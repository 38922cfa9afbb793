// Package engine composes the JD builder, resume canonicalizer, matcher,
// scorer, and recommendation generator into a single evaluation call.
package engine

import (
	"github.com/jonathan/ats-engine/internal/jd"
	"github.com/jonathan/ats-engine/internal/matching"
	"github.com/jonathan/ats-engine/internal/recommend"
	"github.com/jonathan/ats-engine/internal/resume"
	"github.com/jonathan/ats-engine/internal/scoring"
	"github.com/jonathan/ats-engine/internal/taxonomy"
	"github.com/jonathan/ats-engine/internal/types"
)

// Options tune one evaluation. The zero value selects the default taxonomy
// and fuzzy threshold.
type Options struct {
	// Taxonomy to evaluate against; nil uses the built-in defaults.
	Taxonomy *taxonomy.Taxonomy
	// FuzzyThreshold for the matcher; <= 0 uses matching.DefaultFuzzyThreshold.
	FuzzyThreshold float64
}

// Evaluate runs a full ATS evaluation of a resume against a job description
// with default options.
func Evaluate(resumeText, jdText string) *types.ATSEvaluationResponse {
	return EvaluateWithOptions(resumeText, jdText, Options{})
}

// EvaluateWithOptions runs a full ATS evaluation: parse the JD, canonicalize
// the resume, match keywords, score, and synthesize recommendations. It is a
// pure composition — every invocation allocates its own data structures, so
// concurrent calls never interact.
func EvaluateWithOptions(resumeText, jdText string, opts Options) *types.ATSEvaluationResponse {
	tax := opts.Taxonomy
	if tax == nil {
		tax = taxonomy.Default()
	}

	jdModel := jd.Build(jdText, tax)

	sections := resume.SplitSections(resumeText)
	resumeModel := resume.Canonicalize(resumeText, sections, tax)

	results := matching.Match(jdModel, resumeModel, opts.FuzzyThreshold)

	return &types.ATSEvaluationResponse{
		JDModel:         jdModel,
		MatchResults:    results,
		ScoreBreakdown:  scoring.Calculate(jdModel, results, resumeText),
		Recommendations: recommend.Generate(results),
	}
}
