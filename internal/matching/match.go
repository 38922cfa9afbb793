// Package matching reconciles JD keywords against resume tokens using a
// three-tier algorithm: exact lookup, substring containment, then fuzzy
// edit-distance comparison.
package matching

import (
	"strings"

	"github.com/jonathan/ats-engine/internal/types"
)

// DefaultFuzzyThreshold is the minimum similarity a fuzzy candidate must
// reach to count as a match.
const DefaultFuzzyThreshold = 0.85

// matchedContributionFactor converts a keyword weight into its diagnostic
// score contribution. It is deliberately independent of the percentage
// score computed by the scorer.
const matchedContributionFactor = 5.0

// tokenIndex maps each distinct normalized token value to the ordered,
// de-duplicated list of locations that produced it, while remembering the
// order in which distinct values first appeared. The order makes substring
// and fuzzy scans deterministic.
type tokenIndex struct {
	order     []string
	locations map[string][]string
}

// buildIndex constructs a tokenIndex from a resume token stream.
func buildIndex(tokens []types.Token) *tokenIndex {
	idx := &tokenIndex{
		locations: make(map[string][]string),
	}
	seenLocation := make(map[string]map[string]struct{})

	for _, token := range tokens {
		value := token.Normalized
		if value == "" {
			continue
		}
		if _, ok := idx.locations[value]; !ok {
			idx.order = append(idx.order, value)
			idx.locations[value] = nil
			seenLocation[value] = make(map[string]struct{})
		}
		if _, dup := seenLocation[value][token.Location]; dup {
			continue
		}
		seenLocation[value][token.Location] = struct{}{}
		idx.locations[value] = append(idx.locations[value], token.Location)
	}

	return idx
}

// Match produces one MatchResult per JD keyword, preserving the keyword
// order of the model. threshold <= 0 uses DefaultFuzzyThreshold.
func Match(jdModel *types.JobDescriptionModel, resumeModel *types.ResumeModel, threshold float64) []types.MatchResult {
	if threshold <= 0 {
		threshold = DefaultFuzzyThreshold
	}

	idx := buildIndex(resumeModel.Tokens)
	results := make([]types.MatchResult, 0, len(jdModel.CategorizedKeywords))

	for _, kw := range jdModel.CategorizedKeywords {
		results = append(results, matchKeyword(kw, idx, threshold))
	}

	return results
}

// matchKeyword runs the three matching tiers for a single keyword.
func matchKeyword(kw types.Keyword, idx *tokenIndex, threshold float64) types.MatchResult {
	keyword := strings.ToLower(kw.Keyword)

	// Tier 1: exact lookup against the normalized token index.
	if locations, ok := idx.locations[keyword]; ok {
		return matched(kw, locations, "")
	}

	// Tier 2: substring containment in either direction, scanning distinct
	// token values in first-appearance order.
	for _, value := range idx.order {
		if strings.Contains(value, keyword) || strings.Contains(keyword, value) {
			return matched(kw, idx.locations[value], variantLabel(keyword, value))
		}
	}

	// Tier 3: fuzzy comparison; keep the best-scoring candidate, first
	// appearance winning ties.
	bestScore := 0.0
	bestValue := ""
	for _, value := range idx.order {
		if score := Similarity(keyword, value); score > bestScore {
			bestScore = score
			bestValue = value
		}
	}
	if bestScore >= threshold {
		return matched(kw, idx.locations[bestValue], variantLabel(keyword, bestValue))
	}

	return types.MatchResult{
		Keyword:   kw.Keyword,
		Category:  kw.Category,
		Status:    types.StatusMissing,
		Locations: []string{},
	}
}

// matched assembles a matched result, copying the location list so callers
// cannot alias the index.
func matched(kw types.Keyword, locations []string, variant string) types.MatchResult {
	copied := make([]string, len(locations))
	copy(copied, locations)

	return types.MatchResult{
		Keyword:           kw.Keyword,
		Category:          kw.Category,
		Status:            types.StatusMatched,
		Locations:         copied,
		ScoreContribution: kw.Weight * matchedContributionFactor,
		MatchedVariant:    variant,
	}
}

// variantLabel returns the token value as the matched variant only when it
// differs from the keyword's literal form.
func variantLabel(keyword, value string) string {
	if value == keyword {
		return ""
	}
	return value
}
