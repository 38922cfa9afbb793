// Package recommend turns missing JD keywords into prioritized,
// human-readable recommendations.
package recommend

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/ats-engine/internal/types"
)

// rule describes how one keyword category is surfaced: its severity, where
// the fix belongs, how many keywords to name, and the message template.
type rule struct {
	category    types.KeywordCategory
	severity    types.RecommendationSeverity
	maxKeywords int
	target      string
	template    string
}

// rules is consulted in fixed priority order. soft_skill is intentionally
// absent: soft-skill keywords are scored but never surfaced, a documented
// asymmetry of the reference behavior.
var rules = []rule{
	{
		category:    types.CategoryHardSkill,
		severity:    types.SeverityCritical,
		maxKeywords: 3,
		target:      "experience",
		template:    "Add these critical skills to your experience section: %s",
	},
	{
		category:    types.CategoryTool,
		severity:    types.SeverityWarning,
		maxKeywords: 3,
		target:      "skills",
		template:    "List these tools in your skills section: %s",
	},
	{
		category:    types.CategoryConcept,
		severity:    types.SeverityInfo,
		maxKeywords: 2,
		target:      "summary",
		template:    "Mention these concepts in your summary: %s",
	},
}

// Generate emits at most one recommendation per non-empty missing-keyword
// category, ordered hard_skill, tool, concept.
func Generate(results []types.MatchResult) []types.Recommendation {
	missing := make(map[types.KeywordCategory][]string)
	for _, result := range results {
		if result.Status == types.StatusMissing {
			missing[result.Category] = append(missing[result.Category], result.Keyword)
		}
	}

	recommendations := make([]types.Recommendation, 0, len(rules))
	for _, r := range rules {
		keywords := missing[r.category]
		if len(keywords) == 0 {
			continue
		}
		if len(keywords) > r.maxKeywords {
			keywords = keywords[:r.maxKeywords]
		}

		recommendations = append(recommendations, types.Recommendation{
			ID:             uuid.New().String(),
			Message:        fmt.Sprintf(r.template, strings.Join(keywords, ", ")),
			Severity:       r.severity,
			TargetLocation: r.target,
			Category:       r.category,
			Keyword:        keywords[0],
		})
	}

	return recommendations
}
