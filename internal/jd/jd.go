// Package jd builds a structured JobDescriptionModel from raw job
// description text: labeled sections, extracted keywords, categories, and
// positional weights.
package jd

import (
	"regexp"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/ats-engine/internal/taxonomy"
	"github.com/jonathan/ats-engine/internal/types"
)

// maxHeaderLineLength bounds how long a line can be and still count as a
// section header.
const maxHeaderLineLength = 60

// sectionTrigger pairs a section name with the header phrases that open it.
type sectionTrigger struct {
	name    string
	phrases []string
}

// sectionTriggers is consulted in declaration order; the first phrase found
// in a header line wins. The order is part of the section-splitting
// contract and must stay explicit.
var sectionTriggers = []sectionTrigger{
	{"requirements", []string{"requirements", "qualifications", "what you'll need", "what we're looking for", "must have"}},
	{"responsibilities", []string{"responsibilities", "what you'll do", "what you will do", "duties", "day to day"}},
	{"nice_to_have", []string{"nice to have", "nice-to-have", "preferred", "bonus points", "plus"}},
	{"about", []string{"about us", "about the company", "about the role", "who we are", "our company", "our mission"}},
}

// Build parses job description text into a JobDescriptionModel: sections
// split on header phrases, keywords extracted from the technical skill list
// and phrase patterns, each categorized and weighted. The returned model is
// read-only; keywords are sorted by weight descending with ties keeping
// discovery order.
func Build(text string, tax *taxonomy.Taxonomy) *types.JobDescriptionModel {
	sections := splitSections(text)
	keywords := extractKeywords(text, sections, tax)

	return &types.JobDescriptionModel{
		ID:                  uuid.New().String(),
		RawText:             text,
		Sections:            sections,
		CategorizedKeywords: keywords,
	}
}

// splitSections scans lines for section boundaries. A line is a boundary if
// it is short and contains one of the trigger phrases. Text before any
// boundary belongs to "general"; every other line belongs to the most
// recently opened section, joined with newlines in original order.
func splitSections(text string) map[string]string {
	sections := make(map[string]string)
	current := "general"
	var content []string

	flush := func() {
		if len(content) == 0 {
			return
		}
		joined := strings.TrimSpace(strings.Join(content, "\n"))
		if joined == "" {
			return
		}
		if existing, ok := sections[current]; ok {
			sections[current] = existing + "\n" + joined
		} else {
			sections[current] = joined
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if name, ok := identifySection(line); ok {
			flush()
			current = name
			content = content[:0]
			continue
		}
		content = append(content, line)
	}
	flush()

	return sections
}

// identifySection reports whether a line opens a new section and which one.
func identifySection(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) >= maxHeaderLineLength {
		return "", false
	}
	lower := strings.ToLower(trimmed)
	for _, trigger := range sectionTriggers {
		for _, phrase := range trigger.phrases {
			if strings.Contains(lower, phrase) {
				return trigger.name, true
			}
		}
	}
	return "", false
}

// extractKeywords finds every technical skill and phrase pattern present in
// the JD text and assigns each a category and weight.
func extractKeywords(text string, sections map[string]string, tax *taxonomy.Taxonomy) []types.Keyword {
	lowerText := strings.ToLower(text)
	requirementsText := strings.ToLower(sections["requirements"])

	keywords := make([]types.Keyword, 0)
	seen := make(map[string]struct{})

	// Technical skill entries: word-boundary matched, counted.
	for _, skill := range tax.TechSkills() {
		canonical := strings.ToLower(skill)
		if _, dup := seen[canonical]; dup {
			continue
		}
		count := len(skillPattern(canonical).FindAllStringIndex(text, -1))
		if count == 0 {
			continue
		}
		seen[canonical] = struct{}{}
		keywords = append(keywords, makeKeyword(canonical, count, requirementsText, sections, tax))
	}

	// Multi-word phrase patterns: presence only, frequency 1.
	for _, phrase := range tax.PhrasePatterns() {
		if _, dup := seen[phrase]; dup {
			continue
		}
		if !strings.Contains(lowerText, phrase) {
			continue
		}
		seen[phrase] = struct{}{}
		keywords = append(keywords, makeKeyword(phrase, 1, requirementsText, sections, tax))
	}

	// Stable sort keeps discovery order for equal weights, which keeps the
	// model deterministic.
	stableSortByWeight(keywords)

	return keywords
}

// makeKeyword assembles one Keyword with its category, weight, and source
// section.
func makeKeyword(canonical string, frequency int, requirementsText string, sections map[string]string, tax *taxonomy.Taxonomy) types.Keyword {
	return types.Keyword{
		Keyword:   canonical,
		Category:  tax.Categorize(canonical),
		Weight:    keywordWeight(canonical, frequency, requirementsText),
		Frequency: frequency,
		JDSection: keywordSection(canonical, sections),
	}
}

// keywordWeight implements the weight formula: a base of 1.0, a frequency
// bonus of 0.25 per occurrence beyond the first capped at 0.5, and a flat
// 0.5 bonus when the keyword appears in the requirements section. The
// requirements bonus is never scaled by occurrence count.
func keywordWeight(keyword string, frequency int, requirementsText string) float64 {
	weight := 1.0

	extra := frequency - 1
	if extra > 2 {
		extra = 2
	}
	if extra > 0 {
		weight += float64(extra) * 0.25
	}

	if requirementsText != "" && strings.Contains(requirementsText, keyword) {
		weight += 0.5
	}

	return weight
}

// keywordSectionOrder fixes the priority in which sections are credited as
// a keyword's source.
var keywordSectionOrder = []string{"requirements", "responsibilities", "nice_to_have", "about", "general"}

// keywordSection returns the highest-priority section whose text contains
// the keyword, defaulting to "general".
func keywordSection(keyword string, sections map[string]string) string {
	for _, name := range keywordSectionOrder {
		if content, ok := sections[name]; ok {
			if strings.Contains(strings.ToLower(content), keyword) {
				return name
			}
		}
	}
	return "general"
}

// stableSortByWeight sorts keywords by weight descending; ties preserve
// discovery order.
func stableSortByWeight(keywords []types.Keyword) {
	sort.SliceStable(keywords, func(i, j int) bool {
		return keywords[i].Weight > keywords[j].Weight
	})
}

// skillPattern builds a case-insensitive match pattern for a skill term.
// Word boundaries are applied only where the term starts or ends with a
// word character, so terms like "c++" and "ci/cd" still match.
func skillPattern(term string) *regexp.Regexp {
	pattern := regexp.QuoteMeta(term)
	if isWordChar(term[0]) {
		pattern = `\b` + pattern
	}
	if isWordChar(term[len(term)-1]) {
		pattern += `\b`
	}
	return regexp.MustCompile(`(?i)` + pattern)
}

// isWordChar reports whether b is a regex word character.
func isWordChar(b byte) bool {
	return b == '_' ||
		(b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z')
}
