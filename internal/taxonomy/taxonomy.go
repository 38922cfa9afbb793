// Package taxonomy provides the static keyword reference data used by the
// JD builder, the resume canonicalizer, and the matching engine: known
// technical skills, tool names, soft-skill phrases, stop words, and the
// categorizer that maps a keyword string to its category.
//
// A Taxonomy is constructed once by the caller (Default or LoadFile) and is
// immutable afterward, so a single instance is safe to share across
// concurrent evaluations.
package taxonomy

import (
	"strings"

	"github.com/jonathan/ats-engine/internal/types"
)

// Taxonomy is an immutable set of keyword reference lists.
type Taxonomy struct {
	techSkills     []string            // reference casing, e.g. "Node.js"
	techSkillSet   map[string]struct{} // lowercase lookup of techSkills
	toolNames      []string            // lowercase, consulted in order
	softSkills     []string            // lowercase phrases, consulted in order
	stopWords      map[string]struct{}
	phrasePatterns []string // lowercase multi-word phrases
}

// Default returns a Taxonomy built from the built-in reference lists.
func Default() *Taxonomy {
	return build(defaultTechSkills, defaultToolNames, defaultSoftSkills, defaultStopWords, defaultPhrasePatterns)
}

// build assembles a Taxonomy from raw lists, normalizing lookup structures.
func build(tech, tools, soft, stop, phrases []string) *Taxonomy {
	t := &Taxonomy{
		techSkills:     tech,
		techSkillSet:   make(map[string]struct{}, len(tech)),
		toolNames:      tools,
		softSkills:     soft,
		stopWords:      make(map[string]struct{}, len(stop)),
		phrasePatterns: phrases,
	}
	for _, s := range tech {
		t.techSkillSet[strings.ToLower(s)] = struct{}{}
	}
	for _, w := range stop {
		t.stopWords[strings.ToLower(w)] = struct{}{}
	}
	return t
}

// Categorize maps a keyword string to its category. Rule order (first match
// wins): tool-name containment, soft-skill containment, exact technical
// skill, concept. Tool precedence is deliberate: a term that is both a
// named tool and skill-like (e.g. "Git") must classify as a tool to keep
// category scores reproducible.
func (t *Taxonomy) Categorize(keyword string) types.KeywordCategory {
	lower := strings.ToLower(keyword)

	for _, tool := range t.toolNames {
		if strings.Contains(lower, tool) {
			return types.CategoryTool
		}
	}

	for _, soft := range t.softSkills {
		if strings.Contains(lower, soft) {
			return types.CategorySoftSkill
		}
	}

	if _, ok := t.techSkillSet[lower]; ok {
		return types.CategoryHardSkill
	}

	return types.CategoryConcept
}

// TechSkills returns the technical skill reference list in its declaration
// order. Callers must treat the returned slice as read-only.
func (t *Taxonomy) TechSkills() []string {
	return t.techSkills
}

// PhrasePatterns returns the multi-word phrase patterns searched for during
// JD keyword extraction. Read-only.
func (t *Taxonomy) PhrasePatterns() []string {
	return t.phrasePatterns
}

// IsStopWord reports whether word (any casing) is a stop word.
func (t *Taxonomy) IsStopWord(word string) bool {
	_, ok := t.stopWords[strings.ToLower(word)]
	return ok
}
