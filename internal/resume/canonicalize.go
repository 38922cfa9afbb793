// Package resume converts raw resume text into canonical, located tokens
// plus the labeled sections and contact details the evaluation pipeline
// consumes.
package resume

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/ats-engine/internal/taxonomy"
	"github.com/jonathan/ats-engine/internal/types"
)

var (
	// tokenStripPattern removes every character except letters, digits,
	// hyphen, plus, and hash from a candidate word.
	tokenStripPattern = regexp.MustCompile(`[^a-zA-Z0-9+#-]+`)

	// bulletSplitPattern splits experience text into bullets: a newline
	// followed by a dash, bullet dot, or asterisk.
	bulletSplitPattern = regexp.MustCompile(`\n\s*[-•*]\s*`)

	// skillSplitPattern splits skills text on commas, newlines, and bullet
	// characters.
	skillSplitPattern = regexp.MustCompile(`[,\n•*]`)
)

// Canonicalize converts resume text and its labeled sections into a
// ResumeModel: a flat, ordered token stream where every token carries its
// originating location and lowercase normalized form. Duplicate normalized
// values are preserved on purpose so the matcher can report every location
// a keyword variant appears.
func Canonicalize(text string, sections map[string]string, tax *taxonomy.Taxonomy) *types.ResumeModel {
	tokens := make([]types.Token, 0)

	// Summary: individual words.
	for _, word := range tokenizeWords(sections["summary"], tax) {
		tokens = append(tokens, newToken(word, "summary:0"))
	}

	// Experience: words per bullet.
	for i, bullet := range bulletSplitPattern.Split(sections["experience"], -1) {
		location := fmt.Sprintf("experience:0:bullets:%d", i)
		for _, word := range tokenizeWords(bullet, tax) {
			tokens = append(tokens, newToken(word, location))
		}
	}

	// Skills: whole fragments, not word-split.
	index := 0
	for _, fragment := range skillSplitPattern.Split(sections["skills"], -1) {
		fragment = strings.TrimSpace(fragment)
		fragment = strings.Trim(fragment, "-•* \t")
		if fragment == "" {
			continue
		}
		tokens = append(tokens, newToken(fragment, fmt.Sprintf("skills:0:list:%d", index)))
		index++
	}

	// Detected skills: whole-word scan of the entire resume text against
	// the technical skill reference list, independent of section content.
	// Word boundaries keep "reactjs" from also emitting a detected "react";
	// the matcher's substring tier handles variants like that.
	for _, skill := range tax.TechSkills() {
		if skillPattern(strings.ToLower(skill)).MatchString(text) {
			tokens = append(tokens, newToken(skill, "detected"))
		}
	}

	return &types.ResumeModel{
		Sections: sections,
		Tokens:   tokens,
	}
}

// newToken builds a Token, deriving the normalized form from the text.
func newToken(text, location string) types.Token {
	return types.Token{
		Text:       text,
		Location:   location,
		Normalized: strings.ToLower(text),
	}
}

// skillPattern builds a case-insensitive whole-word pattern for a skill
// term. Boundaries apply only where the term starts or ends with a word
// character, so terms like "c++" and "ci/cd" still match.
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

// tokenizeWords splits text on whitespace, strips every character except
// letters, digits, hyphen, plus, and hash, lowercases nothing (original
// casing is kept on the token), and drops stop words and empty remainders.
func tokenizeWords(text string, tax *taxonomy.Taxonomy) []string {
	if text == "" {
		return nil
	}
	words := make([]string, 0)
	for _, raw := range strings.Fields(text) {
		word := tokenStripPattern.ReplaceAllString(raw, "")
		word = strings.Trim(word, "-")
		if word == "" {
			continue
		}
		if tax.IsStopWord(word) {
			continue
		}
		words = append(words, word)
	}
	return words
}
