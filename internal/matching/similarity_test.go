package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity_IdenticalStrings(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("python", "python"))
	assert.Equal(t, 1.0, Similarity("", ""))
}

func TestSimilarity_VariantNormalization(t *testing.T) {
	// "reactjs" strips the "js" suffix and lands on "react"
	assert.Equal(t, 0.95, Similarity("react", "reactjs"))

	// Trailing version digits are stripped
	assert.Equal(t, 0.95, Similarity("python", "python3"))

	// Known abbreviations expand to their canonical names
	assert.Equal(t, 0.95, Similarity("javascript", "js"))
	assert.Equal(t, 0.95, Similarity("typescript", "ts"))
}

func TestSimilarity_Containment(t *testing.T) {
	assert.Equal(t, 0.9, Similarity("postgres", "postgresql"))
	assert.Equal(t, 0.9, Similarity("kubernetes", "kube"))
}

func TestSimilarity_EmptyAfterNormalization(t *testing.T) {
	assert.Equal(t, 0.0, Similarity("python", ""))
	assert.Equal(t, 0.0, Similarity("", "docker"))
}

func TestSimilarity_EditDistanceFallback(t *testing.T) {
	// One substitution over eight characters
	score := Similarity("grafana", "grafanna")
	assert.InDelta(t, 1.0-1.0/8.0, score, 1e-9)

	// Unrelated strings score low
	assert.Less(t, Similarity("python", "java"), 0.5)
}

func TestSimilarity_SuffixNeverStripsToEmpty(t *testing.T) {
	// "js" must expand via the abbreviation table, not strip to ""
	assert.Equal(t, 0.95, Similarity("js", "javascript"))
}

func TestLevenshtein_Basics(t *testing.T) {
	assert.Equal(t, 0, levenshtein("docker", "docker"))
	assert.Equal(t, 6, levenshtein("", "docker"))
	assert.Equal(t, 6, levenshtein("docker", ""))
	assert.Equal(t, 1, levenshtein("kitten", "mitten"))
	assert.Equal(t, 3, levenshtein("kitten", "sitting"))
}
