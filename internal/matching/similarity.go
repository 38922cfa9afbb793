package matching

import "strings"

// variantSuffixes are stripped (at most one, longest first) before
// comparing two strings. Covers the common framework/runtime suffix noise:
// "reactjs", "node.js", "asp.net".
var variantSuffixes = []string{
	".jsx", ".tsx", ".net",
	".js", ".ts", "jsx", "tsx",
	"js", "ts", "py",
}

// abbreviations maps well-known short forms to their canonical names.
var abbreviations = map[string]string{
	"js": "javascript",
	"ts": "typescript",
	"py": "python",
}

// Similarity computes a score in [0,1] describing how close two lowercase
// strings are:
//
//	1.0  — identical raw forms
//	0.95 — identical after variant normalization
//	0.9  — one normalized form contains the other
//	else — 1 - editDistance/maxLen over the normalized forms
func Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}

	normA := normalizeVariant(a)
	normB := normalizeVariant(b)

	if normA == normB {
		return 0.95
	}
	if normA == "" || normB == "" {
		return 0.0
	}
	if strings.Contains(normA, normB) || strings.Contains(normB, normA) {
		return 0.9
	}

	maxLen := len(normA)
	if len(normB) > maxLen {
		maxLen = len(normB)
	}
	distance := levenshtein(normA, normB)
	return 1.0 - float64(distance)/float64(maxLen)
}

// normalizeVariant reduces a string to a comparable base form: strip at
// most one known suffix (longest first, never to empty), strip trailing
// digits ("python3" -> "python"), then expand known abbreviations.
func normalizeVariant(s string) string {
	for _, suffix := range variantSuffixes {
		if strings.HasSuffix(s, suffix) && len(s) > len(suffix) {
			s = strings.TrimSuffix(s, suffix)
			break
		}
	}

	s = strings.TrimRight(s, "0123456789")

	if canonical, ok := abbreviations[s]; ok {
		return canonical
	}
	return s
}
