package resume

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/ats-engine/internal/types"
)

var (
	emailPattern    = regexp.MustCompile(`[a-zA-Z0-9._]+@[a-zA-Z0-9._]+\.[a-zA-Z]+`)
	phonePattern    = regexp.MustCompile(`[+(]?[0-9][0-9 .()\-]{8,}[0-9]`)
	linkedinPattern = regexp.MustCompile(`(?i)linkedin\.com/in/[a-zA-Z0-9_-]+`)
	githubPattern   = regexp.MustCompile(`(?i)github\.com/[a-zA-Z0-9_-]+`)
	urlPattern      = regexp.MustCompile(`https?://\S+`)
	nonDigitPattern = regexp.MustCompile(`[^0-9]`)
)

// ExtractContact pulls contact details (email, phone, profile links,
// website) out of resume text using fixed patterns. Missing fields stay
// empty.
func ExtractContact(text string) types.ContactInfo {
	var contact types.ContactInfo

	if email := emailPattern.FindString(text); email != "" {
		contact.Email = email
	}

	if phone := phonePattern.FindString(text); phone != "" {
		// Require at least ten digits so date ranges don't pass as phone
		// numbers.
		if len(nonDigitPattern.ReplaceAllString(phone, "")) >= 10 {
			contact.Phone = strings.TrimSpace(phone)
		}
	}

	if linkedin := linkedinPattern.FindString(text); linkedin != "" {
		contact.LinkedIn = linkedin
	}
	if github := githubPattern.FindString(text); github != "" {
		contact.GitHub = github
	}

	for _, url := range urlPattern.FindAllString(text, -1) {
		lower := strings.ToLower(url)
		if !strings.Contains(lower, "linkedin") && !strings.Contains(lower, "github") {
			contact.Website = url
			break
		}
	}

	return contact
}

// ExtractName guesses the candidate's display name: the first of the top
// five lines holding two to four words that all start with an uppercase
// letter and that is not a section header. Returns "" when no line
// qualifies.
func ExtractName(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) > 5 {
		lines = lines[:5]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		if !allCapitalized(words) {
			continue
		}
		if _, isHeader := identifySectionHeader(line); isHeader {
			continue
		}
		return line
	}
	return ""
}

// allCapitalized reports whether every alphabetic word starts uppercase.
func allCapitalized(words []string) bool {
	for _, word := range words {
		runes := []rune(word)
		if len(runes) == 0 {
			continue
		}
		if unicode.IsLetter(runes[0]) && !unicode.IsUpper(runes[0]) {
			return false
		}
	}
	return true
}

// Parse combines the section splitter and contact extraction into one
// structured view of a resume.
func Parse(text string) *types.ParsedResume {
	return &types.ParsedResume{
		Name:     ExtractName(text),
		Contact:  ExtractContact(text),
		Sections: SplitSections(text),
	}
}
