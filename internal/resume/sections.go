package resume

import "strings"

// sectionTrigger pairs a resume section name with the header phrases that
// open it.
type sectionTrigger struct {
	name    string
	phrases []string
}

// sectionTriggers is consulted in declaration order; the first matching
// phrase wins. Keeping the priority explicit here avoids depending on map
// iteration order.
var sectionTriggers = []sectionTrigger{
	{"experience", []string{"experience", "employment", "work history", "professional experience", "work experience"}},
	{"education", []string{"education", "academic", "qualifications", "degrees"}},
	{"skills", []string{"skills", "technical skills", "competencies", "technologies", "expertise"}},
	{"projects", []string{"projects", "personal projects", "portfolio", "side projects"}},
	{"summary", []string{"summary", "objective", "profile", "about", "professional summary"}},
	{"certifications", []string{"certifications", "certificates", "licenses", "credentials"}},
	{"achievements", []string{"achievements", "awards", "honors", "accomplishments"}},
}

// SplitSections splits resume text into labeled sections using header-line
// heuristics. Text before the first header lands in the "header" bucket.
func SplitSections(text string) map[string]string {
	sections := make(map[string]string)
	current := "header"
	var content []string

	flush := func() {
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
		if name, ok := identifySectionHeader(line); ok {
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

// identifySectionHeader reports whether a line is a section header. A line
// matches when it equals a trigger phrase, or starts with the phrase
// followed by a colon or a space.
func identifySectionHeader(line string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(line))
	if lower == "" {
		return "", false
	}
	for _, trigger := range sectionTriggers {
		for _, phrase := range trigger.phrases {
			if lower == phrase ||
				strings.HasPrefix(lower, phrase+":") ||
				strings.HasPrefix(lower, phrase+" ") {
				return trigger.name, true
			}
		}
	}
	return "", false
}
