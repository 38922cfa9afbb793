package ingest

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTMLExtractionError wraps a failure to parse HTML input.
type HTMLExtractionError struct {
	Message string
	Cause   error
}

func (e *HTMLExtractionError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *HTMLExtractionError) Unwrap() error {
	return e.Cause
}

// LooksLikeHTML reports whether the content appears to be an HTML document
// rather than plain text.
func LooksLikeHTML(content string) bool {
	head := strings.ToLower(strings.TrimSpace(content))
	if len(head) > 512 {
		head = head[:512]
	}
	return strings.HasPrefix(head, "<!doctype html") ||
		strings.HasPrefix(head, "<html") ||
		strings.Contains(head, "<body") ||
		strings.Contains(head, "<div") ||
		strings.Contains(head, "<p>")
}

// ExtractHTMLText reduces an HTML document to its visible text. Block-level
// elements become separate lines so section headers survive extraction.
func ExtractHTMLText(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", &HTMLExtractionError{
			Message: "failed to parse HTML",
			Cause:   err,
		}
	}

	// Drop non-content elements before extracting text
	doc.Find("script, style, noscript, head").Remove()

	var lines []string
	doc.Find("h1, h2, h3, h4, h5, h6, p, li, td, div").Each(func(_ int, s *goquery.Selection) {
		// Skip containers whose text is fully covered by block children;
		// otherwise every div duplicates its descendants.
		if s.Children().Filter("h1, h2, h3, h4, h5, h6, p, li, td, div, ul, ol, table").Length() > 0 {
			return
		}
		text := strings.TrimSpace(s.Text())
		if text != "" {
			lines = append(lines, text)
		}
	})

	if len(lines) == 0 {
		// Fallback for fragments without block structure
		return strings.TrimSpace(doc.Text()), nil
	}
	return strings.Join(lines, "\n"), nil
}
