package event

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var lineBreakMarkup = regexp.MustCompile(`(?i)<br\s*/?>`)

// DescriptionFromHTML converts a markup-bearing description into plain text
// suitable for Event.Description. <br> tags become newlines and paragraphs
// are separated by blank lines; all other markup is stripped.
func DescriptionFromHTML(markup string) (string, error) {
	markup = lineBreakMarkup.ReplaceAllString(markup, "\n")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", fmt.Errorf("parsing description markup: %w", err)
	}

	paragraphs := doc.Find("p")
	if paragraphs.Length() == 0 {
		return strings.TrimSpace(doc.Text()), nil
	}

	var parts []string
	paragraphs.Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			parts = append(parts, text)
		}
	})
	return strings.Join(parts, "\n\n"), nil
}
