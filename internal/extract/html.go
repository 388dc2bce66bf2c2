// Package extract retrieves policy documents and converts them to plain text.
package extract

import (
	"strings"

	"github.com/Alex-Leontaridis/GovAid-AI/internal/domain"
	"github.com/Alex-Leontaridis/GovAid-AI/pkg/textutil"
	"github.com/PuerkitoBio/goquery"
)

// Extracted is the cleaned output of content extraction.
// Text is guaranteed non-empty; callers must not assume any structure
// beyond plain text.
type Extracted struct {
	Text  string
	Title string
}

// untitledPlaceholder is used when a page has no title and no heading.
const untitledPlaceholder = "Untitled"

// noiseSelectors are removed before extraction. They contribute
// navigation chrome and ads, never policy content.
var noiseSelectors = []string{
	"script", "style", "noscript",
	"nav", "header", "footer", "aside",
	".nav", ".header", ".footer", ".sidebar",
	".advertisement", ".ads",
}

// contentSelectors are tried in order; the first match wins. <main> is
// the most semantically reliable, then <article>, then the class/id
// conventions common on government CMSes.
var contentSelectors = []string{
	"main",
	"article",
	".content",
	".main-content",
	"#content",
	"#main",
	".post-content",
	".entry-content",
}

// HTML converts a raw HTML page into cleaned plain text plus a title.
// Title resolution: <title>, else the first <h1>, else a placeholder.
// Returns KindEmptyContent when nothing readable survives cleaning.
func HTML(html string) (*Extracted, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, domain.E(domain.KindEmptyContent, "parse_html", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	if title == "" {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
	}
	if title == "" {
		title = untitledPlaceholder
	}

	var content string
	for _, sel := range contentSelectors {
		if s := doc.Find(sel); s.Length() > 0 {
			content = s.First().Text()
			break
		}
	}
	if content == "" {
		content = doc.Find("body").Text()
	}

	text := textutil.CollapseWhitespace(content)
	if text == "" {
		return nil, domain.E(domain.KindEmptyContent, "extract_html", domain.ErrEmptyContent)
	}

	return &Extracted{Text: text, Title: title}, nil
}
