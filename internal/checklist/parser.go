// Package checklist parses free-text model output into eligibility items.
//
// The model is instructed to return a numbered or bulleted list, but it
// sometimes wraps the list in prose. Rather than trusting the instruction,
// the parser keeps only lines that look like list items and silently drops
// everything else. An empty result is a valid outcome, not an error.
package checklist

import (
	"regexp"
	"strings"
)

// Line prefixes recognized as list items.
var (
	numberedPrefix = regexp.MustCompile(`^\d+\.\s*`)
	bulletPrefix   = regexp.MustCompile(`^[-*\x{2022}]\s*`)
)

// Parser turns raw multi-line model output into an ordered item list.
type Parser struct{}

// New creates a Parser.
func New() *Parser {
	return &Parser{}
}

// Parse splits raw text on line breaks, keeps lines carrying a numbered
// ("1.") or bulleted ("-", "*", "•") prefix, strips the prefix and trims.
// Order is preserved from the source. Lines without a list prefix are
// discarded; they are almost always prose the model emitted despite
// instructions.
func (p *Parser) Parse(raw string) []string {
	items := make([]string, 0)

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var stripped string
		switch {
		case numberedPrefix.MatchString(line):
			stripped = numberedPrefix.ReplaceAllString(line, "")
		case bulletPrefix.MatchString(line):
			stripped = bulletPrefix.ReplaceAllString(line, "")
		default:
			continue
		}

		stripped = strings.TrimSpace(stripped)
		if stripped != "" {
			items = append(items, stripped)
		}
	}

	return items
}
