// Package textutil provides text cleanup shared by the extraction pipeline.
package textutil

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	spaceRuns   = regexp.MustCompile(`[ \t]+`)
	newlineRuns = regexp.MustCompile(`\n{2,}`)
	blankAround = regexp.MustCompile(`[ \t]*\n[ \t]*`)
)

// CollapseWhitespace collapses runs of spaces to one space, runs of
// newlines to one newline, and trims the result.
func CollapseWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = spaceRuns.ReplaceAllString(s, " ")
	s = blankAround.ReplaceAllString(s, "\n")
	s = newlineRuns.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}

// IsBlank reports whether the string is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Truncate shortens s to at most maxLen bytes, appending an ellipsis
// marker when anything was cut. The cut backs up to a rune boundary so
// the result stays valid UTF-8. Used for log previews.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
