// Package parsing provides functionality to segment raw resume text into labeled sections.
package parsing

import (
	"regexp"
	"strings"
)

var (
	spaceRunRe   = regexp.MustCompile(`[ \t]+`)
	newlineRunRe = regexp.MustCompile(`\n{3,}`)
)

// Preprocess normalizes raw resume text: CRLF/CR to LF, runs of spaces and
// tabs collapsed to a single space, runs of three or more newlines
// collapsed to a blank line, surrounding whitespace trimmed.
func Preprocess(text string) string {
	cleaned := strings.ReplaceAll(text, "\r\n", "\n")
	cleaned = strings.ReplaceAll(cleaned, "\r", "\n")
	cleaned = spaceRunRe.ReplaceAllString(cleaned, " ")
	cleaned = newlineRunRe.ReplaceAllString(cleaned, "\n\n")
	return strings.TrimSpace(cleaned)
}
