package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// CleanCell normalizes the text content of a table cell: surrounding
// whitespace trimmed, inner runs of whitespace (the report is fond of
// newlines inside cells) collapsed to a single space.
func CleanCell(text string) string {
	text = strings.Trim(text, " \n\t")
	return whitespaceRegex.ReplaceAllString(text, " ")
}
