// Package coerce turns raw table-cell text into typed values. Every
// extractor shares these so parenthesized negatives, trailing percent
// signs and open-ended ranges are handled in exactly one place.
package coerce

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// CoercionError reports cell text that could not be parsed into its
// expected type. It is never recovered from silently.
type CoercionError struct {
	Text string
	Kind string
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("cannot coerce %q to %s", e.Text, e.Kind)
}

const delimiters = " \t%(),\n"

// Int parses a signed integer out of cell text, tolerating the
// decorations the report uses: "87%", "(-5)", "1,234".
func Int(text string) (int, error) {
	cleaned := strings.Trim(text, delimiters)
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return 0, &CoercionError{Text: text, Kind: "int"}
	}
	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, &CoercionError{Text: text, Kind: "int"}
	}
	return n, nil
}

// Range applies pattern to text and reads its first capture group as the
// lower bound and its second, when present and non-empty, as the upper
// bound. A missing upper bound closes the range to (min, min); the report
// omits it when both ends coincide.
func Range(text string, pattern *regexp.Regexp) (int, int, error) {
	groups := pattern.FindStringSubmatch(text)
	if len(groups) < 2 {
		return 0, 0, &CoercionError{Text: text, Kind: "range"}
	}
	min, err := Int(groups[1])
	if err != nil {
		return 0, 0, &CoercionError{Text: text, Kind: "range"}
	}
	if len(groups) < 3 || groups[2] == "" {
		return min, min, nil
	}
	max, err := Int(groups[2])
	if err != nil {
		return 0, 0, &CoercionError{Text: text, Kind: "range"}
	}
	return min, max, nil
}

var durationPattern = regexp.MustCompile(`^(?:(\d+):)?(\d{1,2})\.(\d{1,3})$`)

// Duration parses a lap or session time of the form "M:SS.sss". Times
// under a minute may omit the minute part.
func Duration(text string) (time.Duration, error) {
	groups := durationPattern.FindStringSubmatch(strings.TrimSpace(text))
	if groups == nil {
		return 0, &CoercionError{Text: text, Kind: "duration"}
	}

	var minutes int
	if groups[1] != "" {
		minutes, _ = strconv.Atoi(groups[1])
	}
	seconds, _ := strconv.Atoi(groups[2])

	// pad to milliseconds: "4" means 400ms, "04" means 40ms
	frac := groups[3] + strings.Repeat("0", 3-len(groups[3]))
	millis, _ := strconv.Atoi(frac)

	return time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(millis)*time.Millisecond, nil
}
