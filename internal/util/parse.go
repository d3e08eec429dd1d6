package util

import (
	"regexp"
	"strconv"
)

var leadingNumberRegex = regexp.MustCompile(`^\s*(\d+)`)

// ParseCount extracts the leading integer from room counts such as "3 Bed"
// or "2". The second return value is false when the text has no leading digits.
func ParseCount(s string) (int, bool) {
	m := leadingNumberRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
