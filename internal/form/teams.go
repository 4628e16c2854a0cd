package form

import (
	"strings"
)

// teamSeparator joins selected team labels in the stored answer.
const teamSeparator = ", "

const maxLeadingInt = 1 << 20

// ParseTeams converts a comma separated list of 1-based team numbers into the
// stored answer value. Pieces that do not start with an integer, or whose
// number falls outside [1, len(options)], are dropped. Order and duplicates
// are preserved. ErrInvalidSelection is returned when nothing survives.
func ParseTeams(raw string, options []string) (string, error) {
	var selected []string
	for _, piece := range strings.Split(raw, ",") {
		n, ok := leadingInt(strings.TrimSpace(piece))
		if !ok || n < 1 || n > len(options) {
			continue
		}
		selected = append(selected, options[n-1])
	}

	if len(selected) == 0 {
		return "", ErrInvalidSelection
	}
	return strings.Join(selected, teamSeparator), nil
}

// leadingInt parses an optionally signed run of leading digits, so "3rd"
// yields 3 and "x3" yields nothing.
func leadingInt(s string) (int, bool) {
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}

	n, digits := 0, 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		// Saturate; anything this large is out of range anyway.
		if n < maxLeadingInt {
			n = n*10 + int(r-'0')
		}
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}
