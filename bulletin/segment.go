package bulletin

import (
	"regexp"
	"sort"
	"strings"
)

var (
	openerRe        = regexp.MustCompile(`(?i)On\s+(?:Sunday|Monday|Tuesday|Wednesday|Thursday|Friday|Saturday)|This\s+weekend`)
	stationOpenerRe = regexp.MustCompile(`(?i)^[A-Za-z\s-]+:\s+(?:Elevator|Escalator)`)
)

// Segment splits a bulletin into trimmed, non-empty notices. A notice starts
// at every weekday or weekend opener, anywhere in the text, and at every line
// that opens with "<Name>: Elevator" or "<Name>: Escalator". The openers stay
// at the head of the notice they start.
func Segment(text string) []string {
	cuts := boundaries(text)
	notices := make([]string, 0, len(cuts)+1)
	prev := 0
	for _, c := range append(cuts, len(text)) {
		if n := strings.TrimSpace(text[prev:c]); n != "" {
			notices = append(notices, n)
		}
		prev = c
	}
	return notices
}

// boundaries returns the sorted, distinct offsets where a new notice begins.
func boundaries(text string) []int {
	var cuts []int
	for _, loc := range openerRe.FindAllStringIndex(text, -1) {
		cuts = append(cuts, loc[0])
	}
	for i := 0; i < len(text); {
		if stationOpenerRe.MatchString(text[i:]) {
			cuts = append(cuts, i)
		}
		nl := strings.IndexByte(text[i:], '\n')
		if nl < 0 {
			break
		}
		i += nl + 1
	}
	sort.Ints(cuts)

	out := make([]int, 0, len(cuts))
	last := 0
	for _, c := range cuts {
		if c == last {
			continue
		}
		out = append(out, c)
		last = c
	}
	return out
}
