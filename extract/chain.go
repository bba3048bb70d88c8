package extract

import "regexp"

// Rule is one named pattern in an ordered fallback chain.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
}

// Match is the outcome of a chain evaluation.
type Match struct {
	Rule   string
	Groups []string
}

// Group returns submatch i trimmed, or "" when it did not participate.
func (m Match) Group(i int) string {
	if i < 0 || i >= len(m.Groups) {
		return ""
	}
	return trimSpace(m.Groups[i])
}

// Chain is an ordered list of rules. Rules are tried lazily in order and the
// first one that matches wins.
type Chain []Rule

// NewChain compiles the given name/pattern pairs in order. It panics on an
// invalid pattern, like regexp.MustCompile.
func NewChain(pairs ...string) Chain {
	if len(pairs)%2 != 0 {
		panic("extract: NewChain needs name/pattern pairs")
	}
	c := make(Chain, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		c = append(c, Rule{Name: pairs[i], Pattern: regexp.MustCompile(pairs[i+1])})
	}
	return c
}

// FirstMatch returns the match of the first rule that matches text.
func (c Chain) FirstMatch(text string) (Match, bool) {
	for _, r := range c {
		if g := r.Pattern.FindStringSubmatch(text); g != nil {
			return Match{Rule: r.Name, Groups: g}, true
		}
	}
	return Match{}, false
}

// Names lists rule names in priority order.
func (c Chain) Names() []string {
	names := make([]string, len(c))
	for i, r := range c {
		names[i] = r.Name
	}
	return names
}
