// Package classifier decides whether a piece of user input is a mathematical
// request or ordinary conversation.
//
// The decision is an ordered list of named predicates evaluated over the
// lowercased input; the first predicate that matches wins. Each predicate is
// exported through Rules so it can be unit tested on its own.
package classifier

import (
	"regexp"
	"strings"
)

// Rule names, in evaluation order.
const (
	RuleOperands    = "operands"
	RuleVariable    = "variable-operator"
	RuleKeyword     = "keyword"
	RuleCoefficient = "coefficient"
	RulePower       = "power"
	RuleSymbol      = "math-symbol"
	RuleLatex       = "latex-marker"
)

// Rule is a single named check over lowercased text.
type Rule struct {
	Name  string
	Match func(lower string) bool
}

// Classifier is immutable after construction and safe for concurrent use.
type Classifier struct {
	rules  []Rule
	optOut func(string) bool
}

var (
	operandsRe    = regexp.MustCompile(`[0-9]+\s*[+\-*/^=]\s*[+\-]?[0-9a-z(]`)
	variableRe    = regexp.MustCompile(`(?:^|[^\p{L}\p{N}_])[xy]\s*[+\-*/^=]`)
	coefficientRe = regexp.MustCompile(`[0-9][xy]+(?:[^\p{L}]|$)`)
	powerRe       = regexp.MustCompile(`\^[0-9]`)
	symbolRe      = regexp.MustCompile(`[√∫∑π∞≠≤≥]`)
	latexRe       = regexp.MustCompile(`\\\(|\\\[|\$|\\frac|\\lim|\\int|\\sum`)
)

// New builds a classifier from a policy. An empty keyword list falls back to
// the default vocabulary.
func New(p Policy) *Classifier {
	keywords := p.Keywords
	if len(keywords) == 0 {
		keywords = DefaultKeywords
	}
	kw := wordSetMatcher(keywords)

	c := &Classifier{
		rules: []Rule{
			{Name: RuleOperands, Match: operandsRe.MatchString},
			{Name: RuleVariable, Match: variableRe.MatchString},
			{Name: RuleKeyword, Match: kw},
			{Name: RuleCoefficient, Match: coefficientRe.MatchString},
			{Name: RulePower, Match: powerRe.MatchString},
			{Name: RuleSymbol, Match: symbolRe.MatchString},
			{Name: RuleLatex, Match: latexRe.MatchString},
		},
	}
	if p.OptOut && len(p.OptOutWords) > 0 {
		c.optOut = wordSetMatcher(p.OptOutWords)
	}
	return c
}

// Rules returns the predicates in evaluation order.
func (c *Classifier) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}

// IsMath reports whether text is judged a mathematical request.
func (c *Classifier) IsMath(text string) bool {
	_, ok := c.Match(text)
	return ok
}

// Match returns the name of the first matching rule. When the opt-out is
// enabled and one of its words is present, no rule is evaluated.
func (c *Classifier) Match(text string) (string, bool) {
	lower := strings.ToLower(text)
	if c.optOut != nil && c.optOut(lower) {
		return "", false
	}
	for _, r := range c.rules {
		if r.Match(lower) {
			return r.Name, true
		}
	}
	return "", false
}

// wordSetMatcher matches any of words as a whole word. RE2's \b only knows
// ASCII, so accented words like "problème" need explicit letter boundaries.
func wordSetMatcher(words []string) func(string) bool {
	quoted := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(w))
	}
	if len(quoted) == 0 {
		return func(string) bool { return false }
	}
	re := regexp.MustCompile(`(?:^|[^\p{L}\p{N}_])(?:` + strings.Join(quoted, "|") + `)(?:[^\p{L}\p{N}_]|$)`)
	return re.MatchString
}
