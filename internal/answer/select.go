package answer

import (
	"strings"

	"mathflow/backend/internal/model"
)

// Selection strategies.
const (
	StrategyFirst = "first"
	StrategyVote  = "vote"
)

// Select returns the index of the chosen candidate. Candidates are in call
// order. "first" takes index 0. "vote" takes the candidate whose latex and
// solution occur most often, ties going to the lowest index; candidates with
// neither latex nor solution only win when nothing else is available.
func Select(strategy string, candidates []model.StructuredAnswer) (int, bool) {
	if len(candidates) == 0 {
		return -1, false
	}
	if strategy != StrategyVote {
		return 0, true
	}

	counts := make(map[string]int, len(candidates))
	firstSeen := make(map[string]int, len(candidates))
	for i, c := range candidates {
		fp := fingerprint(c)
		if fp == "" {
			continue
		}
		if _, ok := firstSeen[fp]; !ok {
			firstSeen[fp] = i
		}
		counts[fp]++
	}

	best, bestCount := 0, 0
	for fp, n := range counts {
		idx := firstSeen[fp]
		if n > bestCount || (n == bestCount && idx < best) {
			best, bestCount = idx, n
		}
	}
	return best, true
}

func fingerprint(a model.StructuredAnswer) string {
	latex := strings.Join(strings.Fields(a.Latex), "")
	steps := make([]string, 0, len(a.Solution))
	for _, s := range a.Solution {
		if s = strings.Join(strings.Fields(s), " "); s != "" {
			steps = append(steps, s)
		}
	}
	if latex == "" && len(steps) == 0 {
		return ""
	}
	return latex + "\x00" + strings.Join(steps, "\x1f")
}
