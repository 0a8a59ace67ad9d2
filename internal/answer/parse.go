// Package answer turns raw reasoning-provider text into a model.StructuredAnswer
// and picks one answer out of several samples.
package answer

import (
	"strings"

	"github.com/tidwall/gjson"

	"mathflow/backend/internal/model"
)

// Apology is returned as the explanation when no sample produced anything.
const Apology = "Je n'ai pas pu générer de réponse. Pouvez-vous reformuler votre question ?"

// ApologyAnswer is the fixed answer used when every sample failed.
func ApologyAnswer() model.StructuredAnswer {
	a := model.EmptyAnswer()
	a.Explanation = Apology
	return a
}

// Fallback wraps unparseable provider text as the explanation.
func Fallback(raw string) model.StructuredAnswer {
	a := model.EmptyAnswer()
	a.Explanation = raw
	return a
}

// Parse locates a JSON object in raw. The whole text is tried first, then the
// first balanced brace-delimited object, then the span from the first '{' to
// the last '}'.
func Parse(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}
	if isObject(trimmed) {
		return trimmed, true
	}
	for start := strings.IndexByte(trimmed, '{'); start != -1; {
		if obj, ok := balancedObject(trimmed[start:]); ok && isObject(obj) {
			return obj, true
		}
		next := strings.IndexByte(trimmed[start+1:], '{')
		if next == -1 {
			break
		}
		start += next + 1
	}
	first, last := strings.IndexByte(trimmed, '{'), strings.LastIndexByte(trimmed, '}')
	if first != -1 && last > first {
		if obj := trimmed[first : last+1]; isObject(obj) {
			return obj, true
		}
	}
	return "", false
}

// FromRaw parses and normalizes raw, falling back to Fallback(raw) when no
// object can be found. The bool reports whether parsing succeeded.
func FromRaw(raw string) (model.StructuredAnswer, bool) {
	obj, ok := Parse(raw)
	if !ok {
		return Fallback(raw), false
	}
	return Normalize(obj), true
}

func isObject(s string) bool {
	return gjson.Valid(s) && gjson.Parse(s).IsObject()
}

// balancedObject returns the prefix of s (which starts with '{') up to its
// matching '}', skipping braces inside string literals.
func balancedObject(s string) (string, bool) {
	depth := 0
	inString := false
	escape := false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if inString {
			if escape {
				escape = false
				continue
			}
			if ch == '\\' {
				escape = true
				continue
			}
			if ch == '"' {
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[:i+1], true
			}
		}
	}
	return "", false
}
