package answer

import (
	"log/slog"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/tidwall/gjson"

	"mathflow/backend/internal/model"
)

const exerciseSchema = `{
  "type": "object",
  "required": ["difficulty", "problem"],
  "properties": {
    "difficulty": {"enum": ["facile", "moyen", "difficile"]},
    "problem": {"type": "string"},
    "options": {"type": ["array", "null"]},
    "correctAnswer": {"type": ["string", "number", "boolean", "null"]}
  }
}`

var exerciseValidator = jsonschema.MustCompileString("exercise.json", exerciseSchema)

// Normalize maps a JSON object onto a StructuredAnswer. It never fails:
// absent or wrong-typed fields take their empty defaults, scalar solution
// steps are coerced to strings, and exercises that do not match the
// exercise schema are dropped.
func Normalize(obj string) model.StructuredAnswer {
	out := model.EmptyAnswer()
	if !gjson.Valid(obj) {
		return out
	}
	root := gjson.Parse(obj)
	if !root.IsObject() {
		return out
	}

	out.Latex = stringField(root.Get("latex"))
	out.Explanation = stringField(root.Get("explanation"))
	out.FollowUp = stringField(root.Get("followUp"))
	out.Solution = stringList(root.Get("solution"))

	exercises := root.Get("exercises")
	if exercises.IsArray() {
		for i, item := range exercises.Array() {
			ex, err := exercise(item)
			if err != nil {
				slog.Warn("Dropping malformed exercise", "index", i, "error", err)
				continue
			}
			out.Exercises = append(out.Exercises, ex)
		}
	}
	return out
}

func exercise(item gjson.Result) (model.Exercise, error) {
	value := item.Value()
	if m, ok := value.(map[string]interface{}); ok {
		if d, ok := m["difficulty"].(string); ok {
			m["difficulty"] = strings.ToLower(strings.TrimSpace(d))
		}
	}
	if err := exerciseValidator.Validate(value); err != nil {
		return model.Exercise{}, err
	}
	return model.Exercise{
		Difficulty:    strings.ToLower(strings.TrimSpace(item.Get("difficulty").Str)),
		Problem:       item.Get("problem").Str,
		Options:       stringList(item.Get("options")),
		CorrectAnswer: scalar(item.Get("correctAnswer")),
	}, nil
}

func stringField(r gjson.Result) string {
	if r.Type == gjson.String {
		return r.Str
	}
	return ""
}

// stringList accepts an array of scalars or a lone string.
func stringList(r gjson.Result) []string {
	out := []string{}
	if r.Type == gjson.String {
		return append(out, r.Str)
	}
	if !r.IsArray() {
		return out
	}
	for _, item := range r.Array() {
		if item.Type == gjson.Null || item.IsObject() || item.IsArray() {
			continue
		}
		out = append(out, scalar(item))
	}
	return out
}

func scalar(r gjson.Result) string {
	switch r.Type {
	case gjson.String:
		return r.Str
	case gjson.Number, gjson.True, gjson.False:
		return r.Raw
	default:
		return ""
	}
}
