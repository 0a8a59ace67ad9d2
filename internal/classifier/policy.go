package classifier

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultKeywords is the math-action vocabulary, including function names.
var DefaultKeywords = []string{
	"résoudre", "calculer", "démontrer", "dériver", "intégrer", "factoriser",
	"équation", "exercice", "problème", "math", "maths", "géométrie", "algèbre",
	"limite", "dérivée", "primitive", "intégrale",
	"cos", "sin", "tan", "log", "ln", "exp", "lim", "sum", "int",
}

// DefaultOptOutWords force a conversational classification when the opt-out
// is enabled (requests about output formatting rather than math).
var DefaultOptOutWords = []string{"génère", "genere", "json", "format"}

// Policy configures the classifier vocabulary.
type Policy struct {
	Keywords    []string `yaml:"keywords"`
	OptOut      bool     `yaml:"opt_out"`
	OptOutWords []string `yaml:"opt_out_words"`
}

// DefaultPolicy is the canonical behaviour: default vocabulary, opt-out off.
func DefaultPolicy() Policy {
	return Policy{
		Keywords:    append([]string(nil), DefaultKeywords...),
		OptOut:      false,
		OptOutWords: append([]string(nil), DefaultOptOutWords...),
	}
}

// LoadPolicy reads a YAML policy file. Missing lists keep their defaults and
// unknown fields are rejected.
func LoadPolicy(path string) (Policy, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, fmt.Errorf("read classifier policy failed: %w", err)
	}
	p := DefaultPolicy()
	var file Policy
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return Policy{}, fmt.Errorf("parse classifier policy failed: %w", err)
	}
	if len(file.Keywords) > 0 {
		p.Keywords = file.Keywords
	}
	if len(file.OptOutWords) > 0 {
		p.OptOutWords = file.OptOutWords
	}
	p.OptOut = file.OptOut
	return p, nil
}
