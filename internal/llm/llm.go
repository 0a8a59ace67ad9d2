package llm

import (
	"context"

	"mathflow/backend/internal/model"
)

// Message is one role-tagged turn sent to a reasoning provider.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest carries the prompt and sampling parameters. Zero values
// leave the provider default in place.
type CompletionRequest struct {
	Model       string
	Messages    []Message
	Temperature float32
	MaxTokens   int
	TopP        float32
}

// Reasoner turns a chat-style prompt into free text.
type Reasoner interface {
	Complete(ctx context.Context, req *CompletionRequest) (string, error)
}

// Recognizer extracts LaTeX from an inline image.
type Recognizer interface {
	ExtractLatex(ctx context.Context, image model.ImagePayload) (string, error)
}

// Synthesizer turns text into audio bytes for a language code.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, lang string) ([]byte, error)
}

// ModelLister reports the model IDs a provider serves.
type ModelLister interface {
	ListModels(ctx context.Context) ([]string, error)
}

// OCRInstruction is the fixed extraction instruction sent with every image.
const OCRInstruction = "Agis comme un expert OCR mathématique. Extrais l'équation ou le problème de cette image et convertis-le en LaTeX pur. Ne renvoie QUE le code LaTeX sans texte autour."
