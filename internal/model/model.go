package model

import "time"

// Roles accepted in a conversation history. Anything that is not RoleAssistant
// is treated as RoleUser when the prompt is assembled.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Exercise difficulties, in increasing order.
const (
	DifficultyEasy   = "facile"
	DifficultyMedium = "moyen"
	DifficultyHard   = "difficile"
)

// ConversationTurn is one message of the chat history sent by the frontend.
type ConversationTurn struct {
	Role    string `json:"role" example:"user"`
	Content string `json:"content" example:"Bonjour"`
}

// ImagePayload is an inline image: base64 data without the data-URI prefix.
type ImagePayload struct {
	Data     string `json:"data" validate:"required"`
	MimeType string `json:"mimeType" validate:"required" example:"image/png"`
}

// DataURL renders the payload as a data URI for providers that expect one.
func (p ImagePayload) DataURL() string {
	return "data:" + p.MimeType + ";base64," + p.Data
}

// Exercise is a practice problem proposed after a solution.
type Exercise struct {
	Difficulty    string   `json:"difficulty" example:"facile"`
	Problem       string   `json:"problem"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// StructuredAnswer is the five-field contract returned to the frontend.
// Every field is always present; slices are never nil once normalized.
type StructuredAnswer struct {
	Latex       string     `json:"latex"`
	Solution    []string   `json:"solution"`
	Explanation string     `json:"explanation"`
	Exercises   []Exercise `json:"exercises"`
	FollowUp    string     `json:"followUp"`
}

// EmptyAnswer returns a StructuredAnswer whose fields all hold their defaults.
func EmptyAnswer() StructuredAnswer {
	return StructuredAnswer{
		Solution:  []string{},
		Exercises: []Exercise{},
	}
}

// ProblemRequest is the body of POST /api/process-problem.
type ProblemRequest struct {
	Input     string             `json:"input" example:"Résoudre x^2 - 4 = 0"`
	IsImage   bool               `json:"isImage"`
	History   []ConversationTurn `json:"history"`
	ImageData *ImagePayload      `json:"imageData,omitempty"`
}

// SpeechRequest is the body of POST /api/generate-speech.
type SpeechRequest struct {
	Text string `json:"text" example:"Bonjour, je suis ton professeur."`
}

// SpeechResponse carries either base64 audio or a soft error. Both fields are
// serialized as null when absent.
type SpeechResponse struct {
	Audio *string `json:"audio"`
	Error *string `json:"error"`
}

// LatexResponse is the body returned by POST /api/extract-latex.
type LatexResponse struct {
	Latex string `json:"latex"`
}

// StatusMessage is returned by the root endpoint.
type StatusMessage struct {
	Status  string `json:"status" example:"online"`
	Message string `json:"message"`
}

// Journal sources and modes.
const (
	SourceText  = "text"
	SourceImage = "image"

	ModeMath         = "math"
	ModeConversation = "conversation"
)

// JournalEntry records how one problem was processed.
type JournalEntry struct {
	ID               string    `json:"id"`
	CreatedAt        time.Time `json:"created_at"`
	Source           string    `json:"source"`
	Problem          string    `json:"problem"`
	Mode             string    `json:"mode"`
	MatchedRule      string    `json:"matched_rule,omitempty"`
	SamplesRequested int       `json:"samples_requested"`
	SamplesSucceeded int       `json:"samples_succeeded"`
	Fallback         bool      `json:"fallback"`
	DurationMs       int64     `json:"duration_ms"`
}
