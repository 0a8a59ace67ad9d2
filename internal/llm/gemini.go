package llm

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	apperrors "mathflow/backend/internal/errors"
	"mathflow/backend/internal/model"
)

// GeminiClient is the alternative vision and reasoning collaborator. It
// serves as Reasoner, Recognizer and ModelLister.
type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*GeminiClient, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY is empty")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client, model: strings.TrimSpace(modelName)}, nil
}

func (g *GeminiClient) Close() error {
	return g.client.Close()
}

func (g *GeminiClient) ExtractLatex(ctx context.Context, image model.ImagePayload) (string, error) {
	blob, err := imageBlob(image)
	if err != nil {
		return "", err
	}
	m := g.client.GenerativeModel(g.model)
	m.SetTemperature(0)

	resp, err := m.GenerateContent(ctx, genai.Text(OCRInstruction), blob)
	if err != nil {
		return "", geminiError("gemini vision", err)
	}
	return strings.TrimSpace(responseText(resp)), nil
}

func (g *GeminiClient) Complete(ctx context.Context, req *CompletionRequest) (string, error) {
	system, history, last := splitConversation(req.Messages)
	if last == "" {
		return "", fmt.Errorf("gemini chat: no user message: %w", apperrors.ErrValidation)
	}

	modelName := g.model
	if req.Model != "" && strings.HasPrefix(req.Model, "gemini") {
		modelName = req.Model
	}
	m := g.client.GenerativeModel(modelName)
	if req.Temperature > 0 {
		m.SetTemperature(req.Temperature)
	}
	if req.TopP > 0 {
		m.SetTopP(req.TopP)
	}
	if req.MaxTokens > 0 {
		m.SetMaxOutputTokens(int32(req.MaxTokens))
	}
	if system != "" {
		m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}

	chat := m.StartChat()
	chat.History = history
	resp, err := chat.SendMessage(ctx, genai.Text(last))
	if err != nil {
		return "", geminiError("gemini chat", err)
	}
	text := responseText(resp)
	if text == "" {
		return "", fmt.Errorf("gemini chat: no text content: %w", apperrors.ErrProviderTransport)
	}
	return text, nil
}

// ListModels returns the model IDs without the "models/" resource prefix.
func (g *GeminiClient) ListModels(ctx context.Context) ([]string, error) {
	it := g.client.ListModels(ctx)
	var out []string
	for {
		info, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, geminiError("gemini list models", err)
		}
		out = append(out, strings.TrimPrefix(info.Name, "models/"))
	}
	return out, nil
}

func imageBlob(image model.ImagePayload) (*genai.Blob, error) {
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(image.Data))
	if err != nil {
		return nil, fmt.Errorf("gemini vision: bad base64: %w: %w", apperrors.ErrProviderTransport, err)
	}
	return &genai.Blob{MIMEType: image.MimeType, Data: data}, nil
}

// splitConversation joins system turns into one instruction, maps the rest to
// Gemini roles and pulls out the final user message to send.
func splitConversation(msgs []Message) (string, []*genai.Content, string) {
	var system []string
	var history []*genai.Content
	for _, msg := range msgs {
		switch msg.Role {
		case model.RoleSystem:
			system = append(system, msg.Content)
		case model.RoleAssistant:
			history = append(history, &genai.Content{Role: "model", Parts: []genai.Part{genai.Text(msg.Content)}})
		default:
			history = append(history, &genai.Content{Role: "user", Parts: []genai.Part{genai.Text(msg.Content)}})
		}
	}

	last := ""
	if n := len(history); n > 0 && history[n-1].Role == "user" {
		if t, ok := history[n-1].Parts[0].(genai.Text); ok {
			last = string(t)
		}
		history = history[:n-1]
	}
	return strings.Join(system, "\n\n"), history, last
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	return sb.String()
}

func geminiError(op string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code == http.StatusTooManyRequests {
		return fmt.Errorf("%s: %w: %w: %w", op, apperrors.ErrProviderTransport, apperrors.ErrQuotaExceeded, err)
	}
	return fmt.Errorf("%s: %w: %w", op, apperrors.ErrProviderTransport, err)
}
