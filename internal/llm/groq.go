package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	apperrors "mathflow/backend/internal/errors"
	"mathflow/backend/internal/model"
)

// GroqClient talks to Groq's OpenAI-compatible API. It serves as Reasoner,
// Recognizer and ModelLister. One client is built at startup and shared.
type GroqClient struct {
	client      *openai.Client
	model       string
	visionModel string
}

// NewGroqClient builds a client for baseURL (e.g. https://api.groq.com/openai/v1).
func NewGroqClient(apiKey, baseURL, reasoningModel, visionModel string) *GroqClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	return &GroqClient{
		client:      openai.NewClientWithConfig(cfg),
		model:       reasoningModel,
		visionModel: visionModel,
	}
}

// Complete returns the text of the first choice. req.Model overrides the
// client's default reasoning model when set.
func (g *GroqClient) Complete(ctx context.Context, req *CompletionRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessage, len(req.Messages))
	for i, msg := range req.Messages {
		messages[i] = openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}

	modelName := req.Model
	if modelName == "" {
		modelName = g.model
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       modelName,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		TopP:        req.TopP,
	})
	if err != nil {
		return "", classify("chat completion", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices: %w", apperrors.ErrProviderTransport)
	}
	return resp.Choices[0].Message.Content, nil
}

// ExtractLatex sends the image as a data URL next to OCRInstruction and
// returns the trimmed reply.
func (g *GroqClient) ExtractLatex(ctx context.Context, image model.ImagePayload) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.visionModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: OCRInstruction},
					{Type: openai.ChatMessagePartTypeImageURL, ImageURL: &openai.ChatMessageImageURL{URL: image.DataURL()}},
				},
			},
		},
	})
	if err != nil {
		return "", classify("vision completion", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// ListModels returns the IDs of the models served by the endpoint.
func (g *GroqClient) ListModels(ctx context.Context) ([]string, error) {
	list, err := g.client.ListModels(ctx)
	if err != nil {
		return nil, classify("list models", err)
	}
	ids := make([]string, 0, len(list.Models))
	for _, m := range list.Models {
		ids = append(ids, m.ID)
	}
	return ids, nil
}

// classify wraps a go-openai error in the transport sentinel, adding the quota
// sentinel on HTTP 429.
func classify(op string, err error) error {
	status := 0
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	}
	if status == http.StatusTooManyRequests {
		return fmt.Errorf("%s: %w: %w: %w", op, apperrors.ErrProviderTransport, apperrors.ErrQuotaExceeded, err)
	}
	return fmt.Errorf("%s: %w: %w", op, apperrors.ErrProviderTransport, err)
}
