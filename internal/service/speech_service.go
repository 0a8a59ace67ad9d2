package service

import (
	"context"
	"encoding/base64"
	"errors"
	"log/slog"
	"strings"

	apperrors "mathflow/backend/internal/errors"
	"mathflow/backend/internal/llm"
	"mathflow/backend/internal/model"
)

// Soft errors reported in SpeechResponse.Error.
const (
	SpeechQuotaMessage = "Quota exceeded, use browser fallback"
	SpeechErrorMessage = "TTS service error"
)

type SpeechService struct {
	tts  llm.Synthesizer
	lang string
}

func NewSpeechService(tts llm.Synthesizer, lang string) *SpeechService {
	if lang == "" {
		lang = "fr"
	}
	return &SpeechService{tts: tts, lang: lang}
}

// Generate never fails: provider problems come back as a soft error with a
// null audio field.
func (s *SpeechService) Generate(ctx context.Context, text string) *model.SpeechResponse {
	if strings.TrimSpace(text) == "" {
		return speechError(SpeechErrorMessage)
	}

	audio, err := s.tts.Synthesize(ctx, text, s.lang)
	if err != nil {
		slog.Warn("Speech synthesis failed", "error", err)
		if errors.Is(err, apperrors.ErrQuotaExceeded) {
			return speechError(SpeechQuotaMessage)
		}
		return speechError(SpeechErrorMessage)
	}
	if len(audio) == 0 {
		return speechError(SpeechQuotaMessage)
	}

	encoded := base64.StdEncoding.EncodeToString(audio)
	return &model.SpeechResponse{Audio: &encoded}
}

func speechError(msg string) *model.SpeechResponse {
	return &model.SpeechResponse{Error: &msg}
}
