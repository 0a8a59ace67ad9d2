package api

import (
	"log/slog"
	"net/http"

	"mathflow/backend/internal/interfaces"
	"mathflow/backend/internal/model"
	"mathflow/backend/internal/service"
)

type SpeechHandler struct {
	speech interfaces.SpeechService
}

func NewSpeechHandler(speech interfaces.SpeechService) *SpeechHandler {
	return &SpeechHandler{speech: speech}
}

// HandleGenerateSpeech godoc
// @Summary      Synthesize French speech
// @Description  Always answers 200. On failure audio is null and error explains why, so the client can fall back to browser speech.
// @Tags         Speech
// @Accept       json
// @Produce      json
// @Param        request  body      model.SpeechRequest  true  "Text to read"
// @Success      200      {object}  model.SpeechResponse
// @Router       /api/generate-speech [post]
func (h *SpeechHandler) HandleGenerateSpeech(w http.ResponseWriter, r *http.Request) {
	var req model.SpeechRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Warn("Invalid speech request", "error", err)
		msg := service.SpeechErrorMessage
		respondWithJSON(w, http.StatusOK, model.SpeechResponse{Error: &msg})
		return
	}
	respondWithJSON(w, http.StatusOK, h.speech.Generate(r.Context(), req.Text))
}
