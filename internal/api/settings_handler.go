package api

import (
	"log/slog"
	"net/http"

	"mathflow/backend/internal/interfaces"
	"mathflow/backend/internal/service"
)

// SettingsHandler handles HTTP requests for runtime settings and models.
type SettingsHandler struct {
	settings interfaces.SettingsService
	models   interfaces.ModelService
}

func NewSettingsHandler(settings interfaces.SettingsService, models interfaces.ModelService) *SettingsHandler {
	return &SettingsHandler{settings: settings, models: models}
}

// HandleGetSettings godoc
// @Summary      Get settings
// @Tags         Settings
// @Produce      json
// @Success      200  {object}  service.Settings
// @Failure      500  {object}  ErrorResponse
// @Router       /api/settings [get]
func (h *SettingsHandler) HandleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.Get(r.Context())
	if err != nil {
		respondWithError(w, err, "")
		return
	}
	respondWithJSON(w, http.StatusOK, settings)
}

// HandleUpdateSettings godoc
// @Summary      Update settings
// @Description  The reasoning model is checked against the provider's model list when the provider is reachable.
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Param        settings  body      service.Settings  true  "New settings"
// @Success      200       {object}  service.Settings
// @Failure      400       {object}  ErrorResponse
// @Failure      500       {object}  ErrorResponse
// @Router       /api/settings [post]
func (h *SettingsHandler) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req service.Settings
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err, "")
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err, "")
		return
	}
	if err := h.settings.Save(r.Context(), &req); err != nil {
		respondWithError(w, err, "")
		return
	}
	slog.Info("Settings updated.", "reasoning_model", req.ReasoningModel, "sample_count", req.SampleCount, "selection_strategy", req.SelectionStrategy)
	respondWithJSON(w, http.StatusOK, req)
}

// HandleListModels godoc
// @Summary      List reasoning models
// @Description  Gets the model IDs served by the reasoning provider.
// @Tags         Models
// @Produce      json
// @Success      200  {object}  ModelsResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/models [get]
func (h *SettingsHandler) HandleListModels(w http.ResponseWriter, r *http.Request) {
	models, err := h.models.List(r.Context())
	if err != nil {
		respondWithError(w, err, "Impossible de récupérer la liste des modèles.")
		return
	}
	respondWithJSON(w, http.StatusOK, ModelsResponse{Models: models})
}
