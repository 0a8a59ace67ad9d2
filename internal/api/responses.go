package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	app_errors "mathflow/backend/internal/errors"
)

// Client-facing messages.
const (
	msgUnreadableImage = "Impossible de lire l'image."
	msgProcessFailed   = "Erreur lors du traitement du problème."
	msgExtractFailed   = "Erreur lors de l'extraction LaTeX."
	msgNotFound        = "Ressource introuvable."
	msgInternal        = "Erreur interne du serveur."
	msgInvalidBody     = "Requête invalide."
)

// ErrorResponse is the JSON body of every error. The frontend reads "detail".
type ErrorResponse struct {
	Detail string `json:"detail" example:"Impossible de lire l'image."`
}

// StatusResponse is a generic success body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// ModelsResponse lists the reasoning provider's model IDs.
type ModelsResponse struct {
	Models []string `json:"models"`
}

// respondWithError maps application errors to HTTP statuses. internalMsg is
// the message sent for anything unclassified; the error itself is only logged.
func respondWithError(w http.ResponseWriter, err error, internalMsg string) {
	var statusCode int
	var message string

	switch {
	case errors.Is(err, app_errors.ErrOCREmpty):
		statusCode = http.StatusBadRequest
		message = msgUnreadableImage
	case errors.Is(err, app_errors.ErrValidation):
		statusCode = http.StatusBadRequest
		message = validationMessage(err)
	case errors.Is(err, app_errors.ErrNotFound):
		statusCode = http.StatusNotFound
		message = msgNotFound
	default:
		statusCode = http.StatusInternalServerError
		message = internalMsg
		if message == "" {
			message = msgInternal
		}
	}

	slog.Warn("Responding with error", "status_code", statusCode, "client_message", message, "internal_error", err)

	respondWithJSON(w, statusCode, ErrorResponse{Detail: message})
}

// validationMessage keeps the French detail of a validation error and drops
// the sentinel text, so the body reads "Requête invalide. <detail>".
func validationMessage(err error) string {
	detail := err.Error()
	sentinel := app_errors.ErrValidation.Error()
	detail = strings.ReplaceAll(detail, ": "+sentinel, "")
	detail = strings.ReplaceAll(detail, sentinel+": ", "")
	detail = strings.TrimSpace(strings.ReplaceAll(detail, sentinel, ""))
	if detail == "" || detail == msgInvalidBody {
		return msgInvalidBody
	}
	return msgInvalidBody + " " + detail
}

// respondWithJSON marshals payload and writes it with the given status code.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal JSON response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}

// decodeJSON decodes the request body, reporting malformed JSON as a
// validation error.
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %s", app_errors.ErrValidation, msgInvalidBody)
	}
	return nil
}
