package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	app_errors "mathflow/backend/internal/errors"
	"mathflow/backend/internal/interfaces"
)

type JournalHandler struct {
	journal interfaces.JournalService
}

func NewJournalHandler(journal interfaces.JournalService) *JournalHandler {
	return &JournalHandler{journal: journal}
}

// HandleListJournal godoc
// @Summary      Recent processed problems
// @Tags         Journal
// @Produce      json
// @Param        limit  query     int  false  "Number of entries (default 20, max 100)"
// @Success      200    {array}   model.JournalEntry
// @Failure      400    {object}  ErrorResponse
// @Failure      500    {object}  ErrorResponse
// @Router       /api/journal [get]
func (h *JournalHandler) HandleListJournal(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respondWithError(w, fmt.Errorf("%w: le paramètre limit doit être un entier positif", app_errors.ErrValidation), "")
			return
		}
		limit = n
	}

	entries, err := h.journal.List(r.Context(), limit)
	if err != nil {
		respondWithError(w, err, "")
		return
	}
	respondWithJSON(w, http.StatusOK, entries)
}

// HandleGetJournalEntry godoc
// @Summary      One journal entry
// @Tags         Journal
// @Produce      json
// @Param        entryID  path      string  true  "Entry ID"
// @Success      200      {object}  model.JournalEntry
// @Failure      404      {object}  ErrorResponse
// @Router       /api/journal/{entryID} [get]
func (h *JournalHandler) HandleGetJournalEntry(w http.ResponseWriter, r *http.Request) {
	entry, err := h.journal.Get(r.Context(), chi.URLParam(r, "entryID"))
	if err != nil {
		respondWithError(w, err, "")
		return
	}
	respondWithJSON(w, http.StatusOK, entry)
}
