package api

import (
	"net/http"

	"mathflow/backend/internal/interfaces"
	"mathflow/backend/internal/model"
)

// ProblemHandler serves the tutoring endpoints.
type ProblemHandler struct {
	tutor interfaces.TutorService
}

func NewProblemHandler(tutor interfaces.TutorService) *ProblemHandler {
	return &ProblemHandler{tutor: tutor}
}

// HandleRoot godoc
// @Summary      Service status
// @Tags         Status
// @Produce      json
// @Success      200  {object}  model.StatusMessage
// @Router       / [get]
func (h *ProblemHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, model.StatusMessage{Status: "online", Message: "Math Professor Backend API"})
}

// HandleProcessProblem godoc
// @Summary      Solve or answer a problem
// @Description  Runs OCR when an image is sent, then classifies the input and asks the reasoning model for a structured answer.
// @Tags         Tutor
// @Accept       json
// @Produce      json
// @Param        request  body      model.ProblemRequest  true  "Problem"
// @Success      200      {object}  model.StructuredAnswer
// @Failure      400      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /api/process-problem [post]
func (h *ProblemHandler) HandleProcessProblem(w http.ResponseWriter, r *http.Request) {
	var req model.ProblemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err, msgProcessFailed)
		return
	}
	if req.ImageData != nil {
		if err := validateRequest(req.ImageData); err != nil {
			respondWithError(w, err, msgProcessFailed)
			return
		}
	}

	result, err := h.tutor.Process(r.Context(), &req)
	if err != nil {
		respondWithError(w, err, msgProcessFailed)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// HandleExtractLatex godoc
// @Summary      Extract LaTeX from an image
// @Tags         Tutor
// @Accept       json
// @Produce      json
// @Param        image  body      model.ImagePayload  true  "Base64 image"
// @Success      200    {object}  model.LatexResponse
// @Failure      400    {object}  ErrorResponse
// @Failure      500    {object}  ErrorResponse
// @Router       /api/extract-latex [post]
func (h *ProblemHandler) HandleExtractLatex(w http.ResponseWriter, r *http.Request) {
	var image model.ImagePayload
	if err := decodeJSON(r, &image); err != nil {
		respondWithError(w, err, msgExtractFailed)
		return
	}
	if err := validateRequest(&image); err != nil {
		respondWithError(w, err, msgExtractFailed)
		return
	}

	latex, err := h.tutor.ExtractLatex(r.Context(), image)
	if err != nil {
		respondWithError(w, err, msgExtractFailed)
		return
	}
	respondWithJSON(w, http.StatusOK, model.LatexResponse{Latex: latex})
}
