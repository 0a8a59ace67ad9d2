// Black-box tests: only the exported API of the package is used.
package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mathflow/backend/internal/api"
	app_errors "mathflow/backend/internal/errors"
	"mathflow/backend/internal/interfaces/mocks"
	"mathflow/backend/internal/model"
)

// addChiURLParams injects route parameters the way chi does when routing.
func addChiURLParams(req *http.Request, params map[string]string) *http.Request {
	chiCtx := chi.NewRouteContext()
	for key, value := range params {
		chiCtx.URLParams.Add(key, value)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, chiCtx))
}

func decodeDetail(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body api.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Detail
}

func TestProblemHandler_Root(t *testing.T) {
	handler := api.NewProblemHandler(mocks.NewMockTutorService(t))

	rr := httptest.NewRecorder()
	handler.HandleRoot(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"online","message":"Math Professor Backend API"}`, rr.Body.String())
}

func TestProblemHandler_ProcessProblem(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// ARRANGE
		tutor := mocks.NewMockTutorService(t)
		handler := api.NewProblemHandler(tutor)
		result := model.EmptyAnswer()
		result.Latex = "x^2-4=0"
		result.Solution = []string{"x=2", "x=-2"}
		tutor.On("Process", mock.Anything, mock.MatchedBy(func(req *model.ProblemRequest) bool {
			return req.Input == "x^2 - 4 = 0" && len(req.History) == 1 && req.History[0].Role == "assistant"
		})).Return(&result, nil).Once()

		// ACT
		body := `{"input":"x^2 - 4 = 0","isImage":false,"history":[{"role":"assistant","content":"Bonjour"}]}`
		rr := httptest.NewRecorder()
		handler.HandleProcessProblem(rr, httptest.NewRequest(http.MethodPost, "/api/process-problem", strings.NewReader(body)))

		// ASSERT
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"latex":"x^2-4=0","solution":["x=2","x=-2"],"explanation":"","exercises":[],"followUp":""}`, rr.Body.String())
	})

	t.Run("Unreadable image", func(t *testing.T) {
		tutor := mocks.NewMockTutorService(t)
		handler := api.NewProblemHandler(tutor)
		tutor.On("Process", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("ocr: %w", app_errors.ErrOCREmpty)).Once()

		body := `{"input":"","isImage":true,"imageData":{"data":"aGVsbG8=","mimeType":"image/png"}}`
		rr := httptest.NewRecorder()
		handler.HandleProcessProblem(rr, httptest.NewRequest(http.MethodPost, "/api/process-problem", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Impossible de lire l'image.", decodeDetail(t, rr))
	})

	t.Run("Provider failure is hidden", func(t *testing.T) {
		tutor := mocks.NewMockTutorService(t)
		handler := api.NewProblemHandler(tutor)
		tutor.On("Process", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("chat completion: %w: %w", app_errors.ErrProviderTransport, errors.New("dial tcp: refused"))).Once()

		rr := httptest.NewRecorder()
		handler.HandleProcessProblem(rr, httptest.NewRequest(http.MethodPost, "/api/process-problem", strings.NewReader(`{"input":"Bonjour"}`)))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "Erreur lors du traitement du problème.", decodeDetail(t, rr))
	})

	t.Run("Recovered panic", func(t *testing.T) {
		tutor := mocks.NewMockTutorService(t)
		handler := api.NewProblemHandler(tutor)
		tutor.On("Process", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("processing problem panicked: boom: %w", app_errors.ErrInternal)).Once()

		rr := httptest.NewRecorder()
		handler.HandleProcessProblem(rr, httptest.NewRequest(http.MethodPost, "/api/process-problem", strings.NewReader(`{"input":"2+2"}`)))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "Erreur lors du traitement du problème.", decodeDetail(t, rr))
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		handler := api.NewProblemHandler(mocks.NewMockTutorService(t))

		rr := httptest.NewRecorder()
		handler.HandleProcessProblem(rr, httptest.NewRequest(http.MethodPost, "/api/process-problem", strings.NewReader(`{"input":`)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Requête invalide.", decodeDetail(t, rr))
	})

	t.Run("Image without mime type", func(t *testing.T) {
		handler := api.NewProblemHandler(mocks.NewMockTutorService(t))

		body := `{"isImage":true,"imageData":{"data":"aGVsbG8="}}`
		rr := httptest.NewRecorder()
		handler.HandleProcessProblem(rr, httptest.NewRequest(http.MethodPost, "/api/process-problem", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		detail := decodeDetail(t, rr)
		assert.Equal(t, "Requête invalide. le champ 'mimeType' ne respecte pas la règle 'required'", detail)
		assert.NotContains(t, detail, "validation failed")
	})
}

func TestProblemHandler_ExtractLatex(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		tutor := mocks.NewMockTutorService(t)
		handler := api.NewProblemHandler(tutor)
		image := model.ImagePayload{Data: "aGVsbG8=", MimeType: "image/jpeg"}
		tutor.On("ExtractLatex", mock.Anything, image).Return(`\frac{1}{2}`, nil).Once()

		rr := httptest.NewRecorder()
		handler.HandleExtractLatex(rr, httptest.NewRequest(http.MethodPost, "/api/extract-latex",
			strings.NewReader(`{"data":"aGVsbG8=","mimeType":"image/jpeg"}`)))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"latex":"\\frac{1}{2}"}`, rr.Body.String())
	})

	t.Run("Missing data", func(t *testing.T) {
		handler := api.NewProblemHandler(mocks.NewMockTutorService(t))

		rr := httptest.NewRecorder()
		handler.HandleExtractLatex(rr, httptest.NewRequest(http.MethodPost, "/api/extract-latex",
			strings.NewReader(`{"mimeType":"image/jpeg"}`)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, decodeDetail(t, rr), "'data'")
	})

	t.Run("Provider failure", func(t *testing.T) {
		tutor := mocks.NewMockTutorService(t)
		handler := api.NewProblemHandler(tutor)
		tutor.On("ExtractLatex", mock.Anything, mock.Anything).Return("", app_errors.ErrProviderTransport).Once()

		rr := httptest.NewRecorder()
		handler.HandleExtractLatex(rr, httptest.NewRequest(http.MethodPost, "/api/extract-latex",
			strings.NewReader(`{"data":"aGVsbG8=","mimeType":"image/jpeg"}`)))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "Erreur lors de l'extraction LaTeX.", decodeDetail(t, rr))
	})
}
