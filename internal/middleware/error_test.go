package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"trivia-board/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorApp(err error) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Get("/fail", func(c *fiber.Ctx) error { return err })
	return app
}

func doGet(t *testing.T, app *fiber.App, path string) (*http.Response, []byte) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestErrorHandler_DomainErrorStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid amount", domain.NewInvalidAmountError(), http.StatusBadRequest},
		{"invalid input", domain.NewInvalidInputError("bad body"), http.StatusBadRequest},
		{"user not found", domain.NewUserNotFoundError("ghost"), http.StatusNotFound},
		{"username taken", domain.NewUsernameTakenError("alice"), http.StatusConflict},
		{"source unavailable", domain.NewSourceUnavailableError(errors.New("dial tcp")), http.StatusBadGateway},
		{"no match", domain.NewSourceNoMatchError(1, domain.OutcomeNoMatch), http.StatusNotFound},
		{"rate limited", domain.NewSourceNoMatchError(5, domain.OutcomeRateLimited), http.StatusServiceUnavailable},
		{"persistence", domain.NewPersistenceUnavailableError("db", errors.New("ORA-12541")), http.StatusServiceUnavailable},
		{"submission failed", domain.NewScoreSubmissionFailedError(errors.New("insert")), http.StatusInternalServerError},
		{"internal", domain.NewInternalError("oops", nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doGet(t, newErrorApp(tt.err), "/fail")
			assert.Equal(t, tt.status, resp.StatusCode)

			var got ErrorResponse
			require.NoError(t, json.Unmarshal(body, &got))
			var domainErr *domain.DomainError
			require.True(t, errors.As(tt.err, &domainErr))
			assert.Equal(t, string(domainErr.Code), got.Code)
			assert.Equal(t, tt.status, got.Status)
		})
	}
}

func TestErrorHandler_CauseIsNotSerialized(t *testing.T) {
	err := domain.NewSourceUnavailableError(errors.New("dial tcp 10.0.0.1:443: connection refused"))

	_, body := doGet(t, newErrorApp(err), "/fail")
	assert.NotContains(t, string(body), "connection refused")
	assert.Contains(t, string(body), "Error fetching quiz questions from trivia API.")
}

func TestErrorHandler_NoMatchDetails(t *testing.T) {
	_, body := doGet(t, newErrorApp(domain.NewSourceNoMatchError(1, domain.OutcomeNoMatch)), "/fail")

	var got ErrorResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, float64(1), got.Details["response_code"])
	assert.Equal(t, "no_match", got.Details["outcome"])
}

func TestErrorHandler_ValidationErrors(t *testing.T) {
	err := domain.ValidationErrors{domain.NewMissingFieldError("username")}

	resp, body := doGet(t, newErrorApp(err), "/fail")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var got ValidationErrorResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "VALIDATION_ERROR", got.Code)
	require.Len(t, got.Errors, 1)
	assert.Equal(t, "username", got.Errors[0].Field)
}

func TestErrorHandler_FiberError(t *testing.T) {
	resp, body := doGet(t, newErrorApp(fiber.ErrMethodNotAllowed), "/fail")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Contains(t, string(body), "HTTP_ERROR")
}

func TestErrorHandler_UnknownError(t *testing.T) {
	resp, body := doGet(t, newErrorApp(errors.New("secret internals")), "/fail")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.NotContains(t, string(body), "secret internals")
	assert.Contains(t, string(body), "INTERNAL_ERROR")
}
