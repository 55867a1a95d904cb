package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"trivia-board/internal/domain"
	"trivia-board/internal/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordsRenderedStatus(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(Metrics())
	app.Get("/metrics-test/users/:username", func(c *fiber.Ctx) error {
		if c.Params("username") == "ghost" {
			return domain.NewUserNotFoundError("ghost")
		}
		return c.SendString("ok")
	})

	okBefore := testutil.ToFloat64(metrics.RequestCounter.WithLabelValues("GET", "/metrics-test/users/:username", "200"))
	notFoundBefore := testutil.ToFloat64(metrics.RequestCounter.WithLabelValues("GET", "/metrics-test/users/:username", "404"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics-test/users/alice", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/metrics-test/users/ghost", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	assert.Equal(t, okBefore+1, testutil.ToFloat64(metrics.RequestCounter.WithLabelValues("GET", "/metrics-test/users/:username", "200")))
	assert.Equal(t, notFoundBefore+1, testutil.ToFloat64(metrics.RequestCounter.WithLabelValues("GET", "/metrics-test/users/:username", "404")))
}
