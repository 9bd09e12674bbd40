package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/tinta-academy-api/internal/middleware"
	"github.com/noah-isme/tinta-academy-api/internal/repository"
	"github.com/noah-isme/tinta-academy-api/internal/service"
	"github.com/noah-isme/tinta-academy-api/pkg/fixtures"
)

func newFixtureRouter(t *testing.T, checks map[string]ReadinessCheck) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	bundle, err := fixtures.Default()
	require.NoError(t, err)
	repo := repository.NewFixtureRepository(bundle)
	metrics := service.NewMetricsService()

	intents := service.NewIntentService(service.IntentServiceParams{Metrics: metrics})
	intents.Start(context.Background())
	t.Cleanup(intents.Stop)

	router := gin.New()
	router.Use(middleware.WithResponseMeta(), middleware.Metrics(metrics, middleware.OperationalRoutes...))
	Register(router, "/api/v1", Handlers{
		Catalog:  NewCatalogHandler(service.NewCatalogService(repo, nil, nil)),
		Educator: NewEducatorHandler(service.NewEducatorService(service.EducatorServiceParams{Repo: repo, Intents: intents})),
		Learner:  NewLearnerHandler(service.NewLearnerService(service.LearnerServiceParams{Repo: repo})),
		Shell:    NewShellHandler(),
		Intent:   NewIntentHandler(intents),
		Metrics:  NewMetricsHandler(metrics, checks),
	})
	return router
}

func serve(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRoutesServeFixtureViews(t *testing.T) {
	router := newFixtureRouter(t, nil)

	tests := []struct {
		name   string
		method string
		target string
		body   string
		status int
	}{
		{name: "catalog", method: http.MethodGet, target: "/api/v1/catalog?modality=presencial", status: http.StatusOK},
		{name: "dashboard", method: http.MethodGet, target: "/api/v1/educators/edu-1/dashboard", status: http.StatusOK},
		{name: "unknown educator", method: http.MethodGet, target: "/api/v1/educators/nope/dashboard", status: http.StatusNotFound},
		{name: "courses", method: http.MethodGet, target: "/api/v1/educators/edu-1/courses?status=published", status: http.StatusOK},
		{name: "outline", method: http.MethodGet, target: "/api/v1/educators/edu-1/courses/ec-1/outline", status: http.StatusOK},
		{name: "roster", method: http.MethodGet, target: "/api/v1/educators/edu-1/courses/ec-1/students?sort=progress&order=desc", status: http.StatusOK},
		{name: "roster export", method: http.MethodGet, target: "/api/v1/educators/edu-1/courses/ec-1/students/export", status: http.StatusOK},
		{name: "campaigns", method: http.MethodGet, target: "/api/v1/educators/edu-1/campaigns", status: http.StatusOK},
		{name: "templates", method: http.MethodGet, target: "/api/v1/educators/edu-1/templates", status: http.StatusOK},
		{name: "preview", method: http.MethodPost, target: "/api/v1/educators/edu-1/templates/tpl-1/preview", status: http.StatusOK},
		{name: "send options", method: http.MethodGet, target: "/api/v1/educators/edu-1/send-email", status: http.StatusOK},
		{name: "profile", method: http.MethodGet, target: "/api/v1/students/stu-1/profile", status: http.StatusOK},
		{name: "student courses", method: http.MethodGet, target: "/api/v1/students/stu-1/courses?status=upcoming", status: http.StatusOK},
		{name: "orders", method: http.MethodGet, target: "/api/v1/students/stu-1/orders", status: http.StatusOK},
		{name: "orders export", method: http.MethodGet, target: "/api/v1/students/stu-1/orders/export?format=pdf", status: http.StatusOK},
		{name: "shell", method: http.MethodGet, target: "/api/v1/shell?variant=student", status: http.StatusOK},
		{name: "intent", method: http.MethodPost, target: "/api/v1/intents", body: `{"kind":"course.view_slug","payload":{"slug":"wset-nivel-2"}}`, status: http.StatusAccepted},
		{name: "intent kinds", method: http.MethodGet, target: "/api/v1/intents/kinds", status: http.StatusOK},
		{name: "health", method: http.MethodGet, target: "/health", status: http.StatusOK},
		{name: "ready", method: http.MethodGet, target: "/ready", status: http.StatusOK},
		{name: "metrics", method: http.MethodGet, target: "/metrics", status: http.StatusOK},
		{name: "metrics summary", method: http.MethodGet, target: "/metrics/summary", status: http.StatusOK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(router, tc.method, tc.target, tc.body)
			assert.Equal(t, tc.status, rec.Code, rec.Body.String())
		})
	}
}

func TestRoutesSendEmailEmitsIntent(t *testing.T) {
	router := newFixtureRouter(t, nil)

	rec := serve(router, http.MethodPost, "/api/v1/educators/edu-1/send-email", `{"courseId":"ec-1","templateId":"tpl-1"}`)

	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	envelope := decodeEnvelope(t, rec)
	assert.NotEmpty(t, envelope.Data["intentId"])
	payload, ok := envelope.Data["payload"].(map[string]interface{})
	require.True(t, ok)
	assert.Nil(t, payload["scheduledAt"])
}

func TestRoutesReadyReportsFailingChecks(t *testing.T) {
	router := newFixtureRouter(t, map[string]ReadinessCheck{
		"redis":    func(context.Context) error { return errors.New("connection refused") },
		"postgres": func(context.Context) error { return nil },
	})

	rec := serve(router, http.MethodGet, "/ready", "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "connection refused")
	assert.NotContains(t, rec.Body.String(), "postgres")
}

func TestRoutesMetricsSummaryCountsRequests(t *testing.T) {
	router := newFixtureRouter(t, nil)
	serve(router, http.MethodGet, "/api/v1/catalog", "")
	serve(router, http.MethodGet, "/api/v1/students/stu-1/profile", "")

	rec := serve(router, http.MethodGet, "/metrics/summary", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), decodeEnvelope(t, rec).Data["requestsTotal"])
}
