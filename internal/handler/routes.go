package handler

import (
	"github.com/gin-gonic/gin"
)

// Handlers groups the HTTP handlers mounted under the API prefix.
type Handlers struct {
	Catalog  *CatalogHandler
	Educator *EducatorHandler
	Learner  *LearnerHandler
	Shell    *ShellHandler
	Intent   *IntentHandler
	Metrics  *MetricsHandler
}

// Register mounts operational endpoints at the root and the API under prefix.
func Register(r gin.IRouter, prefix string, h Handlers) {
	if h.Metrics != nil {
		r.GET("/health", h.Metrics.Health)
		r.GET("/ready", h.Metrics.Ready)
		r.GET("/metrics", h.Metrics.Prometheus)
		r.GET("/metrics/summary", h.Metrics.Summary)
	}

	api := r.Group(prefix)

	if h.Catalog != nil {
		api.GET("/catalog", h.Catalog.Catalog)
	}

	if h.Educator != nil {
		educators := api.Group("/educators/:educatorId")
		educators.GET("/dashboard", h.Educator.Dashboard)
		educators.GET("/courses", h.Educator.Courses)
		educators.GET("/courses/:courseId/outline", h.Educator.Outline)
		educators.GET("/courses/:courseId/students", h.Educator.Roster)
		educators.GET("/courses/:courseId/students/export", h.Educator.ExportRoster)
		educators.GET("/campaigns", h.Educator.Campaigns)
		educators.GET("/templates", h.Educator.Templates)
		educators.POST("/templates/:templateId/preview", h.Educator.PreviewTemplate)
		educators.GET("/send-email", h.Educator.SendEmailOptions)
		educators.POST("/send-email", h.Educator.SendEmail)
	}

	if h.Learner != nil {
		students := api.Group("/students/:studentId")
		students.GET("/profile", h.Learner.Profile)
		students.GET("/courses", h.Learner.Courses)
		students.GET("/orders", h.Learner.Orders)
		students.GET("/orders/export", h.Learner.ExportOrders)
	}

	if h.Shell != nil {
		api.GET("/shell", h.Shell.Shell)
	}

	if h.Intent != nil {
		api.POST("/intents", h.Intent.Create)
		api.GET("/intents/kinds", h.Intent.Kinds)
	}
}
