package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/tinta-academy-api/internal/dto"
	"github.com/noah-isme/tinta-academy-api/internal/service"
	appErrors "github.com/noah-isme/tinta-academy-api/pkg/errors"
	"github.com/noah-isme/tinta-academy-api/pkg/export"
	"github.com/noah-isme/tinta-academy-api/pkg/response"
)

type learnerService interface {
	Profile(ctx context.Context, studentID string) (*dto.LearnerProfileResponse, bool, error)
	Courses(ctx context.Context, studentID string, query service.LearnerCoursesQuery) (*dto.LearnerCoursesResponse, bool, error)
	Orders(ctx context.Context, studentID string) (*dto.OrderHistoryResponse, bool, error)
	ExportOrders(ctx context.Context, studentID string, format export.Format) (*service.ExportFile, error)
}

// LearnerHandler serves the student panel.
type LearnerHandler struct {
	service learnerService
}

// NewLearnerHandler constructs the handler.
func NewLearnerHandler(service learnerService) *LearnerHandler {
	return &LearnerHandler{service: service}
}

// Profile godoc
// @Summary Student profile
// @Tags Student
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /students/{studentId}/profile [get]
func (h *LearnerHandler) Profile(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	start := time.Now()
	view, cacheHit, err := h.service.Profile(c.Request.Context(), c.Param("studentId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	respondView(c, start, view, cacheHit)
}

// Courses godoc
// @Summary Student courses
// @Description In progress first, then upcoming, then completed.
// @Tags Student
// @Produce json
// @Param studentId path string true "Student ID"
// @Param status query string false "all, in_progress, completed or upcoming"
// @Param type query string false "all, online or in_person"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /students/{studentId}/courses [get]
func (h *LearnerHandler) Courses(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	var query service.LearnerCoursesQuery
	if !bindQuery(c, &query) {
		return
	}
	start := time.Now()
	view, cacheHit, err := h.service.Courses(c.Request.Context(), c.Param("studentId"), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	respondView(c, start, view, cacheHit)
}

// Orders godoc
// @Summary Order history
// @Description Orders newest first with the total paid in USD.
// @Tags Student
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /students/{studentId}/orders [get]
func (h *LearnerHandler) Orders(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	start := time.Now()
	view, cacheHit, err := h.service.Orders(c.Request.Context(), c.Param("studentId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	respondView(c, start, view, cacheHit)
}

// ExportOrders godoc
// @Summary Export order history
// @Tags Student
// @Produce text/csv
// @Produce application/pdf
// @Param studentId path string true "Student ID"
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /students/{studentId}/orders/export [get]
func (h *LearnerHandler) ExportOrders(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	format, ok := exportFormat(c)
	if !ok {
		return
	}
	file, err := h.service.ExportOrders(c.Request.Context(), c.Param("studentId"), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	sendFile(c, file)
}
