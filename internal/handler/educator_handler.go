package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/tinta-academy-api/internal/dto"
	"github.com/noah-isme/tinta-academy-api/internal/middleware"
	"github.com/noah-isme/tinta-academy-api/internal/service"
	appErrors "github.com/noah-isme/tinta-academy-api/pkg/errors"
	"github.com/noah-isme/tinta-academy-api/pkg/export"
	"github.com/noah-isme/tinta-academy-api/pkg/response"
)

type educatorService interface {
	Dashboard(ctx context.Context, educatorID string) (*dto.EducatorDashboardResponse, bool, error)
	Courses(ctx context.Context, educatorID string, query service.CourseListQuery) (*dto.EducatorCoursesResponse, bool, error)
	Outline(ctx context.Context, educatorID, courseID string) (*dto.CourseOutline, bool, error)
	Roster(ctx context.Context, educatorID, courseID string, query service.RosterQuery) (*dto.RosterResponse, bool, error)
	ExportRoster(ctx context.Context, educatorID, courseID string, query service.RosterQuery, format export.Format) (*service.ExportFile, error)
	Campaigns(ctx context.Context, educatorID string, query service.CampaignListQuery) (*dto.CampaignListResponse, bool, error)
	Templates(ctx context.Context, educatorID, search string) (*dto.TemplateListResponse, bool, error)
	PreviewTemplate(ctx context.Context, educatorID, templateID, courseID string) (*dto.TemplatePreview, error)
	SendEmailOptions(ctx context.Context, educatorID string) (*dto.SendEmailOptionsResponse, bool, error)
	SendEmail(ctx context.Context, educatorID string, req service.SendEmailRequest) (*dto.SendEmailAccepted, error)
}

// EducatorHandler serves the educator panel.
type EducatorHandler struct {
	service educatorService
}

// NewEducatorHandler constructs the handler.
func NewEducatorHandler(service educatorService) *EducatorHandler {
	return &EducatorHandler{service: service}
}

type previewRequest struct {
	CourseID string `json:"courseId"`
}

// Dashboard godoc
// @Summary Educator dashboard
// @Description Headline metrics, month over month student growth and quick access courses.
// @Tags Educator
// @Produce json
// @Param educatorId path string true "Educator ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /educators/{educatorId}/dashboard [get]
func (h *EducatorHandler) Dashboard(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	start := time.Now()
	view, cacheHit, err := h.service.Dashboard(c.Request.Context(), c.Param("educatorId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	respondView(c, start, view, cacheHit)
}

// Courses godoc
// @Summary Educator courses
// @Tags Educator
// @Produce json
// @Param educatorId path string true "Educator ID"
// @Param search query string false "Case-insensitive title search"
// @Param modality query string false "all, online or presencial"
// @Param status query string false "all, draft, published or finished"
// @Param view query string false "grid or list"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /educators/{educatorId}/courses [get]
func (h *EducatorHandler) Courses(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	var query service.CourseListQuery
	if !bindQuery(c, &query) {
		return
	}
	start := time.Now()
	view, cacheHit, err := h.service.Courses(c.Request.Context(), c.Param("educatorId"), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	respondView(c, start, view, cacheHit)
}

// Outline godoc
// @Summary Course editor outline
// @Tags Educator
// @Produce json
// @Param educatorId path string true "Educator ID"
// @Param courseId path string true "Course ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /educators/{educatorId}/courses/{courseId}/outline [get]
func (h *EducatorHandler) Outline(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	start := time.Now()
	view, cacheHit, err := h.service.Outline(c.Request.Context(), c.Param("educatorId"), c.Param("courseId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	respondView(c, start, view, cacheHit)
}

// Roster godoc
// @Summary Course students
// @Tags Educator
// @Produce json
// @Param educatorId path string true "Educator ID"
// @Param courseId path string true "Course ID"
// @Param search query string false "Matches name or email"
// @Param sort query string false "name, progress, enrolledAt or lastAccessAt"
// @Param order query string false "asc or desc"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /educators/{educatorId}/courses/{courseId}/students [get]
func (h *EducatorHandler) Roster(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	var query service.RosterQuery
	if !bindQuery(c, &query) {
		return
	}
	start := time.Now()
	view, cacheHit, err := h.service.Roster(c.Request.Context(), c.Param("educatorId"), c.Param("courseId"), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	respondView(c, start, view, cacheHit)
}

// ExportRoster godoc
// @Summary Export course students
// @Description Downloads the filtered and sorted roster.
// @Tags Educator
// @Produce text/csv
// @Produce application/pdf
// @Param educatorId path string true "Educator ID"
// @Param courseId path string true "Course ID"
// @Param format query string false "csv (default) or pdf"
// @Param search query string false "Matches name or email"
// @Param sort query string false "name, progress, enrolledAt or lastAccessAt"
// @Param order query string false "asc or desc"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /educators/{educatorId}/courses/{courseId}/students/export [get]
func (h *EducatorHandler) ExportRoster(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	format, ok := exportFormat(c)
	if !ok {
		return
	}
	var query service.RosterQuery
	if !bindQuery(c, &query) {
		return
	}
	file, err := h.service.ExportRoster(c.Request.Context(), c.Param("educatorId"), c.Param("courseId"), query, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	sendFile(c, file)
}

// Campaigns godoc
// @Summary Email campaign history
// @Tags Educator
// @Produce json
// @Param educatorId path string true "Educator ID"
// @Param search query string false "Matches subject or course title"
// @Param status query string false "all, draft, scheduled or sent"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /educators/{educatorId}/campaigns [get]
func (h *EducatorHandler) Campaigns(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	var query service.CampaignListQuery
	if !bindQuery(c, &query) {
		return
	}
	start := time.Now()
	view, cacheHit, err := h.service.Campaigns(c.Request.Context(), c.Param("educatorId"), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	respondView(c, start, view, cacheHit)
}

// Templates godoc
// @Summary Email templates
// @Tags Educator
// @Produce json
// @Param educatorId path string true "Educator ID"
// @Param search query string false "Matches name or subject"
// @Success 200 {object} response.Envelope
// @Router /educators/{educatorId}/templates [get]
func (h *EducatorHandler) Templates(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	start := time.Now()
	view, cacheHit, err := h.service.Templates(c.Request.Context(), c.Param("educatorId"), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}
	respondView(c, start, view, cacheHit)
}

// PreviewTemplate godoc
// @Summary Preview an email template
// @Description Renders the template with sample student values.
// @Tags Educator
// @Accept json
// @Produce json
// @Param educatorId path string true "Educator ID"
// @Param templateId path string true "Template ID"
// @Param payload body previewRequest false "Optional course supplying the title"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /educators/{educatorId}/templates/{templateId}/preview [post]
func (h *EducatorHandler) PreviewTemplate(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	var req previewRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, appErrors.Invalid(err, "invalid preview payload"))
			return
		}
	}
	start := time.Now()
	preview, err := h.service.PreviewTemplate(c.Request.Context(), c.Param("educatorId"), c.Param("templateId"), req.CourseID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, preview, middleware.ResponseMeta(c, start))
}

// SendEmailOptions godoc
// @Summary Send email form options
// @Tags Educator
// @Produce json
// @Param educatorId path string true "Educator ID"
// @Success 200 {object} response.Envelope
// @Router /educators/{educatorId}/send-email [get]
func (h *EducatorHandler) SendEmailOptions(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	start := time.Now()
	view, cacheHit, err := h.service.SendEmailOptions(c.Request.Context(), c.Param("educatorId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	respondView(c, start, view, cacheHit)
}

// SendEmail godoc
// @Summary Send a campaign
// @Description Validates the request and emits a campaign.send intent. Delivery is external.
// @Tags Educator
// @Accept json
// @Produce json
// @Param educatorId path string true "Educator ID"
// @Param payload body service.SendEmailRequest true "Send payload"
// @Success 202 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Failure 503 {object} response.Envelope
// @Router /educators/{educatorId}/send-email [post]
func (h *EducatorHandler) SendEmail(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	var req service.SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Invalid(err, "invalid send payload"))
		return
	}
	accepted, err := h.service.SendEmail(c.Request.Context(), c.Param("educatorId"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, accepted)
}
