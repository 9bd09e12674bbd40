package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/tinta-academy-api/internal/dto"
	"github.com/noah-isme/tinta-academy-api/internal/models"
	appErrors "github.com/noah-isme/tinta-academy-api/pkg/errors"
	"github.com/noah-isme/tinta-academy-api/pkg/response"
)

type catalogService interface {
	Catalog(ctx context.Context, filters models.CourseFilters) (*dto.CatalogResponse, bool, error)
}

// CatalogHandler serves the public landing page.
type CatalogHandler struct {
	service catalogService
}

// NewCatalogHandler constructs the handler.
func NewCatalogHandler(service catalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// Catalog godoc
// @Summary Course catalog
// @Description Landing content with upcoming and past courses narrowed by modality, type and tags.
// @Tags Catalog
// @Produce json
// @Param modality query string false "presencial or online"
// @Param type query string false "wset, taller, cata or curso"
// @Param tagIds query string false "Comma separated tag ids; a course must carry all of them"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /catalog [get]
func (h *CatalogHandler) Catalog(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	var filters models.CourseFilters
	if !bindQuery(c, &filters) {
		return
	}
	filters.TagIDs = splitList(c.Query("tagIds"))

	start := time.Now()
	view, cacheHit, err := h.service.Catalog(c.Request.Context(), filters)
	if err != nil {
		response.Error(c, err)
		return
	}
	respondView(c, start, view, cacheHit)
}
