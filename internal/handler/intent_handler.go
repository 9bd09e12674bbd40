package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/tinta-academy-api/internal/dto"
	"github.com/noah-isme/tinta-academy-api/internal/models"
	"github.com/noah-isme/tinta-academy-api/internal/service"
	appErrors "github.com/noah-isme/tinta-academy-api/pkg/errors"
	"github.com/noah-isme/tinta-academy-api/pkg/response"
)

type intentService interface {
	Accept(ctx context.Context, req dto.IntentRequest, actorID string) (*dto.IntentAccepted, error)
}

// IntentHandler accepts user intents for external processing.
type IntentHandler struct {
	service intentService
}

// NewIntentHandler constructs the handler.
func NewIntentHandler(service intentService) *IntentHandler {
	return &IntentHandler{service: service}
}

// Create godoc
// @Summary Emit an intent
// @Description Validates the payload for the kind and hands it to the dispatch queue.
// @Tags Intents
// @Accept json
// @Produce json
// @Param payload body dto.IntentRequest true "Intent"
// @Success 202 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 503 {object} response.Envelope
// @Router /intents [post]
func (h *IntentHandler) Create(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrDispatchUnavailable)
		return
	}
	var req dto.IntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Invalid(err, "invalid intent payload"))
		return
	}
	accepted, err := h.service.Accept(c.Request.Context(), req, actorID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, accepted)
}

// Kinds godoc
// @Summary Known intent kinds
// @Tags Intents
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /intents/kinds [get]
func (h *IntentHandler) Kinds(c *gin.Context) {
	response.JSON(c, http.StatusOK, map[string][]models.IntentKind{"kinds": service.IntentKinds()})
}
