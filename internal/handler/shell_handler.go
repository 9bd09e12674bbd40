package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/tinta-academy-api/internal/middleware"
	"github.com/noah-isme/tinta-academy-api/internal/service"
	"github.com/noah-isme/tinta-academy-api/pkg/response"
)

// ShellHandler serves the application chrome.
type ShellHandler struct{}

// NewShellHandler constructs the handler.
func NewShellHandler() *ShellHandler {
	return &ShellHandler{}
}

// Shell godoc
// @Summary Application shell
// @Description Navigation for the variant with the item matching path marked active, plus the session user.
// @Tags Shell
// @Produce json
// @Param variant query string false "public, student, educator or admin. Defaults to the session role"
// @Param path query string false "Current front end path"
// @Success 200 {object} response.Envelope
// @Router /shell [get]
func (h *ShellHandler) Shell(c *gin.Context) {
	claims := middleware.SessionFromContext(c)
	raw := c.Query("variant")
	if raw == "" && claims != nil {
		raw = string(claims.Role)
	}
	view := service.BuildShell(service.ParseShellVariant(raw), c.Query("path"), claims.User())
	response.JSON(c, http.StatusOK, view)
}
