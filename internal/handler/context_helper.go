package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/tinta-academy-api/internal/middleware"
	"github.com/noah-isme/tinta-academy-api/internal/service"
	appErrors "github.com/noah-isme/tinta-academy-api/pkg/errors"
	"github.com/noah-isme/tinta-academy-api/pkg/export"
	"github.com/noah-isme/tinta-academy-api/pkg/response"
)

// respondView writes a derived view with cache and timing meta.
func respondView(c *gin.Context, start time.Time, data interface{}, cacheHit bool) {
	middleware.SetCacheHit(c, cacheHit)
	response.JSON(c, http.StatusOK, data, middleware.ResponseMeta(c, start))
}

func bindQuery(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindQuery(dest); err != nil {
		response.Error(c, appErrors.Invalid(err, "invalid query parameters"))
		return false
	}
	return true
}

func exportFormat(c *gin.Context) (export.Format, bool) {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		response.Error(c, appErrors.Invalid(err, "format must be csv or pdf"))
		return "", false
	}
	return format, true
}

func sendFile(c *gin.Context, file *service.ExportFile) {
	response.File(c, file.ContentType, file.Filename, file.Body)
}

// actorID identifies the session subject on emitted intents.
func actorID(c *gin.Context) string {
	if claims := middleware.SessionFromContext(c); claims != nil {
		return claims.Subject
	}
	return ""
}

// splitList parses comma separated query values, dropping blanks.
func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
