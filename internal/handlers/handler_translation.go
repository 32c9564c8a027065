package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/poultrymitra/mitra_backend/internal/core/ports/services"
	"github.com/poultrymitra/mitra_backend/internal/dto"
	"github.com/poultrymitra/mitra_backend/internal/middleware"
)

type translationHandler struct {
	translationService portssvc.TranslationSvc
}

// RegisterTranslationRoutes registers the public translation lookup on rg.
func RegisterTranslationRoutes(rg *gin.RouterGroup, translationService portssvc.TranslationSvc) {
	h := &translationHandler{translationService: translationService}
	rg.GET("/translations", h.translate)
}

// translate godoc
// @Summary Translate a UI text key
// @Description Resolves a UI text key into the requested language, falling back to English
// @Tags translations
// @Produce json
// @Param key query string true "Text key, e.g. ledger.balance.owes"
// @Param lang query string false "Language code" default(hi)
// @Success 200 {object} dto.TranslationResponse
// @Failure 400 {object} map[string]string "Missing key or unsupported language"
// @Failure 500 {object} map[string]string "Failed to translate"
// @Router /translations [get]
func (h *translationHandler) translate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var q dto.TranslationQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Failed to bind query parameters for Translate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	text, err := h.translationService.Translate(c.Request.Context(), q.Key, q.Lang)
	if err != nil {
		respondServiceError(c, logger.With(slog.String("key", q.Key), slog.String("lang", q.Lang)), err, "Failed to translate")
		return
	}

	c.JSON(http.StatusOK, dto.TranslationResponse{Key: q.Key, Lang: q.Lang, Text: text})
}
