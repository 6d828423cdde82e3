package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
	"github.com/SscSPs/ledgerbook/internal/dto"
	"github.com/SscSPs/ledgerbook/internal/middleware"
	"github.com/SscSPs/ledgerbook/internal/utils/money"
	"github.com/gin-gonic/gin"
)

// exampleAmount is rendered next to the settings so clients can preview the format.
const exampleAmount int64 = 123456

type settingsHandler struct {
	settingsService portssvc.SettingsSvcFacade
}

func registerSettingsRoutes(rg *gin.RouterGroup, ss portssvc.SettingsSvcFacade) {
	h := &settingsHandler{settingsService: ss}

	display := rg.Group("/settings/display")
	{
		display.GET("", h.getDisplaySettings)
		display.PUT("", h.saveDisplaySettings)
		display.DELETE("", h.resetDisplaySettings)
	}
}

func settingsResponse(s domain.DisplaySettings) dto.DisplaySettingsResponse {
	return dto.DisplaySettingsResponse{
		DisplaySettings: s,
		Example:         money.NewFormatter(s).Format(exampleAmount),
	}
}

// getDisplaySettings godoc
// @Summary Get display settings
// @Tags settings
// @Produce json
// @Success 200 {object} dto.DisplaySettingsResponse
// @Security BearerAuth
// @Router /settings/display [get]
func (h *settingsHandler) getDisplaySettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	settings, err := h.settingsService.Load(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to load display settings")
		return
	}
	c.JSON(http.StatusOK, settingsResponse(settings))
}

// saveDisplaySettings godoc
// @Summary Save display settings
// @Description Settings only change how amounts are rendered, never stored values
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body dto.DisplaySettingsRequest true "Display settings"
// @Success 200 {object} dto.DisplaySettingsResponse
// @Failure 400 {object} map[string]string "Invalid settings"
// @Security BearerAuth
// @Router /settings/display [put]
func (h *settingsHandler) saveDisplaySettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.DisplaySettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SaveDisplaySettings", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	saved, err := h.settingsService.Save(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondError(c, logger, err, "Failed to save display settings")
		return
	}
	c.JSON(http.StatusOK, settingsResponse(saved))
}

// resetDisplaySettings godoc
// @Summary Reset display settings to defaults
// @Tags settings
// @Produce json
// @Success 200 {object} dto.DisplaySettingsResponse
// @Security BearerAuth
// @Router /settings/display [delete]
func (h *settingsHandler) resetDisplaySettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	settings, err := h.settingsService.Reset(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to reset display settings")
		return
	}
	c.JSON(http.StatusOK, settingsResponse(settings))
}
