package handlers

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Register mounts the dashboard routes on e. Settings routes are mounted only
// when sh is non-nil.
func Register(e *echo.Echo, h *Handler, sh *SettingsHandler) {
	e.GET("/health", h.Health)
	e.GET("/", h.Index)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	api.GET("/valuation", h.Valuation)
	api.POST("/valuation", h.Valuation)

	if sh != nil {
		admin := e.Group("/admin")
		admin.GET("/settings", sh.ListSettings)
		admin.PUT("/settings", sh.PutSettings)
		admin.GET("/settings/:key", sh.GetSetting)
		admin.PUT("/settings/:key", sh.PutSetting)
		admin.DELETE("/settings/:key", sh.DeleteSetting)
	}
}
