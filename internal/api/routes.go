package api

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the API under /api.
func RegisterRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		api.GET("/health", h.health)
		api.GET("/template", h.template)
		api.GET("/fonts", h.listFonts)

		api.POST("/sessions", h.createSession)
		api.GET("/sessions/:id", h.getSession)
		api.DELETE("/sessions/:id", h.deleteSession)
		api.POST("/sessions/:id/upload", h.upload)
		api.PUT("/sessions/:id/font", h.selectFont)
		api.DELETE("/sessions/:id/cards", h.reset)
		api.GET("/sessions/:id/layout", h.pageLayout)
		api.GET("/sessions/:id/print", h.printDocument)
		api.GET("/sessions/:id/pages/:page/preview.png", h.pagePreview)
		api.GET("/sessions/:id/qr", h.qr)
	}
}
