package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the API endpoints and groups them logically.
func RegisterRoutes(router *gin.Engine, h *APIHandler) {
	// --- Generation ---
	router.POST("/generate-site", h.GenerateSite) // raw completion text for a free-form prompt
	router.POST("/sites", h.CreateSite)           // structured spec -> generated artifact + editor session
	router.GET("/options", h.FormOptions)         // form catalogues and preview devices

	// --- Editor Sessions ---
	sessionGroup := router.Group("/sessions")
	{
		sessionGroup.POST("", h.CreateSession)
		sessionGroup.GET("/:id", h.GetSession)
		sessionGroup.PUT("/:id/components", h.UpdateComponents)
		sessionGroup.POST("/:id/undo", h.Undo)
		sessionGroup.POST("/:id/redo", h.Redo)
		sessionGroup.POST("/:id/preview", h.TogglePreview)
		sessionGroup.POST("/:id/device", h.SetDevice)
		sessionGroup.GET("/:id/export", h.Export)
		sessionGroup.DELETE("/:id", h.DeleteSession)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": h.sessions.Len()})
	})
}

// Shutdown releases every open editor session.
func (h *APIHandler) Shutdown() {
	h.sessions.Close()
}
