package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the announcement endpoints. Reading is public;
// writing requires an admin.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/announcements")

	group.GET("", h.List)
	group.GET("/:id", h.Get)

	group.POST("", authMiddleware, adminMiddleware, h.Create)
	group.PUT("/:id", authMiddleware, adminMiddleware, h.Update)
	group.DELETE("/:id", authMiddleware, adminMiddleware, h.Delete)
}
