package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the court endpoints.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, ownerMiddleware gin.HandlerFunc) {
	group := g.Group("/courts")

	group.GET("/facility/:facilityId", h.ListByFacility)

	group.POST("", authMiddleware, ownerMiddleware, h.Create)
	group.PUT("/:id", authMiddleware, ownerMiddleware, h.Update)
}
