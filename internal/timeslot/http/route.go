package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the availability endpoints.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, ownerMiddleware gin.HandlerFunc) {
	group := g.Group("/timeslots")

	group.GET("", h.List)
	group.POST("", authMiddleware, ownerMiddleware, h.SetAvailability)
}
