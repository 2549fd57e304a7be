package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the booking endpoints. memberMiddleware rejects
// banned accounts; the owner overview additionally requires the
// facility_owner role.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, memberMiddleware, ownerMiddleware gin.HandlerFunc) {
	group := g.Group("/bookings")
	group.Use(authMiddleware)

	group.POST("", memberMiddleware, h.Create)
	group.GET("/me", memberMiddleware, h.ListMine)
	group.DELETE("/:id", memberMiddleware, h.Cancel)

	group.GET("/owner/overview", ownerMiddleware, h.ListForOwner)
}
