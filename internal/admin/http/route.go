package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the admin moderation endpoints. Every route requires
// the admin role.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/admin")
	group.Use(authMiddleware, adminMiddleware)

	group.GET("/stats", h.Stats)

	group.GET("/facilities/pending", h.ListPendingFacilities)
	group.POST("/facilities/:id/approve", h.ApproveFacility)
	group.POST("/facilities/:id/reject", h.RejectFacility)

	group.GET("/users", h.ListUsers)
	group.POST("/users/:id/ban", h.BanUser)
	group.POST("/users/:id/unban", h.UnbanUser)
}
