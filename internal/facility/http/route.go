package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the facility endpoints. ownerMiddleware restricts a
// route to facility_owner and admin roles.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, ownerMiddleware gin.HandlerFunc) {
	group := g.Group("/facilities")

	// Public discovery endpoints.
	group.GET("", h.ListApproved)

	// Owner-scoped listing registers before the wildcard :id route.
	group.GET("/me/list", authMiddleware, ownerMiddleware, h.ListMine)

	group.GET("/:id", h.Get)

	group.POST("", authMiddleware, ownerMiddleware, h.Create)
	group.PUT("/:id", authMiddleware, ownerMiddleware, h.Update)
}
