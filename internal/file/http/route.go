package http

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the file endpoints. Serving is public so facility
// photos render for anonymous visitors; uploading requires a signed in,
// non-banned user.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, memberMiddleware gin.HandlerFunc) {
	group := g.Group("/files")

	group.GET("/:id", h.Serve)
	group.GET("/:id/thumbnail", h.ServeThumbnail)

	group.POST("", authMiddleware, memberMiddleware, h.Upload)
}
