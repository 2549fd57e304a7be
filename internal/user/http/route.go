package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the auth and profile endpoints. memberMiddleware
// reloads the account so banned users lose profile access immediately.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, memberMiddleware gin.HandlerFunc) {
	authGroup := g.Group("/auth")
	{
		authGroup.POST("/signup", h.Signup)
		authGroup.POST("/login", h.Login)
	}

	me := g.Group("/users/me")
	me.Use(authMiddleware, memberMiddleware)
	{
		me.GET("", h.Me)
		me.PUT("", h.UpdateMe)
	}
}
