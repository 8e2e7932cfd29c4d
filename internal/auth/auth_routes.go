package auth

import (
	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	authGroup := r.Group("/auth")
	authGroup.Use(middleware.RateLimitByIP(rate.Limit(5), 10))
	{
		authGroup.POST("/register", handler.Register)
		authGroup.POST("/login", handler.Login)
	}
}
