package user

import (
	"go-leave/internal/middleware"
	"go-leave/internal/rbac"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	enforcer *casbin.Enforcer,
) {
	admin := r.Group("/admin/users")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.Authorize(enforcer, rbac.ResourceUser, rbac.ActionManage))
	{
		admin.GET("", handler.GetAll)
		admin.PUT("/:id/role", handler.UpdateRole)
	}

	profile := r.Group("/profile")
	profile.Use(middleware.AuthMiddleware())
	{
		profile.GET("", handler.GetProfile)
		profile.PUT("/password", handler.ChangePassword)
	}
}
