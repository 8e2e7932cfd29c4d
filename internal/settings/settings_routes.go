package settings

import (
	"go-leave/internal/middleware"
	"go-leave/internal/rbac"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, handler *Handler, enforcer *casbin.Enforcer) {
	admin := rg.Group("/admin/system-settings")
	admin.Use(middleware.Authorize(enforcer, rbac.ResourceSettings, rbac.ActionManage))
	{
		admin.GET("", handler.GetAll)
		admin.PUT("", handler.UpdateAll)
	}
}
