package leavetype

import (
	"go-leave/internal/middleware"
	"go-leave/internal/rbac"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, handler *Handler, enforcer *casbin.Enforcer) {
	// Read-only listing is open to every authenticated role; employees
	// need it to fill the apply form.
	rg.GET("/leave/types", handler.GetAll)

	admin := rg.Group("/admin/leave-types")
	admin.Use(middleware.Authorize(enforcer, rbac.ResourceLeaveType, rbac.ActionManage))
	{
		admin.GET("", handler.GetAll)
		admin.GET("/:id", handler.GetByID)
		admin.POST("", handler.Create)
		admin.PUT("/:id", handler.Update)
		admin.DELETE("/:id", handler.Delete)
	}
}
