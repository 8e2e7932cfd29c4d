package dashboard

import (
	"go-leave/internal/middleware"
	"go-leave/internal/rbac"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, handler *Handler, enforcer *casbin.Enforcer) {
	dash := rg.Group("/dashboard")
	{
		dash.GET("/employee",
			middleware.Authorize(enforcer, rbac.ResourceDashboard, rbac.ActionViewEmployee),
			handler.Employee)
		dash.GET("/manager",
			middleware.Authorize(enforcer, rbac.ResourceDashboard, rbac.ActionViewManager),
			handler.Manager)
		dash.GET("/admin",
			middleware.Authorize(enforcer, rbac.ResourceDashboard, rbac.ActionViewAdmin),
			handler.Admin)
	}
}
