package leave

import (
	"go-leave/internal/middleware"
	"go-leave/internal/rbac"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(rg *gin.RouterGroup, handler *Handler, enforcer *casbin.Enforcer, rdb *redis.Client) {
	self := rg.Group("/leave")
	{
		apply := self.Group("")
		apply.Use(middleware.Authorize(enforcer, rbac.ResourceLeave, rbac.ActionCreate))
		if rdb != nil {
			apply.Use(middleware.Idempotency(rdb))
		}
		apply.POST("/apply", handler.Apply)

		read := self.Group("")
		read.Use(middleware.Authorize(enforcer, rbac.ResourceLeave, rbac.ActionRead))
		read.GET("/my-requests", handler.MyRequests)
		read.GET("/balances", handler.MyBalances)
	}

	manager := rg.Group("/manager/leaves")
	manager.Use(middleware.Authorize(enforcer, rbac.ResourceLeave, rbac.ActionApprove))
	{
		manager.GET("/pending", handler.Pending)
		manager.PUT("/:id/approve", handler.Approve)
		manager.PUT("/:id/reject", handler.Reject)
	}
}
