package dashboard

import (
	"encoding/json"
	"net/http"
	"time"

	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const adminCacheKey = "dashboard:admin"
const adminCacheTTL = 60 * time.Second

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("dashboard.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.handler")
	}
	return &Handler{service: service, rdb: rdb, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Employee(c *gin.Context) {
	userID := c.GetUint("user_id")

	resp, err := h.service.Employee(c.Request.Context(), userID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Manager(c *gin.Context) {
	resp, err := h.service.Manager(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// Admin serves the fleet-wide counters behind a short redis cache. The
// numbers move slowly and the query fans out over three tables.
func (h *Handler) Admin(c *gin.Context) {
	ctx := c.Request.Context()

	if h.rdb != nil {
		if val, err := h.rdb.Get(ctx, adminCacheKey).Result(); err == nil {
			var cached AdminDashboardResponse
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				response.Success(c, http.StatusOK, cached, nil)
				return
			}
		}
	}

	resp, err := h.service.Admin(ctx)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if h.rdb != nil {
		if payload, err := json.Marshal(resp); err == nil {
			if err := h.rdb.Set(ctx, adminCacheKey, payload, adminCacheTTL).Err(); err != nil {
				h.logger.Warn("admin dashboard cache write failed", zap.Error(err))
			}
		}
	}

	response.Success(c, http.StatusOK, resp, nil)
}
