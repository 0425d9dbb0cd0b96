package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"esweb-http-service/internal/domain/services/container"
	"esweb-http-service/internal/error/code"
	"esweb-http-service/internal/error/response"
)

// HealthController reports service liveness and dependency health
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthController creates a new health controller
func NewHealthController(ctx *gin.Context, container *container.ServiceContainer) *HealthController {
	return &HealthController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHealthFunc returns a gin handler dispatching health requests
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthController(ctx, container)

		switch method {
		case "ping":
			controller.Ping()
		case "status":
			controller.Status()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method")
		}
	}
}

// 1. Ping answers a liveness probe
// @Summary      Ping
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /ping [get]
func (c *HealthController) Ping() {
	response.JSON(c.Ctx, code.StatusOK, gin.H{
		"message": "pong",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

// 2. Status reports database and cache reachability
// @Summary      Service status
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func (c *HealthController) Status() {
	dbStatus := "ok"
	sqlDB, err := c.Container.GetDB().DB()
	if err != nil || sqlDB.Ping() != nil {
		dbStatus = "unreachable"
	}

	cacheStatus := "disabled"
	if redisService := c.Container.GetRedisService(); redisService != nil && redisService.Available() {
		cacheStatus = "ok"
	}

	response.JSON(c.Ctx, code.StatusOK, gin.H{
		"status":   "up",
		"database": dbStatus,
		"cache":    cacheStatus,
	})
}
