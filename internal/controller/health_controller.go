package controller

import (
	"net/http"
	"time"

	"learnpath_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB        *gorm.DB
	startedAt time.Time
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db, startedAt: time.Now()}
}

// @Summary 健康检查
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	status := "ok"
	dbStatus := "up"

	sqlDB, err := c.DB.DB()
	if err != nil {
		dbStatus = "down"
	} else if err := sqlDB.Ping(); err != nil {
		dbStatus = "down"
	}
	if dbStatus != "up" {
		status = "degraded"
	}

	payload := gin.H{
		"status":   status,
		"database": dbStatus,
		"uptime":   time.Since(c.startedAt).Round(time.Second).String(),
	}

	if status != "ok" {
		ctx.JSON(http.StatusServiceUnavailable, util.Response{Code: http.StatusServiceUnavailable, Message: "degraded", Data: payload})
		return
	}
	util.Success(ctx, payload)
}
