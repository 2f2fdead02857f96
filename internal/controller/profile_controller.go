package controller

import (
	"learnpath_backend/internal/service"
	"learnpath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ProfileController 处理学习者档案的API请求

type ProfileController struct {
	ProfileService *service.ProfileService
}

func NewProfileController(profileService *service.ProfileService) *ProfileController {
	return &ProfileController{ProfileService: profileService}
}

// @Summary 获取学习者档案
// @Description 首次访问时自动创建默认档案
// @Tags 档案
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/profile [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	profile, err := c.ProfileService.GetOrCreate(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, profile)
}

// @Summary 更新学习偏好
// @Tags 档案
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.UpdatePreferencesRequest true "偏好设置"
// @Success 200 {object} util.Response
// @Router /api/profile/preferences [put]
func (c *ProfileController) UpdatePreferences(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.UpdatePreferencesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	profile, err := c.ProfileService.UpdatePreferences(user.UserID, req)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, profile)
}

type SetGoalRequest struct {
	GoalID uint `json:"goalId" binding:"required"`
}

// @Summary 选定学习目标
// @Tags 档案
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body SetGoalRequest true "目标"
// @Success 200 {object} util.Response
// @Router /api/profile/goal [put]
func (c *ProfileController) SetGoal(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SetGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	profile, err := c.ProfileService.SetGoal(user.UserID, req.GoalID)
	if err != nil {
		if err == util.ErrGoalNotFound {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, profile)
}
