package controller

import (
	"strconv"

	"learnpath_backend/internal/model"
	"learnpath_backend/internal/service"
	"learnpath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// GoalController 处理课程目录（学习目标）的API请求

type GoalController struct {
	GoalService *service.GoalService
}

func NewGoalController(goalService *service.GoalService) *GoalController {
	return &GoalController{GoalService: goalService}
}

// @Summary 获取目标列表
// @Tags 学习目标
// @Produce json
// @Security ApiKeyAuth
// @Param category query string false "学科分类"
// @Param level query string false "难度等级"
// @Param page query int false "页码"
// @Param limit query int false "每页数量"
// @Success 200 {object} util.Response
// @Router /api/goals [get]
func (c *GoalController) ListGoals(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	goals, total, err := c.GoalService.ListGoals(
		ctx.Query("category"),
		model.GoalLevel(ctx.Query("level")),
		page, limit,
	)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: goals, Total: total, Page: page, Limit: limit})
}

// @Summary 获取目标详情
// @Tags 学习目标
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "目标ID"
// @Success 200 {object} util.Response
// @Router /api/goals/{id} [get]
func (c *GoalController) GetGoal(ctx *gin.Context) {
	goal, err := c.GoalService.GetGoal(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if err == util.ErrGoalNotFound {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, goal)
}

// @Summary 创建学习目标
// @Tags 学习目标
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.GoalRequest true "目标定义"
// @Success 201 {object} util.Response
// @Router /api/goals [post]
func (c *GoalController) CreateGoal(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.GoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	goal, err := c.GoalService.CreateGoal(user.UserID, req)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Created(ctx, goal)
}

// @Summary 更新学习目标
// @Tags 学习目标
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "目标ID"
// @Param body body service.GoalRequest true "目标定义"
// @Success 200 {object} util.Response
// @Router /api/goals/{id} [put]
func (c *GoalController) UpdateGoal(ctx *gin.Context) {
	var req service.GoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	goal, err := c.GoalService.UpdateGoal(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		if err == util.ErrGoalNotFound {
			util.NotFound(ctx)
			return
		}
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, goal)
}

// @Summary 删除学习目标
// @Tags 学习目标
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "目标ID"
// @Success 200 {object} util.Response
// @Router /api/goals/{id} [delete]
func (c *GoalController) DeleteGoal(ctx *gin.Context) {
	if err := c.GoalService.DeleteGoal(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
