package controller

import (
	"learnpath_backend/internal/model"
	"learnpath_backend/internal/service"
	"learnpath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// PathwayController 处理个性化学习路径的API请求

type PathwayController struct {
	PathwayService *service.PathwayService
}

func NewPathwayController(pathwayService *service.PathwayService) *PathwayController {
	return &PathwayController{PathwayService: pathwayService}
}

type GeneratePathwayRequest struct {
	GoalID uint `json:"goalId" binding:"required"`
}

// @Summary 生成学习路径
// @Description 根据档案与目标生成个性化路径；同一目标已有未完成路径时返回 409
// @Tags 学习路径
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body GeneratePathwayRequest true "目标"
// @Success 201 {object} util.Response
// @Router /api/pathways [post]
func (c *PathwayController) Generate(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req GeneratePathwayRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	pathway, err := c.PathwayService.GeneratePathway(user.UserID, req.GoalID)
	if err != nil {
		switch err {
		case util.ErrProfileNotFound, util.ErrGoalNotFound:
			util.NotFound(ctx)
		case util.ErrPathwayConflict:
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, pathway)
}

// @Summary 我的学习路径
// @Tags 学习路径
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/pathways [get]
func (c *PathwayController) ListMine(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	pathways, err := c.PathwayService.ListUserPathways(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, pathways)
}

// @Summary 路径详情
// @Tags 学习路径
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "路径ID"
// @Success 200 {object} util.Response
// @Router /api/pathways/{id} [get]
func (c *PathwayController) Get(ctx *gin.Context) {
	pathway, ok := c.fetchOwned(ctx)
	if !ok {
		return
	}
	util.Success(ctx, pathway)
}

type CompleteResourceRequest struct {
	ModuleIndex int    `json:"moduleIndex" binding:"min=0"`
	ResourceID  string `json:"resourceId" binding:"required"`
}

// @Summary 标记资源完成
// @Tags 学习路径
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "路径ID"
// @Param body body CompleteResourceRequest true "资源"
// @Success 200 {object} util.Response
// @Router /api/pathways/{id}/resources/complete [post]
func (c *PathwayController) CompleteResource(ctx *gin.Context) {
	if ok := c.assertOwned(ctx); !ok {
		return
	}

	var req CompleteResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	pathway, err := c.PathwayService.CompleteResource(ctx.Param("id"), req.ModuleIndex, req.ResourceID)
	if err != nil {
		c.writeProgressError(ctx, err)
		return
	}

	util.Success(ctx, pathway)
}

type CompleteQuizRequest struct {
	ModuleIndex int `json:"moduleIndex" binding:"min=0"`
	Score       int `json:"score" binding:"min=0,max=100"`
}

// @Summary 记录模块测验结果
// @Tags 学习路径
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "路径ID"
// @Param body body CompleteQuizRequest true "测验结果"
// @Success 200 {object} util.Response
// @Router /api/pathways/{id}/quiz/complete [post]
func (c *PathwayController) CompleteQuiz(ctx *gin.Context) {
	if ok := c.assertOwned(ctx); !ok {
		return
	}

	var req CompleteQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	pathway, err := c.PathwayService.CompleteQuiz(ctx.Param("id"), req.ModuleIndex, req.Score)
	if err != nil {
		c.writeProgressError(ctx, err)
		return
	}

	util.Success(ctx, pathway)
}

// @Summary 暂停路径
// @Tags 学习路径
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "路径ID"
// @Success 200 {object} util.Response
// @Router /api/pathways/{id}/pause [post]
func (c *PathwayController) Pause(ctx *gin.Context) {
	if ok := c.assertOwned(ctx); !ok {
		return
	}

	pathway, err := c.PathwayService.Pause(ctx.Param("id"))
	if err != nil {
		c.writeProgressError(ctx, err)
		return
	}
	util.Success(ctx, pathway)
}

// @Summary 恢复路径
// @Tags 学习路径
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "路径ID"
// @Success 200 {object} util.Response
// @Router /api/pathways/{id}/resume [post]
func (c *PathwayController) Resume(ctx *gin.Context) {
	if ok := c.assertOwned(ctx); !ok {
		return
	}

	pathway, err := c.PathwayService.Resume(ctx.Param("id"))
	if err != nil {
		c.writeProgressError(ctx, err)
		return
	}
	util.Success(ctx, pathway)
}

// @Summary 重建自适应建议
// @Description 针对当前模块重新生成建议并返回最新路径
// @Tags 学习路径
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "路径ID"
// @Success 200 {object} util.Response
// @Router /api/pathways/{id}/recommendations [post]
func (c *PathwayController) RegenerateRecommendations(ctx *gin.Context) {
	pathway, ok := c.fetchOwned(ctx)
	if !ok {
		return
	}

	if err := c.PathwayService.GenerateRecommendations(pathway); err != nil {
		c.writeProgressError(ctx, err)
		return
	}
	util.Success(ctx, pathway)
}

func (c *PathwayController) writeProgressError(ctx *gin.Context, err error) {
	switch err {
	case util.ErrPathwayNotFound:
		util.NotFound(ctx)
	case util.ErrPathwayCompleted, util.ErrModuleLocked:
		util.Conflict(ctx, err.Error())
	default:
		util.BadRequest(ctx, err.Error())
	}
}

// fetchOwned 读取路径并校验归属；失败时响应已写入
func (c *PathwayController) fetchOwned(ctx *gin.Context) (*model.Pathway, bool) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return nil, false
	}

	pathway, err := c.PathwayService.GetPathway(ctx.Param("id"))
	if err != nil {
		if err == util.ErrPathwayNotFound {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return nil, false
	}

	if pathway.UserID != user.UserID && user.Role != model.Admin {
		util.Forbidden(ctx)
		return nil, false
	}
	return pathway, true
}

func (c *PathwayController) assertOwned(ctx *gin.Context) bool {
	_, ok := c.fetchOwned(ctx)
	return ok
}
