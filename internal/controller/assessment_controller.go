package controller

import (
	"strconv"

	"learnpath_backend/internal/service"
	"learnpath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	AssessmentService *service.AssessmentService
}

func NewAssessmentController(assessmentService *service.AssessmentService) *AssessmentController {
	return &AssessmentController{AssessmentService: assessmentService}
}

// @Summary 获取测评分类
// @Tags 测评
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/assessments/categories [get]
func (c *AssessmentController) GetCategories(ctx *gin.Context) {
	util.Success(ctx, c.AssessmentService.Categories())
}

// @Summary 获取测评题目
// @Description 题目与选项顺序随机打乱，仅影响呈现
// @Tags 测评
// @Produce json
// @Security ApiKeyAuth
// @Param category path string true "分类"
// @Param count query int false "题目数量"
// @Success 200 {object} util.Response
// @Router /api/assessments/{category}/quiz [get]
func (c *AssessmentController) GetQuiz(ctx *gin.Context) {
	count, _ := strconv.Atoi(ctx.DefaultQuery("count", "10"))

	quiz, err := c.AssessmentService.GetQuiz(ctx.Param("category"), count)
	if err != nil {
		if err == util.ErrCategoryNotFound {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, quiz)
}

// @Summary 提交测评
// @Description 评分并追加到学习者的测评历史
// @Tags 测评
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.SubmitAssessmentRequest true "作答"
// @Success 200 {object} util.Response
// @Router /api/assessments/submit [post]
func (c *AssessmentController) Submit(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.SubmitAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.AssessmentService.Submit(user.UserID, req)
	if err != nil {
		if err == util.ErrCategoryNotFound {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, result)
}
