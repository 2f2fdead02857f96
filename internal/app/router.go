package app

import (
	"learnpath_backend/docs"
	"learnpath_backend/internal/config"
	"learnpath_backend/internal/middleware"
	"learnpath_backend/internal/model"
	"learnpath_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.Health)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	// 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/me", c.auth.Me)

		// 学习画像
		authGroup.GET("/profile", c.profile.GetProfile)
		authGroup.PUT("/profile/preferences", c.profile.UpdatePreferences)
		authGroup.PUT("/profile/goal", c.profile.SetGoal)

		// 学习目标
		authGroup.GET("/goals", c.goal.ListGoals)
		authGroup.GET("/goals/:id", c.goal.GetGoal)

		// 测评
		authGroup.GET("/assessments/categories", c.assessment.GetCategories)
		authGroup.GET("/assessments/:category/quiz", c.assessment.GetQuiz)
		authGroup.POST("/assessments/submit", c.assessment.Submit)

		// 学习路径
		authGroup.POST("/pathways", c.pathway.Generate)
		authGroup.GET("/pathways", c.pathway.ListMine)
		authGroup.GET("/pathways/:id", c.pathway.Get)
		authGroup.POST("/pathways/:id/resources/complete", c.pathway.CompleteResource)
		authGroup.POST("/pathways/:id/quiz/complete", c.pathway.CompleteQuiz)
		authGroup.POST("/pathways/:id/pause", c.pathway.Pause)
		authGroup.POST("/pathways/:id/resume", c.pathway.Resume)
		authGroup.POST("/pathways/:id/recommendations", c.pathway.RegenerateRecommendations)

		// 首页
		authGroup.GET("/dashboard", c.dashboard.GetDashboard)

		// 教师/管理员接口
		teacherGroup := authGroup.Group("")
		teacherGroup.Use(middleware.RoleMiddleware(model.Teacher, model.Admin))
		{
			teacherGroup.POST("/goals", c.goal.CreateGoal)
			teacherGroup.PUT("/goals/:id", c.goal.UpdateGoal)
			teacherGroup.DELETE("/goals/:id", c.goal.DeleteGoal)
			teacherGroup.POST("/content/attachments", c.content.UploadAttachment)
			teacherGroup.DELETE("/content/attachments", c.content.DeleteAttachment)
		}
	}
}
