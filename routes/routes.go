package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"idea-management-api/config"
	"idea-management-api/controllers"
	"idea-management-api/middleware"
	"idea-management-api/models"
	"idea-management-api/services"
)

// SetupRoutes wires services and controllers onto the router. The DB handle
// is injected here; nothing below holds global state.
func SetupRoutes(router *gin.Engine, db *gorm.DB) {
	notifications := services.NewNotificationService(db)
	audit := services.NewAuditService(db)
	ideas := services.NewIdeaService(db, notifications, audit)
	votes := services.NewVoteService(db)
	evaluations := services.NewEvaluationService(db, notifications, audit, config.SendMail)
	stats := services.NewStatsService(db)

	authController := controllers.NewAuthController(db)
	ideaController := controllers.NewIdeaController(ideas, votes)
	voteController := controllers.NewVoteController(votes)
	evaluationController := controllers.NewEvaluationController(evaluations)
	notificationController := controllers.NewNotificationController(notifications)
	activityController := controllers.NewActivityController(audit)
	statsController := controllers.NewStatsController(stats)
	documentController := controllers.NewDocumentController(db)

	api := router.Group("/api")
	{
		// Public routes
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})
		api.POST("/auth/register", authController.Register)
		api.POST("/auth/login", authController.Login)

		// Protected routes (require authentication)
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(db))
		{
			protected.GET("/auth/me", authController.GetProfile)

			ideaRoutes := protected.Group("/ideas")
			{
				ideaRoutes.POST("", ideaController.CreateIdea)
				ideaRoutes.GET("", ideaController.GetIdeas)
				ideaRoutes.GET("/:id", ideaController.GetIdea)
				ideaRoutes.POST("/:id/vote", voteController.ToggleVote)
				ideaRoutes.GET("/:id/votes", voteController.GetVotes)

				// Only admins move ideas into review
				ideaRoutes.PATCH("/:id/status", middleware.RequireRole(models.RoleAdmin), ideaController.UpdateIdeaStatus)
			}

			protected.POST("/evaluations", middleware.RequireRole(models.RoleAdmin), evaluationController.CreateEvaluation)

			notificationRoutes := protected.Group("/notifications")
			{
				notificationRoutes.GET("", notificationController.GetNotifications)
				notificationRoutes.GET("/count", notificationController.GetNotificationCount)
				// read-all before :id so the param route doesn't swallow it
				notificationRoutes.PATCH("/read-all", notificationController.MarkAllNotificationsRead)
				notificationRoutes.PATCH("/:id/read", notificationController.MarkNotificationRead)
			}

			protected.GET("/activities", activityController.GetActivities)
			protected.GET("/stats", middleware.RequireRole(models.RoleAdmin), statsController.GetStats)
			protected.GET("/attachments/:id", documentController.DownloadAttachment)
		}
	}
}
