package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/service"
)

// SetupRoutes maps every API facade method to one REST endpoint under /api/v1.
func SetupRoutes(router *gin.Engine, client *service.Client) {
	authHandler := NewAuthHandler(client.Auth)
	planHandler := NewPlanHandler(client.Plans)
	userHandler := NewUserHandler(client.Users)
	programHandler := NewProgramHandler(client.Programs)
	progressHandler := NewProgressHandler(client.Progress)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/signup", authHandler.Signup)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/logout", authHandler.Logout)
			authGroup.GET("/me", authHandler.Me)
		}

		planGroup := apiV1.Group("/plans")
		{
			planGroup.GET("", planHandler.GetPlans)
			planGroup.POST("", planHandler.CreatePlan)
			planGroup.GET("/:id", planHandler.GetPlan)
			planGroup.PATCH("/:id", planHandler.UpdatePlan)
			planGroup.DELETE("/:id", planHandler.DeletePlan)
			planGroup.GET("/:id/workouts", programHandler.GetWorkouts)
			planGroup.POST("/:id/workouts", programHandler.AddWorkout)
			planGroup.GET("/:id/diet", programHandler.GetDiet)
			planGroup.POST("/:id/diet", programHandler.AddDietPlan)
		}

		trainerGroup := apiV1.Group("/trainers/:trainerId")
		{
			trainerGroup.GET("/plans", planHandler.GetTrainerPlans)
			trainerGroup.POST("/plan-images", planHandler.CreatePlanImageUpload)
		}

		userGroup := apiV1.Group("/users/:userId")
		{
			userGroup.PUT("/following/:trainerId", userHandler.Follow)
			userGroup.DELETE("/following/:trainerId", userHandler.Unfollow)
			userGroup.GET("/subscriptions", userHandler.GetSubscriptions)
			userGroup.POST("/subscriptions", userHandler.Subscribe)
			userGroup.GET("/progress", progressHandler.GetProgress)
			userGroup.POST("/progress", progressHandler.RecordProgress)
		}
	}
}
