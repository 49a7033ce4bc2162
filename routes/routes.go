package routes

import (
	"time"

	"nutriplan/controllers"
	"nutriplan/middlewares"
	"nutriplan/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	hub := services.NewRealtimeHub()
	planSvc := services.NewMealPlanService(hub)
	planCtl := controllers.NewMealPlanController(planSvc)
	rtCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected routes
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/profile", controllers.GetProfile)
		api.PUT("/profile", controllers.UpdateProfile)
		api.POST("/onboarding", controllers.CompleteOnboarding)
		api.DELETE("/account", controllers.DeleteAccount)

		api.GET("/activity-levels", controllers.GetActivityLevels)
		api.GET("/targets", controllers.GetDailyTargets)
		api.GET("/targets/protein", controllers.GetRecommendedProtein)

		api.POST("/meal-plans", planCtl.GeneratePlan)
		api.GET("/meal-plans", planCtl.ListPlans)
		api.GET("/meal-plans/:id", planCtl.GetPlan)

		api.GET("/ws", rtCtl.EventsWS)
	}

	return r
}
