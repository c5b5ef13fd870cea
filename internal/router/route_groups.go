package router

import (
	"fitness_admin_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupClientRoutes sets up the client CRUD routes.
func SetupClientRoutes(group *gin.RouterGroup, clientHandler *handlers.ClientHandler) {
	clientRoutes := group.Group("/clients")
	{
		clientRoutes.GET("", clientHandler.GetClients)
		clientRoutes.POST("", clientHandler.CreateClient)
		clientRoutes.PUT("/:id", clientHandler.UpdateClient)
		clientRoutes.DELETE("/:id", clientHandler.DeleteClient)
	}
}

// SetupCoachRoutes sets up the coach CRUD routes.
func SetupCoachRoutes(group *gin.RouterGroup, coachHandler *handlers.CoachHandler) {
	coachRoutes := group.Group("/coaches")
	{
		coachRoutes.GET("", coachHandler.GetCoaches)
		coachRoutes.POST("", coachHandler.CreateCoach)
		coachRoutes.PUT("/:id", coachHandler.UpdateCoach)
		coachRoutes.DELETE("/:id", coachHandler.DeleteCoach)
	}
}

// SetupDashboardRoutes sets up the dashboard aggregate route.
func SetupDashboardRoutes(group *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler) {
	group.GET("/dashboard", dashboardHandler.GetStats)
}
