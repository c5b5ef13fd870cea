package router

import (
	"database/sql"

	"fitness_admin_backend/internal/config"
	"fitness_admin_backend/internal/handlers"
	"fitness_admin_backend/internal/middleware"
	"fitness_admin_backend/internal/repositories"
	"fitness_admin_backend/internal/services"
	"fitness_admin_backend/internal/session"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application. db may be nil when the
// store credential is absent; the store guard keeps any such request from
// reaching a repository.
func Setup(engine *gin.Engine, db *sql.DB, cfg *config.Config) {
	// Repositories
	adminRepo := repositories.NewAdminUserRepository(db)
	clientRepo := repositories.NewClientRepository(db)
	coachRepo := repositories.NewCoachRepository(db)

	// Services
	authService := services.NewAuthService(adminRepo)
	clientService := services.NewClientService(clientRepo, db)
	coachService := services.NewCoachService(coachRepo, db)
	dashboardService := services.NewDashboardService(clientService)

	// Session codec shared by login, the guards and the page handlers
	codec := session.NewJWTCodec(cfg.SessionSecret)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, codec)
	clientHandler := handlers.NewClientHandler(clientService)
	coachHandler := handlers.NewCoachHandler(coachService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	webHandler := handlers.NewWebHandler(codec)

	// API routes. Everything that would touch the store sits behind the
	// config guard; everything with record data also requires a session.
	api := engine.Group("/api")

	api.POST("/auth/logout", authHandler.Logout)

	storeBacked := api.Group("")
	storeBacked.Use(middleware.RequireStore(cfg.StoreConfigured()))
	{
		storeBacked.POST("/auth/login", authHandler.Login)

		protected := storeBacked.Group("")
		protected.Use(middleware.RequireSession(codec))
		{
			SetupClientRoutes(protected, clientHandler)
			SetupCoachRoutes(protected, coachHandler)
			SetupDashboardRoutes(protected, dashboardHandler)
		}
	}

	// Admin pages
	engine.GET("/", webHandler.Root)
	engine.GET("/login", webHandler.LoginPage)

	admin := engine.Group("/admin")
	admin.Use(middleware.PageGuard(codec))
	{
		admin.GET("", webHandler.Dashboard)
		admin.GET("/clients", webHandler.Clients)
		admin.GET("/coaches", webHandler.Coaches)
	}
}
