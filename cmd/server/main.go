package main

import (
	"database/sql"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"fitness_admin_backend/internal/config"
	"fitness_admin_backend/internal/database"
	"fitness_admin_backend/internal/router"
	"fitness_admin_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	utils.InitLogger()

	// .env is optional; real deployments configure the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	var db *sql.DB
	if !cfg.StoreConfigured() {
		// Degraded mode: the server still comes up, but data endpoints
		// answer a configuration error without attempting a connection.
		utils.LogError(errors.New("DB_PASSWORD is not set"),
			"Database credential missing; data endpoints disabled")
	} else {
		var err error
		db, err = database.Open(cfg.DSN(), cfg.DBSchemaPath)
		if err != nil {
			utils.LogError(err, "Failed to initialize database")
			log.Fatalf("Failed to initialize database: %v", err)
		}
		utils.LogInfo("Database initialized", map[string]interface{}{"host": cfg.DBHost, "db": cfg.DBName})
	}

	engine := gin.New()
	engine.Use(utils.GinLogger())
	engine.Use(utils.Recovery())

	var allowedOrigins []string
	if cfg.CORSOrigins != "" {
		allowedOrigins = strings.Split(cfg.CORSOrigins, ",")
	} else {
		allowedOrigins = []string{"http://localhost:3000", "http://localhost:8080"}
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = allowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowCredentials = true
	engine.Use(cors.New(corsConfig))

	engine.LoadHTMLGlob("web/templates/*.html")
	engine.Static("/static", "web/static")

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.Setup(engine, db, cfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	utils.LogInfo("Server starting", map[string]interface{}{"port": cfg.Port})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}
