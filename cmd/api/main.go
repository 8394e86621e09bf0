package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MediBookLabs/clinic-scheduler/internal/app"
	"github.com/MediBookLabs/clinic-scheduler/internal/config"
	dbpkg "github.com/MediBookLabs/clinic-scheduler/internal/db"
	"github.com/MediBookLabs/clinic-scheduler/internal/middleware"
	"github.com/MediBookLabs/clinic-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	db := dbpkg.NewDB(cfg, logger)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middleware.CORSMiddleware())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Doctors portal server is running")
	})

	routes.RegisterRoutes(r, db, cfg, logger)

	logger.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
