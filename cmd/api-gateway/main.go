package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/mentoraqua/guardianes-api/api/swagger"
	"github.com/mentoraqua/guardianes-api/internal/handler"
	"github.com/mentoraqua/guardianes-api/internal/middleware"
	"github.com/mentoraqua/guardianes-api/internal/repository"
	"github.com/mentoraqua/guardianes-api/internal/service"
	"github.com/mentoraqua/guardianes-api/pkg/cache"
	"github.com/mentoraqua/guardianes-api/pkg/config"
	"github.com/mentoraqua/guardianes-api/pkg/database"
	"github.com/mentoraqua/guardianes-api/pkg/logger"
	corsmiddleware "github.com/mentoraqua/guardianes-api/pkg/middleware/cors"
	reqidmiddleware "github.com/mentoraqua/guardianes-api/pkg/middleware/requestid"
	"github.com/mentoraqua/guardianes-api/pkg/storage"
)

// @title Guardianes del Agua API
// @version 1.0.0
// @description Mission tracker for the water-conservation classroom project
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("postgres connection failed", "error", err)
	}
	defer db.Close() //nolint:errcheck

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Fatalw("redis connection failed", "error", err)
	}
	defer redisClient.Close() //nolint:errcheck

	uploadStore, err := storage.NewLocalStorage(cfg.Uploads.StorageDir)
	if err != nil {
		logr.Sugar().Fatalw("uploads directory unavailable", "error", err)
	}

	progressRepo := repository.NewProgressRepository(redisClient, logr)
	rosterRepo := repository.NewRosterRepository(db)

	metricsSvc := service.NewMetricsService()
	progressSvc := service.NewProgressService(progressRepo, cfg.Review.AccessCode, logr)
	rosterSvc := service.NewRosterService(rosterRepo, progressSvc, nil, logr)
	reviewSvc := service.NewReviewService(progressRepo, logr)
	uploadSvc := service.NewUploadService(uploadStore, cfg.Uploads, logr)
	feedbackSvc := service.NewFeedbackService(cfg.Feedback, nil, logr)

	rosterHandler := handler.NewRosterHandler(rosterSvc)
	progressHandler := handler.NewProgressHandler(progressSvc, metricsSvc)
	reviewHandler := handler.NewReviewHandler(reviewSvc, progressSvc, metricsSvc)
	uploadHandler := handler.NewUploadHandler(uploadSvc, metricsSvc, cfg.Uploads.MaxFileSizeBytes)
	feedbackHandler := handler.NewFeedbackHandler(feedbackSvc, metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "db unavailable"})
			return
		}
		if err := redisClient.Ping(c.Request.Context()).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "redis unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))
	r.Static("/uploads", uploadStore.BaseDir())

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		roster := api.Group("/roster")
		roster.GET("/groups", rosterHandler.Groups)
		roster.POST("/login", rosterHandler.Login)

		teams := api.Group("/teams/:teamId")
		teams.GET("/progress", progressHandler.Get)
		teams.PUT("/modules/:moduleId/draft", progressHandler.SaveDraft)
		teams.POST("/modules/:moduleId/complete", progressHandler.Complete)
		teams.POST("/submit", progressHandler.Submit)
		teams.POST("/project", progressHandler.SelectProject)
		teams.POST("/session/finish", progressHandler.FinishSession)

		api.POST("/uploads", uploadHandler.Upload)
		api.POST("/feedback", feedbackHandler.Request)

		review := api.Group("/review")
		review.POST("/verify", reviewHandler.Verify)

		protected := review.Group("")
		protected.Use(middleware.AccessCode(progressSvc))
		protected.GET("/teams", reviewHandler.Teams)
		protected.GET("/teams/:teamId", reviewHandler.TeamDetail)
		protected.POST("/teams/:teamId/approve", reviewHandler.Approve)
		protected.POST("/teams/:teamId/reject", reviewHandler.Reject)
		protected.GET("/sessions", reviewHandler.Sessions)
		protected.GET("/sessions/export", reviewHandler.ExportSessions)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
