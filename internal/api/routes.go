package api

import (
	apperrors "github.com/ZanzyTHEbar/voicetracer/internal/errors"
	"github.com/ZanzyTHEbar/voicetracer/internal/ingest"
	"github.com/ZanzyTHEbar/voicetracer/internal/monitoring"
	"github.com/ZanzyTHEbar/voicetracer/internal/security"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/ZanzyTHEbar/voicetracer/docs"
)

const (
	pathAnalyze = "/api/v1/analyze"
	pathMetrics = "/api/v1/metrics"
)

func (s *Server) routes() *gin.Engine {
	r := gin.New()

	// Monitoring first so every request is counted, including rejected ones
	r.Use(monitoring.RequestIDMiddleware())
	r.Use(monitoring.MonitoringMiddleware(s.metrics, s.logger))
	r.Use(monitoring.SecurityMonitoringMiddleware(s.logger))

	r.Use(apperrors.RecoveryHandler())
	r.Use(apperrors.ErrorHandler())

	r.Use(s.security.CORS())
	r.Use(s.security.SecurityHeaders)
	r.Use(s.security.RequestTimeout)

	r.GET("/health", s.handleHealth)
	r.GET("/metrics", s.handleMetrics)
	r.GET("/cache/stats", s.handleCacheStats)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	v1.Use(s.security.RateLimitByIP)
	v1.Use(s.security.ValidateContentType)
	v1.Use(SessionMiddleware())
	v1.Use(s.compression.Handler())

	body := security.LimitBody(s.cfg.Server.MaxBodyBytes)
	cached := s.cache.Middleware(s.metrics, pathAnalyze, pathMetrics)

	v1.POST("/analyze", body, cached, s.handleAnalyze)
	v1.POST("/metrics", body, cached, s.handleDocumentMetrics)
	v1.POST("/ingest", security.LimitBody(ingest.DefaultMaxBytes+multipartOverhead), s.handleIngest)
	v1.POST("/export", body, s.handleExport)

	v1.GET("/calibration", s.handleGetCalibration)
	v1.PUT("/calibration", body, s.handlePutCalibration)
	v1.POST("/calibration/reset", s.handleResetCalibration)

	v1.GET("/benchmarks", s.handleBenchmarks)
	v1.GET("/definitions", s.handleDefinitions)

	return r
}
