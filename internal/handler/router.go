// Package handler contains HTTP handlers for the API.
package handler

import (
	"net/http"

	"github.com/Alex-Leontaridis/GovAid-AI/internal/config"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter assembles the gin engine with middleware and all routes.
func NewRouter(
	cfg *config.Config,
	policy *PolicyHandler,
	upload *UploadHandler,
	health *HealthHandler,
	logger *zap.Logger,
) *gin.Engine {
	router := gin.New()
	router.MaxMultipartMemory = cfg.Upload.MaxSize

	router.Use(RecoveryMiddleware(logger))
	router.Use(RequestIDMiddleware())
	router.Use(LoggingMiddleware(logger))
	router.Use(CORSMiddleware())
	router.Use(RateLimitMiddleware(cfg.RateLimit.Window, cfg.RateLimit.MaxRequests))

	router.GET("/", health.Welcome)

	api := router.Group("/api")
	{
		api.GET("/health", health.Health)
		api.GET("/endpoints", health.Endpoints)

		api.POST("/extract-text", policy.ExtractText)
		api.POST("/summarize", policy.Summarize)
		api.POST("/checklist", policy.Checklist)
		api.POST("/analyze-url", policy.AnalyzeURL)
		api.POST("/ask-question", policy.AskQuestion)
		api.POST("/process-document", policy.ProcessDocument)

		api.POST("/upload-file", upload.UploadFile)
		api.POST("/upload-document", upload.UploadDocument)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, errorResponse{
			Error:   "Not Found",
			Message: "Route " + c.Request.URL.Path + " not found",
		})
	})

	return router
}
