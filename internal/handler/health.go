// Package handler contains HTTP handlers for the API.
package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles health and discovery requests.
type HealthHandler struct{}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Health processes GET /api/health requests.
func (h *HealthHandler) Health(c *gin.Context) {
	respondData(c, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "GovAid-AI Backend",
	})
}

// Welcome processes GET / requests.
func (h *HealthHandler) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Welcome to GovAid-AI API",
		"version": "1.0.0",
		"endpoints": gin.H{
			"health":          "/api/health",
			"docs":            "/api/endpoints",
			"extractText":     "POST /api/extract-text",
			"summarize":       "POST /api/summarize",
			"checklist":       "POST /api/checklist",
			"analyzeUrl":      "POST /api/analyze-url",
			"askQuestion":     "POST /api/ask-question",
			"uploadFile":      "POST /api/upload-file",
			"uploadDocument":  "POST /api/upload-document",
			"processDocument": "POST /api/process-document",
		},
	})
}

// endpointInfo describes one route in the catalog.
type endpointInfo struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

// Endpoints processes GET /api/endpoints requests.
func (h *HealthHandler) Endpoints(c *gin.Context) {
	respondData(c, gin.H{
		"endpoints": []endpointInfo{
			{Method: "GET", Path: "/api/health", Description: "Health check"},
			{Method: "GET", Path: "/api/endpoints", Description: "List all endpoints"},
			{Method: "POST", Path: "/api/extract-text", Description: "Extract text from URL"},
			{Method: "POST", Path: "/api/summarize", Description: "Generate policy summary"},
			{Method: "POST", Path: "/api/checklist", Description: "Generate eligibility checklist"},
			{Method: "POST", Path: "/api/analyze-url", Description: "Complete URL analysis"},
			{Method: "POST", Path: "/api/ask-question", Description: "Ask question about policy"},
			{Method: "POST", Path: "/api/process-document", Description: "Analyze raw policy text"},
			{Method: "POST", Path: "/api/upload-file", Description: "Upload and extract from files"},
			{Method: "POST", Path: "/api/upload-document", Description: "Upload, analyze and translate a document"},
		},
	})
}
