// Package handler contains HTTP handlers for the API.
package handler

import (
	"errors"
	"net/http"

	"github.com/Alex-Leontaridis/GovAid-AI/internal/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// errorResponse is the body of every failed request.
type errorResponse struct {
	Error   string   `json:"error"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// ErrorTranslator maps pipeline failures onto HTTP responses. It matches
// the closed error-kind set exhaustively; anything that reaches it
// without a kind is an internal error. Non-500 details are always
// surfaced; 500-class internal detail only leaves the process in
// development mode.
type ErrorTranslator struct {
	development bool
	logger      *zap.Logger
}

// NewErrorTranslator creates an ErrorTranslator.
func NewErrorTranslator(development bool, logger *zap.Logger) *ErrorTranslator {
	return &ErrorTranslator{
		development: development,
		logger:      logger.Named("errors"),
	}
}

// Respond writes the translated error to the client and logs the full
// internal detail server-side.
func (t *ErrorTranslator) Respond(c *gin.Context, err error) {
	kind := domain.KindOf(err)

	t.logger.Error("request failed",
		zap.String("kind", kind.String()),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)

	var pe *domain.PipelineError
	errors.As(err, &pe)

	switch kind {
	case domain.KindValidation:
		resp := errorResponse{Error: "Validation failed", Message: "Request payload is invalid"}
		if pe != nil {
			resp.Details = pe.Details
			if len(pe.Details) > 0 {
				resp.Message = pe.Details[0]
			}
		}
		c.JSON(http.StatusBadRequest, resp)

	case domain.KindNetwork, domain.KindNotFound:
		c.JSON(http.StatusNotFound, errorResponse{
			Error:   "Not Found",
			Message: err.Error(),
		})

	case domain.KindTimeout:
		c.JSON(http.StatusRequestTimeout, errorResponse{
			Error:   "Request Timeout",
			Message: "The request took too long to complete",
		})

	case domain.KindHTTPStatus:
		c.JSON(http.StatusBadGateway, errorResponse{
			Error:   "Upstream Error",
			Message: err.Error(),
		})

	case domain.KindUnsupportedType:
		c.JSON(http.StatusBadRequest, errorResponse{
			Error:   "Unsupported file type",
			Message: "Please upload a PDF or Word document",
		})

	case domain.KindEmptyContent:
		c.JSON(http.StatusBadRequest, errorResponse{
			Error:   "No text extracted",
			Message: "Could not extract meaningful text from the source",
		})

	case domain.KindUpstream:
		resp := errorResponse{
			Error:   "AI Service Error",
			Message: "Failed to process request with AI service. Please try again.",
		}
		if t.development {
			resp.Details = []string{err.Error()}
		}
		c.JSON(http.StatusInternalServerError, resp)

	default:
		resp := errorResponse{
			Error:   "Server Error",
			Message: "An unexpected error occurred",
		}
		if t.development {
			resp.Details = []string{err.Error()}
		}
		c.JSON(http.StatusInternalServerError, resp)
	}
}

// badRequest is a shortcut for malformed request bodies caught before
// schema validation.
func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, errorResponse{
		Error:   "Validation failed",
		Message: message,
	})
}
