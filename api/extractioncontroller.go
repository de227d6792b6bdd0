package api

import (
	"errors"
	"log"
	"net/http"

	"notesbot/extraction"

	"github.com/gin-gonic/gin"
)

// RegisterExtractionRoutes registers action-item extraction endpoints.
func RegisterExtractionRoutes(r *gin.Engine, extractor *extraction.Extractor) {
	r.POST("/api/extract-action-items", handleExtract(extractor))
}

// ExtractRequest represents the incoming extraction request.
// Notes is untyped so the validator can reject non-string payloads with a
// specific message instead of a generic bind failure.
type ExtractRequest struct {
	Notes any `json:"notes"`
}

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleExtract runs the extraction pipeline for a single request.
// POST /api/extract-action-items
// Expects: {"notes": "..."} JSON in request body
// Returns: ExtractionResult JSON, or a classified error body
func handleExtract(extractor *extraction.Extractor) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ExtractRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON payload"})
			return
		}

		result, err := extractor.Extract(c.Request.Context(), req.Notes)
		if err != nil {
			status, body := classifyError(err)
			if status >= http.StatusInternalServerError {
				log.Printf("extract-action-items failed: %v", err)
			}
			c.JSON(status, body)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// classifyError maps a pipeline failure onto a status code and user-facing
// body. Server-side faults get generic messages (never internal error text
// or credential details); validation faults keep their specific message so
// callers can fix their input.
func classifyError(err error) (int, ErrorResponse) {
	var perr *extraction.Error
	if !errors.As(err, &perr) {
		return http.StatusInternalServerError, ErrorResponse{Error: "Failed to process meeting notes"}
	}

	switch perr.Kind {
	case extraction.KindInvalidInput:
		return http.StatusBadRequest, ErrorResponse{Error: perr.Message}
	case extraction.KindAuth:
		return http.StatusInternalServerError, ErrorResponse{Error: "API configuration error"}
	case extraction.KindRateLimit:
		return http.StatusTooManyRequests, ErrorResponse{Error: "Too many requests, please retry shortly"}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: "Failed to process meeting notes"}
	}
}
