package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	traceID := c.GetString("trace_id")
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	traceID := c.GetString("trace_id")
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID,
	})
}

// HandleServiceError maps sentinel service errors onto HTTP codes so every
// controller shares one translation table.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrInvalidBudget),
		errors.Is(err, ErrUnknownDimension),
		errors.Is(err, ErrEmptyAnswer):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrSessionNotFound):
		RespondError(c, http.StatusNotFound, "Session not found")
	case errors.Is(err, ErrQuestionNotFound):
		RespondError(c, http.StatusNotFound, "Question not found")
	case errors.Is(err, ErrRecommendationNotReady):
		RespondError(c, http.StatusNotFound, "Recommendation not available for this session")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
