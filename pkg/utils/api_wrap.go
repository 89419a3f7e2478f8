package utils

import (
	"errors"
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
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

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEmptyDestination),
		errors.Is(err, ErrInvalidDateFormat),
		errors.Is(err, ErrInvalidDateRange):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrCityNotFound):
		RespondError(c, http.StatusNotFound, "City code not found")
	case errors.Is(err, ErrProviderFailure):
		log.Printf("Provider error: %v", err)
		RespondError(c, http.StatusBadGateway, "Upstream provider unavailable")
	case errors.Is(err, ErrUnexpectedAIOutput):
		log.Printf("AI output error: %v", err)
		RespondError(c, http.StatusBadGateway, "AI service returned an unusable response")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
