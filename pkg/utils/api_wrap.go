package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	RespondWithCode(c, http.StatusOK, data, message)
}

func RespondWithCode(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

var serviceErrors = []struct {
	err     error
	code    int
	message string
}{
	{ErrMissingFields, http.StatusBadRequest, "Required fields are missing"},
	{ErrInvalidDateRange, http.StatusBadRequest, "Invalid date range"},
	{ErrStartDateInPast, http.StatusBadRequest, "Start date must be today or later"},
	{ErrInvalidInput, http.StatusBadRequest, "Invalid input"},
	{ErrWeakPassword, http.StatusBadRequest, "Password must be at least 6 characters"},
	{ErrTravelNotFound, http.StatusNotFound, "Travel not found"},
	{ErrNotFound, http.StatusNotFound, "Record not found"},
	{ErrAccountNotFound, http.StatusNotFound, "Account not found"},
	{ErrForbidden, http.StatusForbidden, "Forbidden"},
	{ErrUnauthorized, http.StatusUnauthorized, "Unauthorized"},
	{ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{ErrEmailAlreadyExists, http.StatusConflict, "Email already exists"},
}

// HandleServiceError maps sentinel errors to HTTP responses. The wrapped
// error text is appended for validation failures so callers see which rule
// tripped.
func HandleServiceError(c *gin.Context, err error) {
	for _, se := range serviceErrors {
		if errors.Is(err, se.err) {
			msg := se.message
			if se.code == http.StatusBadRequest && err.Error() != se.err.Error() {
				msg = err.Error()
			}
			RespondError(c, se.code, msg)
			return
		}
	}

	fields := []zap.Field{zap.Error(err), zap.String("trace_id", c.GetString("trace_id"))}
	if errors.Is(err, ErrDatabaseError) {
		zap.L().Error("Database error", fields...)
	} else {
		zap.L().Error("Unknown error", fields...)
	}
	RespondError(c, http.StatusInternalServerError, "Internal server error")
}
