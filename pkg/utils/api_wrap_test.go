package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"validation message wins", NewValidationError(ErrInvalidDateRange, "終了日は開始日以降の日付を選択してください"), http.StatusBadRequest, "終了日は開始日以降の日付を選択してください"},
		{"bare sentinel", ErrMissingFields, http.StatusBadRequest, "Required fields are missing"},
		{"wrapped not found", fmt.Errorf("load: %w", ErrTravelNotFound), http.StatusNotFound, "Travel not found"},
		{"forbidden", ErrForbidden, http.StatusForbidden, "Forbidden"},
		{"conflict", ErrEmailAlreadyExists, http.StatusConflict, "Email already exists"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Set("trace_id", "trace-1")

			HandleServiceError(c, tt.err)

			assert.Equal(t, tt.wantCode, w.Code)
			var body APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "error", body.Status)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMsg, body.Message)
			assert.Equal(t, "trace-1", body.TraceID)
		})
	}
}

func TestPasswords(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NoError(t, ComparePasswords(hash, "secret1"))
	assert.Error(t, ComparePasswords(hash, "secret2"))
}
