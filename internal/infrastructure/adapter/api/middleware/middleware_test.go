package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainerr "github.com/amirhossein-jamali/numduration/internal/domain/error"
	"github.com/amirhossein-jamali/numduration/internal/infrastructure/adapter/api/dto"
	timeProvider "github.com/amirhossein-jamali/numduration/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/numduration/mocks/port/core"
)

func TestErrorHandler_RecoversPanics(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockLogger := core.NewMockLogger(t)
	mockLogger.EXPECT().Error("Panic recovered in API request", mock.Anything).Return()

	router := gin.New()
	router.Use(ErrorHandler(mockLogger))
	router.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domainerr.CodeInternalServer, resp.Code)
	assert.Equal(t, "internal", resp.Error)
}

func TestLogger_RecordsRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockLogger := core.NewMockLogger(t)
	mockLogger.EXPECT().Warn("Request rejected", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["status"] == http.StatusTeapot &&
			fields["route"] == "/v1/units" &&
			fields["status_text"] == "Client Error"
	})).Return()
	mockLogger.EXPECT().Info("Request processed", mock.Anything).Return().Once()

	router := gin.New()
	router.Use(Logger(mockLogger, timeProvider.NewRealTimeProvider()))
	router.GET("/v1/units", func(c *gin.Context) { c.Status(http.StatusTeapot) })
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/units", nil))
	assert.Equal(t, http.StatusTeapot, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, "Informational", statusText(101))
	assert.Equal(t, "Success", statusText(200))
	assert.Equal(t, "Redirect", statusText(302))
	assert.Equal(t, "Client Error", statusText(422))
	assert.Equal(t, "Server Error", statusText(500))
}
