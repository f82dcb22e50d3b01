package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/numduration/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/numduration/internal/domain/usecase/conversion"
	"github.com/amirhossein-jamali/numduration/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/numduration/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/numduration/mocks/port/core"
)

type failingConversion struct {
	usecase.ConversionUseCase
}

func (failingConversion) Convert(context.Context, usecase.ConvertRequest) (*usecase.ConvertResult, error) {
	return nil, errors.New("boom")
}

func TestInstrumentConversion(t *testing.T) {
	m := New()
	svc := InstrumentConversion(conversion.NewService(timeProvider.NewRealTimeProvider(), logger.NewNoopLogger()), m)
	ctx := context.Background()

	_, err := svc.Convert(ctx, usecase.ConvertRequest{Value: "1", Unit: "hour"})
	require.NoError(t, err)
	_, err = svc.Convert(ctx, usecase.ConvertRequest{Value: "9223372036854775807", Unit: "week"})
	require.Error(t, err)
	_, err = svc.Convert(ctx, usecase.ConvertRequest{Value: "1", Unit: "month"})
	require.Error(t, err)
	_, err = svc.Shift(ctx, usecase.ShiftRequest{Value: "2", Unit: "day"})
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.conversions.WithLabelValues("convert", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.conversions.WithLabelValues("convert", OutcomeOverflow)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.conversions.WithLabelValues("convert", OutcomeClientError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.conversions.WithLabelValues("shift", OutcomeOK)))
	assert.Len(t, svc.Units(ctx), 8)

	failing := InstrumentConversion(failingConversion{}, m)
	_, err = failing.Convert(ctx, usecase.ConvertRequest{})
	require.Error(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.conversions.WithLabelValues("convert", OutcomeError)))
}

func TestMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()

	router := gin.New()
	router.Use(m.Middleware(timeProvider.NewRealTimeProvider()))
	router.GET("/v1/durations/:unit/:value", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/metrics", gin.WrapH(m.Handler()))

	for _, path := range []string{"/v1/durations/hour/1", "/v1/durations/day/2", "/nowhere"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestCounter.WithLabelValues("GET", "/v1/durations/:unit/:value", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestCounter.WithLabelValues("GET", "unmatched", "404")))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, "numduration_api_requests_total"))
	assert.True(t, strings.Contains(body, "go_goroutines"))
}

func TestMiddlewareUsesInjectedClock(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()

	clock := core.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC))
	clock.EXPECT().Since(mock.Anything).Return(250 * time.Millisecond)

	router := gin.New()
	router.Use(m.Middleware(clock))
	router.GET("/v1/units", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/units", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	var found bool
	for _, mf := range families {
		if mf.GetName() != "numduration_api_request_duration_seconds" {
			continue
		}
		found = true
		require.Len(t, mf.GetMetric(), 1)
		h := mf.GetMetric()[0].GetHistogram()
		assert.Equal(t, uint64(2), h.GetSampleCount())
		assert.InDelta(t, 0.5, h.GetSampleSum(), 1e-9)
	}
	assert.True(t, found)
}

func TestNewUsesIsolatedRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New()
		New()
	})
	assert.NotSame(t, New().Registry(), New().Registry())
}
