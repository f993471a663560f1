package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"costmanager/internal/logger"
	"costmanager/internal/mock"
	"costmanager/internal/service"
	"costmanager/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newLoggingTestHandler(t *testing.T, next http.Handler) (http.Handler, *mock.MockLogService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	logs := mock.NewMockLogService(ctrl)

	h := NewHandler(&service.Services{LogService: logs}, logger.Nop())
	return h.withLogging(next), logs
}

func TestWithLogging_PersistsRecord(t *testing.T) {
	wrapped, logs := newLoggingTestHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	var recorded models.LogRecord
	logs.EXPECT().Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record models.LogRecord) error {
			recorded = record
			return nil
		})

	req := httptest.NewRequest(http.MethodPost, "/api/costs", nil)
	req.Host = "localhost:8080"

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	assert.Equal(t, "POST", recorded.Method)
	assert.Equal(t, "/api/costs", recorded.Path)
	assert.Equal(t, 8080, recorded.Port)
	assert.Equal(t, http.StatusCreated, recorded.Status)
	assert.False(t, recorded.Time.IsZero())
}

func TestWithLogging_PersistenceFailureDoesNotFailRequest(t *testing.T) {
	wrapped, logs := newLoggingTestHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	logs.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("logs table gone"))

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/about", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
