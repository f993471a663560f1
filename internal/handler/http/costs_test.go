package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"costmanager/internal/service"
	"costmanager/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAddCost_OK(t *testing.T) {
	router, m := newTestRouter(t)

	m.costs.EXPECT().AddCost(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c models.Cost) (models.Cost, error) {
			c.CostPK = 1
			return c, nil
		})

	body := `{"userid": 123123, "description": "groceries", "category": "food", "sum": 85.5}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/costs", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"category":"food"`)
}

func TestAddCost_InvalidJSON(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/costs", strings.NewReader("[")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"id": 400, "message": "Invalid JSON was passed."}`, rec.Body.String())
}

func TestAddCost_ValidationError(t *testing.T) {
	router, m := newTestRouter(t)

	m.costs.EXPECT().AddCost(gomock.Any(), gomock.Any()).
		Return(models.Cost{}, service.ErrUnknownCategory)

	body := `{"userid": 1, "description": "x", "category": "vacation", "sum": 1}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/costs", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"id": 400, "message": "Category is not one of the registered categories."}`, rec.Body.String())
}

func TestAddCost_UserNotFound(t *testing.T) {
	router, m := newTestRouter(t)

	m.costs.EXPECT().AddCost(gomock.Any(), gomock.Any()).
		Return(models.Cost{}, &service.UserNotFoundError{UserID: 9})

	body := `{"userid": 9, "description": "x", "category": "food", "sum": 1}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/costs", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"id": 400, "message": "User 9 does not exist."}`, rec.Body.String())
}
