package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"costmanager/internal/store"
	"costmanager/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAddUser_OK(t *testing.T) {
	router, m := newTestRouter(t)

	stored := models.User{
		ID:        123123,
		FirstName: "Mosh",
		LastName:  "Israeli",
		Birthday:  time.Date(1990, time.January, 10, 0, 0, 0, 0, time.UTC),
	}
	m.users.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(stored, nil)

	body := `{"id": 123123, "first_name": "Mosh", "last_name": "Israeli", "birthday": "1990-01-10T00:00:00Z"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{
		"id": 123123,
		"first_name": "Mosh",
		"last_name": "Israeli",
		"birthday": "1990-01-10T00:00:00Z",
		"created_at": "0001-01-01T00:00:00Z"
	}`, rec.Body.String())
}

func TestAddUser_InvalidJSON(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader("{not json")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"id": 400, "message": "Invalid JSON was passed."}`, rec.Body.String())
}

func TestAddUser_Duplicate(t *testing.T) {
	router, m := newTestRouter(t)

	m.users.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrUserAlreadyExists)

	body := `{"id": 1, "first_name": "A", "last_name": "B"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body)))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"id": 409, "message": "User already exists."}`, rec.Body.String())
}

func TestGetUser_OK(t *testing.T) {
	router, m := newTestRouter(t)

	m.users.EXPECT().GetUser(gomock.Any(), int64(7)).
		Return(models.User{ID: 7, FirstName: "A", LastName: "B"}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/7", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetUser_NotFound(t *testing.T) {
	router, m := newTestRouter(t)

	m.users.EXPECT().GetUser(gomock.Any(), int64(7)).
		Return(models.User{}, store.ErrUserNotFound)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/7", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"id": 404, "message": "User 7 does not exist."}`, rec.Body.String())
}

func TestGetUser_InvalidID(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"id": 400, "message": "User ID must be a positive integer."}`, rec.Body.String())
}

func TestListUsers_OK(t *testing.T) {
	router, m := newTestRouter(t)

	m.users.EXPECT().ListUsers(gomock.Any()).Return([]models.User{{ID: 1, FirstName: "A", LastName: "B"}}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":1`)
}
