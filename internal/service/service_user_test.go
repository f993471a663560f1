package service

import (
	"context"
	"testing"
	"time"

	"costmanager/internal/logger"
	"costmanager/internal/mock"
	"costmanager/internal/store"
	"costmanager/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestUserService(t *testing.T, now time.Time) (UserService, *mock.MockUserRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	return NewUserService(users, fixedClock{now: now}, logger.Nop()), users
}

func TestRegisterUser_OK(t *testing.T) {
	svc, users := newTestUserService(t, february2024)

	in := models.User{
		ID:        123123,
		FirstName: "  Mosh ",
		LastName:  "Israeli",
		Birthday:  time.Date(1990, time.January, 10, 0, 0, 0, 0, time.UTC),
	}
	stored := in
	stored.FirstName = "Mosh"
	stored.UserPK = 1

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "Mosh", u.FirstName, "names should be trimmed before persisting")
			return stored, nil
		})

	got, err := svc.RegisterUser(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestRegisterUser_Validation(t *testing.T) {
	svc, _ := newTestUserService(t, february2024)

	cases := []struct {
		name string
		user models.User
		want error
	}{
		{"zero id", models.User{FirstName: "A", LastName: "B"}, ErrUserIDNotPositive},
		{"negative id", models.User{ID: -1, FirstName: "A", LastName: "B"}, ErrUserIDNotPositive},
		{"empty first name", models.User{ID: 1, LastName: "B"}, ErrUserFieldsMissing},
		{"blank last name", models.User{ID: 1, FirstName: "A", LastName: "   "}, ErrUserFieldsMissing},
		{"future birthday", models.User{ID: 1, FirstName: "A", LastName: "B", Birthday: february2024.AddDate(1, 0, 0)}, ErrBirthdayInFuture},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.RegisterUser(context.Background(), tc.user)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRegisterUser_DuplicateID(t *testing.T) {
	svc, users := newTestUserService(t, february2024)

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrUserAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.User{ID: 1, FirstName: "A", LastName: "B"})
	assert.ErrorIs(t, err, store.ErrUserAlreadyExists)
}

func TestGetUser_NotFound(t *testing.T) {
	svc, users := newTestUserService(t, february2024)

	users.EXPECT().FindUserByID(gomock.Any(), int64(7)).
		Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.GetUser(context.Background(), 7)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestListUsers_OK(t *testing.T) {
	svc, users := newTestUserService(t, february2024)

	want := []models.User{{ID: 1, FirstName: "A", LastName: "B"}}
	users.EXPECT().ListUsers(gomock.Any()).Return(want, nil)

	got, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
