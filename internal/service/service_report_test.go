// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
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

// fixedClock pins "now" so past/current month classification is
// deterministic.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type reportMocks struct {
	users   *mock.MockUserRepository
	costs   *mock.MockCostRepository
	reports *mock.MockReportRepository
}

func newTestReportService(t *testing.T, now time.Time) (ReportService, reportMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := reportMocks{
		users:   mock.NewMockUserRepository(ctrl),
		costs:   mock.NewMockCostRepository(ctrl),
		reports: mock.NewMockReportRepository(ctrl),
	}
	svc := NewReportService(m.users, m.costs, m.reports, fixedClock{now: now}, logger.Nop())
	return svc, m
}

// february2024 is the pinned "now" used across the report tests:
// 2024-01 is a past month, 2024-02 is the current month.
var february2024 = time.Date(2024, time.February, 10, 12, 0, 0, 0, time.UTC)

func TestBuildReport_MissingFields(t *testing.T) {
	svc, _ := newTestReportService(t, february2024)

	cases := []struct {
		name                 string
		userID, year, month  string
	}{
		{"all empty", "", "", ""},
		{"no user", "", "2024", "1"},
		{"no year", "123123", "", "1"},
		{"no month", "123123", "2024", ""},
		{"whitespace only", "  ", "2024", "1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.BuildReport(context.Background(), tc.userID, tc.year, tc.month)
			assert.ErrorIs(t, err, ErrMissingFields)
		})
	}
}

func TestBuildReport_NotPositiveInteger(t *testing.T) {
	svc, _ := newTestReportService(t, february2024)

	cases := []struct {
		name                string
		userID, year, month string
	}{
		{"zero user", "0", "2024", "1"},
		{"negative user", "-5", "2024", "1"},
		{"fractional month", "123123", "2024", "1.5"},
		{"non-numeric year", "123123", "twenty", "1"},
		{"zero month", "123123", "2024", "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.BuildReport(context.Background(), tc.userID, tc.year, tc.month)
			assert.ErrorIs(t, err, ErrNotPositiveInteger)
		})
	}
}

func TestBuildReport_MonthOutOfRange(t *testing.T) {
	svc, _ := newTestReportService(t, february2024)

	_, err := svc.BuildReport(context.Background(), "123123", "2024", "13")
	assert.ErrorIs(t, err, ErrMonthOutOfRange)
}

// Presence failures must win over shape failures when both apply.
func TestBuildReport_ValidationOrder(t *testing.T) {
	svc, _ := newTestReportService(t, february2024)

	_, err := svc.BuildReport(context.Background(), "", "abc", "99")
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestBuildReport_UserNotFound(t *testing.T) {
	svc, m := newTestReportService(t, february2024)

	m.users.EXPECT().UserExists(gomock.Any(), int64(404)).Return(false, nil)

	_, err := svc.BuildReport(context.Background(), "404", "2024", "1")

	var notFound *UserNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, int64(404), notFound.UserID)
}

func TestBuildReport_PastMonth_CacheHit(t *testing.T) {
	svc, m := newTestReportService(t, february2024)

	cached := models.Report{
		UserID: 123123,
		Year:   2024,
		Month:  1,
		Costs: []models.CategoryGroup{
			{Category: "food", Entries: []models.CostEntry{{Sum: 85.5, Description: "groceries", Day: 15}}},
		},
	}

	m.users.EXPECT().UserExists(gomock.Any(), int64(123123)).Return(true, nil)
	m.reports.EXPECT().FindCachedReport(gomock.Any(), int64(123123), 2024, 1).Return(cached, nil)
	// no cost fetch and no insert on a cache hit

	got, err := svc.BuildReport(context.Background(), "123123", "2024", "1")
	require.NoError(t, err)
	assert.Equal(t, cached, got)
}

func TestBuildReport_PastMonth_CacheMiss_ComputesAndCaches(t *testing.T) {
	svc, m := newTestReportService(t, february2024)

	costs := []models.Cost{
		{
			UserID:      123123,
			Description: "groceries",
			Category:    "food",
			Sum:         85.5,
			Date:        time.Date(2024, time.January, 15, 9, 30, 0, 0, time.UTC),
		},
	}

	m.users.EXPECT().UserExists(gomock.Any(), int64(123123)).Return(true, nil)
	m.reports.EXPECT().FindCachedReport(gomock.Any(), int64(123123), 2024, 1).
		Return(models.Report{}, store.ErrReportNotFound)
	m.costs.EXPECT().FindCostsByUser(gomock.Any(), int64(123123)).Return(costs, nil)

	var inserted models.Report
	m.reports.EXPECT().InsertReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r models.Report) error {
			inserted = r
			return nil
		})

	got, err := svc.BuildReport(context.Background(), "123123", "2024", "1")
	require.NoError(t, err)

	assert.Equal(t, int64(123123), got.UserID)
	assert.Equal(t, 2024, got.Year)
	assert.Equal(t, 1, got.Month)

	require.Len(t, got.Costs, 7)
	assert.Equal(t, "food", got.Costs[0].Category)
	require.Len(t, got.Costs[0].Entries, 1)
	assert.Equal(t, models.CostEntry{Sum: 85.5, Description: "groceries", Day: 15}, got.Costs[0].Entries[0])

	// what was returned is exactly what was cached
	assert.Equal(t, got, inserted)
}

func TestBuildReport_PastMonth_ConcurrentInsertIsBenign(t *testing.T) {
	svc, m := newTestReportService(t, february2024)

	m.users.EXPECT().UserExists(gomock.Any(), int64(123123)).Return(true, nil)
	m.reports.EXPECT().FindCachedReport(gomock.Any(), int64(123123), 2024, 1).
		Return(models.Report{}, store.ErrReportNotFound)
	m.costs.EXPECT().FindCostsByUser(gomock.Any(), int64(123123)).Return([]models.Cost{}, nil)
	m.reports.EXPECT().InsertReport(gomock.Any(), gomock.Any()).Return(store.ErrReportAlreadyCached)

	got, err := svc.BuildReport(context.Background(), "123123", "2024", "1")
	require.NoError(t, err)
	assert.Len(t, got.Costs, 7)
}

func TestBuildReport_PastMonth_InsertFailureFailsRequest(t *testing.T) {
	svc, m := newTestReportService(t, february2024)

	m.users.EXPECT().UserExists(gomock.Any(), int64(123123)).Return(true, nil)
	m.reports.EXPECT().FindCachedReport(gomock.Any(), int64(123123), 2024, 1).
		Return(models.Report{}, store.ErrReportNotFound)
	m.costs.EXPECT().FindCostsByUser(gomock.Any(), int64(123123)).Return([]models.Cost{}, nil)
	m.reports.EXPECT().InsertReport(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

	_, err := svc.BuildReport(context.Background(), "123123", "2024", "1")
	require.Error(t, err)
}

func TestBuildReport_CurrentMonth_NeverTouchesCache(t *testing.T) {
	svc, m := newTestReportService(t, february2024)

	m.users.EXPECT().UserExists(gomock.Any(), int64(123123)).Return(true, nil)
	m.costs.EXPECT().FindCostsByUser(gomock.Any(), int64(123123)).Return([]models.Cost{
		{
			UserID:      123123,
			Description: "bus ticket",
			Category:    "transportation",
			Sum:         2.75,
			Date:        time.Date(2024, time.February, 3, 8, 0, 0, 0, time.UTC),
		},
	}, nil)
	// no FindCachedReport and no InsertReport expectations: the controller
	// fails the test if either is called

	got, err := svc.BuildReport(context.Background(), "123123", "2024", "2")
	require.NoError(t, err)

	require.Len(t, got.Costs, 7)
	assert.Equal(t, "transportation", got.Costs[5].Category)
	require.Len(t, got.Costs[5].Entries, 1)
	assert.Equal(t, 3, got.Costs[5].Entries[0].Day)
}

func TestBuildReport_FutureMonth_NeverTouchesCache(t *testing.T) {
	svc, m := newTestReportService(t, february2024)

	m.users.EXPECT().UserExists(gomock.Any(), int64(123123)).Return(true, nil)
	m.costs.EXPECT().FindCostsByUser(gomock.Any(), int64(123123)).Return([]models.Cost{}, nil)

	got, err := svc.BuildReport(context.Background(), "123123", "2025", "6")
	require.NoError(t, err)

	require.Len(t, got.Costs, 7)
	for _, group := range got.Costs {
		assert.Empty(t, group.Entries)
	}
}

func TestBuildReport_CacheLookupFailure(t *testing.T) {
	svc, m := newTestReportService(t, february2024)

	m.users.EXPECT().UserExists(gomock.Any(), int64(123123)).Return(true, nil)
	m.reports.EXPECT().FindCachedReport(gomock.Any(), int64(123123), 2024, 1).
		Return(models.Report{}, errors.New("connection refused"))

	_, err := svc.BuildReport(context.Background(), "123123", "2024", "1")
	require.Error(t, err)
}

func TestBuildReport_UserExistenceCheckFailure(t *testing.T) {
	svc, m := newTestReportService(t, february2024)

	m.users.EXPECT().UserExists(gomock.Any(), int64(123123)).Return(false, errors.New("connection refused"))

	_, err := svc.BuildReport(context.Background(), "123123", "2024", "1")
	require.Error(t, err)

	var notFound *UserNotFoundError
	assert.False(t, errors.As(err, &notFound), "infrastructure failure must not read as a missing user")
}

func Test_isPastMonth(t *testing.T) {
	svc := &reportService{clock: fixedClock{now: february2024}}

	cases := []struct {
		name  string
		year  int
		month int
		want  bool
	}{
		{"previous month", 2024, 1, true},
		{"previous year same month", 2023, 2, true},
		{"current month", 2024, 2, false},
		{"next month", 2024, 3, false},
		{"next year", 2025, 1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, svc.isPastMonth(tc.year, tc.month))
		})
	}
}
