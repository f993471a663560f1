package http

import (
	"net/http"
	"testing"

	"costmanager/internal/logger"
	"costmanager/internal/mock"
	"costmanager/internal/service"

	"go.uber.org/mock/gomock"
)

// serviceMocks bundles the gomock service doubles wired into a test router.
type serviceMocks struct {
	users  *mock.MockUserService
	costs  *mock.MockCostService
	report *mock.MockReportService
	logs   *mock.MockLogService
	about  *mock.MockAboutService
}

// newTestRouter builds a fully wired router over gomock services. The log
// service accepts any number of Record calls because the logging middleware
// persists every request passing through the router.
func newTestRouter(t *testing.T) (http.Handler, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := serviceMocks{
		users:  mock.NewMockUserService(ctrl),
		costs:  mock.NewMockCostService(ctrl),
		report: mock.NewMockReportService(ctrl),
		logs:   mock.NewMockLogService(ctrl),
		about:  mock.NewMockAboutService(ctrl),
	}
	m.logs.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	h := NewHandler(&service.Services{
		UserService:   m.users,
		CostService:   m.costs,
		ReportService: m.report,
		LogService:    m.logs,
		AboutService:  m.about,
	}, logger.Nop())

	return h.Init(), m
}
