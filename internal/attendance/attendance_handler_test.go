package attendance_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-payroll/internal/attendance"
	attendanceerrors "go-payroll/internal/attendance/errors"
	attendanceMock "go-payroll/internal/attendance/mock"
	"go-payroll/internal/middleware"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestContext(method, target string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(""))
	return c, w
}

func TestAttendanceHandler_TimeIn(t *testing.T) {
	employeeID := uuid.NewString()

	t.Run("late time-in", func(t *testing.T) {
		svc := attendanceMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().RecordTimeIn(gomock.Any(), employeeID, gomock.Any()).
			Return(attendance.TimeInResponse{IsLate: true, LateMinutes: 16, TardinessHours: "0.27"}, nil)

		c, w := newTestContext(http.MethodPost, "/api/v1/attendance/time-in")
		c.Set(middleware.ContextEmployeeID, employeeID)

		attendance.NewHandler(svc).TimeIn(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		var env response.ApiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Ok)
		assert.Equal(t, "Time-in recorded, late", env.Message)
	})

	t.Run("already marked", func(t *testing.T) {
		svc := attendanceMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().RecordTimeIn(gomock.Any(), employeeID, gomock.Any()).
			Return(attendance.TimeInResponse{}, attendanceerrors.ErrAlreadyMarked)

		c, w := newTestContext(http.MethodPost, "/api/v1/attendance/time-in")
		c.Set(middleware.ContextEmployeeID, employeeID)

		attendance.NewHandler(svc).TimeIn(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeAlreadyMarked)
	})
}

func TestAttendanceHandler_TimeOut_NoTimeIn(t *testing.T) {
	svc := attendanceMock.NewMockService(gomock.NewController(t))
	svc.EXPECT().RecordTimeOut(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(attendance.TimeOutResponse{}, attendanceerrors.ErrNoTimeIn)

	c, w := newTestContext(http.MethodPost, "/api/v1/attendance/time-out")
	c.Set(middleware.ContextEmployeeID, uuid.NewString())

	attendance.NewHandler(svc).TimeOut(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), apperror.CodeNoTimeIn)
}

func TestAttendanceHandler_Statistics(t *testing.T) {
	employeeID := uuid.NewString()

	t.Run("month is required", func(t *testing.T) {
		svc := attendanceMock.NewMockService(gomock.NewController(t))
		c, w := newTestContext(http.MethodGet, "/api/v1/attendance/statistics")
		c.Set(middleware.ContextEmployeeID, employeeID)

		attendance.NewHandler(svc).MyStatistics(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Month is required")
	})

	t.Run("other employee", func(t *testing.T) {
		other := uuid.NewString()
		svc := attendanceMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().MonthlyStatistics(gomock.Any(), other, "2026-03").
			Return(attendance.MonthlyStatisticsResponse{Month: "2026-03", WorkingDays: 22}, nil)

		c, w := newTestContext(http.MethodGet, "/api/v1/attendance/employees/"+other+"/statistics?month=2026-03")
		c.Params = gin.Params{{Key: "id", Value: other}}

		attendance.NewHandler(svc).EmployeeStatistics(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"working_days":22`)
	})
}
