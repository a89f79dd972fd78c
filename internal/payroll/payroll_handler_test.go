package payroll_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-payroll/internal/middleware"
	"go-payroll/internal/payroll"
	payrollerrors "go-payroll/internal/payroll/errors"
	payrollMock "go-payroll/internal/payroll/mock"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestPayrollHandler_ProcessEmployee(t *testing.T) {
	employeeID := uuid.NewString()
	periodID := uuid.NewString()
	body := `{"employee_id":"` + employeeID + `","pay_period_id":"` + periodID + `"}`

	t.Run("created", func(t *testing.T) {
		svc := payrollMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().ProcessEmployeePayroll(gomock.Any(), employeeID, periodID).
			Return(payroll.ProcessEmployeeResponse{Payroll: payroll.PayrollResponse{NetSalary: "9200.00"}}, nil)

		c, w := newTestContext(http.MethodPost, "/api/v1/payrolls/process-employee", body)
		payroll.NewHandler(svc).ProcessEmployee(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		var env response.ApiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Ok)
		assert.Equal(t, "Payroll processed", env.Message)
	})

	t.Run("already processed is ok", func(t *testing.T) {
		svc := payrollMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().ProcessEmployeePayroll(gomock.Any(), employeeID, periodID).
			Return(payroll.ProcessEmployeeResponse{AlreadyProcessed: true}, nil)

		c, w := newTestContext(http.MethodPost, "/api/v1/payrolls/process-employee", body)
		payroll.NewHandler(svc).ProcessEmployee(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Payroll already processed")
	})

	t.Run("terminated", func(t *testing.T) {
		svc := payrollMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().ProcessEmployeePayroll(gomock.Any(), employeeID, periodID).
			Return(payroll.ProcessEmployeeResponse{}, payrollerrors.ErrEmployeeTerminated)

		c, w := newTestContext(http.MethodPost, "/api/v1/payrolls/process-employee", body)
		payroll.NewHandler(svc).ProcessEmployee(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("bad uuid", func(t *testing.T) {
		svc := payrollMock.NewMockService(gomock.NewController(t))

		c, w := newTestContext(http.MethodPost, "/api/v1/payrolls/process-employee",
			`{"employee_id":"nope","pay_period_id":"`+periodID+`"}`)
		payroll.NewHandler(svc).ProcessEmployee(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeInvalidInput)
	})
}

func TestPayrollHandler_ProcessPeriod(t *testing.T) {
	periodID := uuid.NewString()
	body := `{"pay_period_id":"` + periodID + `"}`

	t.Run("partial failure still answers 200", func(t *testing.T) {
		svc := payrollMock.NewMockService(gomock.NewController(t))
		result := payroll.RunResult{
			PayPeriodID: periodID,
			Message:     "Payroll completed with 1 failures out of 3 employees",
			Processed:   2,
			Failed:      1,
			Errors:      []payroll.RunError{{EmployeeID: uuid.NewString(), Message: "boom"}},
		}
		svc.EXPECT().ProcessPayrollForPeriod(gomock.Any(), periodID).Return(result, nil)

		c, w := newTestContext(http.MethodPost, "/api/v1/payrolls/process", body)
		payroll.NewHandler(svc).ProcessPeriod(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var env response.ApiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, result.Message, env.Message)
	})

	t.Run("result cached for idempotent replay", func(t *testing.T) {
		svc := payrollMock.NewMockService(gomock.NewController(t))
		result := payroll.RunResult{PayPeriodID: periodID, Success: true, Message: "Payroll processed for 1 employees", Processed: 1}
		svc.EXPECT().ProcessPayrollForPeriod(gomock.Any(), periodID).Return(result, nil)

		rdb, rmock := redismock.NewClientMock()
		payload, _ := json.Marshal(result)
		rmock.ExpectSet("idemp:key", payload, 24*time.Hour).SetVal("OK")
		rmock.ExpectDel("idemp:key:lock").SetVal(1)

		c, w := newTestContext(http.MethodPost, "/api/v1/payrolls/process", body)
		c.Set(middleware.ContextIdempotencyCacheKey, "idemp:key")
		c.Set(middleware.ContextIdempotencyLockKey, "idemp:key:lock")
		payroll.NewHandlerWithRedis(svc, rdb).ProcessPeriod(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NoError(t, rmock.ExpectationsWereMet())
	})

	t.Run("roster failure", func(t *testing.T) {
		svc := payrollMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().ProcessPayrollForPeriod(gomock.Any(), periodID).Return(payroll.RunResult{}, errors.New("db down"))

		c, w := newTestContext(http.MethodPost, "/api/v1/payrolls/process", body)
		payroll.NewHandler(svc).ProcessPeriod(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestPayrollHandler_RequestRun(t *testing.T) {
	svc := payrollMock.NewMockService(gomock.NewController(t))
	periodID := uuid.NewString()
	requester := uuid.NewString()
	svc.EXPECT().RequestRun(gomock.Any(), periodID, requester).
		Return(payroll.RunRequestedResponse{PayPeriodID: periodID, EventID: uuid.NewString()}, nil)

	c, w := newTestContext(http.MethodPost, "/api/v1/payrolls/process-async", `{"pay_period_id":"`+periodID+`"}`)
	c.Set(middleware.ContextEmployeeID, requester)
	payroll.NewHandler(svc).RequestRun(c)

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestPayrollHandler_MyPayslip(t *testing.T) {
	svc := payrollMock.NewMockService(gomock.NewController(t))
	employeeID := uuid.NewString()
	periodID := uuid.NewString()
	svc.EXPECT().Payslip(gomock.Any(), employeeID, periodID).Return([]byte("%PDF-1.4\n"), nil)

	c, w := newTestContext(http.MethodGet, "/api/v1/payrolls/me/payslip?pay_period_id="+periodID, "")
	c.Set(middleware.ContextEmployeeID, employeeID)
	payroll.NewHandler(svc).MyPayslip(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), periodID)
}

func TestPayrollHandler_Summary(t *testing.T) {
	svc := payrollMock.NewMockService(gomock.NewController(t))

	c, w := newTestContext(http.MethodGet, "/api/v1/payrolls/summary", "")
	payroll.NewHandler(svc).Summary(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
