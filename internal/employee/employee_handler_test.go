package employee_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-payroll/internal/employee"
	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	CreateFn           func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	GetByIDFn          func(ctx context.Context, id string) (employee.EmployeeResponse, error)
	ListFn             func(ctx context.Context, filter employee.ListEmployeesFilter) ([]employee.EmployeeResponse, error)
	UpdateSalaryFn     func(ctx context.Context, actorID, id string, req employee.UpdateSalaryRequest) (employee.EmployeeResponse, error)
	UpdateStatusFn     func(ctx context.Context, id string, req employee.UpdateStatusRequest) (employee.EmployeeResponse, error)
	GetSalaryHistoryFn func(ctx context.Context, id string) ([]employee.SalaryChangeResponse, error)
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeEmployeeService) List(ctx context.Context, filter employee.ListEmployeesFilter) ([]employee.EmployeeResponse, error) {
	return f.ListFn(ctx, filter)
}
func (f *fakeEmployeeService) UpdateSalary(ctx context.Context, actorID, id string, req employee.UpdateSalaryRequest) (employee.EmployeeResponse, error) {
	return f.UpdateSalaryFn(ctx, actorID, id, req)
}
func (f *fakeEmployeeService) UpdateStatus(ctx context.Context, id string, req employee.UpdateStatusRequest) (employee.EmployeeResponse, error) {
	return f.UpdateStatusFn(ctx, id, req)
}
func (f *fakeEmployeeService) GetSalaryHistory(ctx context.Context, id string) ([]employee.SalaryChangeResponse, error) {
	return f.GetSalaryHistoryFn(ctx, id)
}

func newTestContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.ApiEnvelope {
	t.Helper()
	var env response.ApiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestEmployeeHandler_Create(t *testing.T) {
	body := `{"employee_number":"EMP-0001","full_name":"Maria Santos","basic_salary":"30000","hourly_rate":"170.45"}`

	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "Maria Santos", req.FullName)
				return employee.EmployeeResponse{
					ID:          uuid.NewString(),
					FullName:    req.FullName,
					BasicSalary: "30000.00",
					Status:      employee.StatusActive,
				}, nil
			},
		}
		h := employee.NewHandler(svc)
		c, w := newTestContext(http.MethodPost, "/api/v1/employees", body)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w)
		assert.True(t, env.Ok)
		assert.Contains(t, w.Body.String(), "30000.00")
	})

	t.Run("validation error", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{})
		c, w := newTestContext(http.MethodPost, "/api/v1/employees", `{}`)

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeInvalidInput)
	})

	t.Run("duplicate employee number returns conflict", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNumberAlreadyExists
			},
		}
		h := employee.NewHandler(svc)
		c, w := newTestContext(http.MethodPost, "/api/v1/employees", body)

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeConflict)
	})

	t.Run("unexpected error is hidden", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, errors.New("database connection failed")
			},
		}
		h := employee.NewHandler(svc)
		c, w := newTestContext(http.MethodPost, "/api/v1/employees", body)

		h.Create(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "database connection failed")
		assert.Contains(t, w.Body.String(), apperror.CodeInternalError)
	})
}

func TestEmployeeHandler_UpdateSalary(t *testing.T) {
	actorID := uuid.NewString()
	employeeID := uuid.NewString()

	svc := &fakeEmployeeService{
		UpdateSalaryFn: func(ctx context.Context, actor, id string, req employee.UpdateSalaryRequest) (employee.EmployeeResponse, error) {
			assert.Equal(t, actorID, actor)
			assert.Equal(t, employeeID, id)
			return employee.EmployeeResponse{ID: id, BasicSalary: req.BasicSalary + ".00"}, nil
		},
	}
	h := employee.NewHandler(svc)
	c, w := newTestContext(http.MethodPut, "/api/v1/employees/"+employeeID+"/salary",
		`{"basic_salary":"25000","hourly_rate":"140","effective_date":"2026-04-01"}`)
	c.Params = gin.Params{{Key: "id", Value: employeeID}}
	c.Set("employee_id", actorID)

	h.UpdateSalary(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Salary updated", env.Message)
}

func TestEmployeeHandler_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, id string) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}
		h := employee.NewHandler(svc)
		c, w := newTestContext(http.MethodGet, "/api/v1/employees/x", "")
		c.Params = gin.Params{{Key: "id", Value: uuid.NewString()}}

		h.GetByID(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := decodeEnvelope(t, w)
		assert.False(t, env.Ok)
	})
}

func TestEmployeeHandler_List(t *testing.T) {
	supervisorID := uuid.NewString()
	svc := &fakeEmployeeService{
		ListFn: func(ctx context.Context, filter employee.ListEmployeesFilter) ([]employee.EmployeeResponse, error) {
			assert.Equal(t, supervisorID, filter.SupervisorID)
			return []employee.EmployeeResponse{{FullName: "A"}, {FullName: "B"}}, nil
		},
	}
	h := employee.NewHandler(svc)
	c, w := newTestContext(http.MethodGet, "/api/v1/employees?supervisor_id="+supervisorID, "")

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	if assert.NotNil(t, env.Meta) {
		assert.Equal(t, int64(2), env.Meta.Total)
	}
}
