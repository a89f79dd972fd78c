package leave_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-payroll/internal/leave"
	leaveMock "go-payroll/internal/leave/mock"
	"go-payroll/internal/middleware"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/approval"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestContext(method, target string, body io.Reader) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, body)
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestLeaveHandler_Submit(t *testing.T) {
	employeeID := uuid.NewString()
	leaveTypeID := uuid.NewString()

	t.Run("created", func(t *testing.T) {
		svc := leaveMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().Submit(gomock.Any(), employeeID, leave.SubmitLeaveRequest{
			LeaveTypeID: leaveTypeID,
			StartDate:   "2026-03-09",
			EndDate:     "2026-03-11",
			Reason:      "trip",
		}).Return(leave.LeaveResponse{ID: uuid.NewString(), TotalDays: 3, Status: approval.StatusPending}, nil)

		body := `{"leave_type_id":"` + leaveTypeID + `","start_date":"2026-03-09","end_date":"2026-03-11","reason":"trip"}`
		c, w := newTestContext(http.MethodPost, "/api/v1/leaves", strings.NewReader(body))
		c.Set(middleware.ContextEmployeeID, employeeID)

		leave.NewHandler(svc).Submit(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		var env response.ApiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Ok)
		assert.Equal(t, "Leave request submitted", env.Message)
	})

	t.Run("missing leave type", func(t *testing.T) {
		svc := leaveMock.NewMockService(gomock.NewController(t))
		c, w := newTestContext(http.MethodPost, "/api/v1/leaves",
			strings.NewReader(`{"start_date":"2026-03-09","end_date":"2026-03-11"}`))

		leave.NewHandler(svc).Submit(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeInvalidInput)
	})
}

func TestLeaveHandler_Decisions(t *testing.T) {
	approverID := uuid.NewString()
	leaveID := uuid.NewString()

	t.Run("approve without a body", func(t *testing.T) {
		svc := leaveMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().Approve(gomock.Any(), leaveID, approverID, "").
			Return(leave.LeaveResponse{ID: leaveID, Status: approval.StatusApproved}, nil)

		c, w := newTestContext(http.MethodPost, "/api/v1/leaves/"+leaveID+"/approve", http.NoBody)
		c.Params = gin.Params{{Key: "id", Value: leaveID}}
		c.Set(middleware.ContextEmployeeID, approverID)

		leave.NewHandler(svc).Approve(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Leave request approved")
	})

	t.Run("approve already processed", func(t *testing.T) {
		svc := leaveMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().Approve(gomock.Any(), leaveID, approverID, "fine").
			Return(leave.LeaveResponse{}, approval.ErrAlreadyProcessed)

		c, w := newTestContext(http.MethodPost, "/api/v1/leaves/"+leaveID+"/approve", strings.NewReader(`{"notes":"fine"}`))
		c.Params = gin.Params{{Key: "id", Value: leaveID}}
		c.Set(middleware.ContextEmployeeID, approverID)

		leave.NewHandler(svc).Approve(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeAlreadyProcessed)
	})

	t.Run("reject without notes", func(t *testing.T) {
		svc := leaveMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().Reject(gomock.Any(), leaveID, approverID, "").
			Return(leave.LeaveResponse{}, approval.ErrMissingReason)

		c, w := newTestContext(http.MethodPost, "/api/v1/leaves/"+leaveID+"/reject", strings.NewReader(`{}`))
		c.Params = gin.Params{{Key: "id", Value: leaveID}}
		c.Set(middleware.ContextEmployeeID, approverID)

		leave.NewHandler(svc).Reject(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeMissingReason)
	})
}
