package payroll

import (
	"fmt"
	"net/http"

	"go-payroll/internal/middleware"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// NewHandlerWithRedis enables idempotent replays for the process endpoints.
func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) ProcessPeriod(c *gin.Context) {
	var req ProcessPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.CompleteIdempotency(c, h.rdb, nil)
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	result, err := h.service.ProcessPayrollForPeriod(c.Request.Context(), req.PayPeriodID)
	if err != nil {
		middleware.CompleteIdempotency(c, h.rdb, nil)
		h.writeServiceError(c, err)
		return
	}

	middleware.CompleteIdempotency(c, h.rdb, result)
	response.SuccessWithMessage(c, http.StatusOK, result.Message, result)
}

func (h *Handler) RequestRun(c *gin.Context) {
	var req ProcessPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.RequestRun(c.Request.Context(), req.PayPeriodID, c.GetString(middleware.ContextEmployeeID))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusAccepted, "Payroll run queued", resp)
}

func (h *Handler) ProcessEmployee(c *gin.Context) {
	var req ProcessEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.CompleteIdempotency(c, h.rdb, nil)
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.ProcessEmployeePayroll(c.Request.Context(), req.EmployeeID, req.PayPeriodID)
	if err != nil {
		middleware.CompleteIdempotency(c, h.rdb, nil)
		h.writeServiceError(c, err)
		return
	}

	middleware.CompleteIdempotency(c, h.rdb, resp)
	if resp.AlreadyProcessed {
		response.SuccessWithMessage(c, http.StatusOK, "Payroll already processed", resp)
		return
	}
	response.SuccessWithMessage(c, http.StatusCreated, "Payroll processed", resp)
}

func (h *Handler) Preview(c *gin.Context) {
	var q EmployeePeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Preview(c.Request.Context(), q.EmployeeID, q.PayPeriodID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByEmployeeAndPeriod(c *gin.Context) {
	var q EmployeePeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.GetByEmployeeAndPeriod(c.Request.Context(), q.EmployeeID, q.PayPeriodID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListByPeriod(c *gin.Context) {
	var q PeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.ListByPeriod(c.Request.Context(), q.PayPeriodID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	meta := response.NewPaginationMeta(int64(len(resp)), 1, len(resp))
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) Summary(c *gin.Context) {
	var q PeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.PeriodSummary(c.Request.Context(), q.PayPeriodID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Mine(c *gin.Context) {
	resp, err := h.service.ListByEmployee(c.Request.Context(), c.GetString(middleware.ContextEmployeeID))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	meta := response.NewPaginationMeta(int64(len(resp)), 1, len(resp))
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) MyPayslip(c *gin.Context) {
	var q PeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	pdf, err := h.service.Payslip(c.Request.Context(), c.GetString(middleware.ContextEmployeeID), q.PayPeriodID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="payslip-%s.pdf"`, q.PayPeriodID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
