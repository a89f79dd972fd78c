package leavebalance

import (
	"net/http"

	leavebalanceerrors "go-payroll/internal/leavebalance/errors"
	"go-payroll/internal/middleware"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Mine(c *gin.Context) {
	h.list(c, c.GetString(middleware.ContextEmployeeID))
}

func (h *Handler) ByEmployee(c *gin.Context) {
	h.list(c, c.Param("id"))
}

func (h *Handler) list(c *gin.Context, employeeID string) {
	var q BalanceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.ListBalances(c.Request.Context(), employeeID, q.Year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Initialize(c *gin.Context) {
	var req InitializeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		h.writeServiceError(c, leavebalanceerrors.ErrInvalidEmployeeID)
		return
	}

	resp, err := h.service.InitializeYear(c.Request.Context(), employeeID, req.Year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Leave balances initialized", resp)
}

func (h *Handler) InitializeAll(c *gin.Context) {
	var req InitializeAllRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.InitializeYearForAll(c.Request.Context(), req.Year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Leave balances initialized", resp)
}

func (h *Handler) CarryOver(c *gin.Context) {
	var req CarryOverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.CarryOver(c.Request.Context(), req.EmployeeID, req.FromYear)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Leave carried over", resp)
}
