package attendance

import (
	"net/http"
	"time"

	"go-payroll/internal/middleware"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
	now     func() time.Time
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service, now: time.Now}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) TimeIn(c *gin.Context) {
	resp, err := h.service.RecordTimeIn(c.Request.Context(), c.GetString(middleware.ContextEmployeeID), h.now())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	msg := "Time-in recorded"
	if resp.IsLate {
		msg = "Time-in recorded, late"
	}
	response.SuccessWithMessage(c, http.StatusCreated, msg, resp)
}

func (h *Handler) TimeOut(c *gin.Context) {
	resp, err := h.service.RecordTimeOut(c.Request.Context(), c.GetString(middleware.ContextEmployeeID), h.now())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Time-out recorded", resp)
}

func (h *Handler) MyStatistics(c *gin.Context) {
	h.statistics(c, c.GetString(middleware.ContextEmployeeID))
}

func (h *Handler) EmployeeStatistics(c *gin.Context) {
	h.statistics(c, c.Param("id"))
}

func (h *Handler) statistics(c *gin.Context, employeeID string) {
	var q StatisticsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.MonthlyStatistics(c.Request.Context(), employeeID, q.Month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) MyRecords(c *gin.Context) {
	h.records(c, c.GetString(middleware.ContextEmployeeID))
}

func (h *Handler) EmployeeRecords(c *gin.Context) {
	h.records(c, c.Param("id"))
}

func (h *Handler) records(c *gin.Context, employeeID string) {
	var filter DateRangeFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.ListByEmployee(c.Request.Context(), employeeID, filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	meta := response.NewPaginationMeta(int64(len(resp)), 1, len(resp))
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) MyTardiness(c *gin.Context) {
	h.tardiness(c, c.GetString(middleware.ContextEmployeeID))
}

func (h *Handler) EmployeeTardiness(c *gin.Context) {
	h.tardiness(c, c.Param("id"))
}

func (h *Handler) tardiness(c *gin.Context, employeeID string) {
	var filter DateRangeFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.ListTardiness(c.Request.Context(), employeeID, filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
