package attendance

import (
	"net/http"

	"sharda-hr/internal/shared/apperror"
	"sharda-hr/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("attendance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("attendance request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) ClockIn(c *gin.Context) {
	var req ClockInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.ClockIn(c.Request.Context(), c.GetString("company_id"), c.GetString("employee_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) ClockOut(c *gin.Context) {
	var req ClockOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.ClockOut(c.Request.Context(), c.GetString("company_id"), c.GetString("employee_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Mark(c *gin.Context) {
	var req MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.Mark(c.Request.Context(), c.GetString("company_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) BulkMark(c *gin.Context) {
	var req BulkMarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.BulkMark(c.Request.Context(), c.GetString("company_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// GetAll lists a month of attendance. Callers without read_all are pinned to their own rows.
func (h *Handler) GetAll(c *gin.Context) {
	filter := ListFilter{
		EmployeeID: c.Query("employee_id"),
		Month:      c.Query("month"),
	}
	if !c.GetBool("has_read_all") {
		filter.EmployeeID = c.GetString("employee_id")
	}

	resp, err := h.service.GetAll(c.Request.Context(), c.GetString("company_id"), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessPaged(c, http.StatusOK, resp)
}

func (h *Handler) MonthlySummary(c *gin.Context) {
	employeeID := c.Query("employee_id")
	if !c.GetBool("has_read_all") {
		employeeID = c.GetString("employee_id")
	}

	resp, err := h.service.MonthlySummary(c.Request.Context(), c.GetString("company_id"), c.Query("month"), employeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessPaged(c, http.StatusOK, resp)
}
