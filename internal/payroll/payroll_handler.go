package payroll

import (
	"fmt"
	"net/http"

	"sharda-hr/internal/middleware"
	payrollerrors "sharda-hr/internal/payroll/errors"
	"sharda-hr/internal/shared/apperror"
	"sharda-hr/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

// NewHandler takes an optional redis client used to store idempotent replies.
func NewHandler(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("payroll.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.handler")
	}
	return &Handler{service: service, rdb: rdb, logger: l}
}

func getActorID(c *gin.Context) string {
	actorID := c.GetString("employee_id")
	if actorID == "" {
		actorID = c.GetString("user_id")
	}
	return actorID
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("payroll request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) CreateRun(c *gin.Context) {
	var req CreateRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.CompleteIdempotency(c, h.rdb, nil, false)
		response.BindError(c, err)
		return
	}

	resp, err := h.service.CreateRun(c.Request.Context(), c.GetString("company_id"), getActorID(c), req)
	middleware.CompleteIdempotency(c, h.rdb, resp, err == nil)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) ProcessRun(c *gin.Context) {
	resp, err := h.service.ProcessRun(c.Request.Context(), c.GetString("company_id"), getActorID(c), c.Param("id"))
	middleware.CompleteIdempotency(c, h.rdb, resp, err == nil)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) LockRun(c *gin.Context) {
	resp, err := h.service.LockRun(c.Request.Context(), c.GetString("company_id"), getActorID(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DeleteRun(c *gin.Context) {
	if err := h.service.DeleteRun(c.Request.Context(), c.GetString("company_id"), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": c.Param("id")}, nil)
}

func (h *Handler) GetRun(c *gin.Context) {
	resp, err := h.service.GetRun(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListRuns(c *gin.Context) {
	var filter ListRunsFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BindError(c, err)
		return
	}
	resp, err := h.service.ListRuns(c.Request.Context(), c.GetString("company_id"), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessPaged(c, http.StatusOK, resp)
}

func (h *Handler) ListRunPayslips(c *gin.Context) {
	resp, err := h.service.ListPayslips(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessPaged(c, http.StatusOK, resp)
}

// ListPayslips returns released payslips of one employee. Callers without
// read_all always get their own.
func (h *Handler) ListPayslips(c *gin.Context) {
	employeeID := c.Query("employee_id")
	if employeeID == "" || !c.GetBool("has_read_all") {
		employeeID = c.GetString("employee_id")
	}
	resp, err := h.service.ListEmployeePayslips(c.Request.Context(), c.GetString("company_id"), employeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessPaged(c, http.StatusOK, resp)
}

func (h *Handler) GetPayslip(c *gin.Context) {
	resp, ok := h.visiblePayslip(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DownloadPayslip(c *gin.Context) {
	if _, ok := h.visiblePayslip(c); !ok {
		return
	}
	file, err := h.service.DownloadPayslip(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	c.Data(http.StatusOK, "application/pdf", file.Content)
}

func (h *Handler) Preview(c *gin.Context) {
	var req PreviewRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BindError(c, err)
		return
	}
	resp, err := h.service.Preview(c.Request.Context(), c.GetString("company_id"), req.EmployeeID, req.Month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// visiblePayslip hides other employees' payslips and unreleased ones from
// callers without read_all.
func (h *Handler) visiblePayslip(c *gin.Context) (PayslipResponse, bool) {
	resp, err := h.service.GetPayslip(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return PayslipResponse{}, false
	}
	if c.GetBool("has_read_all") {
		return resp, true
	}
	if resp.EmployeeID != c.GetString("employee_id") {
		h.writeServiceError(c, apperror.ErrForbidden)
		return PayslipResponse{}, false
	}
	if !resp.Released {
		h.writeServiceError(c, payrollerrors.ErrPayslipNotReleased)
		return PayslipResponse{}, false
	}
	return resp, true
}
