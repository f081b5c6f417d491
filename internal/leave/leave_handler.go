package leave

import (
	"net/http"
	"strconv"

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
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// ownLeave loads the leave and rejects callers without read_all who do not own it.
func (h *Handler) ownLeave(c *gin.Context) (LeaveResponse, bool) {
	resp, err := h.service.GetByID(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return LeaveResponse{}, false
	}
	if !c.GetBool("has_read_all") && resp.EmployeeID != c.GetString("employee_id") {
		h.writeServiceError(c, apperror.ErrForbidden)
		return LeaveResponse{}, false
	}
	return resp, true
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create leave validation failed", zap.Error(err))
		response.BindError(c, err)
		return
	}

	self := c.GetString("employee_id")
	if req.EmployeeID == "" {
		req.EmployeeID = self
	}
	if !c.GetBool("has_read_all") && req.EmployeeID != self {
		h.writeServiceError(c, apperror.ErrForbidden)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), c.GetString("company_id"), self, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	year, _ := strconv.Atoi(c.Query("year"))
	filter := ListFilter{
		EmployeeID: c.Query("employee_id"),
		Status:     c.Query("status"),
		Year:       year,
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

func (h *Handler) GetById(c *gin.Context) {
	resp, ok := h.ownLeave(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Submit(c *gin.Context) {
	if _, ok := h.ownLeave(c); !ok {
		return
	}
	resp, err := h.service.Submit(c.Request.Context(), c.GetString("company_id"), c.GetString("employee_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Cancel(c *gin.Context) {
	if _, ok := h.ownLeave(c); !ok {
		return
	}
	resp, err := h.service.Cancel(c.Request.Context(), c.GetString("company_id"), c.GetString("employee_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Approve(c *gin.Context) {
	resp, err := h.service.Approve(c.Request.Context(), c.GetString("company_id"), c.GetString("employee_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Reject(c *gin.Context) {
	var req RejectLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.Reject(c.Request.Context(), c.GetString("company_id"), c.GetString("employee_id"), c.Param("id"), req.RejectionReason)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if _, ok := h.ownLeave(c); !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), c.GetString("company_id"), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "leave deleted"}, nil)
}

func (h *Handler) GetBalances(c *gin.Context) {
	employeeID := c.Query("employee_id")
	if employeeID == "" || !c.GetBool("has_read_all") {
		employeeID = c.GetString("employee_id")
	}
	year, _ := strconv.Atoi(c.Query("year"))

	resp, err := h.service.GetBalances(c.Request.Context(), c.GetString("company_id"), employeeID, year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) AdjustBalance(c *gin.Context) {
	var req AdjustBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.AdjustBalance(c.Request.Context(), c.GetString("company_id"), c.GetString("employee_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
