package expense

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
	l := zap.L().Named("expense.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("expense.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("expense request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) ownClaim(c *gin.Context) (ClaimResponse, bool) {
	resp, err := h.service.GetByID(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return ClaimResponse{}, false
	}
	if !c.GetBool("has_read_all") && resp.EmployeeID != c.GetString("employee_id") {
		h.writeServiceError(c, apperror.ErrForbidden)
		return ClaimResponse{}, false
	}
	return resp, true
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create expense claim validation failed", zap.Error(err))
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

func (h *Handler) Update(c *gin.Context) {
	if _, ok := h.ownClaim(c); !ok {
		return
	}
	var req UpdateClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), c.GetString("company_id"), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	filter := ListFilter{
		EmployeeID: c.Query("employee_id"),
		Status:     c.Query("status"),
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
	resp, ok := h.ownClaim(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Submit(c *gin.Context) {
	if _, ok := h.ownClaim(c); !ok {
		return
	}
	resp, err := h.service.Submit(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
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
	var req RejectClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.Reject(c.Request.Context(), c.GetString("company_id"), c.GetString("employee_id"), c.Param("id"), req.Reason)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if _, ok := h.ownClaim(c); !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), c.GetString("company_id"), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "expense claim deleted"}, nil)
}
