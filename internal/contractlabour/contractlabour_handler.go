package contractlabour

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
	l := zap.L().Named("contractlabour.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("contractlabour.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("contract labour request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) validationFailed(c *gin.Context, err error) {
	h.logger.Warn("contract labour validation failed", zap.String("path", c.FullPath()), zap.Error(err))
	response.BindError(c, err)
}

func (h *Handler) CreateContractor(c *gin.Context) {
	var req ContractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.validationFailed(c, err)
		return
	}
	resp, err := h.service.CreateContractor(c.Request.Context(), c.GetString("company_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) UpdateContractor(c *gin.Context) {
	var req ContractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.validationFailed(c, err)
		return
	}
	resp, err := h.service.UpdateContractor(c.Request.Context(), c.GetString("company_id"), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetContractor(c *gin.Context) {
	resp, err := h.service.GetContractor(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListContractors(c *gin.Context) {
	resp, err := h.service.ListContractors(c.Request.Context(), c.GetString("company_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessPaged(c, http.StatusOK, resp)
}

func (h *Handler) DeleteContractor(c *gin.Context) {
	if err := h.service.DeleteContractor(c.Request.Context(), c.GetString("company_id"), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "contractor deleted"}, nil)
}

func (h *Handler) CreateWorker(c *gin.Context) {
	var req CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.validationFailed(c, err)
		return
	}
	resp, err := h.service.CreateWorker(c.Request.Context(), c.GetString("company_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) UpdateWorker(c *gin.Context) {
	var req UpdateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.validationFailed(c, err)
		return
	}
	resp, err := h.service.UpdateWorker(c.Request.Context(), c.GetString("company_id"), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetWorker(c *gin.Context) {
	resp, err := h.service.GetWorker(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListWorkers(c *gin.Context) {
	var filter WorkerFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.validationFailed(c, err)
		return
	}
	resp, err := h.service.ListWorkers(c.Request.Context(), c.GetString("company_id"), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessPaged(c, http.StatusOK, resp)
}

func (h *Handler) DeleteWorker(c *gin.Context) {
	if err := h.service.DeleteWorker(c.Request.Context(), c.GetString("company_id"), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "contract worker deleted"}, nil)
}

func (h *Handler) MarkAttendance(c *gin.Context) {
	var req MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.validationFailed(c, err)
		return
	}
	resp, err := h.service.MarkAttendance(c.Request.Context(), c.GetString("company_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) BulkMarkAttendance(c *gin.Context) {
	var req BulkMarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.validationFailed(c, err)
		return
	}
	resp, err := h.service.BulkMarkAttendance(c.Request.Context(), c.GetString("company_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListAttendance(c *gin.Context) {
	var filter AttendanceFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.validationFailed(c, err)
		return
	}
	resp, err := h.service.ListAttendance(c.Request.Context(), c.GetString("company_id"), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessPaged(c, http.StatusOK, resp)
}

func (h *Handler) PreviewPayroll(c *gin.Context) {
	var req PayrollRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.validationFailed(c, err)
		return
	}
	resp, err := h.service.PreviewPayroll(c.Request.Context(), c.GetString("company_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) FinalizePayroll(c *gin.Context) {
	var req PayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.validationFailed(c, err)
		return
	}
	if req.ContractorID != "" {
		h.writeServiceError(c, apperror.InvalidField("contractor_id"))
		return
	}

	actorID := c.GetString("employee_id")
	if actorID == "" {
		actorID = c.GetString("user_id")
	}
	resp, err := h.service.FinalizePayroll(c.Request.Context(), c.GetString("company_id"), actorID, req.Month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}
