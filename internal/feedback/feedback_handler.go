package feedback

import (
	"net/http"

	feedbackerrors "sharda-hr/internal/feedback/errors"
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
	l := zap.L().Named("feedback.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("feedback.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("feedback request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) bindError(c *gin.Context, err error) {
	response.BindError(c, err)
}

func (h *Handler) CreateCycle(c *gin.Context) {
	var req CycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create feedback cycle validation failed", zap.Error(err))
		h.bindError(c, err)
		return
	}
	resp, err := h.service.CreateCycle(c.Request.Context(), c.GetString("company_id"), c.GetString("employee_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) UpdateCycle(c *gin.Context) {
	var req CycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}
	resp, err := h.service.UpdateCycle(c.Request.Context(), c.GetString("company_id"), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetCycles(c *gin.Context) {
	var filter CycleFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.bindError(c, err)
		return
	}
	resp, err := h.service.ListCycles(c.Request.Context(), c.GetString("company_id"), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessPaged(c, http.StatusOK, resp)
}

func (h *Handler) GetCycle(c *gin.Context) {
	resp, err := h.service.GetCycle(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ActivateCycle(c *gin.Context) {
	resp, err := h.service.ActivateCycle(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) CloseCycle(c *gin.Context) {
	resp, err := h.service.CloseCycle(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DeleteCycle(c *gin.Context) {
	if err := h.service.DeleteCycle(c.Request.Context(), c.GetString("company_id"), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "feedback cycle deleted"}, nil)
}

func (h *Handler) CreateAssignment(c *gin.Context) {
	var req AssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}
	resp, err := h.service.CreateAssignment(c.Request.Context(), c.GetString("company_id"), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) AutoAssign(c *gin.Context) {
	var req AutoAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}
	resp, err := h.service.AutoAssign(c.Request.Context(), c.GetString("company_id"), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAssignments(c *gin.Context) {
	var filter AssignmentFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.bindError(c, err)
		return
	}
	resp, err := h.service.ListAssignments(c.Request.Context(), c.GetString("company_id"), c.Param("id"), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessPaged(c, http.StatusOK, resp)
}

func (h *Handler) DeleteAssignment(c *gin.Context) {
	if err := h.service.DeleteAssignment(c.Request.Context(), c.GetString("company_id"), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "feedback assignment deleted"}, nil)
}

func (h *Handler) MyAssignments(c *gin.Context) {
	resp, err := h.service.MyAssignments(c.Request.Context(), c.GetString("company_id"), c.GetString("employee_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessPaged(c, http.StatusOK, resp)
}

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}
	resp, err := h.service.Submit(c.Request.Context(), c.GetString("company_id"), c.GetString("employee_id"), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// GetReport serves any report to read_all callers. Everyone else only sees
// their own report once the cycle is closed.
func (h *Handler) GetReport(c *gin.Context) {
	ctx := c.Request.Context()
	companyID := c.GetString("company_id")
	cycleID := c.Param("id")
	revieweeID := c.Param("employee_id")

	if !c.GetBool("has_read_all") {
		if revieweeID != c.GetString("employee_id") {
			h.writeServiceError(c, apperror.ErrForbidden)
			return
		}
		cycle, err := h.service.GetCycle(ctx, companyID, cycleID)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		if cycle.Status != CycleClosed {
			h.writeServiceError(c, feedbackerrors.ErrReportNotReleased)
			return
		}
	}

	resp, err := h.service.Report(ctx, companyID, cycleID, revieweeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetProgress(c *gin.Context) {
	resp, err := h.service.CycleProgress(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
