package rbac

import (
	"net/http"
	"strings"

	"sharda-hr/internal/domain"
	"sharda-hr/internal/shared/apperror"
	"sharda-hr/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Enforce always checks against the caller's own company.
func (h *Handler) Enforce(c *gin.Context) {
	var req domain.EnforceRequest
	req.CompanyID = c.GetString("company_id")

	var body struct {
		EmployeeID string `json:"employee_id"`
		Resource   string `json:"resource" binding:"required"`
		Action     string `json:"action" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BindError(c, err)
		return
	}

	req.EmployeeID = strings.TrimSpace(body.EmployeeID)
	if req.EmployeeID == "" {
		req.EmployeeID = c.GetString("employee_id")
	}
	req.Resource = strings.TrimSpace(body.Resource)
	req.Action = strings.TrimSpace(body.Action)

	allowed, err := h.service.Enforce(req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, domain.EnforceResponse{Allowed: allowed}, nil)
}

func (h *Handler) ListRoles(c *gin.Context) {
	roles, err := h.service.ListRoles(c.Request.Context(), c.GetString("company_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, roles, nil)
}

func (h *Handler) AssignRole(c *gin.Context) {
	var req AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if err := h.service.AssignRole(c.Request.Context(), c.GetString("company_id"), req); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"employee_id": req.EmployeeID, "role": strings.ToUpper(req.Role)}, nil)
}

func (h *Handler) SeedDefaults(c *gin.Context) {
	if err := h.service.SeedDefaultRoles(c.Request.Context(), c.GetString("company_id")); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"seeded": true}, nil)
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}
