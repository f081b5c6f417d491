package middleware

import (
	"net/http"

	"sharda-hr/internal/domain"
	"sharda-hr/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ContextKey string

const (
	ContextEmployeeID ContextKey = "employee_id"
	ContextCompanyID  ContextKey = "company_id"
	ContextHasReadAll ContextKey = "has_read_all"
)

// RBACService is satisfied by rbac.Service; declared here to avoid an import cycle.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := enforceRequestFromContext(c, resource, action)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context", nil)
			c.Abort()
			return
		}

		allowed, err := service.Enforce(req)
		if err != nil {
			zap.L().Named("middleware.rbac").Error("enforce failed", zap.Error(err))
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "authorization check failed", nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not have permission to access this resource", gin.H{
				"required": resource + ":" + action,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RBACReadScope never rejects; it records whether the caller may read every
// record of resource or only their own.
func RBACReadScope(service RBACService, resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		hasReadAll := false
		if req, ok := enforceRequestFromContext(c, resource, domain.ActionReadAll); ok {
			allowed, err := service.Enforce(req)
			if err == nil {
				hasReadAll = allowed
			}
		}
		c.Set(string(ContextHasReadAll), hasReadAll)
		c.Next()
	}
}

func enforceRequestFromContext(c *gin.Context, resource, action string) (domain.EnforceRequest, bool) {
	employeeID := c.GetString(string(ContextEmployeeID))
	companyID := c.GetString(string(ContextCompanyID))
	if employeeID == "" || companyID == "" {
		return domain.EnforceRequest{}, false
	}
	return domain.EnforceRequest{
		EmployeeID: employeeID,
		CompanyID:  companyID,
		Resource:   resource,
		Action:     action,
	}, true
}
