package middleware

import (
	"errors"
	"net/http"
	"strings"

	autherrors "sharda-hr/internal/auth/errors"
	"sharda-hr/internal/shared/authtoken"
	"sharda-hr/internal/shared/contextutil"
	"sharda-hr/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// AuthMiddleware accepts an access token from the Authorization header or
// the access_token cookie and exposes the caller to handlers and to the
// request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		claims, err := authtoken.Parse(raw)
		if err != nil || claims.Type == authtoken.TypeRefresh {
			appErr := autherrors.ErrInvalidToken
			if errors.Is(err, jwt.ErrTokenExpired) {
				appErr = autherrors.ErrTokenExpired
			}
			response.Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, nil)
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("employee_id", claims.EmployeeID)
		c.Set("company_id", claims.CompanyID)
		c.Set("role", strings.ToUpper(claims.Role))

		ctx := contextutil.WithActor(c.Request.Context(), contextutil.Actor{
			UserID:     claims.UserID,
			EmployeeID: claims.EmployeeID,
			CompanyID:  claims.CompanyID,
		})
		ctx = contextutil.LoggerWith(ctx,
			zap.String("user_id", claims.UserID),
			zap.String("company_id", claims.CompanyID),
		)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	if raw, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); ok && raw != "" {
		return raw
	}
	if cookie, err := c.Cookie("access_token"); err == nil {
		return cookie
	}
	return ""
}
