package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aula/internal/application/permission"
	"aula/internal/shared/logger"
	"aula/internal/shared/utils"
)

type PermissionMiddleware struct {
	permissionService *permission.Service
	logger            logger.Interface
}

func NewPermissionMiddleware(permissionService *permission.Service, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		permissionService: permissionService,
		logger:            logger,
	}
}

// RequirePermission allows the request only when the authenticated user may
// perform action on resource according to the policy enforcer.
func (m *PermissionMiddleware) RequirePermission(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userUUID := UserUUID(c)
		if userUUID == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
			c.Abort()
			return
		}

		allowed, err := m.permissionService.CheckPermission(c.Request.Context(), userUUID, resource, action)
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "user_uuid", userUUID, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied", "user_uuid", userUUID, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
