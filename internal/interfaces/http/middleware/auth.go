package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"aula/internal/domain/user"
	"aula/internal/infrastructure/auth"
	"aula/internal/shared/constants"
	"aula/internal/shared/logger"
	"aula/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	userRepo   user.Repository
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, userRepo user.Repository, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func tokenFromRequest(c *gin.Context) string {
	if token := utils.GetTokenFromCookie(c, utils.AccessTokenCookie); token != "" {
		return token
	}

	authHeader := c.GetHeader(constants.HeaderAuthorization)
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// RequireAuth rejects requests without a valid access token. It resolves the
// token's subject to an internal user id and stores identity in the context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		claims, err := m.jwtService.VerifyAccess(token)
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		entity, err := m.userRepo.GetByUUID(c.Request.Context(), claims.UserUUID)
		if err != nil {
			m.logger.Warnw("authenticated user not found", "user_uuid", claims.UserUUID, "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "account not found")
			c.Abort()
			return
		}
		if !entity.IsActive() {
			utils.ErrorResponse(c, http.StatusForbidden, "account is suspended")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, entity.ID())
		c.Set(constants.ContextKeyUserUUID, claims.UserUUID)
		c.Set(constants.ContextKeyUserRole, claims.Role.String())

		c.Next()
	}
}

// OptionalAuth resolves identity when a valid token is present and continues
// anonymously otherwise. Route evaluation treats the anonymous case as guest.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := m.jwtService.VerifyAccess(token)
		if err != nil {
			c.Next()
			return
		}

		entity, err := m.userRepo.GetByUUID(c.Request.Context(), claims.UserUUID)
		if err == nil && entity.IsActive() {
			c.Set(constants.ContextKeyUserID, entity.ID())
			c.Set(constants.ContextKeyUserUUID, claims.UserUUID)
			c.Set(constants.ContextKeyUserRole, claims.Role.String())
		}

		c.Next()
	}
}

// UserID returns the authenticated user's internal id, or 0 for anonymous
// requests.
func UserID(c *gin.Context) uint {
	if v, exists := c.Get(constants.ContextKeyUserID); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// UserUUID returns the authenticated user's external identifier.
func UserUUID(c *gin.Context) string {
	if v, exists := c.Get(constants.ContextKeyUserUUID); exists {
		if uuid, ok := v.(string); ok {
			return uuid
		}
	}
	return ""
}

// RoleClaim returns the role claim carried by the access token.
func RoleClaim(c *gin.Context) string {
	if v, exists := c.Get(constants.ContextKeyUserRole); exists {
		if role, ok := v.(string); ok {
			return role
		}
	}
	return ""
}
