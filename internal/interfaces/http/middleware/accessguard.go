package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aula/internal/application/access"
	"aula/internal/shared/logger"
)

// AccessGuardMiddleware evaluates page-route access for the requester and
// redirects to the role's landing route on denial. Run it after OptionalAuth
// so anonymous requests evaluate as guest.
type AccessGuardMiddleware struct {
	service *access.Service
	logger  logger.Interface
}

func NewAccessGuardMiddleware(service *access.Service, logger logger.Interface) *AccessGuardMiddleware {
	return &AccessGuardMiddleware{
		service: service,
		logger:  logger,
	}
}

func (m *AccessGuardMiddleware) GuardRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := access.TokenClaims{Role: RoleClaim(c)}
		evaluation := m.service.EvaluateRoute(c.Request.Context(), UserID(c), claims, c.Request.URL.Path)

		if evaluation.Decision.State == access.StateDenied {
			c.Redirect(http.StatusFound, evaluation.Decision.RedirectTo)
			c.Abort()
			return
		}

		c.Next()
	}
}
