package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aula/internal/application/access"
	"aula/internal/interfaces/http/middleware"
	"aula/internal/shared/logger"
	"aula/internal/shared/utils"
)

// AccessHandler exposes the route evaluation pipeline to frontends, which
// call it to decide what to render and where to send the user.
type AccessHandler struct {
	service *access.Service
	logger  logger.Interface
}

func NewAccessHandler(service *access.Service, logger logger.Interface) *AccessHandler {
	return &AccessHandler{
		service: service,
		logger:  logger,
	}
}

// Evaluate resolves the requester and evaluates the guard for the path given
// in the query string. Anonymous requests evaluate as guest.
func (h *AccessHandler) Evaluate(c *gin.Context) {
	path := c.Query("path")
	if path == "" || path[0] != '/' {
		utils.ErrorResponse(c, http.StatusBadRequest, "path query parameter must be an absolute path")
		return
	}

	claims := access.TokenClaims{Role: middleware.RoleClaim(c)}
	evaluation := h.service.EvaluateRoute(c.Request.Context(), middleware.UserID(c), claims, path)

	utils.OKResponse(c, evaluation)
}
