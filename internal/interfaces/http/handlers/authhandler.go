package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aula/internal/application/user/usecases"
	"aula/internal/shared/logger"
	"aula/internal/shared/utils"
)

type AuthHandler struct {
	register *usecases.RegisterWithPasswordUseCase
	login    *usecases.LoginWithPasswordUseCase
	refresh  *usecases.RefreshTokenUseCase
	logger   logger.Interface
}

func NewAuthHandler(
	register *usecases.RegisterWithPasswordUseCase,
	login *usecases.LoginWithPasswordUseCase,
	refresh *usecases.RefreshTokenUseCase,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		register: register,
		login:    login,
		refresh:  refresh,
		logger:   logger,
	}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.register.Execute(c.Request.Context(), usecases.RegisterWithPasswordCommand{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"user": toUserResponse(result.User),
		"tokens": TokenResponse{
			AccessToken:  result.AccessToken,
			RefreshToken: result.RefreshToken,
			ExpiresIn:    result.ExpiresIn,
		},
	})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.login.Execute(c.Request.Context(), usecases.LoginWithPasswordCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, gin.H{
		"user": toUserResponse(result.User),
		"tokens": TokenResponse{
			AccessToken:  result.AccessToken,
			RefreshToken: result.RefreshToken,
			ExpiresIn:    result.ExpiresIn,
		},
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	pair, err := h.refresh.Execute(c.Request.Context(), usecases.RefreshTokenCommand{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	})
}
