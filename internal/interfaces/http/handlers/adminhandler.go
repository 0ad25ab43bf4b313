package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	notificationapp "aula/internal/application/notification"
	"aula/internal/application/user/usecases"
	"aula/internal/shared/constants"
	"aula/internal/shared/logger"
	"aula/internal/shared/utils"
)

// AdminHandler serves the admin panel API. Every route behind it requires
// the matching casbin permission.
type AdminHandler struct {
	listUsers     *usecases.ListUsersUseCase
	getUser       *usecases.GetUserUseCase
	setUserRole   *usecases.SetUserRoleUseCase
	notifications *notificationapp.Service
	logger        logger.Interface
}

func NewAdminHandler(
	listUsers *usecases.ListUsersUseCase,
	getUser *usecases.GetUserUseCase,
	setUserRole *usecases.SetUserRoleUseCase,
	notifications *notificationapp.Service,
	logger logger.Interface,
) *AdminHandler {
	return &AdminHandler{
		listUsers:     listUsers,
		getUser:       getUser,
		setUserRole:   setUserRole,
		notifications: notifications,
		logger:        logger,
	}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(constants.DefaultPageSize)))

	result, err := h.listUsers.Execute(c.Request.Context(), usecases.ListUsersCommand{
		Role:     c.Query("role"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	totalPages := int((result.Total + int64(result.PageSize) - 1) / int64(result.PageSize))
	utils.OKResponse(c, utils.ListResponse{
		Items:      toUserResponses(result.Users),
		Total:      result.Total,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalPages: totalPages,
	})
}

func (h *AdminHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid user id")
		return
	}

	result, err := h.getUser.Execute(c.Request.Context(), uint(id))
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, gin.H{
		"user":         toUserResponse(result.User),
		"subscription": toSubscriptionResponse(result.Subscription),
	})
}

type setRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

func (h *AdminHandler) SetUserRole(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid user id")
		return
	}

	var req setRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	err = h.setUserRole.Execute(c.Request.Context(), usecases.SetUserRoleCommand{
		UserID: uint(id),
		Role:   req.Role,
	})
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"updated": true})
}

func (h *AdminHandler) ResendNotification(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid notification id")
		return
	}

	if err := h.notifications.ResendNotification(c.Request.Context(), uint(id)); err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"resent": true})
}
