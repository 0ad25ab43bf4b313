package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	notificationapp "aula/internal/application/notification"
	"aula/internal/application/notification/usecases"
	"aula/internal/interfaces/http/middleware"
	"aula/internal/shared/constants"
	"aula/internal/shared/logger"
	"aula/internal/shared/utils"
)

type NotificationHandler struct {
	service *notificationapp.Service
	logger  logger.Interface
}

func NewNotificationHandler(service *notificationapp.Service, logger logger.Interface) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		logger:  logger,
	}
}

func (h *NotificationHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(constants.DefaultPageSize)))

	result, err := h.service.ListNotifications(c.Request.Context(), usecases.ListNotificationsCommand{
		UserID:   middleware.UserID(c),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	totalPages := int((result.Total + int64(result.PageSize) - 1) / int64(result.PageSize))
	utils.OKResponse(c, utils.ListResponse{
		Items:      toNotificationResponses(result.Notifications),
		Total:      result.Total,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalPages: totalPages,
	})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid notification id")
		return
	}

	if err := h.service.MarkNotificationRead(c.Request.Context(), uint(id), middleware.UserID(c)); err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"marked": true})
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	count, err := h.service.GetUnreadCount(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"unread_count": count})
}
