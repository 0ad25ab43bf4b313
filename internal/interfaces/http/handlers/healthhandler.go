package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(c *gin.Context) {
	status := http.StatusOK
	overall := "ok"
	dbStatus := "ok"

	if sqlDB, err := h.db.DB(); err != nil || sqlDB.Ping() != nil {
		status = http.StatusServiceUnavailable
		overall = "degraded"
		dbStatus = "unreachable"
	}

	c.JSON(status, gin.H{
		"status":   overall,
		"database": dbStatus,
	})
}
