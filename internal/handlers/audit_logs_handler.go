package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/claudiolibanez/fullstack-week-barber/internal/httperr"
	"github.com/claudiolibanez/fullstack-week-barber/internal/httpresp"
	"github.com/claudiolibanez/fullstack-week-barber/internal/middleware"
	"github.com/claudiolibanez/fullstack-week-barber/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	limit := 50
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	q := h.db.Where("barbershop_id = ?", barbershopID)

	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}

	var logs []models.AuditLog
	if err := q.Order("id DESC").Limit(limit).Find(&logs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "Erro ao listar logs.")
		return
	}

	httpresp.List(c, logs)
}
