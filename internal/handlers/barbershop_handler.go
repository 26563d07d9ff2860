package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/claudiolibanez/fullstack-week-barber/internal/domain/booking"
	"github.com/claudiolibanez/fullstack-week-barber/internal/httperr"
	"github.com/claudiolibanez/fullstack-week-barber/internal/middleware"
	"github.com/claudiolibanez/fullstack-week-barber/internal/models"
	"github.com/claudiolibanez/fullstack-week-barber/internal/timezone"
)

type BarbershopHandler struct {
	db *gorm.DB
}

func NewBarbershopHandler(db *gorm.DB) *BarbershopHandler {
	return &BarbershopHandler{db: db}
}

type UpdateBarbershopRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	Timezone *string `json:"timezone"`

	OpeningTime    *string `json:"opening_time"` // HH:mm
	ClosingTime    *string `json:"closing_time"` // HH:mm
	SlotMinutes    *int    `json:"slot_minutes"`
	MinAdvanceDays *int    `json:"min_advance_days"`
}

func (h *BarbershopHandler) GetMeBarbershop(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var shop models.Barbershop
	if err := h.db.First(&shop, barbershopID).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	c.JSON(http.StatusOK, shop)
}

func (h *BarbershopHandler) UpdateMeBarbershop(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var shop models.Barbershop
	if err := h.db.First(&shop, barbershopID).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	var req UpdateBarbershopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		shop.Name = *req.Name
	}
	if req.Phone != nil {
		shop.Phone = *req.Phone
	}
	if req.Address != nil {
		shop.Address = *req.Address
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Fuso horário inválido.")
			return
		}
		shop.Timezone = *req.Timezone
	}

	if req.OpeningTime != nil {
		shop.OpeningTime = *req.OpeningTime
	}
	if req.ClosingTime != nil {
		shop.ClosingTime = *req.ClosingTime
	}
	if req.SlotMinutes != nil {
		shop.SlotMinutes = *req.SlotMinutes
	}
	if req.MinAdvanceDays != nil {
		shop.MinAdvanceDays = *req.MinAdvanceDays
	}

	// a política resultante precisa continuar gerando slots válidos
	if _, err := domain.PolicyOf(&shop); err != nil {
		httperr.BadRequest(c, "invalid_policy", "Política de agenda inválida.")
		return
	}

	if err := h.db.Save(&shop).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barbershop", "Erro ao atualizar barbearia.")
		return
	}

	c.JSON(http.StatusOK, shop)
}
