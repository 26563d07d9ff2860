package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/claudiolibanez/fullstack-week-barber/internal/httperr"
	"github.com/claudiolibanez/fullstack-week-barber/internal/httpresp"
	"github.com/claudiolibanez/fullstack-week-barber/internal/media"
	"github.com/claudiolibanez/fullstack-week-barber/internal/middleware"
	"github.com/claudiolibanez/fullstack-week-barber/internal/models"
)

const maxImageUploadBytes = 5 << 20 // 5 MiB

// ======================================================
// HANDLER
// ======================================================

type ServiceHandler struct {
	db       *gorm.DB
	uploader *media.Uploader
}

func NewServiceHandler(db *gorm.DB, uploader *media.Uploader) *ServiceHandler {
	return &ServiceHandler{db: db, uploader: uploader}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents" binding:"required"`
	Category    string `json:"category"`
}

type UpdateServiceRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	PriceCents  *int64  `json:"price_cents"`
	Category    *string `json:"category"`
	Active      *bool   `json:"active"`
}

// ======================================================
// CRUD
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var services []models.Service
	if err := h.db.
		Where("barbershop_id = ?", barbershopID).
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.PriceCents < 0 {
		httperr.BadRequest(c, "invalid_price", "Preço inválido.")
		return
	}

	service := models.Service{
		BarbershopID: barbershopID,
		Name:         req.Name,
		Description:  req.Description,
		PriceCents:   req.PriceCents,
		Category:     req.Category,
		Active:       true,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	c.JSON(http.StatusCreated, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	service, ok := h.findOwned(c, barbershopID)
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.PriceCents != nil {
		if *req.PriceCents < 0 {
			httperr.BadRequest(c, "invalid_price", "Preço inválido.")
			return
		}
		service.PriceCents = *req.PriceCents
	}
	if req.Category != nil {
		service.Category = *req.Category
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.Save(service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}

	c.JSON(http.StatusOK, service)
}

// ======================================================
// IMAGEM (webp → S3)
// ======================================================

func (h *ServiceHandler) UploadImage(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	if h.uploader == nil {
		httperr.Unavailable(c, "media_disabled", "Upload de mídia não configurado.")
		return
	}

	service, ok := h.findOwned(c, barbershopID)
	if !ok {
		return
	}

	file, _, err := c.Request.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Arquivo de imagem obrigatório.")
		return
	}
	defer file.Close()

	processed, err := media.ProcessImage(http.MaxBytesReader(c.Writer, file, maxImageUploadBytes))
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Imagem inválida.")
		return
	}

	key := fmt.Sprintf("services/%d/%s.webp", service.ID, uuid.NewString())

	url, err := h.uploader.Upload(c.Request.Context(), key, processed, "image/webp")
	if err != nil {
		httperr.Internal(c, "failed_to_upload_image", "Erro ao enviar imagem.")
		return
	}

	service.ImageURL = url
	if err := h.db.Save(service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao salvar imagem.")
		return
	}

	c.JSON(http.StatusOK, service)
}

// ======================================================
// HELPERS
// ======================================================

func (h *ServiceHandler) findOwned(c *gin.Context, barbershopID uint) (*models.Service, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return nil, false
	}

	var service models.Service
	if err := h.db.
		Where("id = ? AND barbershop_id = ?", id, barbershopID).
		First(&service).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return nil, false
	}

	return &service, true
}
