package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/claudiolibanez/fullstack-week-barber/internal/domain/booking"
	"github.com/claudiolibanez/fullstack-week-barber/internal/httperr"
	"github.com/claudiolibanez/fullstack-week-barber/internal/middleware"
	"github.com/claudiolibanez/fullstack-week-barber/internal/models"
	ucBooking "github.com/claudiolibanez/fullstack-week-barber/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db              *gorm.DB
	getAvailability *ucBooking.GetAvailability
	reserve         *ucBooking.Reserve
}

func NewPublicHandler(
	db *gorm.DB,
	getAvailability *ucBooking.GetAvailability,
	reserve *ucBooking.Reserve,
) *PublicHandler {
	return &PublicHandler{
		db:              db,
		getAvailability: getAvailability,
		reserve:         reserve,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateBookingRequest struct {
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Time      string `json:"time" binding:"required"` // HH:mm
}

////////////////////////////////////////////////////////
// BARBERSHOP
////////////////////////////////////////////////////////

func (h *PublicHandler) GetBarbershop(c *gin.Context) {
	slug := c.Param("slug")

	var shop models.Barbershop
	if err := h.db.Where("slug = ?", slug).First(&shop).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	c.JSON(http.StatusOK, shop)
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	slug := c.Param("slug")

	var shop models.Barbershop
	if err := h.db.Where("slug = ?", slug).First(&shop).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	category := strings.TrimSpace(strings.ToLower(c.Query("category")))
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.
		Where("barbershop_id = ? AND active = true", shop.ID)

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"barbershop": shop,
		"services":   services,
	})
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	slug := c.Param("slug")
	dateStr := c.Query("date")
	serviceIDStr := c.Query("service_id")

	if dateStr == "" || serviceIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Data e serviço obrigatórios.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	var shop models.Barbershop
	if err := h.db.Where("slug = ?", slug).First(&shop).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	slots, err := h.getAvailability.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			BarbershopID: shop.ID,
			ServiceID:    uint(serviceID),
			Date:         dateStr,
		},
	)

	if err != nil {
		switch httperr.BusinessCode(err) {
		case "service_not_found":
			httperr.BadRequest(c, "service_not_found", "Serviço inválido.")
		case "invalid_date":
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
		default:
			httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		}
		return
	}

	// lista vazia é resposta válida ("sem horários"), não erro
	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

////////////////////////////////////////////////////////
// CREATE BOOKING (cliente autenticado)
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	slug := c.Param("slug")
	userID := c.MustGet(middleware.ContextUserID).(string)

	var shop models.Barbershop
	if err := h.db.Where("slug = ?", slug).First(&shop).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	var req PublicCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	bk, err := h.reserve.Execute(
		c.Request.Context(),
		ucBooking.ReserveInput{
			BarbershopID: shop.ID,
			ServiceID:    req.ServiceID,
			UserID:       userID,
			Date:         req.Date,
			Time:         req.Time,
		},
	)

	if err != nil {
		mapReserveErrors(c, err)
		return
	}

	c.JSON(http.StatusCreated, bk)
}

func mapReserveErrors(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case "slot_taken":
		// terminal para este slot: o cliente precisa reescolher
		httperr.Conflict(c, "slot_taken", "Horário acabou de ser reservado por outro cliente.")

	case "unavailable":
		// transitório: a tentativa inteira pode ser repetida
		httperr.Unavailable(c, "unavailable", "Serviço temporariamente indisponível. Tente novamente.")

	case "invalid_request", "invalid_slot", "invalid_date", "invalid_time":
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")

	case "too_soon":
		httperr.BadRequest(c, "too_soon", "Agendamentos só a partir de amanhã.")

	case "service_not_found":
		httperr.BadRequest(c, "service_not_found", "Serviço inválido.")

	case "invalid_policy":
		httperr.Internal(c, "invalid_policy", "Agenda da barbearia mal configurada.")

	default:
		// falha de storage não mapeada nunca é engolida
		httperr.Internal(c, "failed_to_create_booking", "Erro ao criar agendamento.")
	}
}
