package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/claudiolibanez/fullstack-week-barber/internal/domain/booking"
	"github.com/claudiolibanez/fullstack-week-barber/internal/httperr"
	"github.com/claudiolibanez/fullstack-week-barber/internal/httpresp"
	"github.com/claudiolibanez/fullstack-week-barber/internal/middleware"
	"github.com/claudiolibanez/fullstack-week-barber/internal/models"
	ucBooking "github.com/claudiolibanez/fullstack-week-barber/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	db          *gorm.DB
	repo        domain.Repository
	listByDay   *ucBooking.ListBookingsByDay
	listByMonth *ucBooking.ListBookingsByMonth
}

func NewBookingHandler(
	db *gorm.DB,
	repo domain.Repository,
	listByDay *ucBooking.ListBookingsByDay,
	listByMonth *ucBooking.ListBookingsByMonth,
) *BookingHandler {
	return &BookingHandler{
		db:          db,
		repo:        repo,
		listByDay:   listByDay,
		listByMonth: listByMonth,
	}
}

// ======================================================
// OWNER — agenda do dia
// ======================================================

func (h *BookingHandler) ListByDay(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	var shop models.Barbershop
	if err := h.db.First(&shop, barbershopID).Error; err != nil {
		httperr.Internal(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	date, err := parseDateInShop(&shop, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	bookings, err := h.listByDay.Execute(c.Request.Context(), barbershopID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, bookings)
}

// ======================================================
// OWNER — agenda do mês
// ======================================================

func (h *BookingHandler) ListByMonth(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	month := c.Query("month")
	if month == "" {
		httperr.BadRequest(c, "missing_month", "Mês obrigatório (YYYY-MM).")
		return
	}

	bookings, err := h.listByMonth.Execute(c.Request.Context(), barbershopID, month)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_month") {
			httperr.BadRequest(c, "invalid_month", "Mês inválido (YYYY-MM).")
			return
		}
		httperr.Internal(c, "failed_to_list_bookings", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, bookings)
}

// ======================================================
// CLIENTE — meus agendamentos
// ======================================================

func (h *BookingHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	bookings, err := h.repo.ListBookingsForUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  bookings,
		"total": len(bookings),
	})
}
