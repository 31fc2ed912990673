package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/salonika/salon-marketplace/internal/domain/appointment"
	"github.com/salonika/salon-marketplace/internal/httperr"
	"github.com/salonika/salon-marketplace/internal/middleware"
	"github.com/salonika/salon-marketplace/internal/models"
	ucAppointment "github.com/salonika/salon-marketplace/internal/usecase/appointment"
)

// ======================================================
// HANDLER (fluxo do cliente: slots → reserva → cancelamento)
// ======================================================

type BookingHandler struct {
	db           *gorm.DB
	availability *ucAppointment.GetAvailability
	create       *ucAppointment.CreateAppointment
	cancel       *ucAppointment.CancelAppointment
}

func NewBookingHandler(
	db *gorm.DB,
	availability *ucAppointment.GetAvailability,
	create *ucAppointment.CreateAppointment,
	cancel *ucAppointment.CancelAppointment,
) *BookingHandler {
	return &BookingHandler{
		db:           db,
		availability: availability,
		create:       create,
		cancel:       cancel,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	SalonID   uint   `json:"salon_id" binding:"required"`
	MasterID  uint   `json:"master_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Time      string `json:"time" binding:"required"` // HH:MM
	Comment   string `json:"comment"`
}

// ======================================================
// SLOTS
// ======================================================

// GET /api/salons/:id/services/:serviceID/slots?master=&date=&step=
func (h *BookingHandler) Slots(c *gin.Context) {
	salonID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_salon_id", "Salão inválido.")
		return
	}

	serviceID, err := strconv.ParseUint(c.Param("serviceID"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	masterStr := c.Query("master")
	dateStr := c.Query("date")
	if masterStr == "" || dateStr == "" {
		httperr.BadRequest(c, "missing_params", "Mestre e data obrigatórios.")
		return
	}

	masterID, err := strconv.ParseUint(masterStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_master_id", "Mestre inválido.")
		return
	}

	stepMin := 0
	if stepStr := c.Query("step"); stepStr != "" {
		stepMin, err = strconv.Atoi(stepStr)
		if err != nil || stepMin < 0 {
			httperr.BadRequest(c, "invalid_step", "Passo inválido.")
			return
		}
	}

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salão não encontrado.")
		return
	}

	date, err := parseDateInSalon(&salon, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slots, err := h.availability.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			SalonID:   uint(salonID),
			MasterID:  uint(masterID),
			ServiceID: uint(serviceID),
			Date:      date,
			StepMin:   stepMin,
		},
	)
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

// ======================================================
// CREATE
// ======================================================

// POST /api/bookings (cliente autenticado)
func (h *BookingHandler) Create(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.create.Execute(
		c.Request.Context(),
		ucAppointment.CreateAppointmentInput{
			ClientID:  clientID,
			SalonID:   req.SalonID,
			MasterID:  req.MasterID,
			ServiceID: req.ServiceID,
			Date:      req.Date,
			Time:      req.Time,
			Comment:   req.Comment,
		},
	)
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// MY BOOKINGS
// ======================================================

// GET /api/me/bookings
func (h *BookingHandler) MyBookings(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	var aps []models.Appointment
	if err := h.db.
		Preload("Salon").
		Preload("Master").
		Preload("Service").
		Where("client_id = ?", clientID).
		Order("start_time DESC").
		Find(&aps).Error; err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, aps)
}

// ======================================================
// CANCEL (somente o próprio cliente, pending/confirmed)
// ======================================================

// PATCH /api/bookings/:id/cancel
func (h *BookingHandler) Cancel(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Agendamento inválido.")
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), clientID, uint(id))
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}
