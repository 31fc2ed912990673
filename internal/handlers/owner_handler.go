package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonika/salon-marketplace/internal/httperr"
	"github.com/salonika/salon-marketplace/internal/middleware"
	"github.com/salonika/salon-marketplace/internal/models"
	ucAppointment "github.com/salonika/salon-marketplace/internal/usecase/appointment"
)

// ======================================================
// HANDLER (painel do dono do salão)
// ======================================================

type OwnerHandler struct {
	db         *gorm.DB
	listByDate *ucAppointment.ListSalonAppointmentsByDate
	confirm    *ucAppointment.ConfirmAppointment
	complete   *ucAppointment.CompleteAppointment
}

func NewOwnerHandler(
	db *gorm.DB,
	listByDate *ucAppointment.ListSalonAppointmentsByDate,
	confirm *ucAppointment.ConfirmAppointment,
	complete *ucAppointment.CompleteAppointment,
) *OwnerHandler {
	return &OwnerHandler{
		db:         db,
		listByDate: listByDate,
		confirm:    confirm,
		complete:   complete,
	}
}

// ======================================================
// AGENDA DO DIA
// ======================================================

// GET /api/me/salon/bookings?date=YYYY-MM-DD
func (h *OwnerHandler) ListByDate(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	var salon models.Salon
	if err := h.db.Where("owner_id = ?", ownerID).First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salão não encontrado.")
		return
	}

	date, err := parseDateInSalon(&salon, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	aps, err := h.listByDate.Execute(c.Request.Context(), ownerID, date)
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	c.JSON(http.StatusOK, aps)
}

// ======================================================
// CONFIRM / COMPLETE
// ======================================================

// PATCH /api/me/salon/bookings/:id/confirm
func (h *OwnerHandler) Confirm(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Agendamento inválido.")
		return
	}

	ap, err := h.confirm.Execute(c.Request.Context(), ownerID, uint(id))
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// PATCH /api/me/salon/bookings/:id/complete
func (h *OwnerHandler) Complete(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Agendamento inválido.")
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), ownerID, uint(id))
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// AUDIT LOGS
// ======================================================

// GET /api/me/salon/audit-logs
func (h *OwnerHandler) ListAuditLogs(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	var salon models.Salon
	if err := h.db.Where("owner_id = ?", ownerID).First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salão não encontrado.")
		return
	}

	var logs []models.AuditLog
	if err := h.db.
		Where("salon_id = ?", salon.ID).
		Order("created_at DESC").
		Limit(100).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "Erro ao listar auditoria.")
		return
	}

	c.JSON(http.StatusOK, logs)
}
