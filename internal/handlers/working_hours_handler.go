package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonika/salon-marketplace/internal/domain/schedule"
	"github.com/salonika/salon-marketplace/internal/httperr"
	"github.com/salonika/salon-marketplace/internal/middleware"
	"github.com/salonika/salon-marketplace/internal/models"
)

type WorkingHoursHandler struct {
	db *gorm.DB
}

func NewWorkingHoursHandler(db *gorm.DB) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db}
}

type WorkingDayConfig struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	IsClosed  bool   `json:"is_closed"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

type WorkingHoursUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required"`
}

// GET /api/me/salon/working-hours
func (h *WorkingHoursHandler) Get(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	var salon models.Salon
	if err := h.db.Where("owner_id = ?", ownerID).First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salão não encontrado.")
		return
	}

	var hours []models.WorkingHours
	if err := h.db.
		Where("salon_id = ?", salon.ID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {
		httperr.Internal(c, "failed_to_get_working_hours", "Erro ao buscar expediente.")
		return
	}

	c.JSON(http.StatusOK, hours)
}

// PUT /api/me/salon/working-hours
// Configuração inválida nunca é persistida: a grade inteira passa pelo
// validador antes de trocar os registros.
func (h *WorkingHoursHandler) Update(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	var salon models.Salon
	if err := h.db.Where("owner_id = ?", ownerID).First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salão não encontrado.")
		return
	}

	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	days := make([]schedule.DayConfig, 0, len(req.Days))
	for _, d := range req.Days {
		days = append(days, schedule.DayConfig{
			Weekday:   d.Weekday,
			IsClosed:  d.IsClosed,
			OpenTime:  d.OpenTime,
			CloseTime: d.CloseTime,
		})
	}

	if err := schedule.ValidateWeek(days); err != nil {
		httperr.BadRequest(
			c,
			httperr.CodeInvalidWorkingHours,
			"Expediente inválido: abertura deve ser antes do fechamento.",
		)
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("salon_id = ?", salon.ID).
			Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}

		toCreate := make([]models.WorkingHours, 0, len(req.Days))
		for _, d := range req.Days {
			wh := models.WorkingHours{
				SalonID:   salon.ID,
				Weekday:   d.Weekday,
				IsClosed:  d.IsClosed,
				OpenTime:  d.OpenTime,
				CloseTime: d.CloseTime,
			}
			if d.IsClosed {
				wh.OpenTime = ""
				wh.CloseTime = ""
			}
			toCreate = append(toCreate, wh)
		}

		if len(toCreate) > 0 {
			if err := tx.Create(&toCreate).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save_working_hours", "Erro ao salvar expediente.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
