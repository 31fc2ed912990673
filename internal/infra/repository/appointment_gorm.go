package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/salonika/salon-marketplace/internal/domain/appointment"
	"github.com/salonika/salon-marketplace/internal/httperr"
	"github.com/salonika/salon-marketplace/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// registro ausente vira domain.ErrNotFound; o resto (banco fora,
// timeout) sobe intacto
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

// --------------------------------------------------
// Salon
// --------------------------------------------------

func (r *AppointmentGormRepository) GetSalonByID(
	ctx context.Context,
	id uint,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).First(&salon, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &salon, nil
}

func (r *AppointmentGormRepository) GetSalonByOwner(
	ctx context.Context,
	ownerID uint,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&salon).Error; err != nil {
		return nil, notFound(err)
	}
	return &salon, nil
}

// --------------------------------------------------
// Service / Master
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	salonID uint,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", serviceID, salonID).
		First(&service).Error; err != nil {
		return nil, notFound(err)
	}
	return &service, nil
}

func (r *AppointmentGormRepository) GetActiveMaster(
	ctx context.Context,
	salonID uint,
	masterID uint,
) (*models.Master, error) {

	var master models.Master
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ? AND is_active = true", masterID, salonID).
		First(&master).Error; err != nil {
		return nil, notFound(err)
	}
	return &master, nil
}

// --------------------------------------------------
// User
// --------------------------------------------------

func (r *AppointmentGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) GetWorkingHours(
	ctx context.Context,
	salonID uint,
	weekday int,
) (*models.WorkingHours, error) {

	var wh models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND weekday = ?", salonID, weekday).
		First(&wh).Error; err != nil {
		return nil, notFound(err)
	}

	return &wh, nil
}

func (r *AppointmentGormRepository) ListBusyRanges(
	ctx context.Context,
	salonID uint,
	masterID uint,
	windowStart time.Time,
	windowEnd time.Time,
) ([]domain.BusyRange, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("start_time", "end_time").
		Where(
			"salon_id = ? AND master_id = ? AND status IN ? AND start_time < ? AND end_time > ?",
			salonID, masterID, domain.ActiveStatuses(), windowEnd, windowStart,
		).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	busy := make([]domain.BusyRange, 0, len(aps))
	for _, ap := range aps {
		busy = append(busy, domain.BusyRange{
			Start: ap.StartTime,
			End:   ap.EndTime,
		})
	}

	return busy, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

// CreateAppointment é a fronteira de serialização do sistema: o FOR
// UPDATE na linha do mestre enfileira as criações daquele mestre (um
// FOR UPDATE só sobre agendamentos não prende nada quando o slot está
// vazio), o teste de sobreposição roda já dentro da transação e o
// INSERT ainda conta com a constraint EXCLUDE do banco. Dois pedidos
// disputando o mesmo slot → exatamente um commit.
func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var master models.Master
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			First(&master, ap.MasterID).Error; err != nil {
			return notFound(err)
		}

		var conflicts []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where(
				"master_id = ? AND status IN ? AND start_time < ? AND end_time > ?",
				ap.MasterID, domain.ActiveStatuses(), ap.EndTime, ap.StartTime,
			).
			Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrBusiness(httperr.CodeSlotTaken)
		}

		return tx.Create(ap).Error
	})

	if err != nil {
		if httperr.IsExclusionConflict(err) {
			return httperr.ErrBusiness(httperr.CodeSlotTaken)
		}
		return err
	}

	return nil
}

// --------------------------------------------------
// Appointment (state change / listing)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentForClient(
	ctx context.Context,
	appointmentID uint,
	clientID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND client_id = ?", appointmentID, clientID).
		First(&ap).Error; err != nil {
		return nil, notFound(err)
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) GetAppointmentForSalon(
	ctx context.Context,
	appointmentID uint,
	salonID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", appointmentID, salonID).
		First(&ap).Error; err != nil {
		return nil, notFound(err)
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) ListAppointmentsForClient(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Salon").
		Preload("Master").
		Preload("Service").
		Where("client_id = ?", clientID).
		Order("start_time DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForSalon(
	ctx context.Context,
	salonID uint,
	windowStart time.Time,
	windowEnd time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Master").
		Preload("Service").
		Where(
			"salon_id = ? AND start_time >= ? AND start_time < ?",
			salonID, windowStart, windowEnd,
		).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
