package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/salonika/salon-marketplace/internal/models"
)

// ErrNotFound é o sentinela das buscas do repositório. Os usecases
// traduzem para o código de negócio da operação; qualquer outro erro
// é falha de infraestrutura e sobe como está.
var ErrNotFound = errors.New("record not found")

type Repository interface {
	// -------- Salon --------
	GetSalonByID(
		ctx context.Context,
		id uint,
	) (*models.Salon, error)

	GetSalonByOwner(
		ctx context.Context,
		ownerID uint,
	) (*models.Salon, error)

	// -------- Service / Master --------
	GetService(
		ctx context.Context,
		salonID uint,
		serviceID uint,
	) (*models.Service, error)

	GetActiveMaster(
		ctx context.Context,
		salonID uint,
		masterID uint,
	) (*models.Master, error)

	// -------- User --------
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Availability --------
	GetWorkingHours(
		ctx context.Context,
		salonID uint,
		weekday int,
	) (*models.WorkingHours, error)

	ListBusyRanges(
		ctx context.Context,
		salonID uint,
		masterID uint,
		windowStart time.Time,
		windowEnd time.Time,
	) ([]BusyRange, error)

	// -------- Appointment (create / conflict) --------
	// Atômico: trava a agenda do mestre, refaz o teste de conflito e
	// insere na mesma transação. Conflito → httperr "slot_taken".
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change / listing) --------
	GetAppointmentForClient(
		ctx context.Context,
		appointmentID uint,
		clientID uint,
	) (*models.Appointment, error)

	GetAppointmentForSalon(
		ctx context.Context,
		appointmentID uint,
		salonID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsForClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Appointment, error)

	ListAppointmentsForSalon(
		ctx context.Context,
		salonID uint,
		windowStart time.Time,
		windowEnd time.Time,
	) ([]models.Appointment, error)
}
