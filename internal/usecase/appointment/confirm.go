package appointment

import (
	"context"

	"github.com/salonika/salon-marketplace/internal/audit"
	domain "github.com/salonika/salon-marketplace/internal/domain/appointment"
	"github.com/salonika/salon-marketplace/internal/models"
)

type ConfirmAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewConfirmAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *ConfirmAppointment {
	return &ConfirmAppointment{
		repo:  repo,
		audit: auditDispatcher,
	}
}

// Execute: dono do salão confirma um agendamento pendente.
func (uc *ConfirmAppointment) Execute(
	ctx context.Context,
	ownerID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	salon, err := uc.repo.GetSalonByOwner(ctx, ownerID)
	if err != nil {
		return nil, notFoundAs(err, "salon_not_found")
	}

	ap, err := uc.repo.GetAppointmentForSalon(ctx, appointmentID, salon.ID)
	if err != nil {
		return nil, notFoundAs(err, "appointment_not_found")
	}

	if err := domain.Confirm(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salon.ID,
		UserID:   &ownerID,
		Action:   "appointment_confirmed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
