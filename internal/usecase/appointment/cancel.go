package appointment

import (
	"context"

	"github.com/salonika/salon-marketplace/internal/audit"
	"github.com/salonika/salon-marketplace/internal/cache"
	domain "github.com/salonika/salon-marketplace/internal/domain/appointment"
	"github.com/salonika/salon-marketplace/internal/models"
	"github.com/salonika/salon-marketplace/internal/timezone"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
}

func NewCancelAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	availCache *cache.AvailabilityCache,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: auditDispatcher,
		cache: availCache,
	}
}

// Execute cancela um agendamento do próprio cliente. Cancelamento é
// transição de status, não remoção: o intervalo volta a ficar livre
// porque cancelled sai do teste de conflito.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	clientID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForClient(ctx, appointmentID, clientID)
	if err != nil {
		return nil, notFoundAs(err, "appointment_not_found")
	}

	salon, err := uc.repo.GetSalonByID(ctx, ap.SalonID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(salon.Timezone)
	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.InvalidateMaster(ctx, ap.SalonID, ap.MasterID)

	uc.audit.Dispatch(audit.Event{
		SalonID:  ap.SalonID,
		UserID:   &clientID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
