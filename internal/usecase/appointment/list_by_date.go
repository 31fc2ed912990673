package appointment

import (
	"context"
	"time"

	domain "github.com/salonika/salon-marketplace/internal/domain/appointment"
	"github.com/salonika/salon-marketplace/internal/models"
	"github.com/salonika/salon-marketplace/internal/timezone"
)

type ListSalonAppointmentsByDate struct {
	repo domain.Repository
}

func NewListSalonAppointmentsByDate(
	repo domain.Repository,
) *ListSalonAppointmentsByDate {
	return &ListSalonAppointmentsByDate{
		repo: repo,
	}
}

// Execute devolve a agenda do salão do dono para um dia (visão do painel).
func (uc *ListSalonAppointmentsByDate) Execute(
	ctx context.Context,
	ownerID uint,
	date time.Time,
) ([]models.Appointment, error) {

	salon, err := uc.repo.GetSalonByOwner(ctx, ownerID)
	if err != nil {
		return nil, notFoundAs(err, "salon_not_found")
	}

	loc := timezone.Location(salon.Timezone)

	start := time.Date(
		date.Year(),
		date.Month(),
		date.Day(),
		0, 0, 0, 0,
		loc,
	)
	end := start.Add(24 * time.Hour)

	return uc.repo.ListAppointmentsForSalon(ctx, salon.ID, start, end)
}
