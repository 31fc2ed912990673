package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/salonika/salon-marketplace/internal/cache"
	domain "github.com/salonika/salon-marketplace/internal/domain/appointment"
	"github.com/salonika/salon-marketplace/internal/timezone"
)

type GetAvailability struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
}

func NewGetAvailability(
	repo domain.Repository,
	availCache *cache.AvailabilityCache,
) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		cache: availCache,
	}
}

// Execute devolve os inícios livres ("HH:MM", hora local do salão) para
// o serviço no dia pedido. Leitura pura: nada é reservado aqui.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]string, error) {

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, notFoundAs(err, "salon_not_found")
	}

	service, err := uc.repo.GetService(ctx, in.SalonID, in.ServiceID)
	if err != nil {
		return nil, notFoundAs(err, "service_not_found")
	}

	if _, err := uc.repo.GetActiveMaster(ctx, in.SalonID, in.MasterID); err != nil {
		return nil, notFoundAs(err, "master_not_found")
	}

	stepMin := in.StepMin
	if stepMin <= 0 {
		stepMin = domain.DefaultStepMinutes
	}

	dateStr := in.Date.Format("2006-01-02")
	if cached, ok := uc.cache.GetSlots(ctx, in.SalonID, in.MasterID, in.ServiceID, dateStr, stepMin); ok {
		return cached, nil
	}

	// sem expediente cadastrado para o dia → agenda vazia; qualquer
	// outra falha não pode virar "dia livre de mentira"
	wh, err := uc.repo.GetWorkingHours(ctx, in.SalonID, int(in.Date.Weekday()))
	if errors.Is(err, domain.ErrNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}

	open, close, ok := domain.DayWindow(wh, in.Date)
	if !ok {
		return []string{}, nil
	}

	busy, err := uc.repo.ListBusyRanges(ctx, in.SalonID, in.MasterID, open, close)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(salon.Timezone)

	slots := domain.AvailableSlots(
		wh,
		busy,
		time.Duration(service.DurationMinutes)*time.Minute,
		time.Duration(stepMin)*time.Minute,
		in.Date,
		now,
	)

	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Format("15:04"))
	}

	uc.cache.SetSlots(ctx, in.SalonID, in.MasterID, in.ServiceID, dateStr, stepMin, out)

	return out, nil
}
