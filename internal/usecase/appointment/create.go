package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/salonika/salon-marketplace/internal/audit"
	"github.com/salonika/salon-marketplace/internal/cache"
	domain "github.com/salonika/salon-marketplace/internal/domain/appointment"
	"github.com/salonika/salon-marketplace/internal/httperr"
	"github.com/salonika/salon-marketplace/internal/models"
	"github.com/salonika/salon-marketplace/internal/notify"
	"github.com/salonika/salon-marketplace/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID  uint
	SalonID   uint
	MasterID  uint
	ServiceID uint

	Date    string // YYYY-MM-DD
	Time    string // HH:MM
	Comment string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	notify *notify.Dispatcher
	cache  *cache.AvailabilityCache
}

func NewCreateAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	notifyDispatcher *notify.Dispatcher,
	availCache *cache.AvailabilityCache,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		audit:  auditDispatcher,
		notify: notifyDispatcher,
		cache:  availCache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Salão e data/hora no fuso do salão
	// --------------------------------------------------
	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, notFoundAs(err, "salon_not_found")
	}

	loc := timezone.Location(salon.Timezone)

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// 2. Serviço e mestre
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, in.SalonID, in.ServiceID)
	if err != nil {
		return nil, notFoundAs(err, "service_not_found")
	}

	master, err := uc.repo.GetActiveMaster(ctx, in.SalonID, in.MasterID)
	if err != nil {
		return nil, notFoundAs(err, "master_not_found")
	}

	duration := time.Duration(service.DurationMinutes) * time.Minute
	end := start.Add(duration)

	// --------------------------------------------------
	// 3. Expediente do dia (razões distinguíveis)
	// --------------------------------------------------
	wh, err := uc.repo.GetWorkingHours(ctx, in.SalonID, int(start.Weekday()))
	if err != nil {
		return nil, notFoundAs(err, httperr.CodeClosedDay)
	}

	open, close, ok := domain.DayWindow(wh, start)
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeClosedDay)
	}

	if start.Before(open) || end.After(close) {
		return nil, httperr.ErrBusiness(httperr.CodeOutOfWindow)
	}

	now := timezone.NowIn(salon.Timezone)
	if !start.After(now) {
		return nil, httperr.ErrBusiness(httperr.CodeOutOfWindow)
	}

	// --------------------------------------------------
	// 4. Revalidação pelo cálculo de slots (o cliente pode
	//    ter escolhido com dados velhos)
	// --------------------------------------------------
	busy, err := uc.repo.ListBusyRanges(ctx, in.SalonID, in.MasterID, open, close)
	if err != nil {
		return nil, err
	}

	slots := domain.AvailableSlots(
		wh, busy, duration,
		time.Duration(domain.DefaultStepMinutes)*time.Minute,
		start, now,
	)

	if !containsSlot(slots, start) {
		return nil, httperr.ErrBusiness(httperr.CodeSlotTaken)
	}

	// --------------------------------------------------
	// 5. Cliente (para o registro e para a notificação)
	// --------------------------------------------------
	client, err := uc.repo.GetUserByID(ctx, in.ClientID)
	if err != nil {
		return nil, notFoundAs(err, "client_not_found")
	}

	// --------------------------------------------------
	// 6. Gravação guardada (transação trava + revalida + insere)
	// --------------------------------------------------
	ap := &models.Appointment{
		Reference: uuid.NewString(),
		ClientID:  client.ID,
		SalonID:   salon.ID,
		MasterID:  master.ID,
		ServiceID: service.ID,
		StartTime: start,
		EndTime:   end,
		Status:    string(domain.InitialStatus()),
		Comment:   in.Comment,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.InvalidateMaster(ctx, salon.ID, master.ID)

	// --------------------------------------------------
	// 7. Pós-commit: auditoria e evento de notificação.
	//    Só chega aqui com o registro gravado, então nunca
	//    notificamos um agendamento que não existiu.
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		SalonID:  salon.ID,
		UserID:   &client.ID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	ev := notify.BookingCreated{
		AppointmentID: ap.ID,
		Reference:     ap.Reference,
		SalonName:     salon.NameRU,
		ServiceName:   service.NameRU,
		MasterName:    master.Name,
		ClientName:    client.Name,
		StartLocal:    start.Format("2006-01-02 15:04"),
		ClientChatID:  client.TelegramChatID,
	}
	if owner, err := uc.repo.GetUserByID(ctx, salon.OwnerID); err == nil {
		ev.ProviderChatID = owner.TelegramChatID
	}
	uc.notify.Dispatch(ev)

	return ap, nil
}

func containsSlot(slots []time.Time, t time.Time) bool {
	for _, s := range slots {
		if s.Equal(t) {
			return true
		}
	}
	return false
}
