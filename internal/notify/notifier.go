package notify

import "log"

// BookingCreated é o evento pós-commit de um agendamento criado.
// Os chat IDs já vêm resolvidos (nil = destinatário sem telegram);
// quem entrega a mensagem é o despachante externo.
type BookingCreated struct {
	AppointmentID  uint
	Reference      string
	SalonName      string
	ServiceName    string
	MasterName     string
	ClientName     string
	StartLocal     string // "2006-01-02 15:04" no fuso do salão
	ClientChatID   *string
	ProviderChatID *string
}

type Notifier interface {
	BookingCreated(ev BookingCreated) error
}

// LogNotifier é o colaborador padrão quando nenhum canal real está
// plugado: registra o evento e segue a vida.
type LogNotifier struct{}

func (LogNotifier) BookingCreated(ev BookingCreated) error {
	log.Printf(
		"booking created: ref=%s salon=%q service=%q start=%s",
		ev.Reference, ev.SalonName, ev.ServiceName, ev.StartLocal,
	)
	return nil
}
