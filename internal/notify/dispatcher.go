package notify

import "log"

type Dispatcher struct {
	notifier Notifier
	queue    chan BookingCreated
}

func NewDispatcher(notifier Notifier) *Dispatcher {
	d := &Dispatcher{
		notifier: notifier,
		queue:    make(chan BookingCreated, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.notifier.BookingCreated(ev); err != nil {
			// entrega é melhor esforço; falha não afeta o agendamento já gravado
			log.Println("notify error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev BookingCreated) {
	select {
	case d.queue <- ev:
	default:
		log.Println("notify queue full, dropping event")
	}
}
