package appointment

import (
	"time"

	"github.com/salonika/salon-marketplace/internal/models"
)

const DefaultStepMinutes = 15

// Intervalo ocupado [Start, End) de um agendamento não cancelado
type BusyRange struct {
	Start time.Time
	End   time.Time
}

type AvailabilityInput struct {
	SalonID   uint
	MasterID  uint
	ServiceID uint
	Date      time.Time
	StepMin   int
}

// ======================================================
// CÁLCULO DE SLOTS (função pura, não reserva nada)
// ======================================================

// AvailableSlots devolve os horários de início possíveis para um serviço
// de duração `duration` no dia `date`, respeitando o expediente e os
// intervalos ocupados. A disputa por um mesmo slot é resolvida na
// gravação, não aqui.
func AvailableSlots(
	wh *models.WorkingHours,
	busy []BusyRange,
	duration time.Duration,
	step time.Duration,
	date time.Time,
	now time.Time,
) []time.Time {

	if wh == nil || wh.IsClosed || wh.OpenTime == "" || wh.CloseTime == "" {
		return []time.Time{}
	}
	if duration <= 0 || step <= 0 {
		return []time.Time{}
	}

	open := combineDateTime(date, wh.OpenTime)
	close := combineDateTime(date, wh.CloseTime)

	// fechamento depois da meia-noite: único caso suportado de virada de dia
	if !close.After(open) {
		close = close.AddDate(0, 0, 1)
	}

	latestStart := close.Add(-duration)
	if latestStart.Before(open) {
		return []time.Time{}
	}

	today := sameDay(date, now)

	slots := []time.Time{}
	for t := open; !t.After(latestStart); t = t.Add(step) {
		if today && !t.After(now) {
			continue
		}
		if overlapsAny(t, t.Add(duration), busy) {
			continue
		}
		slots = append(slots, t)
	}

	return slots
}

// DayWindow devolve a janela [abertura, fechamento) do expediente no dia,
// já com a extensão de virada de meia-noite aplicada. ok=false quando o
// salão não abre nesse dia.
func DayWindow(wh *models.WorkingHours, date time.Time) (open, close time.Time, ok bool) {
	if wh == nil || wh.IsClosed || wh.OpenTime == "" || wh.CloseTime == "" {
		return time.Time{}, time.Time{}, false
	}

	open = combineDateTime(date, wh.OpenTime)
	close = combineDateTime(date, wh.CloseTime)
	if !close.After(open) {
		close = close.AddDate(0, 0, 1)
	}
	return open, close, true
}

func combineDateTime(date time.Time, hm string) time.Time {
	t, _ := time.Parse("15:04", hm)
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	)
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.In(a.Location()).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// teste de interseção de intervalos semiabertos:
// [aStart, aEnd) cruza [b.Start, b.End) ⇔ aStart < b.End && aEnd > b.Start
func overlapsAny(start, end time.Time, busy []BusyRange) bool {
	for _, b := range busy {
		if start.Before(b.End) && end.After(b.Start) {
			return true
		}
	}
	return false
}
