package schedule

import (
	"time"

	"github.com/salonika/salon-marketplace/internal/httperr"
)

// DayConfig é um dia da grade semanal enviada pelo dono do salão.
type DayConfig struct {
	Weekday   int
	IsClosed  bool
	OpenTime  string
	CloseTime string
}

// ValidateDay garante a invariante do expediente: dia aberto exige
// abertura < fechamento ("HH:MM" válidos). Dia fechado ignora horários.
func ValidateDay(d DayConfig) error {
	if d.Weekday < 0 || d.Weekday > 6 {
		return httperr.ErrBusiness("invalid_working_hours")
	}

	if d.IsClosed {
		return nil
	}

	open, err := time.Parse("15:04", d.OpenTime)
	if err != nil {
		return httperr.ErrBusiness("invalid_working_hours")
	}
	closeT, err := time.Parse("15:04", d.CloseTime)
	if err != nil {
		return httperr.ErrBusiness("invalid_working_hours")
	}

	if !open.Before(closeT) {
		return httperr.ErrBusiness("invalid_working_hours")
	}

	return nil
}

// ValidateWeek valida a grade inteira e rejeita dias repetidos
// (um registro por dia da semana).
func ValidateWeek(days []DayConfig) error {
	seen := map[int]bool{}
	for _, d := range days {
		if err := ValidateDay(d); err != nil {
			return err
		}
		if seen[d.Weekday] {
			return httperr.ErrBusiness("invalid_working_hours")
		}
		seen[d.Weekday] = true
	}
	return nil
}
