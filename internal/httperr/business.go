package httperr

import "errors"

// Códigos de negócio recuperáveis (o cliente escolhe outro horário
// e tenta de novo; nenhum derruba o processo).
const (
	CodeClosedDay           = "closed_day"
	CodeOutOfWindow         = "out_of_window"
	CodeSlotTaken           = "slot_taken"
	CodeInvalidWorkingHours = "invalid_working_hours"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
