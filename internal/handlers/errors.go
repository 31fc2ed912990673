package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/salonika/salon-marketplace/internal/httperr"
)

// mapBookingErrors traduz os códigos de negócio do agendamento para HTTP.
// Todos recuperáveis: o cliente escolhe outro horário e tenta de novo.
func mapBookingErrors(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "booking_failed", "Erro ao processar agendamento.")
		return
	}

	switch code {
	case httperr.CodeSlotTaken:
		httperr.Conflict(c, code, "Este horário acabou de ser reservado.")
	case httperr.CodeClosedDay:
		httperr.BadRequest(c, code, "O salão não atende neste dia.")
	case httperr.CodeOutOfWindow:
		httperr.BadRequest(c, code, "Horário fora do expediente.")
	case "salon_not_found", "service_not_found", "master_not_found", "appointment_not_found":
		httperr.NotFound(c, code, "Registro não encontrado.")
	case "invalid_state":
		httperr.BadRequest(c, code, "Transição de status inválida.")
	case "invalid_date_or_time":
		httperr.BadRequest(c, code, "Data ou hora inválida.")
	case "client_not_found":
		httperr.BadRequest(c, code, "Cliente inválido.")
	default:
		httperr.BadRequest(c, code, "Pedido inválido.")
	}
}
