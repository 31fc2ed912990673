package appointment

import (
	"errors"

	domain "github.com/salonika/salon-marketplace/internal/domain/appointment"
	"github.com/salonika/salon-marketplace/internal/httperr"
)

// notFoundAs traduz o ErrNotFound do repositório para o código de
// negócio da operação. Falha de infraestrutura (banco fora, timeout)
// não é "não encontrado" e sobe como está.
func notFoundAs(err error, code string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.ErrBusiness(code)
	}
	return err
}
