package httperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPgErrorClassification(t *testing.T) {
	exclusion := &pgconn.PgError{Code: "23P01"}
	duplicate := &pgconn.PgError{Code: "42710"}

	assert.True(t, IsExclusionConflict(exclusion))
	assert.False(t, IsExclusionConflict(duplicate))

	assert.True(t, IsDuplicateObject(duplicate))
	assert.False(t, IsDuplicateObject(exclusion))

	// erros embrulhados ainda classificam
	assert.True(t, IsExclusionConflict(fmt.Errorf("insert: %w", exclusion)))
	assert.True(t, IsDuplicateObject(fmt.Errorf("alter: %w", duplicate)))

	assert.False(t, IsExclusionConflict(errors.New("boom")))
	assert.False(t, IsDuplicateObject(nil))
}
