package db

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlapConstraintMatchesColumnTypes(t *testing.T) {
	// gorm grava time.Time como timestamptz; tsrange(timestamptz,
	// timestamptz) não resolve no Postgres e derrubaria o ALTER TABLE,
	// deixando a agenda sem a trava de sobreposição
	assert.Contains(t, appointmentsOverlapConstraint, "tstzrange(start_time, end_time)")
	assert.False(t, strings.Contains(appointmentsOverlapConstraint, "tsrange("))

	assert.Contains(t, appointmentsOverlapConstraint, "EXCLUDE USING gist")
	assert.Contains(t, appointmentsOverlapConstraint, "master_id WITH =")

	// cancelados liberam o intervalo
	assert.Contains(t, appointmentsOverlapConstraint, "'pending', 'confirmed', 'completed'")
	assert.NotContains(t, appointmentsOverlapConstraint, "cancelled")
}
