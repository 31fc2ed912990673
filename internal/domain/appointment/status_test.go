package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonika/salon-marketplace/internal/httperr"
	"github.com/salonika/salon-marketplace/internal/models"
)

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		name    string
		check   func(Status) error
		from    Status
		allowed bool
	}{
		{"cancel pending", CanCancel, StatusPending, true},
		{"cancel confirmed", CanCancel, StatusConfirmed, true},
		{"cancel completed", CanCancel, StatusCompleted, false},
		{"cancel cancelled", CanCancel, StatusCancelled, false},

		{"confirm pending", CanConfirm, StatusPending, true},
		{"confirm confirmed", CanConfirm, StatusConfirmed, false},
		{"confirm cancelled", CanConfirm, StatusCancelled, false},

		{"complete confirmed", CanComplete, StatusConfirmed, true},
		{"complete pending", CanComplete, StatusPending, false},
		{"complete completed", CanComplete, StatusCompleted, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.check(tc.from)
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				assert.True(t, httperr.IsBusiness(err, "invalid_state"))
			}
		})
	}
}

func TestActiveStatusesExcludeCancelled(t *testing.T) {
	active := ActiveStatuses()

	assert.Contains(t, active, string(StatusPending))
	assert.Contains(t, active, string(StatusConfirmed))
	assert.Contains(t, active, string(StatusCompleted))
	assert.NotContains(t, active, string(StatusCancelled))
}

func TestCancelSetsTimestamp(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusPending)}
	now := time.Date(2026, time.March, 2, 12, 0, 0, 0, time.UTC)

	require.NoError(t, Cancel(ap, now))

	assert.Equal(t, string(StatusCancelled), ap.Status)
	require.NotNil(t, ap.CancelledAt)
	assert.Equal(t, now, *ap.CancelledAt)
}

func TestConfirmThenComplete(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusPending)}
	now := time.Date(2026, time.March, 2, 18, 0, 0, 0, time.UTC)

	require.NoError(t, Confirm(ap))
	assert.Equal(t, string(StatusConfirmed), ap.Status)

	require.NoError(t, Complete(ap, now))
	assert.Equal(t, string(StatusCompleted), ap.Status)
	require.NotNil(t, ap.CompletedAt)

	// terminal: nenhuma transição sai de completed
	assert.Error(t, Cancel(ap, now))
	assert.Error(t, Confirm(ap))
}
