package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonika/salon-marketplace/internal/models"
)

// segunda-feira fixa, longe de qualquer "hoje" real
var monday = time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

// now de véspera: nenhum slot é filtrado por já ter passado
var dayBefore = monday.AddDate(0, 0, -1)

func at(hour, min int) time.Time {
	return time.Date(2026, time.March, 2, hour, min, 0, 0, time.UTC)
}

func hours(open, close string) *models.WorkingHours {
	return &models.WorkingHours{
		Weekday:   int(monday.Weekday()),
		OpenTime:  open,
		CloseTime: close,
	}
}

func fmtSlots(slots []time.Time) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Format("15:04"))
	}
	return out
}

func TestAvailableSlots_FullDayHourly(t *testing.T) {
	slots := AvailableSlots(
		hours("09:00", "18:00"),
		nil,
		time.Hour,
		time.Hour,
		monday,
		dayBefore,
	)

	require.Len(t, slots, 9)
	assert.Equal(t,
		[]string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00"},
		fmtSlots(slots),
	)
}

func TestAvailableSlots_BusyIntervalRemovesConflicts(t *testing.T) {
	busy := []BusyRange{{Start: at(13, 0), End: at(14, 0)}}

	slots := AvailableSlots(
		hours("09:00", "18:00"),
		busy,
		time.Hour,
		time.Hour,
		monday,
		dayBefore,
	)

	require.Len(t, slots, 8)
	assert.NotContains(t, fmtSlots(slots), "13:00")
	assert.Contains(t, fmtSlots(slots), "12:00")
	assert.Contains(t, fmtSlots(slots), "14:00")
}

func TestAvailableSlots_FineStepAroundBusyInterval(t *testing.T) {
	busy := []BusyRange{{Start: at(13, 0), End: at(14, 0)}}

	slots := AvailableSlots(
		hours("09:00", "18:00"),
		busy,
		time.Hour,
		15*time.Minute,
		monday,
		dayBefore,
	)

	got := fmtSlots(slots)

	// serviço de 1h: qualquer início em (12:00, 14:00) invade o ocupado
	assert.Contains(t, got, "12:00")
	for _, blocked := range []string{"12:15", "12:30", "12:45", "13:00", "13:15", "13:30", "13:45"} {
		assert.NotContains(t, got, blocked)
	}
	assert.Contains(t, got, "14:00")
}

func TestAvailableSlots_ClosedDay(t *testing.T) {
	wh := hours("09:00", "18:00")
	wh.IsClosed = true

	slots := AvailableSlots(wh, nil, time.Hour, time.Hour, monday, dayBefore)

	require.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestAvailableSlots_NilWorkingHours(t *testing.T) {
	slots := AvailableSlots(nil, nil, time.Hour, time.Hour, monday, dayBefore)

	require.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestAvailableSlots_ExactFitIsSingleSlot(t *testing.T) {
	slots := AvailableSlots(
		hours("09:00", "10:00"),
		nil,
		time.Hour,
		time.Hour,
		monday,
		dayBefore,
	)

	require.Len(t, slots, 1)
	assert.Equal(t, "09:00", slots[0].Format("15:04"))
}

func TestAvailableSlots_ServiceLongerThanWindow(t *testing.T) {
	slots := AvailableSlots(
		hours("09:00", "10:00"),
		nil,
		90*time.Minute,
		time.Hour,
		monday,
		dayBefore,
	)

	assert.Empty(t, slots)
}

func TestAvailableSlots_TodayFiltersPastTimes(t *testing.T) {
	now := at(12, 30)

	slots := AvailableSlots(
		hours("09:00", "18:00"),
		nil,
		time.Hour,
		time.Hour,
		monday,
		now,
	)

	assert.Equal(t,
		[]string{"13:00", "14:00", "15:00", "16:00", "17:00"},
		fmtSlots(slots),
	)
}

func TestAvailableSlots_CrossMidnight(t *testing.T) {
	slots := AvailableSlots(
		hours("22:00", "02:00"),
		nil,
		time.Hour,
		time.Hour,
		monday,
		dayBefore,
	)

	require.Len(t, slots, 4)
	assert.Equal(t, []string{"22:00", "23:00", "00:00", "01:00"}, fmtSlots(slots))

	// os dois últimos já caem no dia seguinte
	assert.Equal(t, monday.Day(), slots[1].Day())
	assert.Equal(t, monday.AddDate(0, 0, 1).Day(), slots[2].Day())
}

func TestAvailableSlots_AdjacentBookingsDoNotConflict(t *testing.T) {
	// intervalos semiabertos: terminar 10:00 e começar 11:00 não
	// conflita com o ocupado [10:00, 11:00)
	busy := []BusyRange{{Start: at(10, 0), End: at(11, 0)}}

	slots := AvailableSlots(
		hours("09:00", "12:00"),
		busy,
		time.Hour,
		time.Hour,
		monday,
		dayBefore,
	)

	assert.Equal(t, []string{"09:00", "11:00"}, fmtSlots(slots))
}

func TestAvailableSlots_Deterministic(t *testing.T) {
	busy := []BusyRange{{Start: at(10, 0), End: at(10, 30)}}

	first := AvailableSlots(hours("09:00", "18:00"), busy, 30*time.Minute, 15*time.Minute, monday, dayBefore)
	second := AvailableSlots(hours("09:00", "18:00"), busy, 30*time.Minute, 15*time.Minute, monday, dayBefore)

	assert.Equal(t, first, second)
}

func TestDayWindow(t *testing.T) {
	t.Run("open day", func(t *testing.T) {
		open, close, ok := DayWindow(hours("09:00", "18:00"), monday)

		require.True(t, ok)
		assert.Equal(t, at(9, 0), open)
		assert.Equal(t, at(18, 0), close)
	})

	t.Run("cross midnight extends close", func(t *testing.T) {
		open, close, ok := DayWindow(hours("22:00", "02:00"), monday)

		require.True(t, ok)
		assert.Equal(t, at(22, 0), open)
		assert.Equal(t, at(2, 0).AddDate(0, 0, 1), close)
	})

	t.Run("closed day", func(t *testing.T) {
		wh := hours("09:00", "18:00")
		wh.IsClosed = true

		_, _, ok := DayWindow(wh, monday)
		assert.False(t, ok)
	})
}
