package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/salonika/salon-marketplace/internal/httperr"
)

func TestValidateDay(t *testing.T) {
	cases := []struct {
		name  string
		day   DayConfig
		valid bool
	}{
		{"regular day", DayConfig{Weekday: 1, OpenTime: "09:00", CloseTime: "18:00"}, true},
		{"closed ignores times", DayConfig{Weekday: 0, IsClosed: true}, true},
		{"closed ignores garbage times", DayConfig{Weekday: 0, IsClosed: true, OpenTime: "xx", CloseTime: "yy"}, true},
		{"open equals close", DayConfig{Weekday: 2, OpenTime: "09:00", CloseTime: "09:00"}, false},
		{"open after close", DayConfig{Weekday: 3, OpenTime: "18:00", CloseTime: "09:00"}, false},
		{"bad open format", DayConfig{Weekday: 4, OpenTime: "9h00", CloseTime: "18:00"}, false},
		{"bad close format", DayConfig{Weekday: 4, OpenTime: "09:00", CloseTime: "25:99"}, false},
		{"weekday too small", DayConfig{Weekday: -1, OpenTime: "09:00", CloseTime: "18:00"}, false},
		{"weekday too big", DayConfig{Weekday: 7, OpenTime: "09:00", CloseTime: "18:00"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateDay(tc.day)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidWorkingHours))
			}
		})
	}
}

func TestValidateWeek(t *testing.T) {
	t.Run("full week", func(t *testing.T) {
		days := []DayConfig{
			{Weekday: 0, IsClosed: true},
			{Weekday: 1, OpenTime: "09:00", CloseTime: "18:00"},
			{Weekday: 2, OpenTime: "09:00", CloseTime: "18:00"},
			{Weekday: 3, OpenTime: "09:00", CloseTime: "18:00"},
			{Weekday: 4, OpenTime: "09:00", CloseTime: "18:00"},
			{Weekday: 5, OpenTime: "10:00", CloseTime: "20:00"},
			{Weekday: 6, OpenTime: "10:00", CloseTime: "16:00"},
		}
		assert.NoError(t, ValidateWeek(days))
	})

	t.Run("duplicate weekday", func(t *testing.T) {
		days := []DayConfig{
			{Weekday: 1, OpenTime: "09:00", CloseTime: "18:00"},
			{Weekday: 1, OpenTime: "10:00", CloseTime: "19:00"},
		}
		err := ValidateWeek(days)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidWorkingHours))
	})

	t.Run("one bad day fails the batch", func(t *testing.T) {
		days := []DayConfig{
			{Weekday: 1, OpenTime: "09:00", CloseTime: "18:00"},
			{Weekday: 2, OpenTime: "18:00", CloseTime: "09:00"},
		}
		assert.Error(t, ValidateWeek(days))
	})

	t.Run("empty week", func(t *testing.T) {
		assert.NoError(t, ValidateWeek(nil))
	})
}
