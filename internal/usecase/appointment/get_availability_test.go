package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonika/salon-marketplace/internal/cache"
	domain "github.com/salonika/salon-marketplace/internal/domain/appointment"
	"github.com/salonika/salon-marketplace/internal/httperr"
	"github.com/salonika/salon-marketplace/internal/models"
)

func availabilityInput(stepMin int) domain.AvailabilityInput {
	date, _ := time.Parse("2006-01-02", futureDate())
	return domain.AvailabilityInput{
		SalonID:   1,
		MasterID:  1,
		ServiceID: 1,
		Date:      date,
		StepMin:   stepMin,
	}
}

func TestGetAvailability_HourlyGrid(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetAvailability(repo, cache.New(nil))

	slots, err := uc.Execute(context.Background(), availabilityInput(60))

	require.NoError(t, err)
	assert.Equal(t,
		[]string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00"},
		slots,
	)
}

func TestGetAvailability_BookingRemovesSlot(t *testing.T) {
	repo := newFakeRepo()
	availUC := NewGetAvailability(repo, cache.New(nil))
	createUC := newCreateUC(repo)

	_, err := createUC.Execute(context.Background(), bookingInput("13:00"))
	require.NoError(t, err)

	slots, err := availUC.Execute(context.Background(), availabilityInput(60))

	require.NoError(t, err)
	assert.NotContains(t, slots, "13:00")
	assert.Contains(t, slots, "12:00")
	assert.Contains(t, slots, "14:00")
}

func TestGetAvailability_ClosedDayIsEmptyNotError(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetAvailability(repo, cache.New(nil))

	in := availabilityInput(60)
	repo.week[int(in.Date.Weekday())].IsClosed = true

	slots, err := uc.Execute(context.Background(), in)

	require.NoError(t, err)
	require.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestGetAvailability_DefaultStep(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetAvailability(repo, cache.New(nil))

	slots, err := uc.Execute(context.Background(), availabilityInput(0))

	require.NoError(t, err)
	// passo padrão de 15min: 09:00..17:00 inclusive, de 15 em 15
	assert.Len(t, slots, 33)
	assert.Contains(t, slots, "09:15")
}

func TestGetAvailability_UnknownService(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetAvailability(repo, cache.New(nil))

	in := availabilityInput(60)
	in.ServiceID = 999

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestGetAvailability_UnknownMaster(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetAvailability(repo, cache.New(nil))

	in := availabilityInput(60)
	in.MasterID = 999

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "master_not_found"))
}

// --------------------------------------------------
// Falha de infraestrutura ≠ dia fechado
// --------------------------------------------------

type brokenHoursRepo struct {
	domain.Repository
	err error
}

func (r brokenHoursRepo) GetWorkingHours(context.Context, uint, int) (*models.WorkingHours, error) {
	return nil, r.err
}

func TestGetAvailability_InfraErrorPropagates(t *testing.T) {
	dbDown := errors.New("db connection refused")
	repo := brokenHoursRepo{Repository: newFakeRepo(), err: dbDown}
	uc := NewGetAvailability(repo, cache.New(nil))

	slots, err := uc.Execute(context.Background(), availabilityInput(60))

	require.ErrorIs(t, err, dbDown)
	assert.Nil(t, slots)
}

func TestGetAvailability_MissingHoursRowIsEmptyDay(t *testing.T) {
	repo := brokenHoursRepo{Repository: newFakeRepo(), err: domain.ErrNotFound}
	uc := NewGetAvailability(repo, cache.New(nil))

	slots, err := uc.Execute(context.Background(), availabilityInput(60))

	require.NoError(t, err)
	require.NotNil(t, slots)
	assert.Empty(t, slots)
}

type brokenSalonRepo struct {
	domain.Repository
	err error
}

func (r brokenSalonRepo) GetSalonByID(context.Context, uint) (*models.Salon, error) {
	return nil, r.err
}

func TestGetAvailability_SalonLookupInfraErrorPropagates(t *testing.T) {
	dbDown := errors.New("db connection refused")
	repo := brokenSalonRepo{Repository: newFakeRepo(), err: dbDown}
	uc := NewGetAvailability(repo, cache.New(nil))

	_, err := uc.Execute(context.Background(), availabilityInput(60))

	require.ErrorIs(t, err, dbDown)
	_, isBusiness := httperr.BusinessCode(err)
	assert.False(t, isBusiness)
}
