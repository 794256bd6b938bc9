package vehicles

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkwise/parking-service/internal/domain"
	vehicleRepo "github.com/parkwise/parking-service/internal/infra/storage/vehicle"
	"github.com/parkwise/parking-service/internal/service/vehicles/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func newService(t *testing.T) (*Service, *vehicleRepo.Repository, *fakeClock) {
	t.Helper()
	repo := vehicleRepo.NewRepository()
	svc := NewService(repo, nopLogger{})
	clock := &fakeClock{now: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)}
	svc.timeProvider = clock
	return svc, repo, clock
}

func TestRegisterAssignsIDAndEntryTime(t *testing.T) {
	svc, _, clock := newService(t)
	ctx := context.Background()

	resp, err := svc.Register(ctx, &models.RegisterVehicleRequest{
		PlateNumber: "MH12AB1234",
		OwnerName:   "Asha",
		Class:       domain.ClassCar,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, clock.now, resp.EntryTime)
	assert.Equal(t, string(domain.PaymentPending), resp.PaymentMode)
	assert.Nil(t, resp.ExitTime)
	assert.Nil(t, resp.SlotID)
}

func TestRegisterRejectsDuplicatePlate(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &models.RegisterVehicleRequest{
		PlateNumber: "MH12AB1234", OwnerName: "Asha", Class: domain.ClassCar,
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &models.RegisterVehicleRequest{
		PlateNumber: "mh12ab1234", OwnerName: "Ravi", Class: domain.ClassBike,
	})
	assert.ErrorIs(t, err, ErrDuplicatePlate)
}

func TestFindByPlatePrefersActive(t *testing.T) {
	svc, repo, clock := newService(t)
	ctx := context.Background()

	// Older visit, checked out
	first, err := svc.Register(ctx, &models.RegisterVehicleRequest{
		PlateNumber: "MH12AB1234", OwnerName: "Asha", Class: domain.ClassCar,
	})
	require.NoError(t, err)
	require.NoError(t, repo.Checkout(ctx, first.ID, clock.now.Add(time.Hour), 50))

	// Fresh active visit for the same plate
	clock.now = clock.now.Add(2 * time.Hour)
	second, err := svc.Register(ctx, &models.RegisterVehicleRequest{
		PlateNumber: "MH12AB1234", OwnerName: "Asha", Class: domain.ClassCar,
	})
	require.NoError(t, err)

	found, err := svc.FindByPlate(ctx, "mh12ab1234")
	require.NoError(t, err)
	assert.Equal(t, second.ID, found.ID)
}

func TestFindByPlateFallsBackToLatestHistory(t *testing.T) {
	svc, repo, clock := newService(t)
	ctx := context.Background()

	first, err := svc.Register(ctx, &models.RegisterVehicleRequest{
		PlateNumber: "MH12AB1234", OwnerName: "Asha", Class: domain.ClassCar,
	})
	require.NoError(t, err)
	require.NoError(t, repo.Checkout(ctx, first.ID, clock.now.Add(time.Hour), 50))

	clock.now = clock.now.Add(3 * time.Hour)
	second, err := svc.Register(ctx, &models.RegisterVehicleRequest{
		PlateNumber: "MH12AB1234", OwnerName: "Asha", Class: domain.ClassCar,
	})
	require.NoError(t, err)
	require.NoError(t, repo.Checkout(ctx, second.ID, clock.now.Add(time.Hour), 80))

	found, err := svc.FindByPlate(ctx, "MH12AB1234")
	require.NoError(t, err)
	assert.Equal(t, second.ID, found.ID)

	_, err = svc.FindByPlate(ctx, "ZZ99ZZ9999")
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestRecordPayment(t *testing.T) {
	svc, repo, clock := newService(t)
	ctx := context.Background()

	v, err := svc.Register(ctx, &models.RegisterVehicleRequest{
		PlateNumber: "MH12AB1234", OwnerName: "Asha", Class: domain.ClassCar,
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.RecordPayment(ctx, v.ID, "upi"), ErrVehicleNotCheckedOut)
	assert.ErrorIs(t, svc.RecordPayment(ctx, v.ID, "cheque"), ErrInvalidPaymentMode)

	require.NoError(t, repo.Checkout(ctx, v.ID, clock.now.Add(time.Hour), 50))
	require.NoError(t, svc.RecordPayment(ctx, v.ID, "upi"))

	history, err := svc.ListHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, string(domain.PaymentUPI), history[0].PaymentMode)

	assert.ErrorIs(t, svc.RecordPayment(ctx, "missing", "cash"), ErrVehicleNotFound)
}
