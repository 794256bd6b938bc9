package park_vehicle

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkwise/parking-service/internal/domain"
	slotRepo "github.com/parkwise/parking-service/internal/infra/storage/slotinv"
	vehicleRepo "github.com/parkwise/parking-service/internal/infra/storage/vehicle"
	"github.com/parkwise/parking-service/internal/infra/txmanager"
	parkVehicle "github.com/parkwise/parking-service/internal/usecase/park_vehicle"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newRouter(t *testing.T) (*mux.Router, *vehicleRepo.Repository) {
	t.Helper()
	vehicles := vehicleRepo.NewRepository()
	slots := slotRepo.NewRepository()
	uc := parkVehicle.NewUseCase(vehicles, slots, txmanager.New(), nopLogger{})
	h := NewHandler(uc, nopLogger{})

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/vehicles/{vehicleId}/park", h.Handle).Methods(http.MethodPost)
	return r, vehicles
}

func registerVehicle(t *testing.T, vehicles *vehicleRepo.Repository, id string) {
	t.Helper()
	_, err := vehicles.Create(context.Background(), &domain.Vehicle{
		ID:          id,
		PlateNumber: "MH12AB1234",
		OwnerName:   "Asha",
		Class:       domain.ClassCar,
		EntryTime:   time.Now(),
		PaymentMode: domain.PaymentPending,
	})
	require.NoError(t, err)
}

func postPark(t *testing.T, r *mux.Router, vehicleID, slotID string) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(ParkVehicleRequest{SlotID: slotID})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/vehicles/"+vehicleID+"/park", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandleParksVehicle(t *testing.T) {
	r, vehicles := newRouter(t)
	registerVehicle(t, vehicles, "v1")

	rec := postPark(t, r, "v1", "1-C-1")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp parkVehicle.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "1-C-1", resp.SlotID)
	assert.Nil(t, resp.FreedSlotID)
}

func TestHandleErrorMapping(t *testing.T) {
	r, vehicles := newRouter(t)
	registerVehicle(t, vehicles, "v1")
	_, err := vehicles.Create(context.Background(), &domain.Vehicle{
		ID:          "v2",
		PlateNumber: "KA05XY9876",
		OwnerName:   "Ravi",
		Class:       domain.ClassCar,
		EntryTime:   time.Now(),
		PaymentMode: domain.PaymentPending,
	})
	require.NoError(t, err)

	// Unknown vehicle -> 404
	assert.Equal(t, http.StatusNotFound, postPark(t, r, "ghost", "1-C-1").Code)

	// Unknown slot -> 404
	assert.Equal(t, http.StatusNotFound, postPark(t, r, "v1", "9-Z-9").Code)

	// Class mismatch -> 409
	assert.Equal(t, http.StatusConflict, postPark(t, r, "v1", "1-B-1").Code)

	// Occupied -> 409
	require.Equal(t, http.StatusOK, postPark(t, r, "v1", "1-C-1").Code)
	assert.Equal(t, http.StatusConflict, postPark(t, r, "v2", "1-C-1").Code)

	// Missing slot id -> 400
	assert.Equal(t, http.StatusBadRequest, postPark(t, r, "v1", "").Code)
}

func TestHandleReparkReportsFreedSlot(t *testing.T) {
	r, vehicles := newRouter(t)
	registerVehicle(t, vehicles, "v1")

	require.Equal(t, http.StatusOK, postPark(t, r, "v1", "1-C-1").Code)

	rec := postPark(t, r, "v1", "1-C-2")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp parkVehicle.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.FreedSlotID)
	assert.Equal(t, "1-C-1", *resp.FreedSlotID)
}
