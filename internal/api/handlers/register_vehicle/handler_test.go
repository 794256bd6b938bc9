package register_vehicle

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkwise/parking-service/internal/api/handlers"
	vehicleRepo "github.com/parkwise/parking-service/internal/infra/storage/vehicle"
	vehiclesService "github.com/parkwise/parking-service/internal/service/vehicles"
	"github.com/parkwise/parking-service/internal/service/vehicles/models"
	registerVehicle "github.com/parkwise/parking-service/internal/usecase/register_vehicle"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newHandler() *Handler {
	svc := vehiclesService.NewService(vehicleRepo.NewRepository(), nopLogger{})
	uc := registerVehicle.NewUseCase(svc, nopLogger{})
	return NewHandler(uc, nopLogger{})
}

func post(t *testing.T, h *Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/vehicles", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandleCreated(t *testing.T) {
	h := newHandler()

	rec := post(t, h, RegisterVehicleRequest{
		PlateNumber:  "MH12AB1234",
		OwnerName:    "Asha",
		VehicleClass: "CAR",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.VehicleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "MH12AB1234", resp.PlateNumber)
	assert.Equal(t, "CAR", resp.VehicleClass)
	assert.Equal(t, "pending", resp.PaymentMode)
}

func TestHandleBadRequest(t *testing.T) {
	h := newHandler()

	rec := post(t, h, RegisterVehicleRequest{
		PlateNumber:  "not-a-plate",
		OwnerName:    "Asha",
		VehicleClass: "CAR",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, msgInvalidPlate, errResp.Error)
}

func TestHandleDuplicateConflict(t *testing.T) {
	h := newHandler()

	rec := post(t, h, RegisterVehicleRequest{
		PlateNumber: "MH12AB1234", OwnerName: "Asha", VehicleClass: "CAR",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = post(t, h, RegisterVehicleRequest{
		PlateNumber: "MH12AB1234", OwnerName: "Ravi", VehicleClass: "BIKE",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandleRejectsUnknownFields(t *testing.T) {
	h := newHandler()

	rec := post(t, h, map[string]string{
		"plateNumber": "MH12AB1234",
		"ownerName":   "Asha",
		"vehicleType": "CAR",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
