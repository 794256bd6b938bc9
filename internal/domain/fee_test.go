package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFeeFor(t *testing.T) {
	entry := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		class VehicleClass
		stay  time.Duration
		want  int64
	}{
		{"car 150 minutes bills three hours", ClassCar, 150 * time.Minute, 110},
		{"bike 45 minutes bills base rate", ClassBike, 45 * time.Minute, 30},
		{"car exactly one hour bills base rate", ClassCar, time.Hour, 50},
		{"car just over one hour bills one extra hour", ClassCar, time.Hour + time.Minute, 80},
		{"car exactly two hours bills one extra hour", ClassCar, 2 * time.Hour, 80},
		{"truck 30 minutes bills base rate", ClassTruck, 30 * time.Minute, 80},
		{"truck five hours", ClassTruck, 5 * time.Hour, 280},
		{"zero duration bills base rate", ClassBike, 0, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FeeFor(tt.class, entry, entry.Add(tt.stay))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFeeForMonotonicity(t *testing.T) {
	entry := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	prev := int64(0)
	for m := 0; m <= 6*60; m += 10 {
		fee := FeeFor(ClassCar, entry, entry.Add(time.Duration(m)*time.Minute))
		assert.GreaterOrEqual(t, fee, prev, "fee decreased at %d minutes", m)
		prev = fee
	}
}

func TestParseVehicleClass(t *testing.T) {
	got, ok := ParseVehicleClass("car")
	assert.True(t, ok)
	assert.Equal(t, ClassCar, got)

	got, ok = ParseVehicleClass("TRUCK")
	assert.True(t, ok)
	assert.Equal(t, ClassTruck, got)

	_, ok = ParseVehicleClass("boat")
	assert.False(t, ok)
}

func TestParsePaymentMode(t *testing.T) {
	got, ok := ParsePaymentMode("UPI")
	assert.True(t, ok)
	assert.Equal(t, PaymentUPI, got)

	// "pending" is a default state, not a settable mode
	_, ok = ParsePaymentMode("pending")
	assert.False(t, ok)
}

func TestValidPlateNumber(t *testing.T) {
	assert.True(t, ValidPlateNumber("MH12AB1234"))
	assert.False(t, ValidPlateNumber("mh12ab1234"))
	assert.False(t, ValidPlateNumber("MH12AB123"))
	assert.False(t, ValidPlateNumber("MH12AB12345"))
	assert.False(t, ValidPlateNumber(""))
}
