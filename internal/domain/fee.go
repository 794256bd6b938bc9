package domain

import "time"

// ParkingRate holds the billing rates for one vehicle class
type ParkingRate struct {
	BaseRate   int64 // covers the first (possibly partial) hour
	HourlyRate int64 // every additional full-or-partial hour
}

// rates is the fixed rate table
var rates = map[VehicleClass]ParkingRate{
	ClassCar:   {BaseRate: 50, HourlyRate: 30},
	ClassBike:  {BaseRate: 30, HourlyRate: 20},
	ClassTruck: {BaseRate: 80, HourlyRate: 50},
}

// RateFor returns the rate table entry for a vehicle class
func RateFor(class VehicleClass) ParkingRate {
	return rates[class]
}

// FeeFor computes the parking fee for a stay: the base rate covers the first
// hour (or any partial first hour), every additional full-or-partial hour is
// billed at the hourly rate.
func FeeFor(class VehicleClass, entryTime, exitTime time.Time) int64 {
	rate := rates[class]

	stay := exitTime.Sub(entryTime)
	if stay < 0 {
		stay = 0
	}

	// Ceiling of the stay in hours, without floating point
	hours := int64((stay + time.Hour - 1) / time.Hour)

	extra := hours - 1
	if extra < 0 {
		extra = 0
	}
	return rate.BaseRate + extra*rate.HourlyRate
}
