// Package units converts between the metric lengths reported by the AR
// session and the imperial lengths fence crews work in.
package units

import "math"

// Conversion constants
const (
	FeetPerMeter             = 3.28084
	InchesPerFoot            = 12.0
	SquareFeetPerSquareMeter = 10.7639
)

// MetersToFeet converts meters to feet
func MetersToFeet(meters float64) float64 {
	return meters * FeetPerMeter
}

// FeetToMeters converts feet to meters
func FeetToMeters(feet float64) float64 {
	return feet / FeetPerMeter
}

// FeetToInches converts feet to inches
func FeetToInches(feet float64) float64 {
	return feet * InchesPerFoot
}

// InchesToFeet converts inches to feet
func InchesToFeet(inches float64) float64 {
	return inches / InchesPerFoot
}

// MetersToInches converts meters to inches
func MetersToInches(meters float64) float64 {
	return FeetToInches(MetersToFeet(meters))
}

// SquareMetersToSquareFeet converts an area in square meters to square feet
func SquareMetersToSquareFeet(sqm float64) float64 {
	return sqm * SquareFeetPerSquareMeter
}

// Round rounds v half away from zero to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
