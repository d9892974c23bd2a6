package geometry

import (
	"math"

	"github.com/philipparndt/fencemeasure/pkg/units"
)

// baseAccuracyCm is the expected error at one meter with full confidence.
const baseAccuracyCm = 0.5

// CalibrationFactor returns the multiplicative correction that maps a
// sensor-measured length onto a known reference length. A zero measured
// length yields 1.
func CalibrationFactor(knownLength, measuredLength float64) float64 {
	if measuredLength == 0 {
		return 1.0
	}
	return knownLength / measuredLength
}

// ApplyCalibration corrects a raw measurement by factor.
func ApplyCalibration(measurement, factor float64) float64 {
	return measurement * factor
}

// EstimateAccuracyCm estimates the measurement error in centimeters for a
// run of distanceFeet captured at the given confidence. The error grows
// with the square root of the distance in meters and is scaled between 1x
// and 3x as confidence drops from 1 to 0. The result has one decimal.
//
// Confidence outside [0,1] is clamped; negative or non-finite distances
// are treated as zero.
func EstimateAccuracyCm(confidence, distanceFeet float64) float64 {
	if math.IsNaN(distanceFeet) || math.IsInf(distanceFeet, 0) || distanceFeet < 0 {
		distanceFeet = 0
	}
	if math.IsNaN(confidence) {
		confidence = 0
	}
	confidence = math.Max(0, math.Min(1, confidence))

	distanceMeters := units.FeetToMeters(distanceFeet)
	penalty := 1 + (1-confidence)*2
	return units.Round(baseAccuracyCm*math.Sqrt(distanceMeters)*penalty, 1)
}
