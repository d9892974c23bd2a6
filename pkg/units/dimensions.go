package units

import (
	"fmt"
	"math"
)

// Dimensions is a length split into whole feet and remaining inches.
type Dimensions struct {
	Feet   int     `json:"feet"`
	Inches float64 `json:"inches"`
}

// FeetToDimensions splits totalFeet into whole feet and inches rounded to
// two decimals. Negative and non-finite lengths yield the zero value.
func FeetToDimensions(totalFeet float64) Dimensions {
	if math.IsNaN(totalFeet) || math.IsInf(totalFeet, 0) || totalFeet <= 0 {
		return Dimensions{}
	}

	feet := math.Floor(totalFeet)
	inches := Round((totalFeet-feet)*InchesPerFoot, 2)
	if inches >= InchesPerFoot {
		feet++
		inches = 0
	}

	return Dimensions{Feet: int(feet), Inches: inches}
}

// String formats the dimensions the way they appear on a measurement
// label, e.g. 10' 6.0".
func (d Dimensions) String() string {
	feet, inches := d.Feet, Round(d.Inches, 1)
	if inches >= InchesPerFoot {
		feet++
		inches = 0
	}
	return fmt.Sprintf("%d' %.1f\"", feet, inches)
}

// FormatFeetInches formats a length in feet as feet and inches
func FormatFeetInches(totalFeet float64) string {
	return FeetToDimensions(totalFeet).String()
}

// FormatFeet formats a length in decimal feet
func FormatFeet(feet float64) string {
	return fmt.Sprintf("%.2f ft", feet)
}

// FormatMeters formats a length in meters
func FormatMeters(meters float64) string {
	return fmt.Sprintf("%.2f m", meters)
}

// FormatSquareFeet formats an area in square feet
func FormatSquareFeet(sqft float64) string {
	return fmt.Sprintf("%.2f sq ft", sqft)
}
