package units

import (
	"math"
	"testing"
)

func TestFeetToDimensions(t *testing.T) {
	tests := []struct {
		name     string
		feet     float64
		expected Dimensions
	}{
		{"half foot", 10.5, Dimensions{Feet: 10, Inches: 6}},
		{"quarter foot", 3.25, Dimensions{Feet: 3, Inches: 3}},
		{"whole feet", 8, Dimensions{Feet: 8, Inches: 0}},
		{"rounds inches to two places", 2.1, Dimensions{Feet: 2, Inches: 1.2}},
		{"carries into feet", 10.9999, Dimensions{Feet: 11, Inches: 0}},
		{"under a foot", 0.75, Dimensions{Feet: 0, Inches: 9}},
		{"zero", 0, Dimensions{}},
		{"negative", -3.5, Dimensions{}},
		{"NaN", math.NaN(), Dimensions{}},
		{"infinite", math.Inf(1), Dimensions{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FeetToDimensions(tt.feet)
			if result.Feet != tt.expected.Feet || math.Abs(result.Inches-tt.expected.Inches) > 1e-9 {
				t.Errorf("FeetToDimensions(%v) = %+v, want %+v", tt.feet, result, tt.expected)
			}
		})
	}
}

func TestFormatFeetInches(t *testing.T) {
	tests := []struct {
		feet     float64
		expected string
	}{
		{10.5, `10' 6.0"`},
		{3.25, `3' 3.0"`},
		{0, `0' 0.0"`},
		{1.0 + 11.97/12, `2' 0.0"`},
	}

	for _, tt := range tests {
		result := FormatFeetInches(tt.feet)
		if result != tt.expected {
			t.Errorf("FormatFeetInches(%v) = %s, want %s", tt.feet, result, tt.expected)
		}
	}
}

func TestFormatHelpers(t *testing.T) {
	if got := FormatFeet(12.5); got != "12.50 ft" {
		t.Errorf("FormatFeet = %s, want 12.50 ft", got)
	}
	if got := FormatMeters(3.048); got != "3.05 m" {
		t.Errorf("FormatMeters = %s, want 3.05 m", got)
	}
	if got := FormatSquareFeet(10.7639); got != "10.76 sq ft" {
		t.Errorf("FormatSquareFeet = %s, want 10.76 sq ft", got)
	}
}
