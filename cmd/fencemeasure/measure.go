package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/philipparndt/fencemeasure/pkg/analysis"
	"github.com/philipparndt/fencemeasure/pkg/geometry"
	"github.com/philipparndt/fencemeasure/pkg/units"
)

var (
	point1X, point1Y, point1Z float64
	point2X, point2Y, point2Z float64
	measureFactor             float64
	measureConfidence         float64
)

var measureCmd = &cobra.Command{
	Use:   "measure",
	Short: "Measure the run between two points",
	Long: `Measure the straight-line and horizontal distance between two 3D points
given in meters, along with the slope between them.`,
	Args: cobra.NoArgs,
	Run:  runMeasure,
}

func init() {
	rootCmd.AddCommand(measureCmd)

	measureCmd.Flags().Float64Var(&point1X, "x1", 0.0, "X coordinate of first point")
	measureCmd.Flags().Float64Var(&point1Y, "y1", 0.0, "Y coordinate of first point")
	measureCmd.Flags().Float64Var(&point1Z, "z1", 0.0, "Z coordinate of first point")
	measureCmd.Flags().Float64Var(&point2X, "x2", 0.0, "X coordinate of second point")
	measureCmd.Flags().Float64Var(&point2Y, "y2", 0.0, "Y coordinate of second point")
	measureCmd.Flags().Float64Var(&point2Z, "z2", 0.0, "Z coordinate of second point")
	measureCmd.Flags().Float64Var(&measureFactor, "factor", 1.0, "Calibration factor to apply")
	measureCmd.Flags().Float64Var(&measureConfidence, "confidence", 1.0, "Sensor confidence for the accuracy estimate")
}

func runMeasure(cmd *cobra.Command, args []string) {
	p1 := geometry.NewVector3(point1X, point1Y, point1Z)
	p2 := geometry.NewVector3(point2X, point2Y, point2Z)
	if grid := cfg.GetGridSize(); grid > 0 {
		p1 = geometry.SnapToGrid(p1, grid)
		p2 = geometry.SnapToGrid(p2, grid)
	}

	writeMeasurement(cmd.OutOrStdout(), p1, p2, measureFactor, measureConfidence)
}

func writeMeasurement(w io.Writer, p1, p2 geometry.Vector3, factor, confidence float64) {
	direct := geometry.ApplyCalibration(geometry.Distance3D(p1, p2), factor)
	horizontal := geometry.ApplyCalibration(geometry.HorizontalDistance(p1, p2), factor)
	feet := units.MetersToFeet(direct)

	fmt.Fprintln(w, "Point-to-Point Measurement")
	fmt.Fprintln(w, "==========================")
	fmt.Fprintf(w, "\nPoint 1: %s\n", analysis.FormatVector(p1))
	fmt.Fprintf(w, "Point 2: %s\n\n", analysis.FormatVector(p2))

	fmt.Fprintf(w, "Direct distance: %s (%s, %s)\n", units.FormatMeters(direct), units.FormatFeet(feet), units.FormatFeetInches(feet))
	fmt.Fprintf(w, "Horizontal run: %s (%s)\n", units.FormatMeters(horizontal), units.FormatFeet(units.MetersToFeet(horizontal)))
	fmt.Fprintf(w, "Slope: %.2f%% (%.2f°)\n", geometry.SlopePercent(p1, p2), geometry.SlopeAngleDegrees(p1, p2))
	fmt.Fprintf(w, "Estimated accuracy: ±%.1f cm\n", geometry.EstimateAccuracyCm(confidence, feet))
	if factor != 1.0 {
		fmt.Fprintf(w, "Calibration factor: %.4f\n", factor)
	}
}
