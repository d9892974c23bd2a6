package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/philipparndt/fencemeasure/pkg/geometry"
)

var angleA, angleB, angleC []float64

var angleCmd = &cobra.Command{
	Use:   "angle",
	Short: "Measure the corner angle at a vertex",
	Long: `Measure the angle at vertex B between the rays to A and C.
Points are given as x,y,z in meters.`,
	Args: cobra.NoArgs,
	Run:  runAngle,
}

func init() {
	rootCmd.AddCommand(angleCmd)

	angleCmd.Flags().Float64SliceVar(&angleA, "a", nil, "First point as x,y,z")
	angleCmd.Flags().Float64SliceVar(&angleB, "b", nil, "Vertex as x,y,z")
	angleCmd.Flags().Float64SliceVar(&angleC, "c", nil, "Last point as x,y,z")

	angleCmd.MarkFlagRequired("a")
	angleCmd.MarkFlagRequired("b")
	angleCmd.MarkFlagRequired("c")
}

func runAngle(cmd *cobra.Command, args []string) {
	a, err := parsePoint(angleA)
	if err != nil {
		fail("--a: %v", err)
	}
	b, err := parsePoint(angleB)
	if err != nil {
		fail("--b: %v", err)
	}
	c, err := parsePoint(angleC)
	if err != nil {
		fail("--c: %v", err)
	}

	writeAngle(cmd.OutOrStdout(), a, b, c, cfg.GetAngleTolerance(), cfg.GetSnapIncrement())
}

func parsePoint(coords []float64) (geometry.Vector3, error) {
	if len(coords) != 3 {
		return geometry.Vector3{}, fmt.Errorf("expected 3 coordinates, got %d", len(coords))
	}
	return geometry.NewVector3(coords[0], coords[1], coords[2]), nil
}

func writeAngle(w io.Writer, a, b, c geometry.Vector3, tolerance, increment float64) {
	angle := geometry.VertexAngle(a, b, c)

	fmt.Fprintf(w, "Angle: %.2f°\n", angle)
	fmt.Fprintf(w, "Kind: %s (±%.1f°)\n", geometry.ClassifyAngle(angle, tolerance), tolerance)
	fmt.Fprintf(w, "Snapped: %.0f°\n", geometry.SnapAngle(angle, increment))
}
