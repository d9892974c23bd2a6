package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/fencemeasure/pkg/fence"
	"github.com/philipparndt/fencemeasure/pkg/geometry"
	"github.com/philipparndt/fencemeasure/pkg/project"
	"github.com/philipparndt/fencemeasure/pkg/units"
)

var (
	segStartX, segStartY, segStartZ float64
	segEndX, segEndY, segEndZ       float64
	segConfidence                   float64
	segStyle                        string
	segHeight                       float64
)

var addSegmentCmd = &cobra.Command{
	Use:   "add-segment [project]",
	Short: "Append a measured fence run to a project file",
	Long: `Append a segment between two points (meters) to a project file. Length
and slope are computed once and stored with the segment.`,
	Args: cobra.ExactArgs(1),
	Run:  runAddSegment,
}

func init() {
	rootCmd.AddCommand(addSegmentCmd)

	addSegmentCmd.Flags().Float64Var(&segStartX, "x1", 0.0, "X coordinate of start point")
	addSegmentCmd.Flags().Float64Var(&segStartY, "y1", 0.0, "Y coordinate of start point")
	addSegmentCmd.Flags().Float64Var(&segStartZ, "z1", 0.0, "Z coordinate of start point")
	addSegmentCmd.Flags().Float64Var(&segEndX, "x2", 0.0, "X coordinate of end point")
	addSegmentCmd.Flags().Float64Var(&segEndY, "y2", 0.0, "Y coordinate of end point")
	addSegmentCmd.Flags().Float64Var(&segEndZ, "z2", 0.0, "Z coordinate of end point")
	addSegmentCmd.Flags().Float64Var(&segConfidence, "confidence", 1.0, "Sensor confidence score (0-1)")
	addSegmentCmd.Flags().StringVar(&segStyle, "style", "", "Fence style")
	addSegmentCmd.Flags().Float64Var(&segHeight, "height", 0, "Fence height in feet")

	addSegmentCmd.MarkFlagsRequiredTogether("x1", "y1", "z1", "x2", "y2", "z2")
}

func runAddSegment(cmd *cobra.Command, args []string) {
	filename := args[0]

	p, err := project.Load(filename)
	if err != nil {
		fail("%v", err)
	}

	start := geometry.NewVector3(segStartX, segStartY, segStartZ)
	end := geometry.NewVector3(segEndX, segEndY, segEndZ)
	if grid := cfg.GetGridSize(); grid > 0 {
		start = geometry.SnapToGrid(start, grid)
		end = geometry.SnapToGrid(end, grid)
	}

	segment := fence.NewSegment(start, end, segConfidence)
	segment.Style = segStyle
	segment.HeightFeet = segHeight

	if violations := fence.ValidateSegment(segment); len(violations) > 0 {
		fail("invalid segment: %v", violations)
	}

	updated := p.WithSegment(segment)
	if err := project.Save(filename, &updated); err != nil {
		fail("%v", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added segment %s: %s\n", segment.ID, units.FormatFeetInches(segment.Length()))
}
