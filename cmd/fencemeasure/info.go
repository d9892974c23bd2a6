package main

import (
	"github.com/spf13/cobra"

	"github.com/philipparndt/fencemeasure/pkg/analysis"
	"github.com/philipparndt/fencemeasure/pkg/project"
)

var infoCalibrated bool

var infoCmd = &cobra.Command{
	Use:   "info [project]",
	Short: "Display the summary of a fence project",
	Long:  "Show total length, perimeter, enclosed area, corner angles, bounding box, accuracy and material estimate for a project file.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().BoolVar(&infoCalibrated, "calibrated", false, "Apply the project's calibration factor to segment lengths")
}

func runInfo(cmd *cobra.Command, args []string) {
	p, err := project.Load(args[0])
	if err != nil {
		fail("%v", err)
	}

	opts := analysisOptions()
	opts.Calibrated = infoCalibrated
	analysis.WriteReport(cmd.OutOrStdout(), analysis.AnalyzeProject(p, opts))
}
