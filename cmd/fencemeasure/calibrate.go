package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/fencemeasure/pkg/fence"
	"github.com/philipparndt/fencemeasure/pkg/project"
)

var (
	calibrateKnown      float64
	calibrateMeasured   float64
	calibrateConfidence float64
	calibrateProject    string
)

var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Derive a calibration factor from a known reference length",
	Long: `Compare a known reference length with the length the sensor measured
for it and print the correction factor. With --project the calibration is
stored in the project file.`,
	Args: cobra.NoArgs,
	Run:  runCalibrate,
}

func init() {
	rootCmd.AddCommand(calibrateCmd)

	calibrateCmd.Flags().Float64Var(&calibrateKnown, "known", 0, "Known reference length")
	calibrateCmd.Flags().Float64Var(&calibrateMeasured, "measured", 0, "Sensor-measured length of the reference")
	calibrateCmd.Flags().Float64Var(&calibrateConfidence, "confidence", 1.0, "Confidence of the reference measurement")
	calibrateCmd.Flags().StringVar(&calibrateProject, "project", "", "Project file to store the calibration in")

	calibrateCmd.MarkFlagsRequiredTogether("known", "measured")
	calibrateCmd.MarkFlagRequired("known")
}

func runCalibrate(cmd *cobra.Command, args []string) {
	cal := fence.NewCalibration(calibrateKnown, calibrateMeasured, calibrateConfidence)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Calibration factor: %.6f\n", cal.Factor)
	if calibrateMeasured == 0 {
		fmt.Fprintln(out, "Measured length is zero; no correction applied.")
	}

	if calibrateProject == "" {
		return
	}

	p, err := project.Load(calibrateProject)
	if err != nil {
		fail("%v", err)
	}
	p.Calibration = &cal
	if err := project.Save(calibrateProject, p); err != nil {
		fail("%v", err)
	}
	fmt.Fprintf(out, "Stored in %s\n", calibrateProject)
}
