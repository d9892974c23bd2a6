package main

import (
	"github.com/spf13/cobra"

	"github.com/philipparndt/fencemeasure/pkg/analysis"
	"github.com/philipparndt/fencemeasure/pkg/fence"
	"github.com/philipparndt/fencemeasure/pkg/project"
)

var (
	materialsFeet  float64
	materialsGates int
)

var materialsCmd = &cobra.Command{
	Use:   "materials [project]",
	Short: "Estimate posts, pickets, rails and concrete",
	Long: `Estimate a basic bill of materials either for a project file or for a
given linear footage and gate count.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runMaterials,
}

func init() {
	rootCmd.AddCommand(materialsCmd)

	materialsCmd.Flags().Float64Var(&materialsFeet, "feet", 0, "Total linear feet (when no project is given)")
	materialsCmd.Flags().IntVar(&materialsGates, "gates", 0, "Number of gates (when no project is given)")
}

func runMaterials(cmd *cobra.Command, args []string) {
	params := cfg.MaterialParams()

	var estimate fence.MaterialEstimate
	if len(args) == 1 {
		p, err := project.Load(args[0])
		if err != nil {
			fail("%v", err)
		}
		estimate = fence.EstimateProjectMaterials(*p, params)
	} else {
		estimate = fence.EstimateMaterials(materialsFeet, materialsGates, params)
	}

	analysis.WriteMaterials(cmd.OutOrStdout(), estimate)
}
