package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/fencemeasure/internal/config"
	"github.com/philipparndt/fencemeasure/internal/monitoring"
	"github.com/philipparndt/fencemeasure/pkg/analysis"
	"github.com/philipparndt/fencemeasure/version"
)

var (
	configPath string
	verbose    bool
	cfg        = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "fencemeasure",
	Short: "Measure fence runs captured by an AR session",
	Long: `fencemeasure computes lengths, slopes, corner angles, enclosed areas and
material estimates for fence projects captured as 3D points by an AR
measuring session. Project files may be JSON or YAML.`,
	Version: version.GetFullVersion(),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		monitoring.SetVerbose(verbose)

		loaded, err := config.Resolve(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		monitoring.Debugf("config loaded (post spacing %.1f ft)", cfg.MaterialParams().PostSpacingFeet)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a TOML config file (default $"+config.EnvConfigPath+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print diagnostic output")
}

// analysisOptions builds report options from the loaded config
func analysisOptions() analysis.Options {
	return analysis.Options{
		AngleTolerance: cfg.GetAngleTolerance(),
		SnapIncrement:  cfg.GetSnapIncrement(),
		Materials:      cfg.MaterialParams(),
	}
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
