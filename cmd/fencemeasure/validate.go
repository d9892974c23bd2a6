package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/fencemeasure/pkg/fence"
	"github.com/philipparndt/fencemeasure/pkg/project"
)

var validateCmd = &cobra.Command{
	Use:   "validate [project]",
	Short: "Check a project file for missing or invalid fields",
	Args:  cobra.ExactArgs(1),
	Run:   runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) {
	p, err := project.Load(args[0])
	if err != nil {
		fail("%v", err)
	}

	violations := fence.ValidateProject(*p)
	violations = append(violations, fence.ValidateProjectSegments(*p)...)

	out := cmd.OutOrStdout()
	if len(violations) == 0 {
		fmt.Fprintf(out, "%s: ok (%d segments)\n", args[0], len(p.Segments))
		return
	}

	for _, v := range violations {
		fmt.Fprintf(out, "%s: %s\n", args[0], v)
	}
	os.Exit(1)
}
