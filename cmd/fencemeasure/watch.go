package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/philipparndt/fencemeasure/internal/monitoring"
	"github.com/philipparndt/fencemeasure/pkg/analysis"
	"github.com/philipparndt/fencemeasure/pkg/project"
	"github.com/philipparndt/fencemeasure/pkg/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch [project]",
	Short: "Recompute the project summary whenever the file changes",
	Args:  cobra.ExactArgs(1),
	Run:   runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) {
	filename := args[0]
	out := cmd.OutOrStdout()

	report := func(path string) {
		if err := reportProject(out, path); err != nil {
			monitoring.Logf("%v", err)
		}
	}
	report(filename)

	fw, err := watcher.NewFileWatcher(cfg.GetWatchDebounce())
	if err != nil {
		fail("%v", err)
	}
	defer fw.Close()

	if err := fw.Watch([]string{filename}, report); err != nil {
		fail("%v", err)
	}
	fw.Start()
	monitoring.Logf("watching %s (ctrl-c to stop)", filename)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
}

// reportProject loads and summarizes a project file. Every call rereads
// the file, so the summary always reflects the current segment list.
func reportProject(w io.Writer, filename string) error {
	p, err := project.Load(filename)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\n--- %s ---\n", filename)
	analysis.WriteReport(w, analysis.AnalyzeProject(p, analysisOptions()))
	return nil
}
