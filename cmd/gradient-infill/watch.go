package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/philipparndt/gradient-infill/internal/config"
	"github.com/philipparndt/gradient-infill/pkg/gradient"
	"github.com/philipparndt/gradient-infill/pkg/watcher"
	"github.com/spf13/cobra"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Process every G-code file written to a directory",
	Long: `Watch a directory, for example the slicer's export folder, and add the gradient
to each G-code file once the slicer has finished writing it. Files that were already
processed are skipped.`,
	Args: cobra.ExactArgs(1),
	Run:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond, "Quiet time after the last write before a file is processed")
}

func runWatch(cmd *cobra.Command, args []string) {
	dir := args[0]

	settings, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fw, err := watcher.NewDirWatcher(watchDebounce)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer fw.Close()

	fw.OnError(func(err error) {
		fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
	})
	if err := fw.Watch(dir, watcher.ExtensionFilter(".gcode", ".gco", ".g"), func(path string) {
		handleWatchedFile(path, settings)
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fw.Start()

	fmt.Printf("Watching %s for G-code files (Ctrl+C to stop)\n", dir)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	fmt.Println("\nStopped watching.")
}

func handleWatchedFile(path string, settings config.Settings) {
	processed, err := gradient.IsProcessed(path)
	if err != nil {
		// the file may have been moved away before the debounce fired
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	if processed {
		return
	}

	fmt.Printf("\nFile changed: %s\n", path)
	if err := processFile(path, "", settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}
