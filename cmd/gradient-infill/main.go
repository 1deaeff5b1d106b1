package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gradient-infill/internal/config"
	"github.com/philipparndt/gradient-infill/version"
	"github.com/spf13/cobra"
)

var (
	configPath    string
	logDir        string
	noLog         bool
	outputPath    string
	overrideFlags *config.OverrideFlags
)

var rootCmd = &cobra.Command{
	Use:   "gradient-infill <file.gcode>",
	Short: "Add a flow gradient to the infill of sliced G-code",
	Long: `gradient-infill post-processes a sliced G-code file in place. Infill extrusion
close to the inner walls is printed with more flow and infill further away with less,
so the part gets a strong shell that fades into a light core.

The file must use relative extrusion (M83). Settings are read from
gradient-infill.toml next to the executable and can be overridden per run.`,
	Version: version.GetFullVersion(),
	Args:    cobra.ExactArgs(1),
	Run:     runProcess,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Settings file (default: gradient-infill.toml next to the executable)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Directory for the run log (default: next to the executable)")
	rootCmd.PersistentFlags().BoolVar(&noLog, "no-log", false, "Do not write a run log")
	overrideFlags = config.BindOverrideFlags(rootCmd.PersistentFlags())

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the result to this file instead of modifying the input")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runProcess(cmd *cobra.Command, args []string) {
	filename := args[0]

	settings, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := processFile(filename, outputPath, settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "An error occurred during G-code processing, the file was not modified.")
		os.Exit(1)
	}
}
