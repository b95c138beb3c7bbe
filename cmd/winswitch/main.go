package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/yourusername/winswitch/internal/client"
	"github.com/yourusername/winswitch/internal/logging"
)

var (
	configPath  string
	backendName string
	timeout     time.Duration
	jsonOutput  bool
	noColor     bool
	debugMode   bool

	// Color functions
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	warnColor    = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	keyColor     = color.New(color.FgYellow)
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "winswitch",
	Short: "Keyboard-driven window focus across monitors",
	Long: `winswitch moves keyboard focus between application windows on an X11
desktop spanning several monitors.

Focus can jump to a monitor by index or step left and right through the
windows of the current workspace, crossing monitor boundaries and wrapping
around at the ends. Bind the focus commands to hotkeys in your window manager.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/winswitch/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&backendName, "backend", "", "Window source backend: wmctrl or ewmh (default from config)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", client.DefaultTimeout, "Timeout for each external command")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	// Focus commands
	rootCmd.AddCommand(focusCmd)
	focusCmd.AddCommand(focusMonitorCmd)
	focusMonitorCmd.SetFlagErrorFunc(negativeIndexError)
	focusCmd.AddCommand(focusDirectionCmd)
	focusCmd.AddCommand(focusLeftCmd)
	focusCmd.AddCommand(focusRightCmd)
	focusCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Print the target window without focusing it")

	// List commands
	rootCmd.AddCommand(listCmd)
	listCmd.AddCommand(listWindowsCmd)
	listCmd.AddCommand(listMonitorsCmd)

	// Show command
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showASCII, "ascii", false, "Force ASCII mode (no Unicode)")
	showCmd.Flags().BoolVar(&showUnicode, "unicode", false, "Force Unicode mode")
	showCmd.Flags().BoolVar(&showIDs, "ids", false, "Show window IDs")
	showCmd.Flags().IntVar(&showWidth, "width", 0, "Override terminal width")
	showCmd.Flags().IntVar(&showHeight, "height", 0, "Override terminal height")

	// Config commands
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configInitCmd)
	configShowCmd.Flags().String("format", "yaml", "Output format: yaml or json")
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing config file")

	// Disable color if requested, enable debug logging if requested
	cobra.OnInitialize(func() {
		if noColor {
			color.NoColor = true
		}
		if debugMode {
			logging.SetDebug(true)
		}
	})
}

func main() {
	if err := logging.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)
	}
	defer logging.Close()

	if err := rootCmd.Execute(); err != nil {
		logging.Error().Err(err).Msg("command failed")
		printError(err.Error())
		os.Exit(1)
	}
}

// Helper functions

func printJSON(data interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func printError(msg string) {
	if noColor {
		fmt.Fprintln(os.Stderr, "Error:", msg)
	} else {
		errorColor.Fprint(os.Stderr, "✗ Error: ")
		fmt.Fprintln(os.Stderr, msg)
	}
}

// printNotice reports a request that had nothing to do. These are not
// failures and the process still exits 0.
func printNotice(msg string) {
	if noColor {
		fmt.Fprintln(os.Stderr, "Notice:", msg)
	} else {
		warnColor.Fprint(os.Stderr, "! ")
		fmt.Fprintln(os.Stderr, msg)
	}
}
