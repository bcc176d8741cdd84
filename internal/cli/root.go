// Package cli provides command-line interface commands for roxl.
package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/kannan/roxl/internal/app"
	"github.com/kannan/roxl/internal/config"
	"github.com/kannan/roxl/internal/interactive"
	"github.com/kannan/roxl/internal/logger"
	"github.com/kannan/roxl/internal/rotation"
	"github.com/kannan/roxl/internal/tui"
)

var (
	cfgFile string
	cfg     *config.Config
	verbose bool

	uiText     string
	uiSpeed    int
	uiTruncate int
	uiLineMode bool
)

// rootCmd is the base command. Without a subcommand it opens the window.
var rootCmd = &cobra.Command{
	Use:   "roxl",
	Short: "roxl - rotate text through the terminal title",
	Long: `roxl shows a text box and two sliders and rotates the entered text
through the terminal window title.

  • The first slider limits how much of the title is shown
  • The second slider sets the shifting speed (0 stops the rotation)

Without a terminal, or with --line-mode, a line-based interface is used.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for certain commands
		if cmd.Name() == "version" || cmd.Name() == "init" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.LoadOrDefault(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// The window owns the terminal; only subcommands log to it.
		return initLogger(cfg, cmd != cmd.Root())
	},
	RunE: runWindow,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./roxl.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.Flags().StringVarP(&uiText, "text", "t", "", "initial title text")
	rootCmd.Flags().IntVar(&uiSpeed, "speed", 0, fmt.Sprintf("initial shifting speed (0-%d, 0 = no shifting)", rotation.ShiftMax))
	rootCmd.Flags().IntVar(&uiTruncate, "truncate", rotation.TruncationMax, fmt.Sprintf("initial maximum title length (0-%d, %d = whole title)", rotation.TruncationMax, rotation.TruncationMax))
	rootCmd.Flags().BoolVar(&uiLineMode, "line-mode", false, "use the line-based interface")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(configCmd)
}

func initLogger(cfg *config.Config, console bool) error {
	logLevel := cfg.Logging.Level
	if verbose {
		logLevel = "debug"
	}
	logCfg := logger.Config{
		Path:    cfg.Logging.Path,
		Level:   logLevel,
		Console: console,
	}
	if err := logger.Init(logCfg); err != nil {
		logger.Warn("failed to initialize logger", "path", cfg.Logging.Path, "error", err)
	}
	logger.Debug("logger ready", "level", logLevel, "console", console)
	return nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	if flags.Changed("text") {
		cfg.Text = uiText
	}
	if flags.Changed("speed") {
		cfg.Shift = uiSpeed
	}
	if flags.Changed("truncate") {
		cfg.Truncation = uiTruncate
	}

	if err := cfg.MustValidate(); err != nil {
		return err
	}

	lineMode := uiLineMode || !isTerminal()
	logger.Info("opening window", "line_mode", lineMode, "version", app.Version)
	if err := RunUI(cfg, lineMode); err != nil {
		logger.Error("window failed", "error", err)
		return err
	}
	return nil
}

// RunUI opens the window with the full-screen UI or the line-mode UI.
func RunUI(cfg *config.Config, lineMode bool) error {
	if lineMode {
		return interactive.Run(cfg)
	}
	return tui.Run(cfg)
}

func isTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print detailed version information about roxl",
	Run: func(cmd *cobra.Command, args []string) {
		if verbose {
			fmt.Fprintln(cmd.OutOrStdout(), app.GetVersionInfo())
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "roxl v%s\n", app.GetVersion())
		}
	},
}
