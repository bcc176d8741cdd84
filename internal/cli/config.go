package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kannan/roxl/internal/config"
	"github.com/kannan/roxl/internal/rotation"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
	Long:  "Commands for managing roxl configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a new configuration file",
	Long: `Create a new roxl.yaml configuration file with defaults.

Examples:
  roxl config init
  roxl config init --text "Hello there"
  roxl config init -o ~/roxl.yaml`,
	RunE: runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration file",
	Long: `Validate the configuration file.

Examples:
  roxl config validate
  roxl config validate -c /path/to/roxl.yaml`,
	RunE: runConfigValidate,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  "Display the loaded configuration values",
	RunE:  runConfigShow,
}

var (
	configInitText   string
	configInitOutput string
)

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configShowCmd)

	configInitCmd.Flags().StringVar(&configInitText, "text", config.DefaultConfig().Text, "initial title text")
	configInitCmd.Flags().StringVarP(&configInitOutput, "output", "o", config.DefaultConfigFile, "output file path")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	// Check if file already exists
	if _, err := os.Stat(configInitOutput); err == nil {
		return fmt.Errorf("config file already exists: %s\nUse --output to specify a different path", configInitOutput)
	}

	cfg := config.DefaultConfig()
	cfg.Text = configInitText

	content := generateConfigYAML(cfg)

	if err := os.WriteFile(configInitOutput, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✅ Configuration file created: %s\n\n", configInitOutput)
	fmt.Fprintln(out, "📝 Next steps:")
	fmt.Fprintln(out, "   1. Edit the text and the initial slider positions")
	fmt.Fprintln(out, "   2. Run 'roxl config validate' to verify")
	fmt.Fprintln(out, "   3. Run 'roxl' to open the window")

	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	// cfg is already loaded in PersistentPreRunE
	result := cfg.Validate()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "🔍 Configuration Validation")
	if cfgFile != "" {
		fmt.Fprintf(out, "   File: %s\n", cfgFile)
	}
	fmt.Fprintln(out)

	if result.Valid {
		fmt.Fprintln(out, "✅ Configuration is VALID")
	} else {
		fmt.Fprintln(out, "❌ Configuration is INVALID")
	}

	fmt.Fprintln(out)
	fmt.Fprint(out, result.String())

	if !result.Valid {
		return fmt.Errorf("configuration validation failed")
	}

	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "roxl - Configuration")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════")
	fmt.Fprintf(out, "  Text:           %q\n", cfg.Text)
	fmt.Fprintf(out, "  Shift:          %d (%s)\n", cfg.Shift,
		rotation.ShiftLabel(cfg.Shift, cfg.Timer.Granularity(), cfg.Timer.Threshold()))
	fmt.Fprintf(out, "  Truncation:     %d (%s)\n", cfg.Truncation, rotation.TruncationLabel(cfg.Truncation))
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════")

	fmt.Fprintln(out)
	fmt.Fprintln(out, "⏱️  Timer:")
	fmt.Fprintf(out, "   • Tick:      %v\n", cfg.Timer.Granularity())
	fmt.Fprintf(out, "   • Threshold: %v\n", cfg.Timer.Threshold())

	fmt.Fprintln(out)
	fmt.Fprintln(out, "📝 Logging:")
	path := cfg.Logging.Path
	if path == "" {
		path = "(none)"
	}
	fmt.Fprintf(out, "   • Path:  %s\n", path)
	fmt.Fprintf(out, "   • Level: %s\n", cfg.Logging.Level)

	return nil
}

func generateConfigYAML(cfg *config.Config) string {
	return fmt.Sprintf(`# roxl configuration

# Initial content of the text box
text: %q

# Initial shifting speed (0-%d, 0 = no shifting)
shift: %d

# Initial maximum title length (0-%d, %d = whole title)
truncation: %d

# Rotation timer. Every tick adds the shifting speed to an accumulator;
# once it exceeds the threshold the title moves by one character.
timer:
  tick_ms: %d
  threshold_ms: %d

# Logging settings (empty path = no log file)
logging:
  path: ""
  level: "info"
`, cfg.Text, rotation.ShiftMax, cfg.Shift, rotation.TruncationMax, rotation.TruncationMax,
		cfg.Truncation, cfg.Timer.TickMs, cfg.Timer.ThresholdMs)
}
