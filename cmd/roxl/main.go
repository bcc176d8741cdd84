// roxl - rotate text through the terminal title
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/kannan/roxl/internal/cli"
	"github.com/kannan/roxl/internal/config"
	"github.com/kannan/roxl/internal/logger"
)

func main() {
	// The window opens straight away when there are no arguments and
	// both stdin and stdout are a terminal; everything else goes
	// through the CLI.
	if shouldRunUI() {
		if err := openWindow(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cli.Execute()
}

func openWindow() error {
	cfg, err := config.LoadOrDefault("")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.MustValidate(); err != nil {
		return err
	}

	if err := logger.Init(logger.Config{Path: cfg.Logging.Path, Level: cfg.Logging.Level}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	return runUI(cfg)
}

// shouldRunUI determines if the window should open without the CLI.
func shouldRunUI() bool {
	if len(os.Args) > 1 {
		return false
	}
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}
