//go:build legacy

// Legacy builds target consoles without full-screen support.
package main

import (
	"github.com/kannan/roxl/internal/cli"
	"github.com/kannan/roxl/internal/config"
)

// runUI opens the line-mode window.
func runUI(cfg *config.Config) error {
	return cli.RunUI(cfg, true)
}
