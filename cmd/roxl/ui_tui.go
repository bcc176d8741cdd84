//go:build !legacy

package main

import (
	"github.com/kannan/roxl/internal/cli"
	"github.com/kannan/roxl/internal/config"
)

// runUI opens the full-screen Bubble Tea window.
func runUI(cfg *config.Config) error {
	return cli.RunUI(cfg, false)
}
