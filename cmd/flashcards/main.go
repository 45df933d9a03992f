// Package main is the entry point for the flashcards CLI and server.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/youruser/flashcards/internal/config"
	"github.com/youruser/flashcards/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	cfg       *config.Config
	appLogger *slog.Logger
)

// flagKeys maps persistent and per-command flag names to config keys. Only
// flags the user actually set override the file and environment.
var flagKeys = map[string]string{
	"port":      "server.port",
	"log-level": "server.log_level",
	"base-url":  "server.base_url",
	"store":     "store.driver",
	"db":        "store.path",
	"autoprint": "render.auto_print",
	"margin":    "render.margin_mm",
}

var rootCmd = &cobra.Command{
	Use:     "flashcards",
	Short:   "Print double-sided flashcards from a spreadsheet",
	Version: version,
	Long: `flashcards turns a two-column spreadsheet (term, definition) into an A4
print document with four cards per page. Backs are mirrored so that after
long-edge duplex printing and cutting every card carries its term on one
side and its definition on the other.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfgFile, _ := cmd.Flags().GetString("config")

		overrides := map[string]any{}
		for name, key := range flagKeys {
			f := cmd.Flags().Lookup(name)
			if f != nil && f.Changed {
				overrides[key] = f.Value.String()
			}
		}

		c, err := config.Load(cfgFile, overrides)
		if err != nil {
			return err
		}
		cfg = c
		appLogger = logger.Setup(cfg.Server.LogLevel)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./flashcards.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn or error")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
