// Command server runs the inspection stream hub and its companion
// processes.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"inspection-hub/go-backend/internal/config"
)

var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "server",
		Short:         "Real-time visual inspection stream hub",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(serveCmd(), evaluatorCmd(), migrateCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("server version %s\n", version)
		},
	})
	return cmd
}

// loadConfig reads and validates configuration and installs the process
// logger as the slog default.
func loadConfig(requireAuth bool) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if requireAuth {
		if err := cfg.ValidateAuth(); err != nil {
			return nil, nil, err
		}
	}
	logger := cfg.Logger()
	slog.SetDefault(logger)
	return cfg, logger, nil
}
