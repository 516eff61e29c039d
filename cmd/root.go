package cmd

import (
	"fmt"
	"os"

	"github.com/SIDHARTHATHUMMANAPALLI/Athletic.ai/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "athleteai",
	Short: "AthleteAI Platform Server",
	Long: `AthleteAI serves the platform's single-page application and its demo API.
All API data is in-memory and hardcoded; nothing is persisted between requests.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format so CLI errors read like CLI errors, not log lines
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
