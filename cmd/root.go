package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/govlens/govlens/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "govlens",
	Short: "DAO governance proposal analyzer",
	Long:  "Fetches DAO governance proposals from governance platforms or uploaded documents, summarizes them with an LLM, and renders a For/Against opinion against an evaluation policy.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
