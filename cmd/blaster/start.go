package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sandevgo/blaster/internal/config"
	"github.com/sandevgo/blaster/internal/core"
	"github.com/sandevgo/blaster/internal/transport/telegram"
	"github.com/sandevgo/blaster/pkg/log"
	"github.com/sandevgo/blaster/pkg/srv"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the Telegram bot",
	Long:  `Loads the runtime configuration, registers the commands and polls Telegram until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		appCfg, err := loadConfig()
		if err != nil {
			return err
		}

		var flushLog func()
		ctx, flushLog = setupLogger(ctx, appCfg)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().
			Str("version", core.BlasterVersion).
			Str("repository", core.BlasterRepositoryURL).
			Str("runtime", appCfg.GetRuntimePath()).
			Msgf("starting %s", core.BlasterName)

		router, err := newRouter(ctx, appCfg)
		if err != nil {
			return err
		}

		tgCfg, err := config.LoadTelegramConfig()
		if err != nil {
			return fmt.Errorf("invalid telegram config: %w", err)
		}

		b, err := telegram.NewBot(ctx, tgCfg, router)
		if err != nil {
			return err
		}

		if err := srv.Run(ctx, []srv.Service{b}); err != nil {
			return err
		}
		logger.Info().Msg("blaster has been shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
