package main

import (
	"github.com/sandevgo/blaster/internal/config"
	"github.com/sandevgo/blaster/internal/service/installer"
	"github.com/sandevgo/blaster/pkg/log"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:           "install",
	Short:         "Create the Blaster runtime configuration",
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context(), nil)
		defer flushLog()

		logger := log.FromCtx(ctx)

		appCfg, err := config.LoadAppConfig()
		if err != nil {
			return err
		}
		runtimePath := appCfg.GetRuntimePath()

		// run wizard (includes save step)
		state, err := installer.RunWizard(runtimePath, appCfg.GetTextsPath())
		if err != nil {
			return err
		}

		logger.Info().Str("env", state.EnvPath).Msgf("initialized runtime directory at: %s", runtimePath)
		logger.Info().Msg("Installation complete! You can now run 'blaster start'.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
