package main

import (
	"fmt"

	"github.com/sandevgo/blaster/internal/core"
	"github.com/sandevgo/blaster/internal/service/ui"
	"github.com/spf13/cobra"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the registered commands",
	RunE: func(cmd *cobra.Command, args []string) error {
		appCfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, flushLog := setupLogger(cmd.Context(), nil)
		defer flushLog()

		router, err := newRouter(ctx, appCfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, ui.TitleStyle.Render("COMMANDS"))
		for _, name := range router.Commands() {
			fmt.Fprintln(out, "  "+ui.UsageStyle.Render(core.CommandPrefix+name))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}
