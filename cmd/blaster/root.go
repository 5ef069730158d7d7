package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sandevgo/blaster/internal/config"
	"github.com/sandevgo/blaster/internal/core"
	"github.com/sandevgo/blaster/internal/service/ui"
	"github.com/sandevgo/blaster/pkg/log"
	"github.com/spf13/cobra"
)

var (
	debug bool
)

var rootCmd = &cobra.Command{
	Use:     "blaster",
	Short:   core.BlasterName + ": a Telegram command bot",
	Long:    core.BlasterName + ` routes /commands sent to a Telegram bot to their handlers.`,
	Version: core.BlasterVersion,
}

func Execute() {
	CustomizeHelp(rootCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging")
}

func setupLogger(ctx context.Context, cfg *config.AppConfig) (context.Context, func()) {
	opts := log.Options{Debug: debug || config.IsDebug()}
	if cfg != nil {
		opts.File = cfg.GetLogPath()
	}

	ctx, flush, err := log.NewContextWithLogger(ctx, opts)
	if err != nil {
		// The console logger is still usable without the file
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		ctx, flush, _ = log.NewContextWithLogger(ctx, log.Options{Debug: opts.Debug})
	}
	return ctx, flush
}

func CustomizeHelp(rootCmd *cobra.Command) {
	cobra.AddTemplateFunc("StyleTitle", func(s string) string { return ui.TitleStyle.Render(s) })
	cobra.AddTemplateFunc("StyleUsage", func(s string) string { return ui.UsageStyle.Render(s) })
	cobra.AddTemplateFunc("StyleFlag", func(s string) string { return ui.FlagStyle.Render(s) })
	cobra.AddTemplateFunc("StyleDesc", func(s string) string { return ui.DescStyle.Render(s) })

	template := `
{{StyleTitle "USAGE"}}
  {{StyleUsage .UseLine}}
{{if gt (len .Commands) 0}}{{StyleTitle "AVAILABLE COMMANDS"}}
{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding}} {{StyleDesc .Short}}{{end}}
{{end}}{{end}}
{{if .HasAvailableLocalFlags}}{{StyleTitle "FLAGS"}}
{{StyleFlag (.LocalFlags.FlagUsages | trimTrailingWhitespaces)}}
{{end}}
`
	rootCmd.SetHelpTemplate(template)
}
