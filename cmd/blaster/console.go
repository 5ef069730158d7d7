package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/sandevgo/blaster/internal/transport/cli"
	"github.com/sandevgo/blaster/pkg/srv"
	"github.com/spf13/cobra"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Try the commands in the terminal",
	Long:  `Routes typed lines through the same command router the bot uses, without Telegram.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		appCfg, err := loadConfig()
		if err != nil {
			return err
		}

		var flushLog func()
		ctx, flushLog = setupLogger(ctx, appCfg)
		defer flushLog()

		router, err := newRouter(ctx, appCfg)
		if err != nil {
			return err
		}

		rl, err := cli.NewReadLine(router, appCfg)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		return srv.Run(ctx, []srv.Service{
			// Closing readline also unblocks a pending read on interrupt
			srv.NewCleanup(func() error { return rl.Shutdown(ctx) }),
			&consoleSession{run: rl.Start, leave: cancel},
		})
	},
}

// consoleSession ends the run once the user leaves the console.
type consoleSession struct {
	run   func(context.Context) error
	leave context.CancelFunc
}

func (s *consoleSession) Start(ctx context.Context) error {
	defer s.leave()
	return s.run(ctx)
}

func (s *consoleSession) Shutdown(context.Context) error {
	return nil
}

func init() {
	rootCmd.AddCommand(consoleCmd)
}
