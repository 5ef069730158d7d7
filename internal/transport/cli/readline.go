package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sandevgo/blaster/internal/config"
	"github.com/sandevgo/blaster/internal/core"
	"github.com/sandevgo/blaster/pkg/conv"
	"github.com/sandevgo/blaster/pkg/log"
)

// ReadLine feeds typed lines to the router, for trying commands locally.
type ReadLine struct {
	router core.CmdRouter[core.Conversation]
	rl     *readline.Instance
	user   string
}

func NewReadLine(router core.CmdRouter[core.Conversation], cfg *config.AppConfig) (*ReadLine, error) {
	if err := os.MkdirAll(cfg.GetRuntimePath(), 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     filepath.Join(cfg.GetRuntimePath(), "input_history"),
		AutoComplete:    completer(router),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	name := "console"
	if u, err := user.Current(); err == nil {
		name = u.Username
	}

	return &ReadLine{router: router, rl: rl, user: name}, nil
}

func completer(router core.CmdRouter[core.Conversation]) readline.AutoCompleter {
	var items []readline.PrefixCompleterInterface
	for _, cmd := range router.Commands() {
		items = append(items, readline.PcItem(core.CommandPrefix+cmd))
	}
	return readline.NewPrefixCompleter(items...)
}

func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Msg("console started, type 'exit' to quit")

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if len(line) == 0 {
					return nil
				}
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "exit" {
			return nil
		}
		if line == "" {
			continue
		}

		if err := r.Handle(ctx, r.rl.Stdout(), line); err != nil {
			logger.Error().Err(err).Msg("command failed")
			fmt.Fprintf(r.rl.Stdout(), "Error: %v\n", err)
		}
	}
}

// Handle routes one line, writing replies to out.
func (r *ReadLine) Handle(ctx context.Context, out io.Writer, line string) error {
	session := &session{ctx: ctx, out: out}
	return r.router.Route(session, core.TextMessage{Body: line, From: r.user})
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}

// session prints replies as plain text.
type session struct {
	ctx context.Context
	out io.Writer
}

func (s *session) Context() context.Context {
	return s.ctx
}

func (s *session) Reply(md string) error {
	_, err := fmt.Fprintln(s.out, strings.TrimRight(conv.PlainText(md), "\n"))
	return err
}
