package telegram

import (
	"context"
	"fmt"
	"regexp"

	"github.com/sandevgo/blaster/internal/config"
	"github.com/sandevgo/blaster/internal/core"
	"github.com/sandevgo/blaster/pkg/log"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

type Bot struct {
	bot      *tele.Bot
	cfg      *config.TelegramConfig
	router   core.CmdRouter[core.Conversation]
	sender   *sender
	reporter *Reporter
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	router core.CmdRouter[core.Conversation],
) (*Bot, error) {
	pattern, err := regexp.Compile(cfg.RoutePattern)
	if err != nil {
		return nil, fmt.Errorf("invalid route pattern: %w", err)
	}

	b, err := tele.NewBot(tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: cfg.PollTimeout},
		OnError: func(err error, c tele.Context) {
			log.FromCtx(ctx).Error().Err(err).Msg("telegram handler failed")
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:    b,
		cfg:    cfg,
		router: router,
		sender: newSender(b),
	}

	if cfg.ReportingEnabled() {
		rb, err := newReporterBot(cfg.ReportToken)
		if err != nil {
			return nil, err
		}
		bot.reporter = NewReporter(rb, cfg.ReportChatID, *log.FromCtx(ctx))
	}

	// Use context from Signal with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	// Only the owner, when one is configured
	if cfg.OwnerID != 0 {
		b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
			return func(c tele.Context) error {
				if c.Sender() == nil || c.Sender().ID != cfg.OwnerID {
					return nil
				}
				return next(c)
			}
		})
	}

	if bot.reporter != nil {
		b.Use(bot.reporter.Middleware)
	}

	// Every text goes through the router, telebot's own command table is unused
	b.Handle(tele.OnText, bot.handleMessage, RegexAnywhere(pattern))

	return bot, nil
}

// Start blocks until Shutdown is called.
func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().
		Str("bot", b.bot.Me.Username).
		Strs("commands", b.router.Commands()).
		Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx, ok := c.Get(baseContextKey).(context.Context)
	if !ok {
		ctx = context.Background()
	}

	conv := &conversation{ctx: ctx, c: c, sender: b.sender, botName: b.bot.Me.Username}
	return b.router.Route(conv, conv)
}
