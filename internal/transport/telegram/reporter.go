package telegram

import (
	"fmt"

	"github.com/rs/zerolog"
	tele "gopkg.in/telebot.v3"
)

// Reporter forwards handler failures to a Telegram chat, usually through
// a separate bot so reports survive a broken main bot.
type Reporter struct {
	api    api
	chat   tele.Recipient
	logger zerolog.Logger
}

func NewReporter(api api, chatID int64, logger zerolog.Logger) *Reporter {
	return &Reporter{
		api:    api,
		chat:   tele.ChatID(chatID),
		logger: logger,
	}
}

// newReporterBot builds the reporting bot without contacting Telegram.
func newReporterBot(token string) (*tele.Bot, error) {
	b, err := tele.NewBot(tele.Settings{Token: token, Offline: true})
	if err != nil {
		return nil, fmt.Errorf("failed to create reporter bot: %w", err)
	}
	return b, nil
}

// Middleware reports errors and panics of next and passes them on
// unchanged.
func (r *Reporter) Middleware(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) (err error) {
		defer func() {
			if p := recover(); p != nil {
				r.Report(c, fmt.Errorf("panic: %v", p))
				panic(p)
			}
		}()

		if err = next(c); err != nil {
			r.Report(c, err)
		}
		return err
	}
}

func (r *Reporter) Report(c tele.Context, err error) {
	text := fmt.Sprintf("Error in: %s [%s]\n%v", commandOf(c), senderOf(c), err)
	if _, sendErr := r.api.Send(r.chat, text, tele.NoPreview); sendErr != nil {
		// Fatal would take the bot down, this is the last resort sink
		r.logger.WithLevel(zerolog.FatalLevel).Err(sendErr).
			Str("chat", r.chat.Recipient()).
			Str("report", text).
			Msg("failed to deliver error report")
	}
}

func commandOf(c tele.Context) string {
	if c.Message() == nil {
		return "<no message>"
	}
	text := c.Text()
	for i, r := range text {
		if r == ' ' || r == '\n' || r == '\t' {
			return text[:i]
		}
	}
	return text
}
