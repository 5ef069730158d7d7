package telegram

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sandevgo/blaster/pkg/conv"
	"github.com/sandevgo/blaster/pkg/log"
	"github.com/sandevgo/blaster/pkg/retry"
	tele "gopkg.in/telebot.v3"
)

const (
	// Telegram accepts 4096 characters, HTML tags add some on top of the source
	maxTelegramMsgLen = 4000
	chunkPause        = time.Second
)

// api is the part of *tele.Bot the sender uses.
type api interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

type sender struct {
	api     api
	retrier *retry.Retrier
	pause   time.Duration
}

func newSender(api api) *sender {
	cfg := retry.NewDefaultConfig()
	cfg.Retryable = isNetworkError

	return &sender{
		api:     api,
		retrier: retry.NewRetrier(cfg),
		pause:   chunkPause,
	}
}

// sendMarkdown sends md in chunks Telegram accepts, rendered as HTML.
// Delivery is best effort: a chunk Telegram refuses to parse is sent
// again as plain text. It returns the last message sent.
func (s *sender) sendMarkdown(ctx context.Context, to tele.Recipient, md string) (*tele.Message, error) {
	logger := log.FromCtx(ctx)
	defer log.Timed(logger, "sendMarkdown")()

	chunks := splitText(strings.TrimSpace(md), maxTelegramMsgLen)

	var last *tele.Message
	for i, chunk := range chunks {
		if i > 0 {
			select {
			case <-ctx.Done():
				return last, ctx.Err()
			case <-time.After(s.pause):
			}
		}

		msg, err := s.sendChunk(ctx, to, chunk)
		if err != nil {
			logger.Error().Err(err).Int("chunk", i).Int("len", len(chunk)).Msg("failed to send telegram chunk")
			return last, err
		}
		last = msg
	}
	return last, nil
}

func (s *sender) sendChunk(ctx context.Context, to tele.Recipient, md string) (*tele.Message, error) {
	html := strings.TrimSpace(conv.MarkdownToTelegramHTML([]byte(md)))

	msg, err := s.send(ctx, to, html, tele.ModeHTML, tele.NoPreview)
	if err == nil || isNetworkError(err) || errors.Is(err, context.Canceled) {
		return msg, err
	}

	log.FromCtx(ctx).Warn().Err(err).Msg("telegram rejected html, resending as plain text")
	return s.send(ctx, to, conv.PlainText(md), tele.NoPreview)
}

func (s *sender) send(ctx context.Context, to tele.Recipient, text string, opts ...interface{}) (*tele.Message, error) {
	var msg *tele.Message
	err := s.retrier.Do(ctx, func() error {
		var err error
		msg, err = s.api.Send(to, text, opts...)
		return err
	})
	return msg, err
}

func isNetworkError(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr)
}

// splitText cuts text into chunks of at most maxLen runes, preferring to
// cut at a newline in the last two thirds of a chunk.
func splitText(text string, maxLen int) []string {
	if utf8.RuneCountInString(text) <= maxLen {
		return []string{text}
	}

	var chunks []string
	for text != "" {
		if utf8.RuneCountInString(text) <= maxLen {
			chunks = append(chunks, text)
			break
		}

		// Byte offset of the rune at maxLen
		limit := 0
		for n := 0; n < maxLen; n++ {
			_, size := utf8.DecodeRuneInString(text[limit:])
			limit += size
		}

		cut := limit
		if idx := strings.LastIndex(text[:limit], "\n"); idx > limit/3 {
			cut = idx
		}

		chunks = append(chunks, text[:cut])
		text = strings.TrimSpace(text[cut:])
	}
	return chunks
}
