package telegram

import (
	"context"
	"strconv"
	"strings"
	"unicode"

	"github.com/sandevgo/blaster/internal/core"
	tele "gopkg.in/telebot.v3"
)

// conversation adapts one telebot update to core.Conversation and
// core.Message.
type conversation struct {
	ctx    context.Context
	c      tele.Context
	sender *sender
	// botName is the bot's own username, without the @
	botName string
}

func (c *conversation) Context() context.Context {
	return c.ctx
}

func (c *conversation) Reply(md string) error {
	_, err := c.sender.sendMarkdown(c.ctx, c.c.Recipient(), md)
	return err
}

func (c *conversation) Text() string {
	return stripMention(c.c.Text(), c.botName)
}

func (c *conversation) Sender() string {
	return senderOf(c.c)
}

func senderOf(c tele.Context) string {
	u := c.Sender()
	if u == nil {
		return "unknown"
	}
	id := strconv.FormatInt(u.ID, 10)
	if u.Username != "" {
		return id + " (@" + u.Username + ")"
	}
	return id
}

// stripMention removes "@botName" from the end of a leading command, as
// group chats send "/start@MyBot". Mentions of other bots are kept, so
// such commands stay unregistered.
func stripMention(text, botName string) string {
	if botName == "" {
		return text
	}

	start := len(text) - len(strings.TrimLeftFunc(text, unicode.IsSpace))
	end := len(text)
	if i := strings.IndexFunc(text[start:], unicode.IsSpace); i >= 0 {
		end = start + i
	}

	token := text[start:end]
	if !strings.HasPrefix(token, core.CommandPrefix) {
		return text
	}

	at := strings.LastIndexByte(token, '@')
	if at < 0 || !strings.EqualFold(token[at+1:], botName) {
		return text
	}
	return text[:start+at] + text[end:]
}
