package bot

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sandevgo/blaster/internal/core"
	"github.com/sandevgo/blaster/internal/service/command"
	"github.com/sandevgo/blaster/pkg/daterange"
	"github.com/sandevgo/blaster/pkg/frozen"
	"github.com/sandevgo/blaster/pkg/log"
	"github.com/sandevgo/blaster/pkg/urlx"
)

type Router = command.Router[core.Conversation]

type handler = command.Handler[core.Conversation]

// Commands holds the bot's built-in command handlers.
type Commands struct {
	texts  frozen.Value
	router *Router
	f      formatter
}

// Register adds the built-in commands to r.
func Register(r *Router, texts frozen.Value) error {
	c := &Commands{texts: texts, router: r}

	for _, e := range []struct {
		names []string
		h     handler
	}{
		{[]string{"start"}, c.Start},
		{[]string{"help", "commands"}, c.Help},
		{[]string{"reg"}, c.Reg},
		{[]string{"echo", "say"}, c.Echo},
		{[]string{"days"}, c.Days},
		{[]string{"setparam"}, c.SetParam},
	} {
		if err := r.RegisterAll(e.names, e.h); err != nil {
			return fmt.Errorf("failed to register /%s: %w", e.names[0], err)
		}
	}
	return nil
}

func (c *Commands) text(path, def string) string {
	return c.texts.Text(path, def)
}

func (c *Commands) usage(conv core.Conversation, key string) error {
	return conv.Reply(c.f.Usage(c.text(key+".usage", "/"+key)))
}

func (c *Commands) Start(conv core.Conversation, _ core.Message, _ *command.Invocation) error {
	return conv.Reply(c.text("start", "Hello! Send /help to see what I can do."))
}

func (c *Commands) Help(conv core.Conversation, _ core.Message, _ *command.Invocation) error {
	cmds := c.router.Commands()
	items := make([]string, len(cmds))
	for i, cmd := range cmds {
		items[i] = "`" + core.CommandPrefix + cmd + "`"
	}

	return conv.Reply(c.f.Combine(
		c.f.Info(c.text("help", "Available commands")),
		c.f.List(items),
	))
}

// Reg handles /reg_<code>, where the code is the target suffix.
func (c *Commands) Reg(conv core.Conversation, msg core.Message, inv *command.Invocation) error {
	if !inv.HasTarget || inv.Target == "" {
		return c.usage(conv, "reg")
	}

	log.FromCtx(conv.Context()).Info().
		Str("user", msg.Sender()).
		Str("code", inv.Target).
		Msg("registration code received")

	return conv.Reply(c.f.Success(fmt.Sprintf("%s `%s`", c.text("reg.done", "Registered with code"), inv.Target)))
}

func (c *Commands) Echo(conv core.Conversation, _ core.Message, inv *command.Invocation) error {
	if len(inv.Args) == 0 {
		return c.usage(conv, "echo")
	}
	return conv.Reply(strings.Join(inv.Args, " "))
}

// Days lists the days from the first argument up to, not including, the
// second.
func (c *Commands) Days(conv core.Conversation, _ core.Message, inv *command.Invocation) error {
	if len(inv.Args) != 2 {
		return c.usage(conv, "days")
	}

	days, err := daterange.Between(inv.Arg(0), inv.Arg(1))
	if err != nil {
		return conv.Reply(c.f.Problem(err.Error()))
	}

	limit, err := strconv.Atoi(c.text("days.limit", "62"))
	if err != nil || limit <= 0 {
		limit = 62
	}

	var items []string
	for d := range days {
		if len(items) == limit {
			items = append(items, "…")
			break
		}
		items = append(items, d.Format(time.DateOnly))
	}

	if len(items) == 0 {
		return conv.Reply(c.f.Problem("empty range"))
	}
	return conv.Reply(c.f.List(items))
}

// SetParam rewrites query parameters of a URL, appending unknown ones.
func (c *Commands) SetParam(conv core.Conversation, _ core.Message, inv *command.Invocation) error {
	if len(inv.Args) < 2 {
		return c.usage(conv, "setparam")
	}

	replace := make(map[string]string, len(inv.Args)-1)
	for _, pair := range inv.Args[1:] {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			return c.usage(conv, "setparam")
		}
		replace[k] = v
	}

	u, err := urlx.ChangeParams(inv.Arg(0), replace, false)
	if err != nil {
		return conv.Reply(c.f.Problem(err.Error()))
	}
	return conv.Reply("`" + u + "`")
}
