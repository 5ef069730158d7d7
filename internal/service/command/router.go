package command

import (
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/sandevgo/blaster/internal/core"
)

// noToken is the registry key of the fallback handler. Register never
// accepts an empty real command, so it cannot collide with a user command.
const noToken = ""

// Handler handles one routed command. c is passed through untouched.
type Handler[C any] func(c C, msg core.Message, inv *Invocation) error

// Router maps command tokens to handlers. The registry is append-only.
type Router[C any] struct {
	logger zerolog.Logger

	mu       sync.RWMutex
	commands map[string]Handler[C]
}

type Option[C any] func(*Router[C])

// WithFallback replaces the no-op handler used for unknown commands.
func WithFallback[C any](h Handler[C]) Option[C] {
	return func(r *Router[C]) {
		if h != nil {
			r.commands[noToken] = h
		}
	}
}

func New[C any](logger zerolog.Logger, opts ...Option[C]) *Router[C] {
	r := &Router[C]{
		logger:   logger.With().Str("component", "router").Logger(),
		commands: map[string]Handler[C]{noToken: unregistered[C]},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func unregistered[C any](C, core.Message, *Invocation) error {
	return nil
}

// Register binds h to the real command of command.
func (r *Router[C]) Register(command string, h Handler[C]) error {
	return r.RegisterAll([]string{command}, h)
}

// RegisterAll binds h to every alias. Either all aliases are registered
// or none is.
func (r *Router[C]) RegisterAll(commands []string, h Handler[C]) error {
	if len(commands) == 0 {
		return invalidArgument("empty command list")
	}
	if h == nil {
		return invalidArgument("nil handler for %q", commands)
	}

	keys := make([]string, 0, len(commands))
	for _, cmd := range commands {
		name, _, _ := split(cmd)
		if name == noToken {
			return invalidArgument("command %q has no name", cmd)
		}
		keys = append(keys, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if existing, ok := r.commands[key]; ok {
			return &DuplicateError{Command: key, Handler: funcName(h), Existing: funcName(existing)}
		}
		if _, ok := seen[key]; ok {
			return &DuplicateError{Command: key, Handler: funcName(h), Existing: funcName(h)}
		}
		seen[key] = struct{}{}
	}

	for _, key := range keys {
		r.commands[key] = h
	}
	return nil
}

// On returns a function registering its handler under commands, for
// registering at the handler's definition site.
func (r *Router[C]) On(commands ...string) func(Handler[C]) error {
	return func(h Handler[C]) error {
		return r.RegisterAll(commands, h)
	}
}

// MustRegister is like RegisterAll but panics on error.
func (r *Router[C]) MustRegister(h Handler[C], commands ...string) {
	if err := r.RegisterAll(commands, h); err != nil {
		panic(err)
	}
}

// Lookup resolves command without logging.
func (r *Router[C]) Lookup(command string) (Handler[C], bool) {
	name, _, _ := split(command)
	if name == noToken {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.commands[name]
	return h, ok
}

// Dispatch returns the handler for command, or the fallback if none is
// registered. It never fails.
func (r *Router[C]) Dispatch(command string) Handler[C] {
	if h, ok := r.Lookup(command); ok {
		return h
	}

	r.logger.Warn().Str("command", command).Msg("unregistered command")

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.commands[noToken]
}

// Route parses the message text, logs the resolved command and invokes
// its handler. The handler's error is returned unchanged.
func (r *Router[C]) Route(c C, msg core.Message, params ...any) error {
	inv := Parse(msg.Text())
	inv.Params = params

	r.logger.Info().
		Str("command", inv.RealCommand).
		Str("user", msg.Sender()).
		Msg("routing command")

	return r.Dispatch(inv.Command)(c, msg, inv)
}

// Commands returns the registered real commands in sorted order.
func (r *Router[C]) Commands() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]string, 0, len(r.commands))
	for cmd := range r.commands {
		if cmd != noToken {
			res = append(res, cmd)
		}
	}
	sort.Strings(res)
	return res
}

// split drops the command prefix and cuts the token at the first
// underscore: "/reg_abc" gives ("reg", "abc", true).
func split(command string) (name, target string, hasTarget bool) {
	return strings.Cut(strings.TrimPrefix(command, core.CommandPrefix), "_")
}
