package core

// Message is the part of an incoming chat message the router needs.
type Message interface {
	// Text is the raw message text.
	Text() string
	// Sender identifies the originating user for logging.
	Sender() string
}

type CmdRouter[C any] interface {
	Route(c C, msg Message, params ...any) error
	Commands() []string
}
