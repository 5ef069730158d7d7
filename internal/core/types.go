package core

const (
	BlasterName          = "Blaster"
	BlasterRepositoryURL = "https://github.com/sandevgo/blaster"
	BlasterVersion       = "0.1.0"
)

// CommandPrefix is the conventional first character of a command token.
const CommandPrefix = "/"

// TextMessage is a plain Message, used by the CLI and in tests.
type TextMessage struct {
	Body string
	From string
}

func (m TextMessage) Text() string   { return m.Body }
func (m TextMessage) Sender() string { return m.From }
