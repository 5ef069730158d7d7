package command

import "strings"

// Invocation is the parsed form of one incoming command message.
type Invocation struct {
	Text        string
	Command     string
	RealCommand string
	// Target is the part of Command after the first underscore.
	Target    string
	HasTarget bool
	// Args holds the tokens after the command, nil for a bare command.
	Args []string
	// Params are passed through from the caller of Route.
	Params []any
}

// Parse splits text into a command token and its arguments.
func Parse(text string) *Invocation {
	inv := &Invocation{Text: text}

	fields := strings.Fields(text)
	switch len(fields) {
	case 0:
	case 1:
		inv.Command = fields[0]
	default:
		inv.Command = fields[0]
		inv.Args = fields[1:]
	}

	inv.RealCommand, inv.Target, inv.HasTarget = split(inv.Command)
	return inv
}

// Arg returns the i-th argument or an empty string.
func (inv *Invocation) Arg(i int) string {
	if i < 0 || i >= len(inv.Args) {
		return ""
	}
	return inv.Args[i]
}
