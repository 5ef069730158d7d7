package core

import "context"

// Conversation is the invocation context handed to command handlers by a
// transport.
type Conversation interface {
	// Context carries the request-scoped logger.
	Context() context.Context
	// Reply sends Markdown text back to where the command came from.
	Reply(md string) error
}
