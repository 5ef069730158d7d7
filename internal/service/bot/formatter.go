package bot

import (
	"fmt"
	"strings"
)

// formatter builds Markdown replies.
type formatter struct{}

func (formatter) Info(title string) string {
	return fmt.Sprintf("⚙️ **%s**\n", title)
}

func (formatter) Success(message string) string {
	return fmt.Sprintf("✅ %s\n", message)
}

func (formatter) Problem(message string) string {
	return fmt.Sprintf("❌ %s\n", message)
}

func (formatter) Usage(command string) string {
	return fmt.Sprintf("**Usage**: `%s`\n", command)
}

func (formatter) List(items []string) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString("› ")
		sb.WriteString(item)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (formatter) Combine(sections ...string) string {
	return strings.Join(sections, "\n")
}
