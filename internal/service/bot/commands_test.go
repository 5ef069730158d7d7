package bot

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sandevgo/blaster/internal/core"
	"github.com/sandevgo/blaster/internal/service/command"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConversation struct {
	replies []string
}

func (f *fakeConversation) Context() context.Context {
	return zerolog.Nop().WithContext(context.Background())
}

func (f *fakeConversation) Reply(md string) error {
	f.replies = append(f.replies, md)
	return nil
}

func newTestBot(t *testing.T) *Router {
	t.Helper()
	r := command.New[core.Conversation](zerolog.Nop())
	require.NoError(t, Register(r, DefaultTexts()))
	return r
}

func route(t *testing.T, r *Router, text string) []string {
	t.Helper()
	conv := &fakeConversation{}
	require.NoError(t, r.Route(conv, core.TextMessage{Body: text, From: "tester"}))
	return conv.replies
}

func TestRegister_Commands(t *testing.T) {
	r := newTestBot(t)
	assert.Equal(t, []string{"commands", "days", "echo", "help", "reg", "say", "setparam", "start"}, r.Commands())

	// Registering twice is a configuration error
	assert.ErrorIs(t, Register(r, DefaultTexts()), command.ErrDuplicateRegistration)
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		contains []string
	}{
		{name: "start", text: "/start", contains: []string{"Send /help"}},
		{name: "help lists commands", text: "/help", contains: []string{"Available commands", "`/start`", "`/reg`"}},
		{name: "help alias", text: "/commands", contains: []string{"`/days`"}},
		{name: "reg with code", text: "/reg_abc123", contains: []string{"Registered with code `abc123`"}},
		{name: "reg without code", text: "/reg", contains: []string{"**Usage**", "/reg_<code>"}},
		{name: "reg with empty code", text: "/reg_", contains: []string{"**Usage**"}},
		{name: "echo", text: "/echo hello   world", contains: []string{"hello world"}},
		{name: "echo alias", text: "/say hi", contains: []string{"hi"}},
		{name: "echo without args", text: "/echo", contains: []string{"/echo <text>"}},
		{name: "days", text: "/days 2024-02-27 2024-03-01", contains: []string{"› 2024-02-27", "› 2024-02-29"}},
		{name: "days bad date", text: "/days yesterday 2024-03-01", contains: []string{"❌"}},
		{name: "days empty range", text: "/days 2024-03-01 2024-03-01", contains: []string{"empty range"}},
		{name: "days usage", text: "/days 2024-03-01", contains: []string{"/days <start> <end>"}},
		{
			name:     "setparam",
			text:     "/setparam https://example.com/p?a=1&b=2 b=3 c=4",
			contains: []string{"`https://example.com/p?a=1&b=3&c=4`"},
		},
		{name: "setparam bad pair", text: "/setparam https://example.com/ nope", contains: []string{"**Usage**"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			replies := route(t, newTestBot(t), tt.text)
			require.Len(t, replies, 1)
			for _, want := range tt.contains {
				assert.Contains(t, replies[0], want)
			}
		})
	}
}

func TestCommands_DaysLimit(t *testing.T) {
	replies := route(t, newTestBot(t), "/days 2024-01-01 2025-01-01")
	require.Len(t, replies, 1)

	lines := strings.Split(strings.TrimSpace(replies[0]), "\n")
	assert.Len(t, lines, 63)
	assert.Equal(t, "› …", lines[62])
}

func TestCommands_UnknownIsSilent(t *testing.T) {
	assert.Empty(t, route(t, newTestBot(t), "/nope"))
}

func TestLoadTexts(t *testing.T) {
	dir := t.TempDir()

	v, err := LoadTexts(filepath.Join(dir, "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, "Available commands", v.Text("help", ""))

	path := filepath.Join(dir, "texts.yml")
	require.NoError(t, os.WriteFile(path, []byte("texts:\n  start: Custom hello\n"), 0644))
	v, err = LoadTexts(path)
	require.NoError(t, err)
	assert.Equal(t, "Custom hello", v.Text("start", ""))

	r := command.New[core.Conversation](zerolog.Nop())
	require.NoError(t, Register(r, v))
	replies := route(t, r, "/start")
	require.Len(t, replies, 1)
	assert.Equal(t, "Custom hello", replies[0])

	// Missing keys fall back to the built-in wording
	replies = route(t, r, "/reg")
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0], "/reg")
}

func TestLoadTexts_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "texts.yml")
	require.NoError(t, os.WriteFile(path, []byte("other: {}\n"), 0644))

	_, err := LoadTexts(path)
	assert.Error(t, err)
}
