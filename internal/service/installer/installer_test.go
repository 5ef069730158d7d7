package installer

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var enter = tea.KeyMsg{Type: tea.KeyEnter}

func typeText(t *testing.T, s Step, state *InstallState, text string) Step {
	t.Helper()
	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)}, state, 80, 24)
	require.NotNil(t, next)
	return next
}

func TestTelegramTokenStep(t *testing.T) {
	state := NewInstallState()
	s := typeText(t, NewTelegramTokenStep(), state, "nocolon")

	next, _ := s.Update(enter, state, 80, 24)
	require.NotNil(t, next, "invalid token keeps the step open")
	assert.Contains(t, next.View(state), "123456789:ABCDEF")

	s = typeText(t, NewTelegramTokenStep(), state, "123:abc")
	next, _ = s.Update(enter, state, 80, 24)
	assert.Nil(t, next)
	assert.Equal(t, "123:abc", state.Settings.TelegramToken)
}

func TestTelegramOwnerStep(t *testing.T) {
	state := NewInstallState()

	next, _ := NewTelegramOwnerStep().Update(enter, state, 80, 24)
	assert.Nil(t, next, "empty owner is allowed")
	assert.Zero(t, state.Settings.OwnerID)

	s := typeText(t, NewTelegramOwnerStep(), state, "abc")
	next, _ = s.Update(enter, state, 80, 24)
	assert.NotNil(t, next)

	s = typeText(t, NewTelegramOwnerStep(), state, "42")
	next, _ = s.Update(enter, state, 80, 24)
	assert.Nil(t, next)
	assert.Equal(t, int64(42), state.Settings.OwnerID)
}

func TestReportingSteps(t *testing.T) {
	state := NewInstallState()

	// Without reporting the report steps finish on any message
	next, _ := NewReportTokenStep().Update(nextMsg{}, state, 80, 24)
	assert.Nil(t, next)

	s := NewReportingStep()
	s, _ = s.Update(tea.KeyMsg{Type: tea.KeyDown}, state, 80, 24)
	next, _ = s.Update(enter, state, 80, 24)
	assert.Nil(t, next)
	assert.True(t, state.Reporting)

	step := NewReportChatStep()
	next, _ = step.Update(enter, state, 80, 24)
	assert.NotNil(t, next, "chat id is required once reporting is on")

	step = typeText(t, NewReportChatStep(), state, "-100500")
	next, _ = step.Update(enter, state, 80, 24)
	assert.Nil(t, next)
	assert.Equal(t, int64(-100500), state.Settings.ReportChatID)
}

func TestSaveEnv(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "runtime")
	settings := &Settings{TelegramToken: "123:abc", OwnerID: 42}

	path, err := SaveEnv(dir, settings)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".env"), path)

	values, err := godotenv.Read(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"BLASTER_TELEGRAM_TOKEN":    "123:abc",
		"BLASTER_TELEGRAM_OWNER_ID": "42",
	}, values)

	_, err = SaveEnv(dir, settings)
	assert.ErrorContains(t, err, "already exists")
}

func TestInitializeFilesStep(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom", "replies.yml")
	state := NewInstallState()

	next, _ := NewInitializeFilesStep(path).Update(nextMsg{}, state, 80, 24)
	assert.Nil(t, next)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "texts:")
}

func TestInitializeFilesStep_KeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "texts.yml")
	require.NoError(t, os.WriteFile(path, []byte("texts:\n  start: mine\n"), 0644))

	next, _ := NewInitializeFilesStep(path).Update(nextMsg{}, NewInstallState(), 80, 24)
	assert.Nil(t, next)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "texts:\n  start: mine\n", string(data))
}

func TestGetSteps_UsesTextsPath(t *testing.T) {
	steps := getSteps("/runtime", "/elsewhere/replies.yml")
	last, ok := steps[len(steps)-1].(*InitializeFilesStep)
	require.True(t, ok)
	assert.Equal(t, "/elsewhere/replies.yml", last.path)

	save, ok := steps[len(steps)-2].(*SaveEnvStep)
	require.True(t, ok)
	assert.Equal(t, "/runtime", save.dir)
}

func TestMask(t *testing.T) {
	assert.Equal(t, "•••", mask("abc"))
	assert.Equal(t, "123••••••xyz", mask("123:secretxyz"))
}
