package installer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TextStep asks for one value and stores it through apply.
type TextStep struct {
	prompt string
	input  textinput.Model
	apply  func(state *InstallState, value string) error
	skip   func(state *InstallState) bool
	err    error
}

func newTextStep(prompt, placeholder string, secret bool, apply func(*InstallState, string) error) *TextStep {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Placeholder = placeholder
	if secret {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}

	return &TextStep{prompt: prompt, input: ti, apply: apply}
}

func NewTelegramTokenStep() Step {
	return newTextStep("Enter your Telegram Bot Token:", "123456789:ABCDEF...", true,
		func(state *InstallState, v string) error {
			if !strings.Contains(v, ":") {
				return fmt.Errorf("a bot token looks like 123456789:ABCDEF")
			}
			state.Settings.TelegramToken = v
			return nil
		})
}

func NewTelegramOwnerStep() Step {
	return newTextStep("Enter your Telegram User ID (empty lets everyone in):", "123456789", false,
		func(state *InstallState, v string) error {
			id, err := parseID(v)
			state.Settings.OwnerID = id
			return err
		})
}

func NewReportTokenStep() Step {
	s := newTextStep("Enter the Token of the bot sending error reports:", "123456789:ABCDEF...", true,
		func(state *InstallState, v string) error {
			if v == "" {
				return fmt.Errorf("a reporter token is required")
			}
			state.Settings.ReportToken = v
			return nil
		})
	s.skip = skipUnlessReporting
	return s
}

func NewReportChatStep() Step {
	s := newTextStep("Enter the chat ID receiving error reports:", "-1001234567890", false,
		func(state *InstallState, v string) error {
			id, err := parseID(v)
			if err == nil && id == 0 {
				err = fmt.Errorf("a chat ID is required")
			}
			state.Settings.ReportChatID = id
			return err
		})
	s.skip = skipUnlessReporting
	return s
}

func skipUnlessReporting(state *InstallState) bool {
	return !state.Reporting
}

func parseID(v string) (int64, error) {
	if v == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a numeric ID", v)
	}
	return id, nil
}

func (s *TextStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *TextStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if s.skip != nil && s.skip(state) {
		return nil, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		if s.err = s.apply(state, strings.TrimSpace(s.input.Value())); s.err != nil {
			return s, nil
		}
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *TextStep) View(state *InstallState) string {
	view := s.prompt + "\n\n" + s.input.View() + "\n\n"
	if s.err != nil {
		view += errorStyle.Render(s.err.Error()) + "\n\n"
	}
	return view + "(press enter to confirm)\n"
}
