package installer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/blaster/internal/service/bot"
)

// FinalizationStep shows the collected settings before they are saved.
type FinalizationStep struct{}

func NewFinalizationStep() Step {
	return &FinalizationStep{}
}

func (s *FinalizationStep) Init() tea.Cmd {
	return nil
}

func (s *FinalizationStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		return nil, nil
	}
	return s, nil
}

func (s *FinalizationStep) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString("Review your settings:\n\n")

	owner := "everyone"
	if state.Settings.OwnerID != 0 {
		owner = fmt.Sprint(state.Settings.OwnerID)
	}
	b.WriteString(itemStyle.Render("Bot token:  "+mask(state.Settings.TelegramToken)) + "\n")
	b.WriteString(itemStyle.Render("Allowed:    "+owner) + "\n")

	if state.Reporting {
		b.WriteString(itemStyle.Render("Reporter:   "+mask(state.Settings.ReportToken)) + "\n")
		b.WriteString(itemStyle.Render(fmt.Sprintf("Report to:  %d", state.Settings.ReportChatID)) + "\n")
	} else {
		b.WriteString(itemStyle.Render("Reporting:  off") + "\n")
	}

	b.WriteString("\n(press enter to save, ctrl+c to quit)\n")
	return b.String()
}

func mask(token string) string {
	if len(token) <= 6 {
		return strings.Repeat("•", len(token))
	}
	return token[:3] + strings.Repeat("•", 6) + token[len(token)-3:]
}

// InitializeFilesStep writes the default reply texts so they can be edited.
type InitializeFilesStep struct {
	path string
	err  error
}

func NewInitializeFilesStep(path string) Step {
	return &InitializeFilesStep{path: path}
}

func (s *InitializeFilesStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *InitializeFilesStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if s.err != nil {
		return s, nil
	}

	if _, err := os.Stat(s.path); err == nil {
		return nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		s.err = fmt.Errorf("failed to create texts directory: %w", err)
		return s, nil
	}
	if s.err = bot.WriteDefaultTexts(s.path); s.err != nil {
		return s, nil
	}
	return nil, nil
}

func (s *InitializeFilesStep) View(state *InstallState) string {
	if s.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", s.err)) + "\n\n(press ctrl+c to quit)\n"
	}
	return "Writing default texts...\n"
}
