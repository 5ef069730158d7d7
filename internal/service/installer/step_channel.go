package installer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ReportingStep asks whether handler errors are reported to a chat.
type ReportingStep struct {
	choices []string
	cursor  int
}

func NewReportingStep() Step {
	return &ReportingStep{
		choices: []string{"No", "Yes, through a reporter bot"},
	}
}

func (s *ReportingStep) Init() tea.Cmd {
	return nil
}

func (s *ReportingStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch key.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.choices)-1 {
			s.cursor++
		}
	case "enter":
		state.Reporting = s.cursor == 1
		return nil, nil
	}
	return s, nil
}

func (s *ReportingStep) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString("Report handler errors to a Telegram chat?\n\n")
	for i, choice := range s.choices {
		if s.cursor == i {
			b.WriteString(selStyle.Render(fmt.Sprintf("❯ %s", choice)) + "\n")
		} else {
			b.WriteString(itemStyle.Render(fmt.Sprintf("  %s", choice)) + "\n")
		}
	}
	b.WriteString("\n(press ctrl+c to quit)\n")
	return b.String()
}
