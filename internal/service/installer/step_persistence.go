package installer

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/blaster/pkg/env"
)

// SaveEnvStep writes the collected settings to the runtime .env file.
type SaveEnvStep struct {
	dir   string
	err   error
	saved bool
}

func NewSaveEnvStep(dir string) Step {
	return &SaveEnvStep{dir: dir}
}

func (s *SaveEnvStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *SaveEnvStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if s.saved {
		return nil, nil
	}

	path, err := SaveEnv(s.dir, &state.Settings)
	if err != nil {
		s.err = err
		return s, nil
	}

	state.EnvPath = path
	s.saved = true
	return nil, nil
}

func (s *SaveEnvStep) View(state *InstallState) string {
	if s.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", s.err)) + "\n\n(press ctrl+c to quit)\n"
	}
	if s.saved {
		return "Configuration saved successfully!\n"
	}
	return "Saving configuration...\n"
}

// SaveEnv writes settings to dir/.env, refusing to overwrite an existing
// file. It returns the file path.
func SaveEnv(dir string, settings *Settings) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create runtime directory: %w", err)
	}

	envPath := filepath.Join(dir, ".env")
	if _, err := os.Stat(envPath); err == nil {
		return "", fmt.Errorf(".env file already exists at %s", envPath)
	}

	content, err := env.MarshalEnv(settings)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(envPath, []byte(content), 0600); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", envPath, err)
	}
	return envPath, nil
}
