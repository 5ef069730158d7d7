package config

import (
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

type AppConfig struct {
	RuntimePath string `env:"BLASTER_RUNTIME_PATH" envDefault:".blaster"`
	// Empty disables the log file
	LogFile string `env:"BLASTER_LOG_FILE"`
	// Reply texts; the embedded defaults are used when the file is missing
	TextsFile string `env:"BLASTER_TEXTS_FILE" envDefault:"texts.yml"`
}

func LoadAppConfig() (*AppConfig, error) {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	c.RuntimePath = resolveRuntimePath(c.RuntimePath)
	return c, nil
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetEnvPath() string {
	return filepath.Join(c.RuntimePath, ".env")
}

func (c AppConfig) GetTextsPath() string {
	if filepath.IsAbs(c.TextsFile) {
		return c.TextsFile
	}
	return filepath.Join(c.RuntimePath, c.TextsFile)
}

func (c AppConfig) GetLogPath() string {
	if c.LogFile == "" || filepath.IsAbs(c.LogFile) {
		return c.LogFile
	}
	return filepath.Join(c.RuntimePath, c.LogFile)
}
