package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type TelegramConfig struct {
	Token       string        `env:"BLASTER_TELEGRAM_TOKEN,required,notEmpty"`
	OwnerID     int64         `env:"BLASTER_TELEGRAM_OWNER_ID" envDefault:"0"` // zero lets everyone in
	PollTimeout time.Duration `env:"BLASTER_POLL_TIMEOUT" envDefault:"10s"`

	// Only texts matching it somewhere reach the router
	RoutePattern string `env:"BLASTER_ROUTE_PATTERN" envDefault:"^[[:space:]]*/"`

	// Exception reporting, disabled unless both are set
	ReportToken  string `env:"BLASTER_REPORT_TOKEN"`
	ReportChatID int64  `env:"BLASTER_REPORT_CHAT_ID"`
}

func LoadTelegramConfig() (*TelegramConfig, error) {
	c := &TelegramConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (c TelegramConfig) ReportingEnabled() bool {
	return c.ReportToken != "" && c.ReportChatID != 0
}
