package installer

// Settings are the values the wizard collects, tagged like the config
// structs that read them back.
type Settings struct {
	TelegramToken string `env:"BLASTER_TELEGRAM_TOKEN"`
	OwnerID       int64  `env:"BLASTER_TELEGRAM_OWNER_ID"`
	ReportToken   string `env:"BLASTER_REPORT_TOKEN"`
	ReportChatID  int64  `env:"BLASTER_REPORT_CHAT_ID"`
}

type InstallState struct {
	Settings  Settings
	Reporting bool
	EnvPath   string
}

func NewInstallState() *InstallState {
	return &InstallState{}
}
