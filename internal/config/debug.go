package config

import "os"

func IsDebug() bool {
	return os.Getenv("BLASTER_DEBUG") == "1"
}
