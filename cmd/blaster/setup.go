package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sandevgo/blaster/internal/config"
	"github.com/sandevgo/blaster/internal/core"
	"github.com/sandevgo/blaster/internal/service/bot"
	"github.com/sandevgo/blaster/internal/service/command"
	"github.com/sandevgo/blaster/pkg/log"
)

// initEnv loads the runtime .env file into the process environment, if
// there is one.
func initEnv(runtimePath string) error {
	envFile := config.AppConfig{RuntimePath: runtimePath}.GetEnvPath()

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("failed to load %s: %w", envFile, err)
	}
	return nil
}

// loadConfig reads the environment, the runtime .env included.
func loadConfig() (*config.AppConfig, error) {
	if err := initEnv(config.GetRuntimePath()); err != nil {
		return nil, err
	}
	return config.LoadAppConfig()
}

// newRouter builds the command router with every built-in command.
func newRouter(ctx context.Context, cfg *config.AppConfig) (*bot.Router, error) {
	logger := log.FromCtx(ctx)

	texts, err := bot.LoadTexts(cfg.GetTextsPath())
	if err != nil {
		return nil, err
	}

	router := command.New[core.Conversation](*logger)
	if err := bot.Register(router, texts); err != nil {
		return nil, err
	}

	logger.Debug().Strs("commands", router.Commands()).Msg("commands registered")
	return router, nil
}
