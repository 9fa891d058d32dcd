package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/dortanez/hack-or-snooze/config"
	"github.com/dortanez/hack-or-snooze/internal/api"
	"github.com/dortanez/hack-or-snooze/internal/session"
	"github.com/dortanez/hack-or-snooze/internal/ui"
	"github.com/dortanez/hack-or-snooze/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	utils.InitLogger(cfg.AppEnv)
	defer zap.L().Sync() //nolint:errcheck

	sessionPath := cfg.SessionFile
	if sessionPath == "" {
		sessionPath = session.DefaultPath()
	}
	store := session.NewStore(sessionPath)

	apiClient := api.New(cfg.APIBaseURL, cfg.HTTPTimeout)

	zap.L().Info("starting up",
		zap.String("api_base_url", cfg.APIBaseURL),
		zap.String("session_file", sessionPath))

	program := tea.NewProgram(ui.New(apiClient, store), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
