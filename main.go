package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tidy/internal/app"
	"github.com/llehouerou/tidy/internal/config"
	"github.com/llehouerou/tidy/internal/errmsg"
	"github.com/llehouerou/tidy/internal/icons"
	"github.com/llehouerou/tidy/internal/logging"
	"github.com/llehouerou/tidy/internal/playlists"
	"github.com/llehouerou/tidy/internal/state"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	logCfg := cfg.GetLogConfig()
	logging.Init(logging.Config{
		Dir:        logCfg.Dir,
		Level:      logCfg.Level,
		MaxSizeMB:  logCfg.MaxSizeMB,
		MaxBackups: logCfg.MaxBackups,
		MaxAgeDays: logCfg.MaxAgeDays,
		Compress:   *logCfg.Compress,
	})
	defer logging.Close()
	log := logging.For(logging.CompApp)

	icons.Init(cfg.Icons)

	stateMgr, err := state.Open(cfg.DBPath)
	if err != nil {
		log.Error("open state", "error", err)
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	defer stateMgr.Close()
	log.Info("started", "db", stateMgr.Path())

	m := app.New(playlists.New(stateMgr.DB()), cfg.GetConfirmConfig())
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Error("program exited", "error", err)
		return err
	}
	return nil
}
