package main

import (
	"os"
	"path/filepath"

	"github.com/borgmon/sleep-guard/pkg/logger"
	"github.com/emersion/go-autostart"
)

func autostartApp() (*autostart.App, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}

	// Resolve symlinks if any
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	return &autostart.App{
		Name:        "sleep-guard",
		DisplayName: "Sleep Guard",
		Exec:        []string{execPath},
	}, nil
}

// setupAutostart registers or removes the login item so it matches enable
func setupAutostart(enable bool) error {
	app, err := autostartApp()
	if err != nil {
		return err
	}

	log := logger.WithComponent("autostart")

	if enable == app.IsEnabled() {
		return nil
	}

	if enable {
		if err := app.Enable(); err != nil {
			log.WithError(err).Error("Failed to enable autostart")
			return err
		}
		log.Info("Autostart enabled")
		return nil
	}

	if err := app.Disable(); err != nil {
		log.WithError(err).Error("Failed to disable autostart")
		return err
	}
	log.Info("Autostart disabled")
	return nil
}
