package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/avijitbhuin21/Babbl/internal/app"
	"github.com/avijitbhuin21/Babbl/internal/audio"
	"github.com/avijitbhuin21/Babbl/internal/config"
	"github.com/avijitbhuin21/Babbl/internal/hook"
	"github.com/avijitbhuin21/Babbl/internal/logging"
	"github.com/avijitbhuin21/Babbl/internal/tray"
)

var (
	// Version is set via ldflags at build time
	Version = "dev"
	// Commit is set via ldflags at build time
	Commit = "unknown"
)

func main() {
	// Load config from XDG/Library/AppData
	cfg, err := config.Load()
	if err != nil {
		// Use default logger if config fails to load
		log := logging.New()
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	// Initialize logger with configured level
	log := logging.NewWithLevel(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize audio capture
	capture, err := audio.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize audio")
	}
	defer capture.Close()

	recorder := audio.NewRecorder(capture, cfg.Audio.DeviceID, cfg.Audio.SampleRate, cfg.RecordingsDir, log)

	// Initialize the input-hook engine
	hooks := hook.NewManager(log)

	// Create tray UI first (we'll pass it to app)
	trayUI := tray.New(nil, cfg, Version, Commit, log) // App reference set below

	// Create app with tray as status updater
	application := app.New(app.Config{
		Recorder:      recorder,
		Hooks:         hooks,
		Config:        cfg,
		Logger:        log,
		StatusUpdater: trayUI,
	})

	// Set app reference in tray
	trayUI.SetApp(application)

	// Register the configured chords and start the global listener
	application.RegisterShortcuts()
	hooks.Init(application.HookContext())

	log.Info().Msg("Babbl starting...")

	// Setup shutdown signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info().Msg("Shutting down...")
		if err := application.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Shutdown error")
		}
		os.Exit(0)
	}()

	// Start tray UI - MUST run on main thread
	if err := trayUI.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Tray error")
	}
}
