package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/lcd-arcade/internal/config"
	"github.com/vovakirdan/lcd-arcade/internal/console"
	"github.com/vovakirdan/lcd-arcade/internal/platform/audio"
	"github.com/vovakirdan/lcd-arcade/internal/platform/tui"
	"github.com/vovakirdan/lcd-arcade/internal/storage"
)

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// newLogger opens the log file named by the global flags. The terminal
// belongs to the TUI, so logs never go to stdout or stderr.
func newLogger() (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	if flagLogFile == "" {
		return log.New(io.Discard), nil, nil
	}

	path, err := expandHome(flagLogFile)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           level,
	})
	return logger, f, nil
}

// requireTerminal fails unless stdout is an interactive terminal.
func requireTerminal(command string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("arcade %s needs an interactive terminal", command)
	}
	return nil
}

// host bundles everything a console session needs.
type host struct {
	cfg    config.Config
	log    *log.Logger
	store  *storage.Store
	lcd    *tui.LCD
	joy    *tui.Joystick
	sched  *console.Scheduler
	closer []io.Closer
}

// newHost loads configuration, opens the store and audio and builds the
// scheduler over an emulated LCD and keyboard joystick.
func newHost() (*host, error) {
	logger, logCloser, err := newLogger()
	if err != nil {
		return nil, err
	}
	h := &host{log: logger}
	if logCloser != nil {
		h.closer = append(h.closer, logCloser)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		h.Close()
		return nil, err
	}
	h.cfg = cfg

	store, err := storage.Open(flagDBPath)
	if err != nil {
		h.Close()
		return nil, err
	}
	h.store = store
	h.closer = append(h.closer, store)

	buzzer := audio.Open(cfg.Audio, logger)
	if c, ok := buzzer.(io.Closer); ok {
		h.closer = append(h.closer, c)
	}

	h.lcd = tui.NewLCD(cfg.Display.Width, cfg.Display.Height)
	h.joy = tui.NewJoystick(cfg.Input.Hold())
	h.sched = console.New(console.Options{
		Display: h.lcd,
		Input:   h.joy,
		Buzzer:  buzzer,
		Store:   store,
		Logger:  logger,
		History: store,
		Config:  cfg,
		Seed:    flagSeed,
	})

	logger.Debug("console ready", "width", cfg.Display.Width, "height", cfg.Display.Height, "db", flagDBPath)
	return h, nil
}

// Close releases resources in reverse order of acquisition.
func (h *host) Close() {
	for i := len(h.closer) - 1; i >= 0; i-- {
		if err := h.closer[i].Close(); err != nil && h.log != nil {
			h.log.Warn("close failed", "err", err)
		}
	}
}
