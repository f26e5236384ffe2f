package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/config"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/logger"
	"github.com/rocketscienceinc/tictactoe-hotseat/transport/terminal"
)

// main - runs a hot-seat match in the terminal. stdout belongs to the UI, so logs go to log-file or nowhere.
func main() {
	configPath := flag.String("config", "config.yml", "path to the config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "tictactoe: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	conf, err := initConfig(configPath)
	if err != nil {
		return err
	}

	log, closeLog, err := initLogger(conf)
	if err != nil {
		return err
	}
	defer closeLog()

	model := terminal.New(log, conf.Players.First, conf.Players.Second)
	if _, err = tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("terminal program failed: %w", err)
	}

	return nil
}

// initialize config. A missing file falls back to the environment.
func initConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return config.LoadEnv()
	}

	return config.Load(path)
}

// initialize logger.
func initLogger(conf *config.Config) (*slog.Logger, func(), error) {
	if conf.LogFile == "" {
		return logger.New(io.Discard, conf.LogLevel), func() {}, nil
	}

	file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return logger.New(file, conf.LogLevel), func() { _ = file.Close() }, nil
}
