package main

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"creature-arena/internal/catalog"
	"creature-arena/internal/config"
	"creature-arena/internal/game"
	"creature-arena/internal/random"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	dataDir, err := cfg.DataPath()
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	// The screen owns stdout, so logs go to a file.
	logFile, err := os.OpenFile(filepath.Join(dataDir, "arena.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	logger, err := config.NewLogger(cfg, logFile)
	if err != nil {
		return err
	}

	rng, seed, err := random.New(cfg.Seed)
	if err != nil {
		return err
	}
	dex, report, err := catalog.Open(cfg.AbilitiesFile, cfg.CreaturesFile, rng, logger)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	logger.Info("catalog loaded", "species", dex.Size(), "skipped", len(report.Skipped), "seed", seed)

	name := "Trainer"
	if u, err := user.Current(); err == nil && u.Username != "" {
		name = u.Username
	}
	g, err := game.New(game.Options{
		Pokedex:     dex,
		Rand:        rng,
		Logger:      logger,
		DataDir:     dataDir,
		TrainerName: name,
	})
	if err != nil {
		return err
	}
	g.Run()
	return nil
}
