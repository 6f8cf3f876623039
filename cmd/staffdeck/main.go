package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"staffdeck/internal/config"
	"staffdeck/internal/engine"
	"staffdeck/internal/export"
	"staffdeck/internal/model"
	"staffdeck/internal/store"
	"staffdeck/internal/ui"
	"staffdeck/internal/util/logx"
	"staffdeck/internal/version"
)

func main() {
	logx.SetLevelFromEnv()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}

	if cfg.ShowVersion {
		fmt.Println("staffdeck", version.String())
		return
	}

	roster, err := loadRoster(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "seed error:", err)
		os.Exit(1)
	}

	// Headless export: run the pipeline over the raw roster and exit.
	if cfg.ExportFormat != "" {
		if err := exportRoster(cfg, roster); err != nil {
			fmt.Fprintln(os.Stderr, "export error:", err)
			os.Exit(1)
		}
		fmt.Printf("exported %d employees to %s (%s)\n", len(roster), cfg.ExportOut, cfg.ExportFormat)
		return
	}

	// Setup cancellation on SIGINT/SIGTERM
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	srv := store.NewServer(roster, store.ServerOptions{
		Latency:  cfg.APILatency,
		FailRate: cfg.APIFailRate,
		Seed:     cfg.SeedValue,
	})
	base, err := srv.Start()
	if err != nil {
		fmt.Fprintln(os.Stderr, "backend error:", err)
		os.Exit(1)
	}
	defer srv.Close()
	client := store.NewClient(base)

	logx.Infof("starting staffdeck %s: %s backend=%s", version.String(), cfg.String(), base)
	if err := ui.Run(ctx, cfg, client); err != nil {
		logx.Errorf("staffdeck exited with error: %v", err)
		os.Exit(1)
	}
}

func loadRoster(cfg *config.Config) ([]model.User, error) {
	if cfg.SeedFile != "" {
		return store.LoadUsers(cfg.SeedFile)
	}
	return store.SeedUsers(cfg.SeedCount, cfg.SeedValue), nil
}

func exportRoster(cfg *config.Config, roster []model.User) error {
	pipe := engine.NewPipeline(model.Columns())
	rows, err := pipe.Run(roster, time.Now(), engine.NewFilterState(), engine.SortState{})
	if err != nil {
		return err
	}
	switch cfg.ExportFormat {
	case "csv":
		return export.ToCSV(cfg.ExportOut, model.Columns(), rows)
	case "json":
		return export.ToNDJSON(cfg.ExportOut, rows)
	default:
		return fmt.Errorf("unknown export format %q (want csv or json)", cfg.ExportFormat)
	}
}
