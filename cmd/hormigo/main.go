package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dparedes/hormigo/internal/cli"
	"github.com/dparedes/hormigo/internal/config"
	"github.com/dparedes/hormigo/internal/db"
	"github.com/dparedes/hormigo/internal/engine"
	"github.com/dparedes/hormigo/internal/model"
	"github.com/dparedes/hormigo/internal/repository"
	"github.com/dparedes/hormigo/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	// The artifact and metadata load once; a failure here is fatal since
	// nothing can be predicted without them.
	mdl, err := model.Load(cfg.ArtifactPath, cfg.MetadataPath)
	if err != nil {
		return fmt.Errorf("loading model: %w", err)
	}

	eng, err := engine.New(mdl, engine.DatasetRanges(), engine.NECBands(), cfg.Policy, logger)
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer database.Close()

	historyRepo := repository.NewSQLitePredictionRepo(database)

	var observer service.PredictionObserver
	if os.Getenv("HORMIGO_LOG") != "" {
		observer = service.NewLogPredictionObserver(os.Stderr)
	}

	app := &cli.App{
		Predictions: service.NewPredictionService(eng, mdl, historyRepo, observer),
		History:     service.NewHistoryService(historyRepo),
	}

	// Detect interactive terminal for the predict form.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
