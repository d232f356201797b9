package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"reportlog-srv/config"
	configPostgre "reportlog-srv/config/postgre"
	"reportlog-srv/internal/pipeline"
	reportPostgre "reportlog-srv/internal/report/repository/postgre"
	reportUsecase "reportlog-srv/internal/report/usecase"
	"reportlog-srv/pkg/log"
)

func main() {
	inputFlag := flag.String("input", "", "path to JSON array of report records (overrides config)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	inputPath := cfg.Ingest.InputPath
	if *inputFlag != "" {
		inputPath = *inputFlag
	}

	// PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		os.Exit(1)
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Info(ctx, "PostgreSQL client initialized")

	// Batch ingest goes straight to Postgres; no cache, events or file
	// downloads on this path.
	repo := reportPostgre.New(postgresDB, logger)
	uc := reportUsecase.New(repo, nil, nil, nil, logger, reportUsecase.Config{})

	p := pipeline.New(uc, logger)

	result, err := p.Run(ctx, inputPath)
	if err != nil {
		logger.Errorf(ctx, "Ingest run failed: %v", err)
		os.Exit(1)
	}

	for _, o := range result.Outcomes {
		if o.Err != nil {
			logger.Warnf(ctx, "Record %s rejected: %v", o.ExecutionID, o.Err)
		}
	}
	logger.Infof(ctx, "Ingest run complete: total=%d imported=%d failed=%d", result.Total, result.Imported, result.Failed)

	if result.Failed > 0 && result.Imported == 0 {
		os.Exit(1)
	}
}
