package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/MikeMC777/vendas-whatsapp/internal/config"
	"github.com/MikeMC777/vendas-whatsapp/internal/database"
	"github.com/MikeMC777/vendas-whatsapp/internal/logger"
)

// bootstrap loads the configuration, the logger and the database pool
// shared by every subcommand.
func bootstrap(ctx context.Context, opts *rootOptions) (config.Config, *zap.Logger, *pgxpool.Pool, error) {
	cfg := config.Load(opts.envFile)
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", zap.Error(err))
		return cfg, log, nil, err
	}
	pool, err := database.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Error("database unavailable", zap.Error(err))
		return cfg, log, nil, err
	}
	return cfg, log, pool, nil
}
