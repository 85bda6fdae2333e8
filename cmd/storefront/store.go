package main

import (
	"context"
	"fmt"

	"github.com/tbourn/go-storefront-backend/internal/config"
	httpapi "github.com/tbourn/go-storefront-backend/internal/http"
	"github.com/tbourn/go-storefront-backend/internal/repo"
)

// openedStore is a ready-to-serve store plus its teardown.
type openedStore struct {
	httpapi.Store
	// Fresh is true when the fixture catalog was inserted by this open.
	Fresh bool
	Close func() error
}

// openStore builds the store selected by cfg.Store. SQL stores are migrated
// and seeded when their product table is empty.
func openStore(ctx context.Context, cfg config.Config) (*openedStore, error) {
	if cfg.Store.Driver == "" || cfg.Store.Driver == config.StoreMemory {
		return &openedStore{Store: repo.NewMemStore(), Fresh: true, Close: func() error { return nil }}, nil
	}

	db, err := repo.Open(cfg.Store.Driver, cfg.Store.DSN, repo.OpenOptions{
		Tracing: cfg.OTEL.Enabled,
		Verbose: cfg.LogLevel == "debug",
	})
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Store.Driver, err)
	}
	closeDB := func() error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	s := repo.NewGormStore(db)
	seeded, err := s.Init(ctx)
	if err != nil {
		_ = closeDB()
		return nil, err
	}
	return &openedStore{Store: s, Fresh: seeded, Close: closeDB}, nil
}
