// Command storefront runs the fashion storefront API and its maintenance
// tasks.
//
// @title       Storefront API
// @version     1.0
// @description Product catalog, custom orders, contact form and currency conversion for the fashion storefront.
// @BasePath    /api
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/tbourn/go-storefront-backend/internal/config"
	httpapi "github.com/tbourn/go-storefront-backend/internal/http"
	"github.com/tbourn/go-storefront-backend/internal/http/middleware"
	"github.com/tbourn/go-storefront-backend/internal/observability"
	"github.com/tbourn/go-storefront-backend/internal/repo"
	"github.com/tbourn/go-storefront-backend/internal/services"
	"github.com/tbourn/go-storefront-backend/internal/sysutil"
)

// version is stamped at build time with -ldflags "-X main.version=...".
var version = "dev"

// setupOTel is replaced in tests.
var setupOTel = observability.SetupOTel

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("storefront")
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "storefront",
		Usage:   "fashion storefront API",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "store-driver", Usage: "override STORE_DRIVER (memory|sqlite|postgres|mysql)"},
			&cli.StringFlag{Name: "store-dsn", Usage: "override STORE_DSN"},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "create or update the SQL schema and seed an empty catalog",
				Action: migrate,
			},
			{
				Name:   "seed-check",
				Usage:  "verify the fixture catalog and validate CATALOG_PATH",
				Action: seedCheck,
			},
			{
				Name:  "create-user",
				Usage: "register a user account",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Required: true},
					&cli.StringFlag{Name: "password", Required: true},
				},
				Action: createUser,
			},
		},
		DefaultCommand: "serve",
	}
}

// loadConfig reads the environment, applies global flag overrides and
// installs the logger.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	cfg.Store.Driver = sysutil.FirstNonEmpty(c.String("store-driver"), cfg.Store.Driver)
	cfg.Store.DSN = sysutil.FirstNonEmpty(c.String("store-dsn"), cfg.Store.DSN)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	sysutil.ConfigureLogger(cfg.LogLevel, cfg.LogPretty, c.App.Writer)
	return cfg, nil
}

func serve(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownOTel, err := setupOTel(ctx, cfg.OTEL, observability.BuildInfo{
		Version:     version,
		StoreDriver: cfg.Store.Driver,
	})
	if err != nil {
		return fmt.Errorf("otel: %w", err)
	}
	// Flush spans on every exit path, including failed startup.
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownOTel(sctx); err != nil {
			log.Error().Err(err).Msg("otel shutdown")
		}
	}()

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Warn().Err(err).Msg("close store")
		}
	}()

	if store.Fresh && cfg.CatalogPath != "" {
		n, err := repo.ImportCatalog(ctx, store, cfg.CatalogPath)
		if err != nil {
			return fmt.Errorf("catalog: %w", err)
		}
		log.Info().Int("products", n).Str("path", cfg.CatalogPath).Msg("catalog imported")
	}
	if err := middleware.RefreshStoreGauges(ctx, httpapi.EntityCounts(store)); err != nil {
		log.Warn().Err(err).Msg("initial store gauges")
	}

	r := gin.New()
	httpapi.RegisterRoutes(r, store, cfg)
	srv := newServer(cfg, r)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("store", cfg.Store.Driver).Str("version", version).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	}

	sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	return nil
}

func newServer(cfg config.Config, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}
}

func migrate(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if cfg.Store.Driver == config.StoreMemory {
		return errors.New("migrate requires a SQL store driver")
	}
	store, err := openStore(c.Context, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	st, err := store.Stats(c.Context)
	if err != nil {
		return err
	}
	log.Info().
		Str("store", cfg.Store.Driver).
		Bool("seeded", store.Fresh).
		Int64("products", st.Products).
		Int64("custom_orders", st.CustomOrders).
		Int64("contacts", st.Contacts).
		Msg("schema up to date")
	return nil
}

func seedCheck(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	store, err := openStore(c.Context, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	products, err := store.ListProducts(c.Context)
	if err != nil {
		return err
	}
	byName := make(map[string]bool, len(products))
	for _, p := range products {
		byName[p.Name] = p.IsFeatured()
	}
	var missing []string
	for _, want := range repo.SeedProducts() {
		if featured, ok := byName[want.Name]; !ok || !featured {
			missing = append(missing, want.Name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("seed catalog incomplete: %v", missing)
	}

	ev := log.Info().Int("products", len(products))
	if cfg.CatalogPath != "" {
		extra, err := repo.LoadCatalog(cfg.CatalogPath)
		if err != nil {
			return err
		}
		ev = ev.Int("catalog_products", len(extra)).Str("catalog", cfg.CatalogPath)
	}
	ev.Msg("seed ok")
	return nil
}

func createUser(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if cfg.Store.Driver == config.StoreMemory {
		return errors.New("create-user requires a SQL store driver; the memory store is discarded on exit")
	}
	store, err := openStore(c.Context, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	users := services.NewUserService(store)
	u, err := users.Register(c.Context, c.String("username"), c.String("password"))
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	log.Info().Str("id", u.ID).Str("username", u.Username).Str("store", cfg.Store.Driver).Msg("user created")
	return nil
}
