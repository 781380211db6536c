// Package control wires configuration into a running dispatcher.
package control

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/vietddude/rpcdispatch/internal/core/config"
	redisclient "github.com/vietddude/rpcdispatch/internal/infra/redis"
	"github.com/vietddude/rpcdispatch/internal/infra/rpc"
	"github.com/vietddude/rpcdispatch/internal/infra/rpc/classify"
	"github.com/vietddude/rpcdispatch/internal/infra/rpc/lookup"
	"github.com/vietddude/rpcdispatch/internal/infra/rpc/schema"
	"github.com/vietddude/rpcdispatch/internal/infra/rpc/taxonomy"
	"github.com/vietddude/rpcdispatch/internal/infra/rpc/transport"
	"github.com/vietddude/rpcdispatch/internal/infra/storage/postgres"
	"github.com/vietddude/rpcdispatch/internal/server"
)

// App owns every long lived component built from an AppConfig.
type App struct {
	cfg         *config.AppConfig
	classifier  *classify.Classifier
	lookup      *lookup.Client
	transport   *transport.HTTPTransport
	dispatcher  *rpc.Dispatcher
	server      *server.Server
	db          *postgres.DB
	redisClient *redisclient.Client
	log         *slog.Logger
}

// NewApp creates the description stores, the classifier and, when
// datacenters are configured, the dispatcher.
func NewApp(ctx context.Context, cfg *config.AppConfig) (*App, error) {
	a := &App{
		cfg: cfg,
		log: slog.Default().With("component", "app"),
	}

	// 1. Description stores
	checks := make(map[string]server.CheckFunc)
	store, err := a.initStore(ctx, checks)
	if err != nil {
		a.closeStores()
		return nil, err
	}

	// 2. Classifier with the optional fallback lookup
	var lk classify.Lookuper
	if !cfg.Dispatch.Lookup.Disabled {
		a.lookup = lookup.NewClient(cfg.Dispatch.Lookup.URL, cfg.Dispatch.Lookup.Timeout)
		lk = a.lookup
	}
	a.classifier = classify.New(taxonomy.New(store), lk, classify.Config{
		LookupTimeout: cfg.Dispatch.Lookup.Timeout,
		NegativeTTL:   cfg.Dispatch.Lookup.NegativeTTL,
	})

	// 3. Dispatcher
	var stats server.StatsSource
	if len(cfg.Datacenters) > 0 {
		opts := []rpc.Option{rpc.WithLogger(slog.Default().With("component", "dispatcher"))}
		if cfg.Schema != "" {
			reg, err := schema.LoadFile(cfg.Schema)
			if err != nil {
				a.closeStores()
				return nil, fmt.Errorf("failed to load schema: %w", err)
			}
			constructors, methods := reg.Len()
			a.log.Info("Loaded schema", "constructors", constructors, "methods", methods)
			opts = append(opts, rpc.WithSchema(reg))
		}

		a.transport = transport.NewHTTPTransport(cfg.Datacenters, cfg.Dispatch.CallTimeout)
		a.dispatcher = rpc.NewDispatcher(a.transport, a.classifier, rpc.Config{
			ToleratedWait:   cfg.Dispatch.ToleratedWait,
			IdleFlush:       cfg.Dispatch.IdleFlush,
			MaxMigrations:   cfg.Dispatch.MaxMigrations,
			MaxFloodRetries: cfg.Dispatch.MaxFloodRetries,
		}, opts...)
		stats = a.dispatcher
		a.log.Info("Dispatcher ready", "datacenters", len(cfg.Datacenters))
	}

	// 4. HTTP server
	a.server = server.New(stats, a.classifier, checks, cfg.Server.Port)
	return a, nil
}

// initStore builds the learned description store: memory in front of the
// configured Redis and PostgreSQL tiers.
func (a *App) initStore(ctx context.Context, checks map[string]server.CheckFunc) (taxonomy.Store, error) {
	var back taxonomy.Store

	if a.cfg.Database.URL != "" {
		db, err := postgres.NewDB(ctx, a.cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to init db: %w", err)
		}
		a.db = db
		if err := db.Migrate(ctx); err != nil {
			return nil, err
		}
		back = postgres.NewDescriptionRepo(db)
		checks["postgres"] = db.Health
		a.log.Info("Using PostgreSQL description store")
	}

	if a.cfg.Redis.URL != "" {
		client, err := redisclient.NewClient(a.cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to init redis: %w", err)
		}
		a.redisClient = client
		var rs taxonomy.Store = redisclient.NewDescriptionStore(client)
		if back != nil {
			rs = taxonomy.NewTieredStore(rs, back)
		}
		back = rs
		checks["redis"] = client.Ping
		a.log.Info("Using Redis description store")
	}

	if back == nil {
		return taxonomy.NewMemoryStore(), nil
	}
	return taxonomy.NewTieredStore(taxonomy.NewMemoryStore(), back), nil
}

// Classifier returns the shared classifier.
func (a *App) Classifier() *classify.Classifier {
	return a.classifier
}

// Dispatcher returns the dispatcher, or nil without configured datacenters.
func (a *App) Dispatcher() *rpc.Dispatcher {
	return a.dispatcher
}

// Handler returns the HTTP handler of the server.
func (a *App) Handler() http.Handler {
	return a.server.Handler()
}

// Start starts the HTTP server and background collectors.
func (a *App) Start(ctx context.Context) error {
	go func() {
		if err := a.server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("HTTP server failed", "error", err)
		}
	}()

	if a.db != nil {
		a.db.StartMetricsCollector(ctx)
	}

	a.log.Info("Server listening", "port", a.cfg.Server.Port)
	return nil
}

// Stop drains the dispatcher and releases every connection.
func (a *App) Stop(ctx context.Context) error {
	a.log.Info("Stopping...")

	var errs []error
	if err := a.server.Stop(ctx); err != nil {
		errs = append(errs, fmt.Errorf("stop server: %w", err))
	}
	if a.dispatcher != nil {
		errs = append(errs, a.dispatcher.Close())
	}
	if a.transport != nil {
		errs = append(errs, a.transport.Close())
	}
	if a.lookup != nil {
		errs = append(errs, a.lookup.Close())
	}
	errs = append(errs, a.closeStores())
	return errors.Join(errs...)
}

func (a *App) closeStores() error {
	var errs []error
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close db: %w", err))
		}
	}
	return errors.Join(errs...)
}
