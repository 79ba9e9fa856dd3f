package server

import (
	"context"
	"fmt"

	"github.com/agenthands/wardrobe/internal/catalog"
	"github.com/agenthands/wardrobe/internal/config"
	"github.com/agenthands/wardrobe/internal/core"
	"github.com/agenthands/wardrobe/internal/driver"
	"github.com/agenthands/wardrobe/internal/llm"
	"github.com/agenthands/wardrobe/internal/logger"
	"github.com/agenthands/wardrobe/internal/metrics"
)

// Build wires the catalog backend, the LLM client and the stylist from cfg.
// The returned func releases the LLM client and the catalog connection.
func Build(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Server, func(), error) {
	cat, closeCatalog, err := OpenCatalog(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	llmClient, err := llm.NewClient(ctx, cfg.LLM, log)
	if err != nil {
		closeCatalog()
		return nil, nil, fmt.Errorf("failed to initialize llm client: %w", err)
	}

	release := func() {
		if err := llm.Close(llmClient); err != nil {
			log.Warn("failed to close llm client", "error", err)
		}
		closeCatalog()
	}

	m := metrics.New()
	stylist := core.NewStylist(cat, llmClient, cfg, log, m)
	return NewServer(stylist, cfg, log, m), release, nil
}

// OpenCatalog connects to the catalog backend named by cfg.Catalog.Driver.
func OpenCatalog(ctx context.Context, cfg *config.Config, log *logger.Logger) (catalog.Catalog, func(), error) {
	switch cfg.Catalog.Driver {
	case "sqlite", "postgres":
		db, err := catalog.OpenDB(cfg.Catalog.Driver, cfg.Catalog.DSN)
		if err != nil {
			return nil, nil, err
		}
		closer := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		c := catalog.NewGormCatalog(db)
		if err := c.Migrate(ctx); err != nil {
			closer()
			return nil, nil, fmt.Errorf("failed to migrate catalog: %w", err)
		}
		log.Info("catalog ready", "driver", cfg.Catalog.Driver)
		return c, closer, nil

	case "memgraph":
		d, err := driver.NewMemgraphDriver(ctx, cfg.Memgraph.URI, cfg.Memgraph.User, cfg.Memgraph.Password, log)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to memgraph: %w", err)
		}
		if err := d.BuildIndices(ctx); err != nil {
			_ = d.Close(ctx)
			return nil, nil, err
		}
		closer := func() { _ = d.Close(context.Background()) }
		return catalog.NewGraphCatalog(d), closer, nil

	case "memory":
		log.Info("catalog ready", "driver", "memory", "products", len(catalog.SampleProducts()))
		return catalog.NewMemoryCatalog(catalog.SampleProducts()...), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unsupported catalog driver: %s", cfg.Catalog.Driver)
	}
}
