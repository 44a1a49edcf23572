// Package initializer builds the application's dependency graph from
// configuration: logger, database, migrations, unit of work, event publisher
// and the services on top of them.
package initializer

import (
	"fmt"
	"log/slog"

	"github.com/finbooks/ledger/infra"
	infraeventbus "github.com/finbooks/ledger/infra/eventbus"
	infrarepo "github.com/finbooks/ledger/infra/repository"
	"github.com/finbooks/ledger/infra/repository/memory"
	"github.com/finbooks/ledger/pkg/config"
	"github.com/finbooks/ledger/pkg/eventbus"
	"github.com/finbooks/ledger/pkg/repository"
	accountsvc "github.com/finbooks/ledger/pkg/service/account"
	ledgersvc "github.com/finbooks/ledger/pkg/service/ledger"
)

// Deps holds everything the transport layer needs.
type Deps struct {
	Cfg      *config.App
	Logger   *slog.Logger
	Uow      repository.UnitOfWork
	Bus      eventbus.Publisher
	Ledger   *ledgersvc.Service
	Accounts *accountsvc.Service
}

// InitializeDependencies wires the full dependency graph.
func InitializeDependencies(cfg *config.App) (*Deps, error) {
	logger := setupLogger(cfg.Log)

	var uow repository.UnitOfWork
	if cfg.DB.Url == "" {
		logger.Warn("no database configured, using in-memory store")
		uow = memory.NewUoW(memory.NewStore())
	} else {
		db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		if err := infra.Migrate(db, cfg.DB.MigrationsPath); err != nil {
			return nil, err
		}
		uow = infrarepo.NewUoW(db)
	}

	var bus eventbus.Publisher
	if len(cfg.Kafka.Brokers) > 0 {
		bus = infraeventbus.NewKafkaPublisher(cfg.Kafka)
		logger.Info("kafka publisher enabled", "topic", cfg.Kafka.Topic)
	} else {
		bus = eventbus.NewMemoryPublisher()
		logger.Warn("no kafka brokers configured, events stay in memory")
	}

	return &Deps{
		Cfg:      cfg,
		Logger:   logger,
		Uow:      uow,
		Bus:      bus,
		Ledger:   ledgersvc.New(uow, bus, logger),
		Accounts: accountsvc.New(uow, logger),
	}, nil
}
