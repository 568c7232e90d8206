package app

import (
	"context"
	"log/slog"

	rouletteAPI "roulette_backend/internal/api/roulette"
	"roulette_backend/internal/config"
	"roulette_backend/internal/config/env"
	"roulette_backend/internal/hub"
	"roulette_backend/internal/lib/logger/sl"
	"roulette_backend/internal/middleware"
	"roulette_backend/internal/repository"
	"roulette_backend/internal/repository/bet_repo"
	"roulette_backend/internal/repository/history_repo"
	"roulette_backend/internal/repository/settlement_repo"
	"roulette_backend/internal/repository/user_repo"
	"roulette_backend/internal/service"
	"roulette_backend/internal/service/ledger"
	"roulette_backend/internal/service/outcome"
	"roulette_backend/internal/service/round"
	"roulette_backend/internal/service/settlement"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type ServiceProvider struct {
	configPath string

	// Logger
	loggerCfg config.LoggerConfig
	log       *slog.Logger

	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Ledger bits
	userRepo    repository.UserRepository
	historyRepo repository.HistoryRepository
	ledgerServ  service.LedgerService

	// Roulette bits
	roundCfg       config.RoundConfig
	betRepo        repository.BetRepository
	settlementRepo repository.SettlementRepository
	settlementServ service.SettlementService
	roundServ      service.RoundService
	hub            *hub.Hub
	rouletteHand   *rouletteAPI.Handler

	// Router, HTTP and JWT config
	jwtCfg  config.JWTConfig
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider(configPath string) *ServiceProvider {
	return &ServiceProvider{configPath: configPath}
}

func (sp *ServiceProvider) LoggerCfg() config.LoggerConfig {
	if sp.loggerCfg == nil {
		cfg, err := env.NewLoggerConfig()
		if err != nil {
			panic("failed to get logger config: " + err.Error())
		}
		sp.loggerCfg = cfg
	}
	return sp.loggerCfg
}

func (sp *ServiceProvider) Logger() *slog.Logger {
	if sp.log == nil {
		sp.log = sl.New(sp.LoggerCfg().Env())
	}
	return sp.log
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		poolCfg, err := sp.PgConfig().PoolConfig()
		if err != nil {
			panic("failed to parse db config: " + err.Error())
		}
		dbc, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) HistoryRepo(ctx context.Context) repository.HistoryRepository {
	if sp.historyRepo == nil {
		sp.historyRepo = history_repo.NewHistoryRepository(sp.DBClient(ctx))
	}
	return sp.historyRepo
}

func (sp *ServiceProvider) LedgerService(ctx context.Context) service.LedgerService {
	if sp.ledgerServ == nil {
		sp.ledgerServ = ledger.NewLedgerService(sp.UserRepo(ctx), sp.HistoryRepo(ctx), sp.TXManager(ctx))
	}
	return sp.ledgerServ
}

func (sp *ServiceProvider) RoundCfg() config.RoundConfig {
	if sp.roundCfg == nil {
		cfg, err := env.NewRoundConfigFromYAML(sp.configPath)
		if err != nil {
			panic("failed to get round config: " + err.Error())
		}
		sp.roundCfg = cfg
	}
	return sp.roundCfg
}

func (sp *ServiceProvider) BetRepository() repository.BetRepository {
	if sp.betRepo == nil {
		sp.betRepo = bet_repo.NewBetRepository()
	}
	return sp.betRepo
}

func (sp *ServiceProvider) SettlementRepository() repository.SettlementRepository {
	if sp.settlementRepo == nil {
		sp.settlementRepo = settlement_repo.NewSettlementRepository()
	}
	return sp.settlementRepo
}

func (sp *ServiceProvider) SettlementService(ctx context.Context) service.SettlementService {
	if sp.settlementServ == nil {
		cfg := sp.RoundCfg()
		sp.settlementServ = settlement.NewSettlementService(sp.LedgerService(ctx), settlement.RetryPolicy{
			Attempts:        cfg.SettlementRetryAttempts(),
			InitialInterval: cfg.SettlementRetryInitialInterval(),
			MaxElapsed:      cfg.SettlementRetryMaxElapsed(),
		}, sp.Logger())
	}
	return sp.settlementServ
}

func (sp *ServiceProvider) Hub() *hub.Hub {
	if sp.hub == nil {
		sp.hub = hub.NewHub()
	}
	return sp.hub
}

func (sp *ServiceProvider) RoundService(ctx context.Context) service.RoundService {
	if sp.roundServ == nil {
		sp.roundServ = round.NewRoundService(
			sp.RoundCfg(),
			sp.LedgerService(ctx),
			sp.BetRepository(),
			sp.SettlementRepository(),
			outcome.NewResolver(nil),
			sp.SettlementService(ctx),
			sp.Hub(),
			sp.Logger().With(slog.String("component", "round")),
		)
	}
	return sp.roundServ
}

func (sp *ServiceProvider) RouletteHandler(ctx context.Context) *rouletteAPI.Handler {
	if sp.rouletteHand == nil {
		sp.rouletteHand = rouletteAPI.NewHandler(rouletteAPI.HandlerDeps{
			Round:  sp.RoundService(ctx),
			Ledger: sp.LedgerService(ctx),
			States:   sp.Hub(),
			Log:      sp.Logger(),
			Shutdown: ctx,
		})
	}
	return sp.rouletteHand
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chiMiddleware.RequestID)
		r.Use(chiMiddleware.RealIP)
		r.Use(middleware.Logger(sp.Logger()))
		r.Use(chiMiddleware.Recoverer)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Roulette endpoints
		sp.RouletteHandler(ctx).Register(r, middleware.Auth(sp.JWTCfg().AccessTokenSecretKey()))

		r.Handle("/metrics", promhttp.Handler())

		sp.router = r
	}

	return sp.router
}
