package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"roulette_backend/internal/config"
	"roulette_backend/internal/lib/logger/sl"

	"golang.org/x/sync/errgroup"
)

// Время на завершение активных запросов при остановке
const shutdownTimeout = 10 * time.Second

type App struct {
	ServiceProvider *ServiceProvider

	envPath    string
	configPath string
}

func NewApp(envPath, configPath string) *App {
	return &App{
		envPath:    envPath,
		configPath: configPath,
	}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider(s.configPath)
}

// Run - запускает раунд и HTTP сервер, останавливает оба при отмене ctx
func (s *App) Run(ctx context.Context) error {
	envErr := config.Load(s.envPath)
	s.initServiceProvider()

	log := s.ServiceProvider.Logger()
	if envErr != nil {
		log.Warn("failed to load env file, using process environment", slog.String("path", s.envPath), sl.Err(envErr))
	}

	defer func() {
		if s.ServiceProvider.dbClient != nil {
			s.ServiceProvider.dbClient.Close()
		}
	}()

	g, gCtx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:              s.ServiceProvider.HTTPCfg().Address(),
		Handler:           s.ServiceProvider.Router(gCtx),
		ReadHeaderTimeout: 5 * time.Second,
	}
	roundServ := s.ServiceProvider.RoundService(gCtx)

	g.Go(func() error {
		return roundServ.Run(gCtx)
	})

	g.Go(func() error {
		log.Info("starting server", slog.String("address", srv.Addr))
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gCtx), shutdownTimeout)
		defer cancel()

		log.Info("shutting down server")
		return srv.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	reportUnpaid(log, s.ServiceProvider.SettlementRepository())

	return err
}
