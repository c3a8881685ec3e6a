package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/time/rate"

	"github.com/rogerio-castellano/vending-machine/internal/config"
	"github.com/rogerio-castellano/vending-machine/internal/console"
	"github.com/rogerio-castellano/vending-machine/internal/db"
	"github.com/rogerio-castellano/vending-machine/internal/device"
	api "github.com/rogerio-castellano/vending-machine/internal/http"
	"github.com/rogerio-castellano/vending-machine/internal/http/handlers"
	rl "github.com/rogerio-castellano/vending-machine/internal/http/rate_limiter"
	"github.com/rogerio-castellano/vending-machine/internal/logx"
	"github.com/rogerio-castellano/vending-machine/internal/redissvc"
	"github.com/rogerio-castellano/vending-machine/internal/repo"
	"github.com/rogerio-castellano/vending-machine/internal/vending"
)

func main() {
	configFile := pflag.StringP("config", "c", "", "path to a config file (default ./vending.yaml if present)")
	pflag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		logx.Init(logx.LoggerOpts{})
		logx.Fatal().Err(err).Msg("could not load configuration")
	}
	logx.Init(logx.LoggerOpts{
		Environment: logx.ParseEnvironment(cfg.Environment),
		Level:       cfg.LogLevel,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	journal, closeJournal, err := openJournal(ctx, cfg)
	if err != nil {
		logx.Fatal().Err(err).Str("backend", cfg.Journal.Backend).Msg("could not open movement journal")
	}
	defer closeJournal()

	driver := device.NewConsoleDriver(os.Stdout, device.RealSleeper{}, device.Pacing{
		CoinDelay:     cfg.Driver.CoinDelay,
		MotorStep:     cfg.Driver.MotorStep,
		MessageDelay:  cfg.Driver.MessageDelay,
		DeliveryDelay: cfg.Driver.DeliveryDelay,
	})

	machine, err := vending.NewMachine(driver, vending.MachineConfig{
		Currency: cfg.Currency,
		Journal:  journal,
	})
	if err != nil {
		logx.Fatal().Err(err).Msg("could not build machine")
	}

	if cfg.Telemetry.Addr != "" {
		srv := startTelemetry(ctx, cfg.Telemetry, machine, journal)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logx.Error().Err(err).Msg("telemetry shutdown failed")
			}
		}()
	}

	logx.Info().Str("journal", cfg.Journal.Backend).Msg("vending machine ready")
	session := console.NewSession(machine, driver, os.Stdin, os.Stdout)
	if err := session.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logx.Error().Err(err).Msg("session ended with error")
	}
	logx.Info().Msg("vending machine stopped")
}

func openJournal(ctx context.Context, cfg config.Config) (repo.MovementRepository, func(), error) {
	switch cfg.Journal.Backend {
	case config.JournalPostgres:
		database, err := db.Connect(ctx, cfg.Database.URL)
		if err != nil {
			return nil, nil, err
		}
		r := repo.NewPostgresMovementRepository(database)
		if err := r.EnsureSchema(ctx); err != nil {
			database.Close()
			return nil, nil, err
		}
		return r, closer(database), nil
	case config.JournalRedis:
		rdb, err := redissvc.NewClient(ctx, redissvc.Options{
			URL:          cfg.Redis.URL,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if err != nil {
			return nil, nil, err
		}
		return repo.NewRedisMovementRepository(rdb, cfg.Redis.Stream), closer(rdb), nil
	default:
		return repo.NewInMemoryMovementRepository(), func() {}, nil
	}
}

func closer(c io.Closer) func() {
	return func() {
		if err := c.Close(); err != nil {
			logx.Warn().Err(err).Msg("failed to close journal connection")
		}
	}
}

func startTelemetry(ctx context.Context, tc config.TelemetryConf, machine *vending.Machine, journal repo.MovementRepository) *http.Server {
	metrics := repo.NewInMemoryMetricsRepository()
	metrics.SetRepositories(machine, journal)
	handlers.SetMachine(machine)
	handlers.SetMetricsRepo(metrics)

	limiter := rl.NewLimiter(rate.Limit(tc.RateLimit), tc.Burst)
	go limiter.StartVisitorCleanupLoop(ctx, time.Minute, 5*time.Minute)

	srv := &http.Server{
		Addr:              tc.Addr,
		Handler:           api.NewRouter(limiter),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logx.Info().Str("addr", tc.Addr).Msg("telemetry API listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logx.Error().Err(err).Msg("telemetry API stopped")
		}
	}()
	return srv
}
