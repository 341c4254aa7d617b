package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/PitchBooker/internal/config"
	"github.com/stpnv0/PitchBooker/internal/gateway"
	"github.com/stpnv0/PitchBooker/internal/handler"
	"github.com/stpnv0/PitchBooker/internal/middleware"
	"github.com/stpnv0/PitchBooker/internal/notification"
	"github.com/stpnv0/PitchBooker/internal/repository"
	"github.com/stpnv0/PitchBooker/internal/router"
	"github.com/stpnv0/PitchBooker/internal/scheduler"
	"github.com/stpnv0/PitchBooker/internal/service"
	"github.com/stpnv0/PitchBooker/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/sync/errgroup"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	kafka      *notification.KafkaNotifier
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"PitchBooker",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initRedis(); err != nil {
		return nil, fmt.Errorf("init redis: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initRedis() error {
	if !a.cfg.Redis.Enabled {
		a.log.Info("redis disabled, pitch cache off")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("pinging redis: %w", err)
	}

	a.redis = client
	a.log.Info("redis connected", logger.String("addr", a.cfg.Redis.Addr))

	return nil
}

func (a *App) initNotifier() (ports.Notifier, error) {
	telegram, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return nil, fmt.Errorf("init telegram notifier: %w", err)
	}

	if !a.cfg.Kafka.Enabled {
		return telegram, nil
	}

	producer, err := notification.NewKafkaProducer(a.cfg.Kafka.Brokers)
	if err != nil {
		return nil, fmt.Errorf("init kafka notifier: %w", err)
	}
	a.kafka = notification.NewKafkaNotifier(producer, a.cfg.Kafka.Topic, a.log)
	a.log.Info("kafka notifications enabled", logger.String("topic", a.cfg.Kafka.Topic))

	return notification.NewMultiNotifier(telegram, a.kafka), nil
}

func (a *App) initServices() error {
	bookingRepo := repository.NewBookingRepo(a.db)
	settlementRepo := repository.NewSettlementRepo(a.db)
	ledgerRepo := repository.NewLedgerRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)
	verificationRepo := repository.NewVerificationRepo(a.db)

	var pitchRepo ports.PitchRepo = repository.NewPitchRepo(a.db)
	if a.redis != nil {
		pitchRepo = repository.NewCachedPitchRepository(pitchRepo, a.redis, a.cfg.Redis.CacheTTL)
	}

	n, err := a.initNotifier()
	if err != nil {
		return err
	}

	policy, err := a.cfg.Commission.Policy()
	if err != nil {
		return fmt.Errorf("commission policy: %w", err)
	}

	paystack := gateway.NewPaystack(gateway.PaystackConfig{
		BaseURL:   a.cfg.Paystack.BaseURL,
		SecretKey: a.cfg.Paystack.SecretKey,
		Timeout:   a.cfg.Paystack.Timeout,
	}, a.log)

	userService := service.NewUserService(userRepo, a.cfg.Trial.Period)
	pitchService := service.NewPitchService(pitchRepo, userRepo)
	loc, err := a.cfg.Booking.Location()
	if err != nil {
		return err
	}

	availabilityService := service.NewAvailabilityService(pitchRepo, bookingRepo, loc)
	ledgerService := service.NewLedgerService(ledgerRepo)
	bookingService := service.NewBookingService(
		bookingRepo, pitchRepo, userRepo, paystack, n,
		service.BookingConfig{
			HoldWindow:  a.cfg.Booking.HoldWindow,
			Currency:    a.cfg.Booking.Currency,
			CallbackURL: a.cfg.Booking.CallbackURL,
			Location:    loc,
		},
		a.log,
	)
	settlementService := service.NewSettlementService(
		bookingRepo, settlementRepo, ledgerRepo, pitchRepo, userRepo, paystack, n, policy, a.log,
	)
	verificationService := service.NewVerificationService(
		verificationRepo, userRepo, n,
		service.VerificationConfig{
			CodeTTL:     a.cfg.Verification.CodeTTL,
			MaxAttempts: a.cfg.Verification.MaxAttempts,
		},
		a.log,
	)

	a.scheduler = scheduler.New(
		bookingService,
		verificationService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(
		bookingService,
		settlementService,
		availabilityService,
		pitchService,
		userService,
		ledgerService,
		verificationService,
	)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.scheduler.Start(gctx)
		return nil
	})

	g.Go(func() error {
		a.log.LogAttrs(gctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
		return a.shutdownHTTP()
	})

	err := g.Wait()

	// Ресурсы закрываем только после остановки сервера и планировщика
	if closeErr := a.closeResources(); closeErr != nil && err == nil {
		err = closeErr
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return err
}

func (a *App) shutdownHTTP() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	return nil
}

func (a *App) closeResources() error {
	var errs []error

	if a.kafka != nil {
		if err := a.kafka.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close kafka producer: %w", err))
		}
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}

	if err := a.db.Master.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close db: %w", err))
	} else {
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	return errors.Join(errs...)
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
