package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"

	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/catalog"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/config"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/handler"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/middleware"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/notification"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/repository"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/router"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/scheduler"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/service"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/service/ports"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/session"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/viewstate"
)

const appName = "BootcampTech"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
	worker     *notification.Worker
	queues     []*notification.Queue
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := InitLogger(cfg)
	if err != nil {
		return nil, err
	}
	app.log = log

	if err = repository.Migrate(cfg.Postgres.DSN()); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}
	log.LogAttrs(context.Background(), logger.InfoLevel, "migrations applied successfully")

	if app.db, err = ConnectDB(cfg.Postgres, log); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		_ = app.closeResources()
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func InitLogger(cfg *config.Config) (logger.Logger, error) {
	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		appName,
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return log, nil
}

// ConnectDB opens the pool and checks the database is reachable.
func ConnectDB(cfg config.PostgresConfig, log logger.Logger) (*dbpg.DB, error) {
	db, err := dbpg.New(
		cfg.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns:    cfg.MaxOpenConns,
			MaxIdleConns:    cfg.MaxIdleConns,
			ConnMaxLifetime: cfg.ConnMaxLifetime,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		_ = db.Master.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", cfg.Host),
		logger.Int("port", cfg.Port),
		logger.String("database", cfg.Database),
	)

	return db, nil
}

func (a *App) initServices() error {
	bootcamps, err := catalog.Load(a.cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	policy, err := service.ParseAuthzPolicy(a.cfg.Authz.Policy)
	if err != nil {
		return err
	}

	registrationRepo := repository.NewRegistrationRepo(a.db)
	adminRepo := repository.NewAdminRepo(a.db)
	sessionRepo := repository.NewSessionRepo(a.db)

	views := viewstate.NewStore(a.cfg.Session.TTL)
	adminService := service.NewAdminService(adminRepo, a.log)

	gateway := session.NewGateway(
		session.NewGoogleVerifier(a.cfg.Session.GoogleClientID, a.cfg.Session.AllowedDomains),
		session.NewTokenIssuer(a.cfg.Session.Secret, a.cfg.Session.TTL),
		sessionRepo,
		a.log,
	)
	gateway.OnIdentityChange(service.NewViewSync(views, adminService, registrationRepo, a.log).HandleIdentityChange)

	notifier, err := a.initNotifier()
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	authz := service.NewAuthorizer(adminService, views, policy)

	a.scheduler = scheduler.New(
		sessionRepo,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(handler.Services{
		Catalog:       bootcamps,
		Sessions:      gateway,
		Registrations: service.NewRegistrationService(registrationRepo, bootcamps, notifier, a.log),
		Review:        service.NewReviewService(registrationRepo, a.log),
		Admins:        adminService,
		Authz:         authz,
	}, views, handler.Config{
		CookieName:     a.cfg.Session.CookieName,
		CookieSecure:   a.cfg.Session.CookieSecure,
		GoogleClientID: a.cfg.Session.GoogleClientID,
	})

	r := router.InitRouter(
		a.cfg.Gin.Mode,
		a.cfg.Server.Templates,
		h,
		middleware.RequireAdmin(authz),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
		middleware.CORS(a.cfg.CORS.AllowedOrigins),
		middleware.Session(gateway, a.cfg.Session.CookieName, a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "services initialized",
		logger.Int("bootcamps", len(bootcamps.List())),
		logger.String("authz_policy", string(policy)),
	)

	return nil
}

// initNotifier builds the post-registration fan-out: the confirmation email
// (queued when RabbitMQ is configured, sent inline otherwise) and the
// Telegram admin alert.
func (a *App) initNotifier() (ports.RegistrationNotifier, error) {
	var email *notification.EmailNotifier

	switch {
	case a.cfg.RabbitMQ.Enabled():
		publisher, err := notification.NewQueue(a.cfg.RabbitMQ.URL, a.cfg.RabbitMQ.Queue)
		if err != nil {
			return nil, err
		}
		a.queues = append(a.queues, publisher)
		email = notification.NewEmailNotifier(publisher, a.log)

		if a.cfg.Mail.Enabled() {
			consumer, err := notification.NewQueue(a.cfg.RabbitMQ.URL, a.cfg.RabbitMQ.Queue)
			if err != nil {
				return nil, err
			}
			a.queues = append(a.queues, consumer)
			a.worker = notification.NewWorker(consumer, notification.NewSMTPSender(a.smtpConfig()), a.log)
		} else {
			a.log.LogAttrs(context.Background(), logger.WarnLevel, "smtp host is empty, confirmations stay queued")
		}

	case a.cfg.Mail.Enabled():
		email = notification.NewEmailNotifier(notification.NewSMTPSender(a.smtpConfig()), a.log)

	default:
		a.log.LogAttrs(context.Background(), logger.WarnLevel, "smtp host is empty, confirmation emails disabled")
		email = notification.NewEmailNotifier(nil, a.log)
	}

	telegram, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.log)
	if err != nil {
		return nil, err
	}

	return notification.Fanout{email, telegram}, nil
}

func (a *App) smtpConfig() notification.SMTPConfig {
	return notification.SMTPConfig{
		Host:     a.cfg.Mail.Host,
		Port:     a.cfg.Mail.Port,
		Username: a.cfg.Mail.Username,
		Password: a.cfg.Mail.Password,
		From:     a.cfg.Mail.From,
	}
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)
	if a.worker != nil {
		go a.worker.Start(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		stop()
		_ = a.closeResources()
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
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

	if a.worker != nil {
		select {
		case <-a.worker.Done():
		case <-shutdownCtx.Done():
			a.log.LogAttrs(context.Background(), logger.WarnLevel, "confirmation worker did not stop in time")
		}
	}

	if err := a.closeResources(); err != nil {
		return err
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) closeResources() error {
	var errs []error
	for _, q := range a.queues {
		if err := q.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close queue: %w", err))
		}
	}
	a.queues = nil

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close db: %w", err))
		} else {
			a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
		}
		a.db = nil
	}

	return errors.Join(errs...)
}
