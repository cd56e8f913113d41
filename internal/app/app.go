package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/auth"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/config"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/conversation"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/dispatch"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/exportledger"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/handler"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/middleware"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/notification"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/repository"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/router"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/scheduler"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/service"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/storage"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/telegram"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/sync/errgroup"
)

type Option func(*options)

type options struct {
	offline bool
}

// WithoutTelegram skips connecting to the Bot API. Operator alerts are then
// only logged. Used by one-shot maintenance commands.
func WithoutTelegram() Option {
	return func(o *options) { o.offline = true }
}

type App struct {
	cfg        *config.Config
	opts       options
	log        logger.Logger
	db         *storage.DB
	ledger     *exportledger.CSVLedger
	bot        *tgbotapi.BotAPI
	export     *service.ExportSync
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
	poller     *telegram.Poller
}

func New(cfg *config.Config, opts ...Option) (*App, error) {
	app := &App{cfg: cfg}
	for _, opt := range opts {
		opt(&app.opts)
	}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"VolunteerBot",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.runMigrations(); err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initTelegram(); err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("init telegram: %w", err)
	}

	if err = app.initServices(); err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := storage.Open(context.Background(), a.cfg.Storage)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("driver", string(db.Dialect())),
	)

	return nil
}

func (a *App) runMigrations() error {
	applied, err := storage.Migrate(context.Background(), a.db)
	if err != nil {
		return err
	}

	a.log.Info("migrations applied successfully", logger.Int("applied", len(applied)))
	return nil
}

func (a *App) initTelegram() error {
	if a.opts.offline || a.cfg.Telegram.BotToken == "" {
		a.log.Warn("telegram bot disabled")
		return nil
	}

	bot, err := tgbotapi.NewBotAPI(a.cfg.Telegram.BotToken)
	if err != nil {
		return fmt.Errorf("create telegram bot: %w", err)
	}
	bot.Debug = a.cfg.Telegram.Debug

	a.bot = bot
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "telegram bot authorized",
		logger.String("username", bot.Self.UserName),
	)
	return nil
}

func (a *App) initServices() error {
	loc, err := a.cfg.Export.Location()
	if err != nil {
		return err
	}
	clock := service.SystemClock(loc)

	ledger, err := exportledger.New(a.cfg.Export.Path, loc)
	if err != nil {
		return fmt.Errorf("open export ledger: %w", err)
	}
	a.ledger = ledger

	eventRepo := repository.NewEventRepo(a.db)
	regRepo := repository.NewRegistrationRepo(a.db)
	volunteerRepo := repository.NewVolunteerRepo(a.db)
	statsRepo := repository.NewStatsRepo(a.db)

	authorizer := auth.NewAuthorizer(a.cfg.Telegram.AdminIDs)

	// nil *BotAPI нельзя класть в интерфейс: нотификатор проверяет именно nil интерфейс.
	var sender notification.Sender
	if a.bot != nil {
		sender = a.bot
	}
	n := notification.NewTelegramNotifier(sender, authorizer.AdminIDs(), a.log)

	a.export = service.NewExportSync(
		ledger, regRepo, volunteerRepo, eventRepo, n,
		service.ExportOptions{
			RetryAttempts: a.cfg.Export.RetryAttempts,
			RetryDelay:    a.cfg.Export.RetryDelay,
		},
		clock,
		a.log,
	)

	eventService := service.NewEventService(eventRepo, clock)
	profileService := service.NewProfileService(volunteerRepo, regRepo, a.log)
	guard := service.NewCapacityGuard(eventRepo, regRepo, a.export, clock, a.log)
	adminService := service.NewAdminService(eventRepo, regRepo, guard, a.export, a.log)
	statsService := service.NewStatsService(statsRepo, ledger, a.log)

	sessions := conversation.NewStore(a.cfg.Session.IdleTTL, clock)

	a.scheduler = scheduler.New(
		a.export,
		sessions,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	if a.bot != nil {
		d := dispatch.New(dispatch.Services{
			Catalog:  eventService,
			Profiles: profileService,
			Guard:    guard,
			Admin:    adminService,
			Stats:    statsService,
			Export:   a.export,
		}, authorizer, sessions, a.log)

		a.poller = telegram.NewPoller(a.bot, d, telegram.NewRenderer(), telegram.Options{
			Timeout: a.cfg.Telegram.PollTimeout,
		}, a.log)
	}

	if a.cfg.Server.Enabled {
		h := handler.NewHandler(eventService, adminService, statsService, a.export, authorizer, a.cfg.AdminAPI.OperatorID)
		r := router.InitRouter(
			a.cfg.Gin.Mode,
			h,
			middleware.AdminToken(a.cfg.AdminAPI.Token),
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
	}

	return nil
}

// Export exposes the export synchronizer to maintenance commands.
func (a *App) Export() *service.ExportSync {
	return a.export
}

func (a *App) Logger() logger.Logger {
	return a.log
}

func (a *App) WriteExport(ctx context.Context, w io.Writer) error {
	return a.export.WriteCSV(ctx, w)
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.scheduler.Start(gctx)
		return nil
	})

	if a.poller != nil {
		g.Go(func() error {
			return a.poller.Run(gctx)
		})
	}

	if a.httpServer != nil {
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
			return a.shutdownHTTP()
		})
	}

	<-gctx.Done()
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")

	runErr := g.Wait()
	if err := a.Close(); err != nil && runErr == nil {
		runErr = err
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")
	return runErr
}

func (a *App) shutdownHTTP() error {
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

func (a *App) Close() error {
	if err := a.db.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	return nil
}
