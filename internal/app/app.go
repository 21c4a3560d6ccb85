package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/exaring/otelpgx"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
	"github.com/metinatakli/planetarium-reservation-system/internal/mailer"
	"github.com/metinatakli/planetarium-reservation-system/internal/repository"
	appvalidator "github.com/metinatakli/planetarium-reservation-system/internal/validator"
	"github.com/metinatakli/planetarium-reservation-system/internal/vcs"
	"github.com/redis/go-redis/v9"
	"github.com/riandyrn/otelchi"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

const serviceName = "planetarium-reservation-api"

var (
	version = vcs.Version()
)

type Application struct {
	config         Config
	logger         *slog.Logger
	db             *pgxpool.Pool
	redis          redis.UniversalClient
	validator      *validator.Validate
	mailer         mailer.Mailer
	sessionManager *scs.SessionManager

	userRepo        domain.UserRepository
	tokenRepo       domain.TokenRepository
	themeRepo       domain.ThemeRepository
	showRepo        domain.ShowRepository
	domeRepo        domain.DomeRepository
	sessionRepo     domain.SessionRepository
	reservationRepo domain.ReservationRepository
}

type Config struct {
	Port             int
	Env              string
	OtelCollectorUrl string
	DB               DBConfig
	Redis            RedisConfig
	SMTP             SMTPConfig
}

type DBConfig struct {
	DSN            string
	MaxOpenConns   int
	MaxIdleTime    time.Duration
	AutoMigrate    bool
	MigrationsPath string
}

type RedisConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
}

func NewApp(
	cfg Config,
	logger *slog.Logger,
	db *pgxpool.Pool,
	redisClient redis.UniversalClient,
	validator *validator.Validate,
	mailer mailer.Mailer,
	sessionManager *scs.SessionManager,
	userRepo domain.UserRepository,
	tokenRepo domain.TokenRepository,
	themeRepo domain.ThemeRepository,
	showRepo domain.ShowRepository,
	domeRepo domain.DomeRepository,
	sessionRepo domain.SessionRepository,
	reservationRepo domain.ReservationRepository,
) *Application {

	return &Application{
		config:          cfg,
		logger:          logger,
		db:              db,
		redis:           redisClient,
		validator:       validator,
		mailer:          mailer,
		sessionManager:  sessionManager,
		userRepo:        userRepo,
		tokenRepo:       tokenRepo,
		themeRepo:       themeRepo,
		showRepo:        showRepo,
		domeRepo:        domeRepo,
		sessionRepo:     sessionRepo,
		reservationRepo: reservationRepo,
	}
}

func Run() error {
	var cfg Config

	flag.IntVar(&cfg.Port, "port", 3000, "server port")
	flag.StringVar(&cfg.Env, "env", "dev", "Environment (dev|staging|prod)")

	flag.StringVar(&cfg.DB.DSN, "db-dsn", "", "PostgreSQL DSN")
	flag.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	flag.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max idle time for connections")
	flag.BoolVar(&cfg.DB.AutoMigrate, "db-automigrate", false, "Run database migrations on startup")
	flag.StringVar(&cfg.DB.MigrationsPath, "db-migrations-path", "file://migrations", "Path to database migrations")

	flag.StringVar(&cfg.Redis.URL, "redis-url", "", "Redis URL")
	flag.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	flag.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	flag.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")

	flag.StringVar(&cfg.SMTP.Host, "smtp-host", "sandbox.smtp.mailtrap.io", "SMTP host")
	flag.IntVar(&cfg.SMTP.Port, "smtp-port", 2525, "SMTP port")
	flag.StringVar(&cfg.SMTP.Username, "smtp-username", "", "SMTP username")
	flag.StringVar(&cfg.SMTP.Password, "smtp-password", "", "SMTP password")
	flag.StringVar(&cfg.SMTP.Sender, "smtp-sender", "Planetarium <no-reply@planetarium.metinatakli.net>", "SMTP sender")

	flag.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", "", "OpenTelemetry collector URL")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if cfg.DB.AutoMigrate {
		err := repository.MigrateUp(cfg.DB.DSN, cfg.DB.MigrationsPath)
		if err != nil {
			return err
		}

		logger.Info("database migrations applied")
	}

	validator := appvalidator.NewValidator()

	db, err := NewDatabasePool(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	redisClient, err := NewRedisClient(cfg)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	userRepo := repository.NewPostgresUserRepository(db)
	tokenRepo := repository.NewPostgresTokenRepository(db)
	themeRepo := repository.NewPostgresThemeRepository(db)
	showRepo := repository.NewPostgresShowRepository(db)
	domeRepo := repository.NewPostgresDomeRepository(db)
	sessionRepo := repository.NewPostgresSessionRepository(db)
	reservationRepo := repository.NewPostgresReservationRepository(db)

	app := NewApp(
		cfg,
		logger,
		db,
		redisClient,
		validator,
		mailer.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Sender),
		NewSessionManager(redisClient),
		userRepo,
		tokenRepo,
		themeRepo,
		showRepo,
		domeRepo,
		sessionRepo,
		reservationRepo,
	)

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	if cfg.OtelCollectorUrl != "" {
		app.logger = slog.New(NewMultiHandler(
			slog.NewTextHandler(os.Stdout, nil),
			otelslog.NewHandler(serviceName),
		))
	}

	return app.serve()
}

func NewSessionManager(client *redis.Client) *scs.SessionManager {
	sessionManager := scs.New()

	sessionManager.Store = goredisstore.New(client)
	sessionManager.IdleTimeout = 20 * time.Minute
	sessionManager.Cookie.Name = "session_id"

	return sessionManager
}

func NewRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := rdb.Ping(ctx).Err()
	if err != nil {
		return nil, err
	}

	return rdb, nil
}

func NewDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (app *Application) serve() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
		}

		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(middleware.RequestID)
	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(app.recoverPanic)
	r.Use(app.requestLogger)
	r.Use(app.sessionManager.LoadAndSave)

	r.Get("/healthcheck", app.GetHealth)

	r.Post("/users", app.RegisterUser)
	r.Put("/users/activated", app.ActivateUser)
	r.Post("/tokens/activation", app.ResendActivationToken)
	r.Post("/auth/login", app.Login)

	r.Group(func(r chi.Router) {
		r.Use(app.requireAuthentication)

		r.Post("/auth/logout", app.Logout)
		r.Get("/users/me", app.GetCurrentUser)

		r.Get("/shows", app.GetShows)
		r.Get("/shows/{showId}", app.GetShow)
		r.Get("/themes", app.GetThemes)
		r.Get("/themes/{themeId}", app.GetTheme)
		r.Get("/domes", app.GetDomes)
		r.Get("/domes/{domeId}", app.GetDome)
		r.Get("/show-sessions", app.GetSessions)
		r.Get("/show-sessions/{sessionId}", app.GetSession)

		r.Get("/reservations", app.GetReservations)
		r.Post("/reservations", app.CreateReservation)
	})

	r.Group(func(r chi.Router) {
		r.Use(app.requireAuthentication, app.requireAdmin)

		r.Post("/shows", app.CreateShow)
		r.Post("/themes", app.CreateTheme)
		r.Put("/themes/{themeId}", app.UpdateTheme)
		r.Delete("/themes/{themeId}", app.DeleteTheme)
		r.Post("/domes", app.CreateDome)
		r.Put("/domes/{domeId}", app.UpdateDome)
		r.Delete("/domes/{domeId}", app.DeleteDome)
		r.Post("/show-sessions", app.CreateSession)
		r.Put("/show-sessions/{sessionId}", app.UpdateSession)
		r.Delete("/show-sessions/{sessionId}", app.DeleteSession)
	})

	return r
}
