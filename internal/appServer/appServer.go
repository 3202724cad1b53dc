// Package appServer wires the stores, the feed and the HTTP server together.
package appServer

import (
	"context"
	"crypto/tls"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ajiang05/vibeCheck/config"
	"github.com/ajiang05/vibeCheck/internal/auth"
	repository "github.com/ajiang05/vibeCheck/internal/database/postgres"
	cache "github.com/ajiang05/vibeCheck/internal/database/redis"
	"github.com/ajiang05/vibeCheck/internal/metrics"
	"github.com/ajiang05/vibeCheck/internal/seed"
	"github.com/ajiang05/vibeCheck/internal/service"
	"github.com/ajiang05/vibeCheck/internal/transport"
	"github.com/ajiang05/vibeCheck/internal/web"
	"github.com/ajiang05/vibeCheck/internal/worker"
	"github.com/ajiang05/vibeCheck/pkg/kafka"
	"github.com/ajiang05/vibeCheck/pkg/postgres"
	"github.com/ajiang05/vibeCheck/pkg/queue"
	redisClient "github.com/ajiang05/vibeCheck/pkg/redis"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	connectTimeout  = 5 * time.Second
	shutdownTimeout = 10 * time.Second
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.ServerConfig, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              cfg.Address(),
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Timeout,
		IdleTimeout:       cfg.IdleTimeout,
		ReadHeaderTimeout: 3 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},
		ErrorLog:          log.New(os.Stderr, "SERVER ERROR: ", log.LstdFlags),
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ConfigureLogging sets up the JSON logger at the configured level.
func ConfigureLogging(cfg *config.LogConfig) error {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	logrus.SetLevel(level)
	return nil
}

// App is the wired application without its network listeners.
type App struct {
	Router  *gin.Engine
	Feed    *service.Feed
	Worker  *worker.FeedRefreshWorker
	Changes *worker.ChangeHandler
}

// NewApp builds the application on top of already opened connections.
// rdb may be nil, which disables the record cache and server side sign out.
// notifier may be nil.
func NewApp(cfg *config.Config, db *sql.DB, rdb *redis.Client, notifier service.RefreshNotifier) (*App, error) {
	var (
		m              *metrics.Metrics
		metricsHandler http.Handler
	)
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		m = metrics.New(reg)
		metricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	}

	seedEvents, err := seed.Events()
	if err != nil {
		return nil, fmt.Errorf("failed to load seed events: %w", err)
	}

	// Initialize repositories
	eventRepo := repository.NewEventRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	var (
		sessions    auth.SessionStore
		invalidator worker.CacheInvalidator
	)
	if rdb != nil {
		if cfg.Cache.TTL > 0 {
			cached := cache.NewCachedEventRepository(eventRepo, rdb, cfg.Cache.TTL)
			eventRepo = cached
			invalidator = cached
		}
		sessions = cache.NewSessionRepository(rdb)
	} else {
		logrus.Warn("Redis disabled: event cache off, sign out only clears the cookie")
	}

	// Initialize services
	eventService, err := service.NewEventService(eventRepo, seedEvents, m)
	if err != nil {
		return nil, err
	}
	profileService := service.NewProfileService(profileRepo, m)
	feed := service.NewFeed(eventService, seedEvents, notifier, m, cfg.Feed.LoadTimeout)

	if cfg.Auth.JWTSecret == "" {
		logrus.Warn("auth.jwt_secret is empty: every request is anonymous")
	}
	authenticator := auth.NewAuthenticator(cfg.Auth.JWTSecret, sessions)

	templates, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	// Initialize handlers
	cookie := transport.SessionCookie{Name: cfg.Auth.CookieName, Secure: cfg.Auth.SecureCookie}
	eventHandler := transport.NewEventHandler(feed)
	profileHandler := transport.NewProfileHandler(profileService, cookie)
	pageHandler := transport.NewPageHandler(feed, profileService, cookie, cfg.Auth.LoginURL)

	router := transport.InitRoutes(transport.Options{
		Templates:      templates,
		Authenticator:  authenticator,
		CookieName:     cfg.Auth.CookieName,
		RequestTimeout: cfg.Server.RequestTimeout,
		Metrics:        m,
		MetricsPath:    cfg.Metrics.Path,
		MetricsHandler: metricsHandler,
	}, eventHandler, profileHandler, pageHandler)

	return &App{
		Router:  router,
		Feed:    feed,
		Worker:  worker.NewFeedRefreshWorker(feed, cfg.Feed.RefreshInterval),
		Changes: worker.NewChangeHandler(feed, invalidator),
	}, nil
}

// NewServer connects to the backing services, serves HTTP and blocks until
// SIGINT or SIGTERM. Only the database pool is required; every other service
// degrades when unreachable.
func NewServer(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if cfg.Server.IsProduction() || cfg.Server.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db, err := connectDatabase(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
		rdb, err = redisClient.NewRedisClient(connectCtx, &cfg.Redis)
		cancel()
		if err != nil {
			logrus.WithError(err).Warn("Redis unavailable, continuing without it")
			rdb = nil
		} else {
			defer rdb.Close()
		}
	}

	producer := kafka.NewProducer(ctx, cfg.Kafka.Brokers, cfg.Kafka.Topic)
	defer producer.Close()

	app, err := NewApp(cfg, db, rdb, service.NewProducerNotifier(producer))
	if err != nil {
		return err
	}

	go app.Worker.Start(ctx)

	if cfg.RabbitMQ.URL != "" {
		mq, err := queue.NewRabbitMQ(queue.RabbitMQConfig{
			URL:       cfg.RabbitMQ.URL,
			QueueName: cfg.RabbitMQ.QueueName,
		})
		if err != nil {
			logrus.WithError(err).Warn("RabbitMQ unavailable, change notifications disabled")
		} else {
			defer mq.Close()
			if err := mq.Consume(ctx, app.Changes.Handle); err != nil {
				logrus.WithError(err).Error("Failed to start change consumer")
			} else {
				logrus.WithField("queue", cfg.RabbitMQ.QueueName).Info("Change consumer started")
			}
		}
	} else {
		logrus.Warn("RabbitMQ url not provided, change notifications disabled")
	}

	srv := new(Server)
	go func() {
		if err := srv.Run(&cfg.Server, app.Router); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Errorf("error occured while running http server: %s", err.Error())
			stop()
		}
	}()

	logrus.WithField("addr", cfg.Server.Address()).Info("App Started")

	<-ctx.Done()

	logrus.Info("App Shutting Down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}
	return nil
}

// connectDatabase pings the database but tolerates it being down: the feed
// serves the seed list until queries start to succeed.
func connectDatabase(ctx context.Context, cfg *config.DatabaseConfig) (*sql.DB, error) {
	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	db, err := postgres.NewPostgresDB(connectCtx, cfg)
	if err == nil {
		return db, nil
	}
	logrus.WithError(err).Warn("Database unreachable, serving seed events until it recovers")
	return postgres.Open(cfg)
}

// Migrate creates the tables used by a local stand-in database.
func Migrate(ctx context.Context, cfg *config.Config) error {
	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	db, err := postgres.NewPostgresDB(connectCtx, &cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	return postgres.RunMigrations(ctx, db)
}

// NotifyChange publishes a change notification to the events queue, the same
// message the store emits when event rows change.
func NotifyChange(ctx context.Context, cfg *config.RabbitMQConfig, change worker.ChangeNotification) error {
	if cfg.URL == "" {
		return errors.New("rabbitmq.url is not configured")
	}

	mq, err := queue.NewRabbitMQ(queue.RabbitMQConfig{
		URL:       cfg.URL,
		QueueName: cfg.QueueName,
	})
	if err != nil {
		return err
	}
	defer mq.Close()

	return mq.Publish(ctx, change)
}
