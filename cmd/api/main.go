package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/roadsaver-dev/account-manager/backend/internal/accounts"
	"github.com/roadsaver-dev/account-manager/backend/internal/config"
	"github.com/roadsaver-dev/account-manager/backend/internal/dispatch"
	"github.com/roadsaver-dev/account-manager/backend/internal/domain"
	"github.com/roadsaver-dev/account-manager/backend/internal/handler"
	"github.com/roadsaver-dev/account-manager/backend/internal/locale"
	"github.com/roadsaver-dev/account-manager/backend/internal/mailqueue"
	"github.com/roadsaver-dev/account-manager/backend/internal/negotiation"
	"github.com/roadsaver-dev/account-manager/backend/internal/repository"
	"github.com/roadsaver-dev/account-manager/backend/internal/session"
	"golang.org/x/crypto/bcrypt"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	/**********************************************
	 * logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * config
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return
	}

	/**********************************************
	 * database
	 **********************************************/
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("failed to create database pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open does not connect
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("failed to connect to database", "error", err)
		return
	}

	if err := repository.Migrate(ctx, dbpool); err != nil {
		logger.Error("failed to run migrations", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	/**********************************************
	 * initial admin
	 **********************************************/
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.InitialAdmin.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("failed to hash initial admin password", "error", err)
		return
	}
	initialAdmin := &domain.Admin{
		Username:     cfg.InitialAdmin.Username,
		PasswordHash: string(passwordHash),
	}
	if err := repo.CreateAdmin(ctx, initialAdmin); err != nil && !errors.Is(err, domain.ErrUsernameTaken) {
		logger.Error("failed to create initial admin", "error", err)
		return
	}

	/**********************************************
	 * rabbitmq
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("failed to open channel", "error", err)
		return
	}
	defer ch.Close()

	if _, err := mailqueue.DeclareQueue(ch, cfg.RabbitMQ.Queue); err != nil {
		logger.Error("failed to declare queue", "error", err)
		return
	}
	publisher := mailqueue.NewAMQPPublisher(ch, cfg.RabbitMQ.Queue, time.Duration(cfg.RabbitMQ.PublishTimeout)*time.Second)

	/**********************************************
	 * redis
	 **********************************************/
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       0,
	})
	defer rdb.Close()

	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Error("failed to connect to redis", "error", err)
		return
	}

	requests := negotiation.NewRedisStore(
		rdb,
		time.Duration(cfg.Redis.RequestExpiration)*time.Second,
		time.Duration(cfg.Redis.OperationTimeout)*time.Second,
	)

	/**********************************************
	 * services
	 **********************************************/
	svc := accounts.NewService(repo, publisher, cfg.NewAccount.PasswordLength)

	messages, err := locale.NewTranslator()
	if err != nil {
		logger.Error("failed to load translations", "error", err)
		return
	}

	/**********************************************
	 * handler
	 **********************************************/
	sessionTTL := time.Duration(cfg.JWT.Expiration) * time.Hour
	sessions := session.NewRegistry(svc, sessionTTL)

	h, err := handler.NewHandler(cfg, handler.Deps{
		Admins:     repo,
		Stats:      repo,
		Roster:     repo,
		Requests:   requests,
		Sessions:   sessions,
		Messages:   messages,
		Dispatcher: dispatch.New(time.Now().UnixNano()),
	})
	if err != nil {
		logger.Error("failed to create handler", "error", err)
		return
	}
	h.RegisterRoutes()

	/**********************************************
	 * http server
	 **********************************************/
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      h.Mux,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	// sessions of admins who never log out end with their token
	sweeper := time.NewTicker(time.Minute)
	defer sweeper.Stop()
	go func() {
		for range sweeper.C {
			if n := sessions.Sweep(); n > 0 {
				logger.Info("expired sessions removed", "count", n)
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("starting server", "port", cfg.Server.Port, "environment", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", slog.String("error", err.Error()))
			return
		}
	}()

	<-quit
	logger.Info("shutting down server")

	ctx, cancel = context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", slog.String("error", err.Error()))
	}
	logger.Info("server stopped")
}
