package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/roadsaver-dev/account-manager/backend/internal/config"
	"github.com/roadsaver-dev/account-manager/backend/internal/repository"
	"github.com/roadsaver-dev/account-manager/backend/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var rosterPath string

	flag.IntVar(&op, "op", 0, "operation (1: random users, 2: random employees, 3: random simulation employees, 4: import simulation roster)")
	flag.IntVar(&n, "n", 5, "number of records to insert")
	flag.StringVar(&rosterPath, "roster", "./internal/seed/data/roster.csv", "simulation roster (.csv or .xlsx) for op 4")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

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

	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("failed to connect to database", "error", err)
		return
	}
	if err := repository.Migrate(ctx, dbpool); err != nil {
		logger.Error("failed to run migrations", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)
	bg := context.Background()

	if op != 4 && n <= 0 {
		slog.Error("the number of records must be positive")
		return
	}

	switch op {
	case 0:
		slog.Error("no operation given")
	case 1:
		cnt := seed.RandomUsers(bg, repo, n, cfg.Seed.Password, cfg.Email.UserDomain)
		slog.Info("inserted users", slog.Int("count", cnt))
	case 2:
		cnt := seed.RandomEmployees(bg, repo, n, cfg.Seed.Password, cfg.Email.UserDomain)
		slog.Info("inserted employees", slog.Int("count", cnt))
	case 3:
		cnt, err := seed.RandomSimulationEmployees(bg, repo, n)
		if err != nil {
			slog.Error("failed to insert simulation employees", slog.String("error", err.Error()))
			return
		}
		slog.Info("inserted simulation employees", slog.Int("count", cnt))
	case 4:
		cnt, err := seed.ImportRoster(bg, repo, rosterPath)
		if err != nil {
			slog.Error("failed to import roster", slog.String("path", rosterPath), slog.String("error", err.Error()))
			return
		}
		slog.Info("imported simulation roster", slog.Int("count", cnt))
	default:
		slog.Error("unknown operation", slog.Int("op", op))
	}
}
