package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/dre_robot/internal/config"
	v1 "github.com/kurochkinivan/dre_robot/internal/controller/http/v1"
	"github.com/kurochkinivan/dre_robot/internal/domain"
	"github.com/kurochkinivan/dre_robot/internal/infrastructure/archive"
	"github.com/kurochkinivan/dre_robot/internal/infrastructure/report_generator"
	"github.com/kurochkinivan/dre_robot/internal/pipeline"
	"github.com/kurochkinivan/dre_robot/internal/repository/postgresql"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

// Run performs a single robot run. Configuration and connection problems are
// reported in the result too, so the caller always has something to print.
func (a *App) Run(ctx context.Context) *domain.Result {
	run := domain.NewRun(time.Now())

	if err := a.cfg.Validate(); err != nil {
		a.log.ErrorContext(ctx, "invalid configuration", slog.String("err", err.Error()))
		return domain.NewFailedResult(run, err)
	}

	pool, err := a.connect(ctx)
	if err != nil {
		return domain.NewFailedResult(run, err)
	}
	defer pool.Close()

	return a.newRobot(pool).Run(ctx, run)
}

// Extract reads a local spreadsheet and writes its records as CSV. Nothing is stored.
func (a *App) Extract(ctx context.Context, path string, w io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", path, err)
	}

	run := domain.NewRun(time.Now())

	extraction, err := pipeline.NewExtractor(a.log).Extract(ctx, run, data)
	if err != nil {
		return fmt.Errorf("failed to extract %q: %w", path, err)
	}

	if err := pipeline.ExportCSV(w, extraction.Records); err != nil {
		return err
	}

	a.log.InfoContext(ctx, "records exported",
		slog.String("file", path),
		slog.Int("records_processed", extraction.Processed),
		slog.Int("records_failed", extraction.Failed),
	)

	return nil
}

// Serve exposes the execution history and a run trigger over HTTP until ctx is done.
func (a *App) Serve(ctx context.Context) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	pool, err := a.connect(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	executionsRepository := postgresql.NewExecutionsRepository(pool)
	server := v1.NewServer(a.cfg.HTTP, executionsRepository, &robotRunner{robot: a.newRobot(pool)})

	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "server stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "server stopped gracefully")

	return nil
}

func (a *App) connect(ctx context.Context) (*pgxpool.Pool, error) {
	a.log.InfoContext(ctx, "establishing postgresql connection")

	pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
	if err != nil {
		a.log.ErrorContext(ctx, "failed to connect to postgresql", slog.String("err", err.Error()))
		return nil, fmt.Errorf("%w: failed to create db connection: %w", domain.ErrPersistence, err)
	}

	return pool, nil
}

func (a *App) newRobot(pool *pgxpool.Pool) *pipeline.Robot {
	executionsRepository := postgresql.NewExecutionsRepository(pool)
	recordsRepository := postgresql.NewRecordsRepository(pool)
	txManager := postgresql.NewTxManager(pool)

	var opts []pipeline.RobotOption

	if a.cfg.Archive.Bucket != "" {
		opts = append(opts, pipeline.WithArchive(archive.NewGCSArchiver(a.cfg.Archive.Bucket), a.cfg.Archive.Prefix))
	}

	if a.cfg.App.ReportsDirectory != "" {
		opts = append(opts, pipeline.WithReporter(
			pipeline.NewReporter(a.log, a.cfg.App.ReportsDirectory, report_generator.New()),
		))
	}

	return pipeline.NewRobot(
		a.log,
		pipeline.NewTracker(a.log, executionsRepository, time.Now),
		pipeline.NewFetcher(a.log, a.cfg.Export),
		pipeline.NewExtractor(a.log),
		pipeline.NewSink(a.log, recordsRepository, txManager, a.cfg.App.CleanupScope, a.cfg.App.ChunkSize),
		opts...,
	)
}

// robotRunner starts a fresh run for every HTTP trigger.
type robotRunner struct {
	robot *pipeline.Robot
}

func (r *robotRunner) Run(ctx context.Context) *domain.Result {
	return r.robot.Run(ctx, domain.NewRun(time.Now()))
}
