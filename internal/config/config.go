package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kurochkinivan/dre_robot/internal/domain"
	"github.com/urfave/cli/v3"
)

type Config struct {
	App
	PostgreSQL
	Export
	Archive
	HTTP
}

type App struct {
	ReportsDirectory string
	CleanupScope     domain.CleanupScope
	ChunkSize        int
}

type PostgreSQL struct {
	URL        string
	ServiceKey string
}

type Export struct {
	URL                string
	Timeout            time.Duration
	UserAgent          string
	Accept             string
	ResponsibleName    string
	ResponsibleID      string
	UserName           string
	UserID             string
	PeriodFrom         string
	PeriodTo           string
	InsecureSkipVerify bool
}

type Archive struct {
	Bucket string
	Prefix string
}

type HTTP struct {
	Host         string
	Port         string
	IdleTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func Load(cmd *cli.Command) (*Config, error) {
	scope, err := domain.ParseCleanupScope(cmd.String("cleanup-scope"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrConfiguration, err)
	}

	cfg := &Config{
		App: App{
			ReportsDirectory: cmd.String("reports-dir"),
			CleanupScope:     scope,
			ChunkSize:        int(cmd.Int("chunk-size")),
		},
		PostgreSQL: PostgreSQL{
			URL:        cmd.String("db-url"),
			ServiceKey: cmd.String("service-key"),
		},
		Export: Export{
			URL:                cmd.String("export-url"),
			Timeout:            cmd.Duration("export-timeout"),
			UserAgent:          cmd.String("export-user-agent"),
			Accept:             cmd.String("export-accept"),
			ResponsibleName:    cmd.String("export-responsible"),
			ResponsibleID:      cmd.String("export-responsible-id"),
			UserName:           cmd.String("export-user"),
			UserID:             cmd.String("export-user-id"),
			PeriodFrom:         cmd.String("export-from"),
			PeriodTo:           cmd.String("export-to"),
			InsecureSkipVerify: cmd.Bool("export-insecure"),
		},
		Archive: Archive{
			Bucket: cmd.String("archive-bucket"),
			Prefix: cmd.String("archive-prefix"),
		},
		HTTP: HTTP{
			Host:         cmd.String("http-host"),
			Port:         cmd.String("http-port"),
			IdleTimeout:  cmd.Duration("http-idle-timeout"),
			ReadTimeout:  cmd.Duration("http-read-timeout"),
			WriteTimeout: cmd.Duration("http-write-timeout"),
		},
	}

	return cfg, nil
}

// Validate checks the preconditions of a run. It does no network activity.
func (c *Config) Validate() error {
	var errs []error

	if c.PostgreSQL.URL == "" {
		errs = append(errs, errors.New("database url is required"))
	}

	if c.PostgreSQL.ServiceKey == "" {
		errs = append(errs, errors.New("service key is required"))
	}

	if c.Export.URL == "" {
		errs = append(errs, errors.New("export url is required"))
	}

	if c.App.ChunkSize <= 0 {
		errs = append(errs, fmt.Errorf("chunk size must be positive, got %d", c.App.ChunkSize))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrConfiguration, err)
	}

	return nil
}
