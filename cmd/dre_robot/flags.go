package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/dre_robot/internal/app"
	"github.com/kurochkinivan/dre_robot/internal/config"
	"github.com/kurochkinivan/dre_robot/internal/domain"
	"github.com/kurochkinivan/dre_robot/internal/pipeline"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	return &cli.Command{
		Name:    "dre_robot",
		Usage:   "Imports the HITSS DRE spreadsheet into the financial database",
		Version: version,
		Flags:   flags(),
		Action:  runAction,
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "Download, extract and store the spreadsheet once (default)",
				Action: runAction,
			},
			{
				Name:      "extract",
				Usage:     "Extract records from a local spreadsheet and print them as CSV",
				ArgsUsage: "FILE",
				Action:    extractAction,
			},
			{
				Name:   "serve",
				Usage:  "Serve execution history and a run trigger over HTTP",
				Action: serveAction,
			},
		},
	}
}

func newApp(ctx context.Context, cmd *cli.Command) (*app.App, error) {
	log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok {
		return nil, errors.New("failed to get logger from context")
	}

	cfg, err := config.Load(cmd)
	if err != nil {
		return nil, err
	}

	return app.New(log, cfg), nil
}

func runAction(ctx context.Context, cmd *cli.Command) error {
	a, err := newApp(ctx, cmd)
	if err != nil {
		return err
	}

	result := a.Run(ctx)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to print result: %w", err)
	}

	if !result.Success {
		return fmt.Errorf("run %s failed: %s", result.BatchID, result.Error)
	}

	return nil
}

func extractAction(ctx context.Context, cmd *cli.Command) error {
	path := cmd.Args().First()
	if path == "" {
		return fmt.Errorf("%w: spreadsheet FILE is required", domain.ErrConfiguration)
	}

	a, err := newApp(ctx, cmd)
	if err != nil {
		return err
	}

	return a.Extract(ctx, path, os.Stdout)
}

func serveAction(ctx context.Context, cmd *cli.Command) error {
	a, err := newApp(ctx, cmd)
	if err != nil {
		return err
	}

	return a.Serve(ctx)
}

func flags() []cli.Flag {
	var config string

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: &config,
		},
		&cli.StringFlag{
			Name:    "cleanup-scope",
			Usage:   "Set which previous records are deleted before insert: prefix or batch",
			Value:   string(domain.CleanupPrefix),
			Sources: cli.NewValueSourceChain(yaml.YAML("app.cleanup_scope", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.IntFlag{
			Name:    "chunk-size",
			Usage:   "Set number of records per insert",
			Value:   pipeline.DefaultChunkSize,
			Sources: cli.NewValueSourceChain(yaml.YAML("app.chunk_size", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:      "reports-dir",
			Aliases:   []string{"r"},
			Usage:     "Set directory to write PDF run reports to, disabled when empty",
			Sources:   cli.NewValueSourceChain(yaml.YAML("app.reports_dir", altsrc.NewStringPtrSourcer(&config))),
			Validator: validateDirectory,
		},
		&cli.StringFlag{
			Name:  "db-url",
			Usage: "Set PostgreSQL connection url",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("SUPABASE_DB_URL"),
				yaml.YAML("postgresql.url", altsrc.NewStringPtrSourcer(&config)),
			),
		},
		&cli.StringFlag{
			Name:  "service-key",
			Usage: "Set service role key used as the database password",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("SUPABASE_SERVICE_ROLE_KEY"),
				yaml.YAML("postgresql.service_key", altsrc.NewStringPtrSourcer(&config)),
			),
		},
		&cli.StringFlag{
			Name:    "export-url",
			Usage:   "Set project panel export url",
			Value:   "https://hitsscontrol.globalhitss.com.br/api/api/export/xls",
			Sources: cli.NewValueSourceChain(yaml.YAML("export.url", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "export-timeout",
			Usage:   "Set export download timeout",
			Value:   30 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("export.timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "export-user-agent",
			Usage:   "Set User-Agent header of the export request",
			Value:   "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			Sources: cli.NewValueSourceChain(yaml.YAML("export.user_agent", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "export-accept",
			Usage:   "Set Accept header of the export request",
			Value:   "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet,application/vnd.ms-excel,*/*",
			Sources: cli.NewValueSourceChain(yaml.YAML("export.accept", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "export-responsible",
			Usage:   "Set project responsible name filter",
			Sources: cli.NewValueSourceChain(yaml.YAML("export.responsible", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "export-responsible-id",
			Usage:   "Set project responsible id filter",
			Sources: cli.NewValueSourceChain(yaml.YAML("export.responsible_id", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "export-user",
			Usage:   "Set user name filter",
			Sources: cli.NewValueSourceChain(yaml.YAML("export.user", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "export-user-id",
			Usage:   "Set user id filter",
			Sources: cli.NewValueSourceChain(yaml.YAML("export.user_id", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "export-from",
			Usage:   "Set start of the exported period (mm-yyyy)",
			Sources: cli.NewValueSourceChain(yaml.YAML("export.from", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "export-to",
			Usage:   "Set end of the exported period (mm-yyyy)",
			Sources: cli.NewValueSourceChain(yaml.YAML("export.to", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.BoolFlag{
			Name:    "export-insecure",
			Usage:   "Skip TLS certificate verification of the export host",
			Sources: cli.NewValueSourceChain(yaml.YAML("export.insecure", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "archive-bucket",
			Usage:   "Set Cloud Storage bucket for downloaded spreadsheets, disabled when empty",
			Sources: cli.NewValueSourceChain(yaml.YAML("archive.bucket", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "archive-prefix",
			Usage:   "Set object name prefix inside the archive bucket",
			Value:   "hitss",
			Sources: cli.NewValueSourceChain(yaml.YAML("archive.prefix", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: cli.NewValueSourceChain(yaml.YAML("http.host", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8080",
			Sources: cli.NewValueSourceChain(yaml.YAML("http.port", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.idle_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   15 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.read_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout, runs triggered over HTTP must fit in it",
			Value:   5 * time.Minute,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.write_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
	}
}

func validateDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", dir)
		}
		return fmt.Errorf("failed to stat %q: %w", dir, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", dir)
	}

	return nil
}

func validateConfig(config string) error {
	info, err := os.Stat(config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", config)
		}
		return fmt.Errorf("failed to stat %q: %w", config, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", config)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}
