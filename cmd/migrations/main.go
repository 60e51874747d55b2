// Command migrations applies the schema of the ClickHouse or Postgres backend, chosen by the
// database URL scheme.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/clickhouse"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
)

type config struct {
	DatabaseURL   string `long:"database-url" env:"MIGRATIONS_DATABASE_URL" default:"clickhouse://localhost:9000/default" description:"database URL (clickhouse://... or postgres://...)"`
	MigrationsDir string `long:"migrations-dir" env:"MIGRATIONS_DIR" description:"path to migration files, defaults to migrations/<backend>"`
	Down          bool   `long:"down" env:"MIGRATIONS_DOWN" description:"roll every migration back"`
}

func main() {
	cfg := config{}
	if _, err := flags.Parse(&cfg); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		log.Fatalf("failed to parse flags: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runMigrations(ctx, cfg); err != nil {
		log.Fatalf("migration run failed: %v", err)
	}
}

// backendDir maps a database URL to the directory holding its migrations.
func backendDir(databaseURL string) (string, error) {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return "", fmt.Errorf("parse database url: %w", err)
	}
	switch u.Scheme {
	case "clickhouse":
		return filepath.Join("migrations", "clickhouse"), nil
	case "postgres", "postgresql":
		return filepath.Join("migrations", "postgres"), nil
	default:
		return "", fmt.Errorf("database url scheme %q not supported", u.Scheme)
	}
}

func runMigrations(ctx context.Context, cfg config) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := cfg.MigrationsDir
	if dir == "" {
		var err error
		if dir, err = backendDir(cfg.DatabaseURL); err != nil {
			return err
		}
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve migrations dir: %w", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("stat migrations dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	m, err := migrate.New(fmt.Sprintf("file://%s", filepath.ToSlash(dir)), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			log.Printf("migration source close error: %v", srcErr)
		}
		if dbErr != nil {
			log.Printf("migration database close error: %v", dbErr)
		}
	}()

	if cfg.Down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	if errors.Is(err, migrate.ErrNoChange) {
		log.Println("no migrations to apply")
		return nil
	}
	if err != nil {
		return err
	}

	log.Println("migrations applied successfully")
	return nil
}
