// Package storage opens the relational store behind the registration engine.
//
// The default driver is an embedded SQLite file (modernc.org/sqlite); a
// PostgreSQL backend through wbf/dbpg is available for deployments that
// already run a server. Repositories see a single Querier abstraction and
// write '?' placeholders, which are rebound for PostgreSQL.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/config"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// Querier is implemented by both DB and the transactional handle given to WithTx.
type Querier interface {
	Exec(ctx context.Context, query string, args ...any) (sql.Result, error)
	Query(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) (*sql.Row, error)
}

type DB struct {
	dialect  Dialect
	master   *sql.DB
	pg       *dbpg.DB
	strategy retry.Strategy
	busy     busyPolicy
}

func Open(ctx context.Context, cfg config.StorageConfig) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return OpenPostgres(ctx, cfg.Postgres)
	case config.DriverSQLite, "":
		return OpenSQLite(ctx, cfg.SQLite)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func OpenSQLite(ctx context.Context, cfg config.SQLiteConfig) (*DB, error) {
	db, err := sql.Open("sqlite", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// Один писатель: SQLite сериализует запись, лишние соединения дают только SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return &DB{
		dialect: DialectSQLite,
		master:  db,
		busy:    defaultBusyPolicy,
	}, nil
}

func OpenPostgres(ctx context.Context, cfg config.PostgresConfig) (*DB, error) {
	db, err := dbpg.New(
		cfg.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: cfg.MaxOpenConns,
			MaxIdleConns: cfg.MaxIdleConns,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	db.Master.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err = db.Master.PingContext(ctx); err != nil {
		_ = db.Master.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &DB{
		dialect: DialectPostgres,
		master:  db.Master,
		pg:      db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}, nil
}

func (d *DB) Dialect() Dialect {
	return d.dialect
}

// SQL exposes the underlying pool for migrations and health checks.
func (d *DB) SQL() *sql.DB {
	return d.master
}

func (d *DB) Close() error {
	return d.master.Close()
}

func (d *DB) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	query = rebind(d.dialect, query)
	if d.pg != nil {
		return d.pg.ExecWithRetry(ctx, d.strategy, query, args...)
	}

	var res sql.Result
	err := d.busy.do(ctx, func() error {
		var err error
		res, err = d.master.ExecContext(ctx, query, args...)
		return err
	})
	return res, err
}

func (d *DB) Query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	query = rebind(d.dialect, query)
	if d.pg != nil {
		return d.pg.QueryWithRetry(ctx, d.strategy, query, args...)
	}

	var rows *sql.Rows
	err := d.busy.do(ctx, func() error {
		var err error
		rows, err = d.master.QueryContext(ctx, query, args...)
		return err
	})
	return rows, err
}

func (d *DB) QueryRow(ctx context.Context, query string, args ...any) (*sql.Row, error) {
	query = rebind(d.dialect, query)
	if d.pg != nil {
		return d.pg.QueryRowWithRetry(ctx, d.strategy, query, args...)
	}
	return d.master.QueryRowContext(ctx, query, args...), nil
}

// WithTx runs fn inside a transaction, committing on success and rolling
// back on error or panic. fn must use only the Querier it is given.
func (d *DB) WithTx(ctx context.Context, fn func(ctx context.Context, q Querier) error) (err error) {
	tx, err := d.master.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if cerr := tx.Commit(); cerr != nil {
			err = fmt.Errorf("commit tx: %w", cerr)
		}
	}()

	return fn(ctx, &txQuerier{tx: tx, dialect: d.dialect})
}

type txQuerier struct {
	tx      *sql.Tx
	dialect Dialect
}

func (t *txQuerier) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return t.tx.ExecContext(ctx, rebind(t.dialect, query), args...)
}

func (t *txQuerier) Query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return t.tx.QueryContext(ctx, rebind(t.dialect, query), args...)
}

func (t *txQuerier) QueryRow(ctx context.Context, query string, args ...any) (*sql.Row, error) {
	return t.tx.QueryRowContext(ctx, rebind(t.dialect, query), args...), nil
}

// rebind turns '?' placeholders into $N for PostgreSQL, leaving quoted text alone.
func rebind(d Dialect, query string) string {
	if d != DialectPostgres || !strings.Contains(query, "?") {
		return query
	}

	var (
		b      strings.Builder
		n      int
		quoted bool
	)
	b.Grow(len(query) + 8)
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'':
			quoted = !quoted
			b.WriteByte(c)
		case c == '?' && !quoted:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
