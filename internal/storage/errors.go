package storage

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	goretry "github.com/sethvargo/go-retry"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// IsUniqueViolation reports whether err is a unique or primary key
// constraint failure from either backend.
func IsUniqueViolation(err error) bool {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	var sqErr *sqlite.Error
	if errors.As(err, &sqErr) {
		code := sqErr.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}

	return false
}

func IsForeignKeyViolation(err error) bool {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}

	var sqErr *sqlite.Error
	if errors.As(err, &sqErr) {
		return sqErr.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY
	}

	return false
}

func isBusy(err error) bool {
	var sqErr *sqlite.Error
	if !errors.As(err, &sqErr) {
		return false
	}
	primary := sqErr.Code() & 0xff
	return primary == sqlite3.SQLITE_BUSY || primary == sqlite3.SQLITE_LOCKED
}

// busyPolicy retries SQLite statements that lost the write lock.
type busyPolicy struct {
	attempts uint64
	base     time.Duration
}

var defaultBusyPolicy = busyPolicy{attempts: 3, base: 50 * time.Millisecond}

func (p busyPolicy) do(ctx context.Context, fn func() error) error {
	if p.attempts == 0 {
		return fn()
	}

	b := goretry.WithMaxRetries(p.attempts, goretry.NewExponential(p.base))
	return goretry.Do(ctx, b, func(ctx context.Context) error {
		err := fn()
		if isBusy(err) {
			return goretry.RetryableError(err)
		}
		return err
	})
}
