package database

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// Backoff schedule for transient database errors. Every query in this
// service is a fixed single-table statement, so anything that fails twice
// with the same transient class is worth one more, slower attempt and no
// more than that.
const (
	retryAttempts  = 3
	retryBaseDelay = 100 * time.Millisecond
	retryMaxDelay  = 2 * time.Second
)

// WithRetry runs a database operation, retrying transient failures with
// exponential backoff. Non-transient errors and context cancellation are
// returned immediately.
func WithRetry(ctx context.Context, fn func() error) error {
	var lastErr error
	delay := retryBaseDelay

	for attempt := 1; attempt <= retryAttempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if !isTransient(err) || attempt == retryAttempts {
			return lastErr
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}

		delay *= 2
		if delay > retryMaxDelay {
			delay = retryMaxDelay
		}
	}

	return lastErr
}

// isTransient classifies an error by SQLSTATE class. The statements here are
// fixed at compile time, so syntax and integrity classes signal a bug or bad
// input, never a condition a retry can clear.
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, sql.ErrNoRows) {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "40001" || pgErr.Code == "40P01":
			// serialization failure, deadlock
			return true
		case pgErr.Code == "57P03":
			// cannot_connect_now, server is starting up
			return true
		case strings.HasPrefix(pgErr.Code, "08"):
			// connection exceptions
			return true
		case strings.HasPrefix(pgErr.Code, "53"):
			// insufficient resources, too many connections
			return true
		default:
			return false
		}
	}

	// Driver-level failures before a SQLSTATE exists
	msg := strings.ToLower(err.Error())
	for _, transient := range []string{
		"connection refused",
		"connection reset",
		"broken pipe",
		"i/o timeout",
		"bad connection",
		"connection pool exhausted",
	} {
		if strings.Contains(msg, transient) {
			return true
		}
	}

	return false
}
