// Copyright (c) 2025 tor-iv.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var ErrUnknownDriver = errors.New("unknown database type")

// sqlitePragmas are applied to every pooled connection through the DSN
var sqlitePragmas = []string{
	"busy_timeout(5000)",
	"foreign_keys(1)",
	"synchronous(NORMAL)",
}

// DB wraps *sql.DB so queries can be written once with ? placeholders.
// They are rewritten to $1, $2, ... for PostgreSQL.
type DB struct {
	*sql.DB
	driver string
}

// Tx is the transaction counterpart of DB
type Tx struct {
	*sql.Tx
	driver string
}

// Querier is satisfied by both *DB and *Tx
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Open connects to the database named by driverType ("postgres" or "sqlite")
// and verifies the connection
func Open(driverType, url string) (*DB, error) {
	var dsn string
	switch driverType {
	case DriverPostgres:
		dsn = url
	case DriverSQLite:
		dsn = sqliteDSN(url)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driverType)
	}

	conn, err := sql.Open(driverType, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driverType, err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", driverType, err)
	}

	if driverType == DriverSQLite {
		// WAL is persistent in the file, so once is enough
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to enable WAL: %w", err)
		}
	}

	return &DB{DB: conn, driver: driverType}, nil
}

func sqliteDSN(url string) string {
	if strings.Contains(url, "_pragma=") {
		return url
	}

	params := make([]string, len(sqlitePragmas))
	for i, p := range sqlitePragmas {
		params[i] = "_pragma=" + p
	}

	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + strings.Join(params, "&")
}

// Driver reports which driver the connection uses
func (d *DB) Driver() string {
	return d.driver
}

func (d *DB) Exec(query string, args ...any) (sql.Result, error) {
	return d.DB.Exec(rebind(d.driver, query), args...)
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return d.DB.ExecContext(ctx, rebind(d.driver, query), args...)
}

func (d *DB) Query(query string, args ...any) (*sql.Rows, error) {
	return d.DB.Query(rebind(d.driver, query), args...)
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return d.DB.QueryContext(ctx, rebind(d.driver, query), args...)
}

func (d *DB) QueryRow(query string, args ...any) *sql.Row {
	return d.DB.QueryRow(rebind(d.driver, query), args...)
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return d.DB.QueryRowContext(ctx, rebind(d.driver, query), args...)
}

func (d *DB) Begin() (*Tx, error) {
	return d.BeginTx(context.Background(), nil)
}

func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	tx, err := d.DB.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{Tx: tx, driver: d.driver}, nil
}

func (t *Tx) Exec(query string, args ...any) (sql.Result, error) {
	return t.Tx.Exec(rebind(t.driver, query), args...)
}

func (t *Tx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return t.Tx.ExecContext(ctx, rebind(t.driver, query), args...)
}

func (t *Tx) Query(query string, args ...any) (*sql.Rows, error) {
	return t.Tx.Query(rebind(t.driver, query), args...)
}

func (t *Tx) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return t.Tx.QueryContext(ctx, rebind(t.driver, query), args...)
}

func (t *Tx) QueryRow(query string, args ...any) *sql.Row {
	return t.Tx.QueryRow(rebind(t.driver, query), args...)
}

func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return t.Tx.QueryRowContext(ctx, rebind(t.driver, query), args...)
}

// rebind rewrites ? placeholders to $N for PostgreSQL.
// Question marks inside single-quoted literals are left alone.
func rebind(driver, query string) string {
	if driver != DriverPostgres || !strings.Contains(query, "?") {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	inQuote := false
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'':
			inQuote = !inQuote
			b.WriteByte(c)
		case c == '?' && !inQuote:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}
