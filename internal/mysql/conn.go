// Package mysql opens and guards the database connection for a
// session: one connection, opened once, classified on failure, closed
// exactly once on every exit path.
package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strconv"

	mysqldrv "github.com/go-sql-driver/mysql"

	"github.com/wordbase-dev/wordbase/internal/config"
)

// Conn is an open database connection. The open and close notices on
// the transcript writer are part of the session's observable output.
type Conn struct {
	db     *sql.DB
	out    io.Writer
	logger *slog.Logger
	closed bool
}

// Connect opens a connection with the resolved parameters and
// verifies it with a ping. Ping failures are classified before being
// returned. If logger is nil, a discard logger is used.
func Connect(ctx context.Context, p *config.Params, out io.Writer, logger *slog.Logger) (*Conn, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if out == nil {
		out = io.Discard
	}

	logger.Debug("connecting to mysql",
		slog.String("host", p.Host),
		slog.Int("port", p.Port),
		slog.String("user", p.User),
		slog.String("database", p.Database),
		slog.String("auth_mode", p.AuthMode))

	db, err := sql.Open("mysql", buildDSN(p))
	if err != nil {
		return nil, fmt.Errorf("failed to open mysql connection: %w", err)
	}

	// The session owns exactly one connection.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, Classify(err)
	}

	_, _ = fmt.Fprintln(out, "Connected successfully.")
	return &Conn{db: db, out: out, logger: logger}, nil
}

// buildDSN constructs the driver connection string. The auth mode is
// negotiated with the server during the handshake, so it is not part
// of the DSN.
func buildDSN(p *config.Params) string {
	cfg := mysqldrv.NewConfig()
	cfg.User = p.User
	cfg.Passwd = p.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(p.Host, strconv.Itoa(p.Port))
	cfg.DBName = p.Database
	return cfg.FormatDSN()
}

// DB exposes the underlying handle for the query gateway.
func (c *Conn) DB() *sql.DB {
	return c.db
}

// Close releases the connection. Safe to call more than once; the
// underlying close and the transcript notice happen exactly once.
func (c *Conn) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	err := c.db.Close()
	_, _ = fmt.Fprint(c.out, "\nConnection closed.\n")
	c.logger.Debug("connection closed")
	return err
}
