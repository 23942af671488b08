package mysql

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordbase-dev/wordbase/internal/config"
)

func TestBuildDSN(t *testing.T) {
	tests := []struct {
		name     string
		params   config.Params
		expected string
	}{
		{
			name: "default root login",
			params: config.Params{
				Host:     "localhost",
				Port:     3306,
				User:     "root",
				Password: "Password",
				Database: "dictionary",
			},
			expected: "root:Password@tcp(localhost:3306)/dictionary",
		},
		{
			name: "custom host and port",
			params: config.Params{
				Host:     "db.example.com",
				Port:     3307,
				User:     "alice",
				Password: "secret",
				Database: "words",
			},
			expected: "alice:secret@tcp(db.example.com:3307)/words",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, buildDSN(&tt.params))
		})
	}
}

func TestConnCloseOnce(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()

	var out bytes.Buffer
	conn := &Conn{db: db, out: &out, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	require.NoError(t, conn.Close())
	require.NoError(t, conn.Close())

	assert.Equal(t, 1, strings.Count(out.String(), "Connection closed."))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConnDB(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	conn := &Conn{db: db, out: &bytes.Buffer{}, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	assert.Same(t, db, conn.DB())
}
