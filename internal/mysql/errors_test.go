package mysql

import (
	"errors"
	"fmt"
	"testing"

	mysqldrv "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		kind     FailureKind
		message  string
		passthru bool
	}{
		{
			name:    "access denied for user",
			err:     &mysqldrv.MySQLError{Number: 1045, Message: "Access denied for user 'root'@'localhost'"},
			kind:    KindBadCredentials,
			message: "could not log in with the user/password provided",
		},
		{
			name:    "access denied to database",
			err:     &mysqldrv.MySQLError{Number: 1044, Message: "Access denied for user 'alice'@'%' to database 'dictionary'"},
			kind:    KindAccessDenied,
			message: "Access denied for user 'alice'@'%' to database 'dictionary'",
		},
		{
			name:    "unknown database",
			err:     &mysqldrv.MySQLError{Number: 1049, Message: "Unknown database 'dictionary'"},
			kind:    KindUnknownDatabase,
			message: "Unknown database 'dictionary'",
		},
		{
			name:     "unclassified server error",
			err:      &mysqldrv.MySQLError{Number: 1064, Message: "You have an error in your SQL syntax"},
			passthru: true,
		},
		{
			name:     "non-driver error",
			err:      assert.AnError,
			passthru: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)

			if tt.passthru {
				assert.Equal(t, tt.err, got)
				return
			}

			var fe *FailureError
			require.ErrorAs(t, got, &fe)
			assert.Equal(t, tt.kind, fe.Kind)
			assert.Equal(t, tt.message, fe.Message)
			assert.Equal(t, tt.message, got.Error())
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestClassifyWrappedError(t *testing.T) {
	// Classification must see through wrapping added by the ping path.
	raw := &mysqldrv.MySQLError{Number: 1045, Message: "Access denied"}
	wrapped := fmt.Errorf("failed to ping: %w", raw)

	var fe *FailureError
	require.ErrorAs(t, Classify(wrapped), &fe)
	assert.Equal(t, KindBadCredentials, fe.Kind)
}

func TestFailureErrorUnwrap(t *testing.T) {
	raw := &mysqldrv.MySQLError{Number: 1049, Message: "Unknown database 'words'"}
	err := Classify(raw)

	var me *mysqldrv.MySQLError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, uint16(1049), me.Number)
}
