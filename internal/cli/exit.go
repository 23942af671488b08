package cli

import (
	"context"
	"errors"

	"github.com/wordbase-dev/wordbase/internal/mysql"
	"github.com/wordbase-dev/wordbase/internal/shell"
)

// ExitCode maps a session error to the process exit status. User
// cancellation and a rejected login are expected outcomes and exit 0;
// every other failure exits 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, shell.ErrCancelled) || errors.Is(err, context.Canceled) {
		return 0
	}
	var fe *mysql.FailureError
	if errors.As(err, &fe) && fe.Kind == mysql.KindBadCredentials {
		return 0
	}
	return 1
}
