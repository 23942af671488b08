package mysql

import (
	"errors"

	mysqldrv "github.com/go-sql-driver/mysql"
)

// FailureKind classifies a failed connection attempt into one of the
// categories the session handler acts on.
type FailureKind int

const (
	// KindBadCredentials means the host/user/password combination was
	// rejected.
	KindBadCredentials FailureKind = iota

	// KindAccessDenied means the user lacks privileges on the
	// requested database.
	KindAccessDenied

	// KindUnknownDatabase means the requested database does not exist.
	KindUnknownDatabase
)

// MySQL server error numbers the guard distinguishes.
const (
	errAccessDenied   = 1045 // ER_ACCESS_DENIED_ERROR
	errDBAccessDenied = 1044 // ER_DBACCESS_DENIED_ERROR
	errBadDB          = 1049 // ER_BAD_DB_ERROR
)

// FailureError is a classified connection failure. It wraps the raw
// driver error and carries a message suitable for the transcript.
type FailureError struct {
	Kind    FailureKind
	Message string
	Err     error
}

func (e *FailureError) Error() string { return e.Message }

func (e *FailureError) Unwrap() error { return e.Err }

// Classify maps a raw driver error to a classified connection
// failure. Errors outside the known categories are returned
// unchanged.
func Classify(err error) error {
	var me *mysqldrv.MySQLError
	if !errors.As(err, &me) {
		return err
	}
	switch me.Number {
	case errAccessDenied:
		return &FailureError{
			Kind:    KindBadCredentials,
			Message: "could not log in with the user/password provided",
			Err:     err,
		}
	case errDBAccessDenied:
		return &FailureError{Kind: KindAccessDenied, Message: me.Message, Err: err}
	case errBadDB:
		return &FailureError{Kind: KindUnknownDatabase, Message: me.Message, Err: err}
	}
	return err
}
