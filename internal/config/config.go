// Package config resolves the connection parameter set for a session.
// Parameters come from exactly one of three sources, in order: an
// explicit KEY=VALUE env file, the process environment, or built-in
// defaults. The environment source is all-or-nothing: unless every
// recognized variable is present and non-empty, the defaults are used
// wholesale.
package config

import (
	"errors"
)

// Recognized environment variable names, one per connection parameter.
const (
	EnvHost     = "MYSQL_HOST"
	EnvPort     = "MYSQL_PORT"
	EnvUser     = "MYSQL_USER"
	EnvPassword = "MYSQL_PASSWORD"
	EnvDatabase = "MYSQL_DATABASE"
	EnvAuthMode = "MYSQL_AUTH"
)

// ErrInvalidPort reports a port value that is not a positive integer.
var ErrInvalidPort = errors.New("invalid port")

// Params is the resolved connection parameter set. It is built once
// per run and not modified afterwards except by the login step.
type Params struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	AuthMode string
}

// Source identifies which layer populated the parameter set.
type Source int

const (
	// SourceDefaults is the built-in localhost root login.
	SourceDefaults Source = iota

	// SourceEnvironment is the complete set of recognized process
	// environment variables.
	SourceEnvironment

	// SourceFile is an explicit KEY=VALUE env file.
	SourceFile
)

// String returns a human-readable source name.
func (s Source) String() string {
	switch s {
	case SourceEnvironment:
		return "environment"
	case SourceFile:
		return "file"
	default:
		return "defaults"
	}
}

// envKeys maps internal parameter names to their environment variable
// names. The same mapping applies to env file keys.
var envKeys = map[string]string{
	"host":      EnvHost,
	"port":      EnvPort,
	"user":      EnvUser,
	"password":  EnvPassword,
	"database":  EnvDatabase,
	"auth_mode": EnvAuthMode,
}

// defaults is the fallback root login. Port is kept textual here; all
// sources carry the port as text until the final coercion step.
var defaults = map[string]interface{}{
	"host":      "localhost",
	"port":      "3306",
	"user":      "root",
	"password":  "Password",
	"database":  "dictionary",
	"auth_mode": "caching_sha2_password",
}
