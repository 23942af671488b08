package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/wordbase-dev/wordbase/internal/config/envfile"
)

// Resolve produces the connection parameter set for a session.
//
// If path is non-empty, the file at path is parsed as KEY=VALUE lines
// and must supply all six recognized keys. Otherwise the process
// environment is consulted: if every recognized variable is set and
// non-empty the environment wins, else the built-in defaults are used
// as a complete set. The port is coerced to an integer last,
// regardless of source.
func Resolve(path string) (*Params, Source, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, SourceDefaults, fmt.Errorf("failed to load defaults: %w", err)
	}

	source := SourceDefaults
	switch {
	case path != "":
		if err := loadFile(k, path); err != nil {
			return nil, SourceFile, err
		}
		source = SourceFile

	case environComplete():
		// Transform: MYSQL_HOST -> host. Variables outside the
		// recognized set are skipped.
		if err := k.Load(env.Provider("MYSQL_", ".", envKeyName), nil); err != nil {
			return nil, SourceEnvironment, fmt.Errorf("failed to load env vars: %w", err)
		}
		source = SourceEnvironment
	}

	var raw struct {
		Host     string `koanf:"host"`
		Port     string `koanf:"port"`
		User     string `koanf:"user"`
		Password string `koanf:"password"`
		Database string `koanf:"database"`
		AuthMode string `koanf:"auth_mode"`
	}
	if err := k.Unmarshal("", &raw); err != nil {
		return nil, source, fmt.Errorf("unable to decode parameters: %w", err)
	}

	port, err := coercePort(raw.Port)
	if err != nil {
		return nil, source, err
	}

	return &Params{
		Host:     raw.Host,
		Port:     port,
		User:     raw.User,
		Password: raw.Password,
		Database: raw.Database,
		AuthMode: raw.AuthMode,
	}, source, nil
}

// loadFile parses an env file and layers its six recognized keys onto
// k. Unrecognized keys are read but never consulted; a missing
// recognized key is an error.
func loadFile(k *koanf.Koanf, path string) error {
	parsed := koanf.New(".")
	if err := parsed.Load(file.Provider(path), envfile.Parser()); err != nil {
		return fmt.Errorf("error reading env file %s: %w", path, err)
	}

	vals := make(map[string]interface{}, len(envKeys))
	for name, envName := range envKeys {
		v := parsed.String(envName)
		if v == "" {
			return fmt.Errorf("env file %s: missing %s", path, envName)
		}
		vals[name] = v
	}
	return k.Load(confmap.Provider(vals, "."), nil)
}

// environComplete reports whether every recognized environment
// variable is present and non-empty.
func environComplete() bool {
	for _, envName := range envKeys {
		if os.Getenv(envName) == "" {
			return false
		}
	}
	return true
}

// envKeyName maps an environment variable name to its parameter name.
// Returns "" for variables outside the recognized set, which koanf
// skips.
func envKeyName(s string) string {
	for name, envName := range envKeys {
		if s == envName {
			return name
		}
	}
	return ""
}

// coercePort converts the textual port to a positive integer.
func coercePort(s string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not numeric", ErrInvalidPort, s)
	}
	if port <= 0 {
		return 0, fmt.Errorf("%w: %d is not positive", ErrInvalidPort, port)
	}
	return port, nil
}
