// Package envfile implements a koanf parser for KEY=VALUE environment
// files. The format is deliberately strict: one assignment per line,
// exactly one = separator, values unquoted. Surrounding whitespace on a
// line is trimmed.
package envfile

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrMalformedLine reports a line that does not contain exactly one
// KEY=VALUE assignment.
var ErrMalformedLine = errors.New("malformed env file line")

// EnvFile implements a koanf.Parser for strict KEY=VALUE files.
type EnvFile struct{}

// Parser returns an env file parser.
func Parser() *EnvFile {
	return &EnvFile{}
}

// Unmarshal parses the given env file bytes into a flat map.
func (p *EnvFile) Unmarshal(b []byte) (map[string]interface{}, error) {
	out := make(map[string]interface{})
	lines := strings.Split(string(b), "\n")
	for i, line := range lines {
		// A trailing newline leaves one empty remainder after the
		// split; it is not a line.
		if i == len(lines)-1 && line == "" {
			continue
		}
		line = strings.TrimSpace(line)
		parts := strings.Split(line, "=")
		if len(parts) != 2 {
			return nil, fmt.Errorf("line %d: %w", i+1, ErrMalformedLine)
		}
		out[parts[0]] = parts[1]
	}
	return out, nil
}

// Marshal renders a flat map back into KEY=VALUE lines in key order.
func (p *EnvFile) Marshal(m map[string]interface{}) ([]byte, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s=%v\n", k, m[k])
	}
	return []byte(sb.String()), nil
}
