package envfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshal(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  map[string]interface{}
		expectErr bool
	}{
		{
			name:  "simple assignments",
			input: "MYSQL_HOST=example\nMYSQL_PORT=1234",
			expected: map[string]interface{}{
				"MYSQL_HOST": "example",
				"MYSQL_PORT": "1234",
			},
		},
		{
			name:     "trailing newline",
			input:    "MYSQL_HOST=example\n",
			expected: map[string]interface{}{"MYSQL_HOST": "example"},
		},
		{
			name:     "crlf line endings",
			input:    "MYSQL_HOST=example\r\nMYSQL_USER=root\r\n",
			expected: map[string]interface{}{"MYSQL_HOST": "example", "MYSQL_USER": "root"},
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  MYSQL_HOST=example  \n",
			expected: map[string]interface{}{"MYSQL_HOST": "example"},
		},
		{
			name:      "line without separator",
			input:     "MYSQL_HOST example",
			expectErr: true,
		},
		{
			name:      "line with two separators",
			input:     "MYSQL_PASSWORD=a=b",
			expectErr: true,
		},
		{
			name:      "blank interior line",
			input:     "MYSQL_HOST=example\n\nMYSQL_USER=root",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parser().Unmarshal([]byte(tt.input))
			if tt.expectErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMalformedLine)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMarshal(t *testing.T) {
	b, err := Parser().Marshal(map[string]interface{}{
		"MYSQL_USER": "root",
		"MYSQL_HOST": "localhost",
	})
	require.NoError(t, err)
	assert.Equal(t, "MYSQL_HOST=localhost\nMYSQL_USER=root\n", string(b))
}
