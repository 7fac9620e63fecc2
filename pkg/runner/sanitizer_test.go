package runner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeInput_SizeLimit(t *testing.T) {
	limit := DefaultMaxInputSize

	_, err := SanitizeInput(strings.Repeat("a", limit))
	assert.NoError(t, err, "exact limit")

	_, err = SanitizeInput(strings.Repeat("a", limit+1))
	assert.ErrorIs(t, err, ErrInputTooLarge)
}

func TestSanitizeInput_EnvOverride(t *testing.T) {
	t.Setenv(EnvMaxInputSize, "10")
	assert.Equal(t, 10, MaxInputSize())

	_, err := SanitizeInput("12345678901")
	assert.ErrorIs(t, err, ErrInputTooLarge)

	_, err = SanitizeInput("12345")
	assert.NoError(t, err)

	t.Setenv(EnvMaxInputSize, "lots")
	assert.Equal(t, DefaultMaxInputSize, MaxInputSize())
}

func TestSanitizeInput_InvalidUTF8(t *testing.T) {
	_, err := SanitizeInput("\xbd\xb2\x3d\xbc\x20\xe2\x8c\x98")
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestSanitizeInput_Cleaning(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Normal Text", "Refactor the LoginButton", "Refactor the LoginButton"},
		{"Safe Controls", "Line1\nLine2\tTabbed", "Line1\nLine2\tTabbed"},
		{"CRLF", "one\r\ntwo\r", "one\ntwo"},
		{"Colour Codes", "\x1b[31mRed\x1b[0m text", "Red text"},
		{"Window Title", "\x1b]0;pwned\x07hi", "hi"},
		{"Lone Escape", "esc\x1b!", "esc!"},
		{"Null And Bell", "Null\x00Byte\x07", "NullByte"},
		{"Unicode", "café ☕", "café ☕"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeInput(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
