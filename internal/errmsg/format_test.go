package errmsg

import (
	"errors"
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpPlaylistDelete,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpPlaylistDelete,
			err:      errors.New("database is locked"),
			expected: "Failed to delete playlist: database is locked",
		},
		{
			name:     "load operation",
			op:       OpPlaylistLoad,
			err:      errors.New("no such table: playlists"),
			expected: "Failed to load playlists: no such table: playlists",
		},
		{
			name:     "wrapped error keeps chain text",
			op:       OpInitialize,
			err:      fmt.Errorf("open state: %w", errors.New("permission denied")),
			expected: "Failed to initialize application: open state: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpPlaylistClear,
			context:  "Road trip",
			err:      nil,
			expected: "",
		},
		{
			name:     "includes context",
			op:       OpPlaylistClear,
			context:  "Road trip",
			err:      errors.New("context deadline exceeded"),
			expected: "Failed to clear playlist 'Road trip': context deadline exceeded",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpPlaylistDelete,
			context:  "",
			err:      errors.New("not found"),
			expected: "Failed to delete playlist: not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}
