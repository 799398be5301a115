package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEchoString(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		noNewline bool
		want      string
	}{
		{"basic", []string{"hello", "world"}, false, "hello world\n"},
		{"basic with option", []string{"hello", "world"}, true, "hello world"},
		{"empty", nil, false, "\n"},
		{"empty with option", nil, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, echoString(tt.args, tt.noNewline))
		})
	}
}

func TestEchoCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"words", []string{"echo", "hello", "world"}, "hello world\n"},
		{"short flag", []string{"echo", "-n", "hello", "world"}, "hello world"},
		{"no args", []string{"echo"}, "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := NewRootCommand()
			var stdout bytes.Buffer
			root.SetOut(&stdout)
			root.SetArgs(tt.args)

			require.NoError(t, root.Execute())
			assert.Equal(t, tt.want, stdout.String())
		})
	}
}
