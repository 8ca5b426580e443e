package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "separate value form",
			args:         []string{"-c", "conf.json", "-a", "localhost:8080"},
			allowedFlags: []string{"-c", "-config", "--config"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "equals form",
			args:         []string{"--config=alt.json", "-a", "localhost:8080"},
			allowedFlags: []string{"-c", "-config", "--config"},
			want:         []string{"--config=alt.json"},
		},
		{
			name:         "several allowed flags keep argument order",
			args:         []string{"-a", "localhost:8080", "-d", "postgres://db", "-x", "1"},
			allowedFlags: []string{"-a", "-d"},
			want:         []string{"-a", "localhost:8080", "-d", "postgres://db"},
		},
		{
			name:         "disallowed flags and positionals dropped",
			args:         []string{"-x", "1", "--y=2", "save"},
			allowedFlags: []string{"-c", "-config", "--config"},
			want:         []string{},
		},
		{
			name:         "trailing flag without value",
			args:         []string{"-a", "localhost:8080", "-c"},
			allowedFlags: []string{"-c", "-a"},
			want:         []string{"-a", "localhost:8080", "-c"},
		},
		{
			name:         "next dash token is not a value",
			args:         []string{"-c", "-config", "late.json"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-c", "-config", "late.json"},
		},
		{
			name:         "equals form keeps odd values intact",
			args:         []string{"--config=--odd.json"},
			allowedFlags: []string{"--config"},
			want:         []string{"--config=--odd.json"},
		},
		{
			name:         "repeated flag kept in order",
			args:         []string{"-c", "one.json", "-c", "two.json"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c", "one.json", "-c", "two.json"},
		},
		{
			name:         "no arguments",
			args:         []string{},
			allowedFlags: []string{"-c", "-config", "--config"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short form", func(t *testing.T) {
		os.Args = []string{"timeboard", "-c", "/etc/timeboard/server.json"}
		require.Equal(t, "/etc/timeboard/server.json", JsonConfigFlags())
	})

	t.Run("long form", func(t *testing.T) {
		os.Args = []string{"timeboard", "-config", "/etc/timeboard/server.json"}
		require.Equal(t, "/etc/timeboard/server.json", JsonConfigFlags())
	})

	t.Run("double dash equals form", func(t *testing.T) {
		os.Args = []string{"timecli", "--config=client.json", "save", "--day", "2025-03-04"}
		require.Equal(t, "client.json", JsonConfigFlags())
	})

	t.Run("absent", func(t *testing.T) {
		os.Args = []string{"timeboard", "-a", "localhost:8080"}
		require.Empty(t, JsonConfigFlags())
	})

	t.Run("last occurrence wins", func(t *testing.T) {
		os.Args = []string{"timeboard", "-c", "first.json", "--config=second.json"}
		require.Equal(t, "second.json", JsonConfigFlags())
	})
}
