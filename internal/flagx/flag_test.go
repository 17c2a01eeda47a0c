package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-c", "conf.json", "-d", "waste.db"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "flag with equals",
			args:         []string{"-config=alt.toml", "-d", "waste.db"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-config=alt.toml"},
		},
		{
			name:         "several allowed flags keep their order",
			args:         []string{"-d", "a.db", "-x", "1", "-o", "out", "-l=debug"},
			allowedFlags: []string{"-d", "-o", "-l"},
			want:         []string{"-d", "a.db", "-o", "out", "-l=debug"},
		},
		{
			name:         "unknown flags and positionals ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag without value at end is kept",
			args:         []string{"-c"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "flag followed by another flag has no value",
			args:         []string{"-c", "-d"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "nil args",
			args:         nil,
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowedFlags)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short", []string{"-d", "x.db", "-c", "cfg.json"}, "cfg.json"},
		{"long with equals", []string{"-config=cfg.toml"}, "cfg.toml"},
		{"double dash", []string{"--config", "cfg.toml"}, "cfg.toml"},
		{"absent", []string{"-d", "x.db"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, configFileFlag(tt.args))
		})
	}
}

func TestConfigFileFlag_ReadsOSArgs(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	os.Args = []string{"wastetrack", "-c", "from-os.json"}
	assert.Equal(t, "from-os.json", ConfigFileFlag())
}
