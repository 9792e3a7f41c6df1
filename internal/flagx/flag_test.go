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
			args:         []string{"-d", "edu.db", "-x", "1"},
			allowedFlags: []string{"-d"},
			want:         []string{"-d", "edu.db"},
		},
		{
			name:         "flag with equals",
			args:         []string{"-d=edu.db", "-x", "1"},
			allowedFlags: []string{"-d"},
			want:         []string{"-d=edu.db"},
		},
		{
			name:         "several allowed flags, order preserved",
			args:         []string{"-b", "sqlite", "-m", "media", "-x", "1"},
			allowedFlags: []string{"-b", "-d", "-m"},
			want:         []string{"-b", "sqlite", "-m", "media"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-d"},
			want:         []string{},
		},
		{
			name:         "flag without value at end is kept as-is",
			args:         []string{"-demo"},
			allowedFlags: []string{"-demo"},
			want:         []string{"-demo"},
		},
		{
			name:         "flag followed by another flag keeps no value",
			args:         []string{"-demo", "-d", "edu.db"},
			allowedFlags: []string{"-demo", "-d"},
			want:         []string{"-demo", "-d", "edu.db"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"app", "-c", "conf.json", "-d", "edu.db"}
	assert.Equal(t, "conf.json", JsonConfigFlags())

	os.Args = []string{"app", "-config=alt.json"}
	assert.Equal(t, "alt.json", JsonConfigFlags())

	os.Args = []string{"app", "-d", "edu.db"}
	assert.Equal(t, "", JsonConfigFlags())
}
