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
			args:         []string{"-c", "conf.json", "-a", "http://localhost:8787"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "long flag with equals",
			args:         []string{"-config=alt.json", "-a", "http://localhost:8787"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-config=alt.json"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "-y=2", "positional"},
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
			name:         "next dash token is not a value",
			args:         []string{"-c", "-p", "seed"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "several allowed flags keep order",
			args:         []string{"-a", "http://api", "-d", "blog.db", "-other", "x"},
			allowedFlags: []string{"-d", "-a"},
			want:         []string{"-a", "http://api", "-d", "blog.db"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestStringFlag(t *testing.T) {
	assert.Equal(t, "a.json", StringFlag([]string{"-a", "x", "-c", "a.json"}, "config", "c"))
	assert.Equal(t, "b.json", StringFlag([]string{"-config=b.json"}, "config", "c"))
	assert.Equal(t, "", StringFlag([]string{"-a", "x"}, "config", "c"))
	assert.Equal(t, "", StringFlag([]string{"-c"}, "config", "c"), "missing value is a parse error")
}

func TestConfigAndEnvFileFlags(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	os.Args = []string{"cli", "-c", "conf.json", "-e", ".env.local", "-p", "seed"}
	assert.Equal(t, "conf.json", ConfigFileFlag())
	assert.Equal(t, ".env.local", EnvFileFlag())

	os.Args = []string{"cli"}
	assert.Empty(t, ConfigFileFlag())
	assert.Empty(t, EnvFileFlag())
}
