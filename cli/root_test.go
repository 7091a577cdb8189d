package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validFixture = "inputs:\n  - attrs: {name: q, value: go}\n"

func TestOutputFromConfigFile(t *testing.T) {
	fs := newFixtureFs(t, map[string]string{
		"/fx/ok.yaml":       validFixture,
		"/etc/goforms.yaml": "output: yaml\n",
	})
	out, _, err := run(t, fs, "--config", "/etc/goforms.yaml", "check", "/fx/ok.yaml")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "action:"), out)
}

func TestFlagOverridesConfigFile(t *testing.T) {
	fs := newFixtureFs(t, map[string]string{
		"/fx/ok.yaml":       validFixture,
		"/etc/goforms.yaml": "output: yaml\n",
	})
	out, _, err := run(t, fs, "--config", "/etc/goforms.yaml", "check", "/fx/ok.yaml", "-o", "text")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "form"), out)
}

func TestOutputFromEnvironment(t *testing.T) {
	t.Setenv("GOFORMS_OUTPUT", "yaml")
	fs := newFixtureFs(t, map[string]string{"/fx/ok.yaml": validFixture})
	out, _, err := run(t, fs, "check", "/fx/ok.yaml")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "action:"), out)
}

func TestLogging(t *testing.T) {
	fs := newFixtureFs(t, map[string]string{"/fx/ok.yaml": validFixture})
	_, logs, err := run(t, fs, "--log-level", "info", "--log-format", "json", "check", "/fx/ok.yaml")
	require.NoError(t, err)
	assert.Contains(t, logs, `"msg":"checked fixture"`)
	assert.Contains(t, logs, `"controls":1`)

	_, logs, err = run(t, fs, "check", "/fx/ok.yaml")
	require.NoError(t, err)
	assert.NotContains(t, logs, "checked fixture", "info is below the default level")
}

func TestBadConfiguration(t *testing.T) {
	fs := newFixtureFs(t, map[string]string{"/fx/ok.yaml": validFixture})
	tests := []struct {
		name string
		args []string
		env  map[string]string
		msg  string
	}{
		{"log level", []string{"--log-level", "loud", "check", "/fx/ok.yaml"}, nil, "log level"},
		{"log format", []string{"check", "/fx/ok.yaml"}, map[string]string{"GOFORMS_LOG_FORMAT": "xml"}, "unknown log format"},
		{"output", []string{"check", "/fx/ok.yaml", "-o", "csv"}, nil, "unknown output format"},
		{"config file", []string{"--config", "/etc/none.yaml", "check", "/fx/ok.yaml"}, nil, "read config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, _, err := run(t, fs, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}
