package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conway/internal/config"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "conway", cmd.Use)

	for _, name := range []string{"play", "run"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()
	cases := []struct {
		name, shorthand, def string
	}{
		{"config", "c", ""},
		{"verbose", "v", "false"},
		{"width", "", "640"},
		{"height", "", "480"},
		{"speed", "s", "2"},
		{"density", "", "0"},
	}
	for _, tc := range cases {
		f := cmd.PersistentFlags().Lookup(tc.name)
		require.NotNil(t, f, tc.name)
		assert.Equal(t, tc.shorthand, f.Shorthand, tc.name)
		assert.Equal(t, tc.def, f.DefValue, tc.name)
	}
}

func TestResolveLayersFlagsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 300\nheight: 200\nspeed: 5\ncells: [\"1,1\"]\n"), 0o644))

	cmd, opts := newRootCommand()
	cmd.AddCommand(&cobra.Command{
		Use:  "probe",
		RunE: func(*cobra.Command, []string) error { return nil },
	})
	cmd.SetArgs([]string{"probe", "-c", path, "--height", "100", "--cell", "2,2"})
	cmd.SetErr(&bytes.Buffer{})
	require.NoError(t, cmd.Execute())

	got := opts.Config
	assert.Equal(t, 300, got.Width)
	assert.Equal(t, 100, got.Height, "flag overrides file")
	assert.Equal(t, 5, got.Speed)
	assert.Equal(t, []string{"1,1", "2,2"}, got.Cells)
}

func TestInvalidConfigurationIsCommandError(t *testing.T) {
	_, _, err := execute(t, "run", "--width", "645", "--generations", "1")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidSize)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, _, err = execute(t, "run", "--speed", "0")
	assert.ErrorIs(t, err, config.ErrInvalidSpeed)

	_, _, err = execute(t, "run", "--cell", "nope")
	assert.ErrorIs(t, err, config.ErrInvalidCell)

	_, _, err = execute(t, "run", "-c", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))
	assert.Equal(t, ExitCommandError, GetExitCode(WrapExitError(ExitCommandError, "bad", assert.AnError)))
	assert.Equal(t, "bad: "+assert.AnError.Error(), WrapExitError(ExitCommandError, "bad", assert.AnError).Error())
}
