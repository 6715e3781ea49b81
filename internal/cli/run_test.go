package cli

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conway/internal/config"
)

func TestRunBlinker(t *testing.T) {
	stdout, stderr, err := execute(t, "run",
		"--width", "60", "--height", "60", "--speed", "1000",
		"--cell", "1,2", "--cell", "2,2", "--cell", "3,2",
		"--generations", "2", "--no-clear", "--glyphs", "#.")
	require.NoError(t, err)

	want := strings.Join([]string{
		"......",
		"......",
		".###..",
		"......",
		"......",
		"......",
		"gen 0 | live 3 | 6x6 | paused",
		"......",
		"..#...",
		"..#...",
		"..#...",
		"......",
		"......",
		"gen 1 | live 3 | 6x6",
		"......",
		"......",
		".###..",
		"......",
		"......",
		"......",
		"gen 2 | live 3 | 6x6",
	}, "\n") + "\n"
	assert.Equal(t, want, stdout)
	assert.Contains(t, stderr, "run finished")
	assert.Contains(t, stderr, "generations=2")
}

func TestRunClearsBetweenFrames(t *testing.T) {
	stdout, _, err := execute(t, "run", "--width", "20", "--height", "10", "--speed", "1000", "--generations", "1")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(stdout, "\x1b[H\x1b[2J"))
	assert.Contains(t, stdout, "    \n", "empty blocks render as blank glyphs")
}

func TestRunRejectsSpeedFasterThanClock(t *testing.T) {
	_, _, err := execute(t, "run", "--width", "20", "--height", "20",
		"--speed", "2000000000", "--generations", "1", "--no-clear")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidSpeed)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRunStopsOnCancel(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"run", "--width", "100", "--height", "100", "--speed", "50", "--density", "0.4", "--no-clear"})
	var out strings.Builder
	cmd.SetOut(&out)
	cmd.SetErr(&strings.Builder{})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- cmd.ExecuteContext(ctx) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not stop after the context was cancelled")
	}
	assert.Contains(t, out.String(), "gen 0 | live")
}

func TestRunVerboseLogsConfiguration(t *testing.T) {
	_, stderr, err := execute(t, "run", "-v", "--width", "20", "--height", "20", "--speed", "1000", "--generations", "1")
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, "configuration resolved")
}
