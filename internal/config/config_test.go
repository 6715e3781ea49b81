package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conway/pkg/life"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 480, cfg.Height)
	assert.Equal(t, 2, cfg.Speed)
}

func TestLoad(t *testing.T) {
	cfg, err := Load("testdata/glider.yaml")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 200, cfg.Width)
	assert.Equal(t, 100, cfg.Height)
	assert.Equal(t, 8, cfg.Speed)
	assert.Equal(t, int64(1), cfg.Seed, "missing keys keep defaults")

	locs, err := cfg.Locations()
	require.NoError(t, err)
	assert.Equal(t, []life.Location{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}}, locs)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("testdata/missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[Load] failed to read file")

	_, err = Load("testdata/broken.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[Load] failed to unmarshal")
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"width not multiple", func(c *Config) { c.Width = 645 }, ErrInvalidSize},
		{"height not multiple", func(c *Config) { c.Height = 481 }, ErrInvalidSize},
		{"zero width", func(c *Config) { c.Width = 0 }, ErrInvalidSize},
		{"negative height", func(c *Config) { c.Height = -10 }, ErrInvalidSize},
		{"zero speed", func(c *Config) { c.Speed = 0 }, ErrInvalidSpeed},
		{"speed above a tick per nanosecond", func(c *Config) { c.Speed = MaxSpeed + 1 }, ErrInvalidSpeed},
		{"density above one", func(c *Config) { c.Density = 1.5 }, ErrInvalidDensity},
		{"negative density", func(c *Config) { c.Density = -0.1 }, ErrInvalidDensity},
		{"bad cell", func(c *Config) { c.Cells = []string{"3;4"} }, ErrInvalidCell},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tc.want)
		})
	}
}

func TestMaxSpeedIsValid(t *testing.T) {
	cfg := Default()
	cfg.Speed = MaxSpeed
	assert.NoError(t, cfg.Validate())
}

func TestParseLocation(t *testing.T) {
	loc, err := ParseLocation(" 12, 7 ")
	require.NoError(t, err)
	assert.Equal(t, life.Location{X: 12, Y: 7}, loc)

	for _, bad := range []string{"", "1", "a,2", "1,b", "-1,2", "1,-2"} {
		_, err := ParseLocation(bad)
		assert.ErrorIs(t, err, ErrInvalidCell, "%q", bad)
	}
}
