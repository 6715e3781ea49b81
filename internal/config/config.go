// Package config holds the startup configuration for the simulation and the
// checks that must pass before any grid is built.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"conway/pkg/life"
)

const (
	DefaultWidth  = 640
	DefaultHeight = 480
	DefaultSpeed  = 2
	// MaxSpeed is the fastest rate whose tick interval is still at least
	// one nanosecond.
	MaxSpeed = int(time.Second)
)

var (
	// ErrInvalidSize marks a window dimension that is not a positive
	// multiple of life.BlockSize.
	ErrInvalidSize = errors.New("invalid size")
	// ErrInvalidSpeed marks a generation rate outside [1, MaxSpeed].
	ErrInvalidSpeed = errors.New("invalid speed")
	// ErrInvalidDensity marks a scatter density outside [0, 1].
	ErrInvalidDensity = errors.New("invalid density")
	// ErrInvalidCell marks a cell that is not written as "x,y".
	ErrInvalidCell = errors.New("invalid cell")
)

// Config holds the configuration for the game.
type Config struct {
	Width   int      `yaml:"width"`
	Height  int      `yaml:"height"`
	Speed   int      `yaml:"speed"`
	Seed    int64    `yaml:"seed"`
	Density float64  `yaml:"density"`
	Cells   []string `yaml:"cells"`
}

// Default returns the stock 640x480 window stepping twice per second.
func Default() Config {
	return Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Speed:  DefaultSpeed,
		Seed:   1,
	}
}

// Load reads a YAML file on top of the defaults. Keys missing from the file
// keep their default values.
func Load(filename string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, errors.Wrapf(err, "[Load] failed to read file: %s", filename)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "[Load] failed to unmarshal data from file: %s", filename)
	}
	return cfg, nil
}

// Validate checks every precondition the engine relies on. Dimensions that
// are not multiples of the block size are rejected here rather than inside
// the engine.
func (c Config) Validate() error {
	if err := ValidateDimension("width", c.Width); err != nil {
		return err
	}
	if err := ValidateDimension("height", c.Height); err != nil {
		return err
	}
	if c.Speed <= 0 || c.Speed > MaxSpeed {
		return errors.Wrapf(ErrInvalidSpeed, "%d is not a valid speed (must be within [1, %d])", c.Speed, MaxSpeed)
	}
	if c.Density < 0 || c.Density > 1 {
		return errors.Wrapf(ErrInvalidDensity, "%g is not a valid density (must be within [0, 1])", c.Density)
	}
	if _, err := c.Locations(); err != nil {
		return err
	}
	return nil
}

// ValidateDimension checks a single window dimension.
func ValidateDimension(name string, v int) error {
	if v <= 0 || v%life.BlockSize != 0 {
		return errors.Wrapf(ErrInvalidSize, "%s %d is not a valid size (must be positive and divisible by %d)",
			name, v, life.BlockSize)
	}
	return nil
}

// Locations parses the configured initial cells.
func (c Config) Locations() ([]life.Location, error) {
	locs := make([]life.Location, 0, len(c.Cells))
	for _, s := range c.Cells {
		loc, err := ParseLocation(s)
		if err != nil {
			return nil, err
		}
		locs = append(locs, loc)
	}
	return locs, nil
}

// ParseLocation parses block coordinates written as "x,y".
func ParseLocation(s string) (life.Location, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return life.Location{}, errors.Wrapf(ErrInvalidCell, "%q: expected x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return life.Location{}, errors.Wrapf(ErrInvalidCell, "%q: bad x: %v", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return life.Location{}, errors.Wrapf(ErrInvalidCell, "%q: bad y: %v", s, err)
	}
	if x < 0 || y < 0 {
		return life.Location{}, errors.Wrapf(ErrInvalidCell, "%q: coordinates must not be negative", s)
	}
	return life.Location{X: x, Y: y}, nil
}
