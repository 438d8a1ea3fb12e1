package game

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Config.Validate for unusable constants.
var ErrInvalidConfig = errors.New("game: invalid config")

// Config holds the fixed constants of the game. It is built once at startup
// and passed by value to the Game and the loop driving it.
type Config struct {
	BaseWidth       int // Logical canvas width
	BaseHeight      int // Logical canvas height
	MaxNumber       int // Maximum live targets
	Goal            int // Score that ends the game
	MaxSelectNumber int // Target values are drawn from [1, MaxSelectNumber)
	MaxColor        int // Color indices are drawn from [0, MaxColor)
	IncreaseStep    int // Horizontal movement per tick
	FrameDivisor    int // Host frames per simulation tick

	// Spawn geometry. Positions are drawn from [SpawnMin, Base-SpawnMargin),
	// sizes from [MinSize, MaxSize).
	SpawnMin    int
	SpawnMargin int
	MinSize     int
	MaxSize     int
}

// DefaultConfig returns the game's constants.
func DefaultConfig() Config {
	return Config{
		BaseWidth:       500,
		BaseHeight:      600,
		MaxNumber:       10,
		Goal:            99,
		MaxSelectNumber: 10,
		MaxColor:        4,
		IncreaseStep:    8,
		FrameDivisor:    5,
		SpawnMin:        1,
		SpawnMargin:     100,
		MinSize:         50,
		MaxSize:         400,
	}
}

// Validate checks that every random range is non-empty and every size positive.
func (c Config) Validate() error {
	switch {
	case c.BaseWidth <= 0 || c.BaseHeight <= 0:
		return fmt.Errorf("%w: canvas size %dx%d", ErrInvalidConfig, c.BaseWidth, c.BaseHeight)
	case c.MaxNumber <= 0:
		return fmt.Errorf("%w: max number %d", ErrInvalidConfig, c.MaxNumber)
	case c.Goal <= 0:
		return fmt.Errorf("%w: goal %d", ErrInvalidConfig, c.Goal)
	case c.MaxSelectNumber <= 1:
		return fmt.Errorf("%w: max select number %d", ErrInvalidConfig, c.MaxSelectNumber)
	case c.MaxColor <= 0:
		return fmt.Errorf("%w: max color %d", ErrInvalidConfig, c.MaxColor)
	case c.FrameDivisor <= 0:
		return fmt.Errorf("%w: frame divisor %d", ErrInvalidConfig, c.FrameDivisor)
	case c.BaseWidth-c.SpawnMargin <= c.SpawnMin || c.BaseHeight-c.SpawnMargin <= c.SpawnMin:
		return fmt.Errorf("%w: empty spawn position range", ErrInvalidConfig)
	case c.MinSize <= 0 || c.MaxSize <= c.MinSize:
		return fmt.Errorf("%w: size range [%d, %d)", ErrInvalidConfig, c.MinSize, c.MaxSize)
	}
	return nil
}
