// Package config holds match settings: board geometry, structure catalogue,
// pacing, audio, and key bindings. Defaults mirror the parameter package.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/townhold/core"
	"github.com/lixenwraith/townhold/parameter"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Duration is a time.Duration that decodes from strings like "100ms"
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns the value as time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Board is the grid geometry
type Board struct {
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`
	Margin int `toml:"margin" yaml:"margin"`
}

// Point is a config-side grid cell
type Point struct {
	X int `toml:"x" yaml:"x"`
	Y int `toml:"y" yaml:"y"`
}

// Core converts to core.Point
func (p Point) Core() core.Point {
	return core.Point{X: p.X, Y: p.Y}
}

// StructureSpec describes one buildable kind
type StructureSpec struct {
	Width        int       `toml:"width" yaml:"width"`
	Height       int       `toml:"height" yaml:"height"`
	Cost         core.Cost `toml:"cost" yaml:"cost"`
	HitPoints    int       `toml:"hit_points" yaml:"hit_points"`
	MaxInstances int       `toml:"max_instances" yaml:"max_instances"`
}

// Generator controls resource accumulation
type Generator struct {
	Capacity    int `toml:"capacity" yaml:"capacity"`
	PerTickGain int `toml:"per_tick_gain" yaml:"per_tick_gain"`
}

// Enemy controls enemy strength and speed
type Enemy struct {
	Damage       int `toml:"damage" yaml:"damage"`
	MovesPerStep int `toml:"moves_per_step" yaml:"moves_per_step"`
}

// Audio controls sound cues
type Audio struct {
	Enabled bool    `toml:"enabled" yaml:"enabled"`
	Volume  float64 `toml:"volume" yaml:"volume"`
}

// Render controls drawing
type Render struct {
	// ASCII swaps emoji icons for single-byte glyphs
	ASCII bool `toml:"ascii" yaml:"ascii"`
}

// Config is the full match configuration
type Config struct {
	Board       Board `toml:"board" yaml:"board"`
	TownHall    Point `toml:"town_hall" yaml:"town_hall"`
	PlayerStart Point `toml:"player_start" yaml:"player_start"`

	StartGold   int `toml:"start_gold" yaml:"start_gold"`
	StartElixir int `toml:"start_elixir" yaml:"start_elixir"`

	SpawnInterval  int      `toml:"spawn_interval" yaml:"spawn_interval"`
	FrameDelay     Duration `toml:"frame_delay" yaml:"frame_delay"`
	GameOverLinger Duration `toml:"game_over_linger" yaml:"game_over_linger"`

	// Seed drives spawn randomness, 0 picks one from the clock
	Seed uint64 `toml:"seed" yaml:"seed"`

	Wall            StructureSpec `toml:"wall" yaml:"wall"`
	GoldMine        StructureSpec `toml:"gold_mine" yaml:"gold_mine"`
	ElixirCollector StructureSpec `toml:"elixir_collector" yaml:"elixir_collector"`
	TownHallSpec    StructureSpec `toml:"town_hall_spec" yaml:"town_hall_spec"`

	Generator Generator `toml:"generator" yaml:"generator"`
	Enemy     Enemy     `toml:"enemy" yaml:"enemy"`
	Audio     Audio     `toml:"audio" yaml:"audio"`
	Render    Render    `toml:"render" yaml:"render"`

	// Keys overrides bindings, key name → action name
	Keys map[string]string `toml:"keys" yaml:"keys"`
}

// Default returns the stock configuration
func Default() *Config {
	return &Config{
		Board: Board{
			Width:  parameter.BoardWidth,
			Height: parameter.BoardHeight,
			Margin: parameter.BoardMargin,
		},
		TownHall:    Point{X: parameter.TownHallX, Y: parameter.TownHallY},
		PlayerStart: Point{X: parameter.PlayerStartX, Y: parameter.PlayerStartY},

		StartGold:   parameter.StartGold,
		StartElixir: parameter.StartElixir,

		SpawnInterval:  parameter.SpawnInterval,
		FrameDelay:     Duration(parameter.FrameDelay),
		GameOverLinger: Duration(parameter.GameOverLinger),

		Wall: StructureSpec{
			Width:        parameter.WallWidth,
			Height:       parameter.WallHeight,
			Cost:         core.Cost{Gold: parameter.WallCostGold, Elixir: parameter.WallCostElixir},
			HitPoints:    parameter.WallHitPoints,
			MaxInstances: parameter.WallMaxInstances,
		},
		GoldMine: StructureSpec{
			Width:        parameter.GoldMineWidth,
			Height:       parameter.GoldMineHeight,
			Cost:         core.Cost{Gold: parameter.GoldMineCostGold, Elixir: parameter.GoldMineCostElixir},
			HitPoints:    parameter.GoldMineHitPoints,
			MaxInstances: parameter.GoldMineMaxInstances,
		},
		ElixirCollector: StructureSpec{
			Width:        parameter.ElixirCollectorWidth,
			Height:       parameter.ElixirCollectorHeight,
			Cost:         core.Cost{Gold: parameter.ElixirCollectorCostGold, Elixir: parameter.ElixirCollectorCostElixir},
			HitPoints:    parameter.ElixirCollectorHitPoints,
			MaxInstances: parameter.ElixirCollectorMaxInstances,
		},
		TownHallSpec: StructureSpec{
			Width:        parameter.TownHallWidth,
			Height:       parameter.TownHallHeight,
			HitPoints:    parameter.TownHallHitPoints,
			MaxInstances: 1,
		},

		Generator: Generator{
			Capacity:    parameter.GeneratorCapacity,
			PerTickGain: parameter.GeneratorPerTickGain,
		},
		Enemy: Enemy{
			Damage:       parameter.EnemyDamage,
			MovesPerStep: parameter.EnemyMovesPerStep,
		},
		Audio: Audio{
			Enabled: false,
			Volume:  parameter.AudioVolume,
		},
		Keys: map[string]string{},
	}
}

// Spec returns the structure spec for a kind
func (c *Config) Spec(k core.Kind) StructureSpec {
	switch k {
	case core.KindWall:
		return c.Wall
	case core.KindGoldMine:
		return c.GoldMine
	case core.KindElixirCollector:
		return c.ElixirCollector
	default:
		return c.TownHallSpec
	}
}

// Validate checks internal consistency
func (c *Config) Validate() error {
	b := c.Board
	if b.Margin < 1 {
		return fmt.Errorf("%w: board margin %d must be positive", ErrInvalidConfig, b.Margin)
	}
	if b.Width < b.Margin+8 {
		return fmt.Errorf("%w: board width %d too small for margin %d", ErrInvalidConfig, b.Width, b.Margin)
	}
	if b.Height < 5 {
		return fmt.Errorf("%w: board height %d too small", ErrInvalidConfig, b.Height)
	}

	for _, k := range core.TargetOrder {
		s := c.Spec(k)
		if s.Width < 1 || s.Height < 1 {
			return fmt.Errorf("%w: %s size %dx%d", ErrInvalidConfig, k, s.Width, s.Height)
		}
		if s.HitPoints < 1 {
			return fmt.Errorf("%w: %s hit points %d", ErrInvalidConfig, k, s.HitPoints)
		}
		if s.MaxInstances < 1 {
			return fmt.Errorf("%w: %s max instances %d", ErrInvalidConfig, k, s.MaxInstances)
		}
		if s.Cost.Gold < 0 || s.Cost.Elixir < 0 {
			return fmt.Errorf("%w: %s cost %+v is negative", ErrInvalidConfig, k, s.Cost)
		}
	}

	th := c.TownHallSpec
	if c.TownHall.X <= b.Margin || c.TownHall.X+th.Width > b.Width-1 ||
		c.TownHall.Y < 1 || c.TownHall.Y+th.Height > b.Height-1 {
		return fmt.Errorf("%w: town hall at (%d,%d) outside playfield", ErrInvalidConfig, c.TownHall.X, c.TownHall.Y)
	}
	if c.PlayerStart.X <= b.Margin || c.PlayerStart.X >= b.Width-1 ||
		c.PlayerStart.Y < 1 || c.PlayerStart.Y > b.Height-2 {
		return fmt.Errorf("%w: player start (%d,%d) outside playfield", ErrInvalidConfig, c.PlayerStart.X, c.PlayerStart.Y)
	}

	if c.StartGold < 0 || c.StartElixir < 0 {
		return fmt.Errorf("%w: starting resources must not be negative", ErrInvalidConfig)
	}
	if c.SpawnInterval < 1 {
		return fmt.Errorf("%w: spawn interval %d", ErrInvalidConfig, c.SpawnInterval)
	}
	if c.FrameDelay < 0 || c.GameOverLinger < 0 {
		return fmt.Errorf("%w: negative delay", ErrInvalidConfig)
	}
	if c.Generator.Capacity < 1 || c.Generator.PerTickGain < 1 {
		return fmt.Errorf("%w: generator capacity %d gain %d", ErrInvalidConfig, c.Generator.Capacity, c.Generator.PerTickGain)
	}
	if c.Enemy.Damage < 1 || c.Enemy.MovesPerStep < 1 {
		return fmt.Errorf("%w: enemy damage %d moves per step %d", ErrInvalidConfig, c.Enemy.Damage, c.Enemy.MovesPerStep)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio volume %.2f outside [0,1]", ErrInvalidConfig, c.Audio.Volume)
	}
	return nil
}
