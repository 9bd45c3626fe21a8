package config

import (
	"fmt"
	"strconv"
	"time"
)

// Environment variable names
const (
	EnvSeed          = "TOWNHOLD_SEED"
	EnvSpawnInterval = "TOWNHOLD_SPAWN_INTERVAL"
	EnvFrameDelay    = "TOWNHOLD_FRAME_DELAY"
	EnvAudioEnabled  = "TOWNHOLD_AUDIO_ENABLED"
	EnvMasterVolume  = "TOWNHOLD_MASTER_VOLUME"
	EnvASCII         = "TOWNHOLD_ASCII"
)

// LookupFunc matches os.LookupEnv
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides cfg fields from environment variables
// Malformed values are errors rather than silently ignored
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}

	if v, ok := lookup(EnvSpawnInterval); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSpawnInterval, err)
		}
		cfg.SpawnInterval = n
	}

	if v, ok := lookup(EnvFrameDelay); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFrameDelay, err)
		}
		cfg.FrameDelay = Duration(d)
	}

	if v, ok := lookup(EnvAudioEnabled); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAudioEnabled, err)
		}
		cfg.Audio.Enabled = b
	}

	// Master volume is 0-100, stored as 0.0-1.0
	if v, ok := lookup(EnvMasterVolume); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMasterVolume, err)
		}
		vol := float64(n) / 100.0
		if vol < 0 {
			vol = 0
		}
		if vol > 1 {
			vol = 1
		}
		cfg.Audio.Volume = vol
	}

	if v, ok := lookup(EnvASCII); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvASCII, err)
		}
		cfg.Render.ASCII = b
	}

	return nil
}
