// Package config holds jokolay's user-tunable runtime knobs, mirroring
// the teacher's typedef.RuntimeOptions / normalizeRuntimeOptions pattern:
// a flat options struct, a Normalize step that clamps bad values back to
// defaults instead of rejecting them, and JSON load/save through the
// storage package.
package config

import (
	"encoding/json"
	"log"
	"time"

	"jokolay/storage"
)

const optionsFileName = "options.json"

var logger = log.New(log.Writer(), "[config] ", log.LstdFlags)

// Default tunables, used both as EngineOptions zero-value fallbacks and
// as the out-of-range clamp target in Normalize.
const (
	DefaultLinkName       = "MumbleLink"
	DefaultPollRate       = 60.0 // Hz
	DefaultMinSize        = 5.0
	DefaultMaxSize        = 2048.0
	DefaultInchesPerMeter = 39.37
	MinPollRate           = 1.0
	MaxPollRate           = 144.0
)

// EngineOptions holds every user-facing knob the engine reads at
// startup and the debug HUD can report back (spec section 5, AMBIENT
// Configuration).
type EngineOptions struct {
	LinkName string `json:"link_name"`
	PackDir  string `json:"pack_dir"`

	PollRateHz float64 `json:"poll_rate_hz"`

	DefaultMinSize float32 `json:"default_min_size"`
	DefaultMaxSize float32 `json:"default_max_size"`

	InchesPerMeter float32 `json:"inches_per_meter"`

	DebugServerEnabled bool `json:"debug_server_enabled"`
	DebugServerAddr    string `json:"debug_server_addr"`
}

// Default returns the engine's out-of-the-box options.
func Default() EngineOptions {
	return EngineOptions{
		LinkName:           DefaultLinkName,
		PackDir:            storage.DefaultPackDir(),
		PollRateHz:         DefaultPollRate,
		DefaultMinSize:     DefaultMinSize,
		DefaultMaxSize:     DefaultMaxSize,
		InchesPerMeter:     DefaultInchesPerMeter,
		DebugServerEnabled: false,
		DebugServerAddr:    "localhost:7272",
	}
}

// Normalize clamps out-of-range fields back to sane defaults in place,
// the same role normalizeRuntimeOptions plays for ComputationSource/
// PathfindingAlgorithm in the teacher: bad persisted or user-edited JSON
// degrades to a working configuration instead of propagating NaNs or
// zero-division into the render loop.
func (o *EngineOptions) Normalize() {
	if o.LinkName == "" {
		o.LinkName = DefaultLinkName
	}
	if o.PackDir == "" {
		o.PackDir = storage.DefaultPackDir()
	}
	if o.PollRateHz < MinPollRate || o.PollRateHz > MaxPollRate {
		o.PollRateHz = DefaultPollRate
	}
	if o.DefaultMinSize <= 0 {
		o.DefaultMinSize = DefaultMinSize
	}
	if o.DefaultMaxSize <= 0 || o.DefaultMaxSize < o.DefaultMinSize {
		o.DefaultMaxSize = DefaultMaxSize
	}
	if o.InchesPerMeter <= 0 {
		o.InchesPerMeter = DefaultInchesPerMeter
	}
	if o.DebugServerAddr == "" {
		o.DebugServerAddr = "localhost:7272"
	}
}

// PollInterval converts PollRateHz to a time.Duration for the bridge's
// poll loop ticker.
func (o EngineOptions) PollInterval() time.Duration {
	return time.Duration(float64(time.Second) / o.PollRateHz)
}

// Load reads options.json from the data directory, falling back to
// Default (normalized) if the file does not exist or fails to parse —
// a corrupt options file should never prevent the engine from starting.
func Load() EngineOptions {
	opts := Default()
	data, err := storage.ReadDataFile(optionsFileName)
	if err != nil {
		return opts
	}
	if err := json.Unmarshal(data, &opts); err != nil {
		logger.Printf("options.json is corrupt, falling back to defaults: %v", err)
		return Default()
	}
	opts.Normalize()
	return opts
}

// Save persists opts to the data directory after normalizing it.
func (o EngineOptions) Save() error {
	o.Normalize()
	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	return storage.WriteDataFile(optionsFileName, data, 0o644)
}
