package game

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Gameplay policy. These are fixed and never read from configuration.
var LevelThresholds = [...]int{1500, 4000, 8000}

const (
	MaxLevel     = len(LevelThresholds)
	StartLives   = 3
	PlayerRadius = 20.0 // drop pickup reach
	PlayerHitBox = 15.0 // enemy contact reach

	TransitionDwell  = 3000 * time.Millisecond
	SpawnIntervalMin = 400 * time.Millisecond
	SpawnIntervalMax = 1000 * time.Millisecond
	SpawnIntervalCut = 200 * time.Millisecond

	// TickRate is the simulation rate that entity speeds are expressed against
	TickRate     = 60
	TickDuration = time.Second / TickRate
	// MaxCatchUpTicks bounds how many ticks a single late frame may run
	MaxCatchUpTicks = 6
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// PlayerMode selects where the avatar sits
type PlayerMode string

const (
	PlayerFixed   PlayerMode = "fixed"   // pinned to the playfield centre
	PlayerPointer PlayerMode = "pointer" // follows the pointer
)

// EnemyMovement selects how enemies travel for a whole run
type EnemyMovement string

const (
	MovementPursuit EnemyMovement = "pursuit" // re-aim at the player every tick
	MovementFixed   EnemyMovement = "fixed"   // keep the heading chosen at spawn
)

// AimMode selects how the firing direction is derived
type AimMode string

const (
	AimPointer AimMode = "pointer" // toward the pointer position
	AimAuto    AimMode = "auto"    // toward the nearest enemy
)

// Config holds game configuration
type Config struct {
	// ScreenWidth is the window width in pixels
	ScreenWidth int `yaml:"screen_width"`

	// ScreenHeight is the window height in pixels
	ScreenHeight int `yaml:"screen_height"`

	// Seed for the PRNG; 0 seeds from the clock
	Seed int64 `yaml:"seed"`

	PlayerMode    PlayerMode    `yaml:"player_mode"`
	EnemyMovement EnemyMovement `yaml:"enemy_movement"`
	AimMode       AimMode       `yaml:"aim_mode"`

	// AutoFire shoots whenever the weapon is off cooldown
	AutoFire bool `yaml:"auto_fire"`

	// RequireStartGesture waits for a click before the first level begins
	RequireStartGesture bool `yaml:"require_start_gesture"`

	// Volume in [0,1]
	Volume float64 `yaml:"volume"`
	Mute   bool    `yaml:"mute"`

	// LogLevel is a zerolog level name
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`

	// Profile enables CPU/trace capture on frame-rate drops
	Profile bool `yaml:"profile"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:         1024,
		ScreenHeight:        768,
		PlayerMode:          PlayerFixed,
		EnemyMovement:       MovementPursuit,
		AimMode:             AimPointer,
		RequireStartGesture: true,
		Volume:              0.5,
		LogLevel:            "info",
	}
}

// Bounds returns the playfield for the configured screen size
func (c Config) Bounds() Rect {
	return Rect{W: float64(c.ScreenWidth), H: float64(c.ScreenHeight)}
}

// Validate checks every field for a usable value
func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight)
	}
	switch c.PlayerMode {
	case PlayerFixed, PlayerPointer:
	default:
		return fmt.Errorf("%w: player_mode %q", ErrInvalidConfig, c.PlayerMode)
	}
	switch c.EnemyMovement {
	case MovementPursuit, MovementFixed:
	default:
		return fmt.Errorf("%w: enemy_movement %q", ErrInvalidConfig, c.EnemyMovement)
	}
	switch c.AimMode {
	case AimPointer, AimAuto:
	default:
		return fmt.Errorf("%w: aim_mode %q", ErrInvalidConfig, c.AimMode)
	}
	if c.PlayerMode == PlayerPointer && c.AimMode == AimPointer {
		return fmt.Errorf("%w: player_mode pointer needs aim_mode auto", ErrInvalidConfig)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("%w: volume %v outside [0,1]", ErrInvalidConfig, c.Volume)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err)
	}
	return nil
}

// LoadConfig reads a YAML file over DefaultConfig, applies NEONSHOOTER_*
// environment overrides and validates the result. An empty path skips the file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup("NEONSHOOTER_" + key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get("SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: NEONSHOOTER_SEED: %v", ErrInvalidConfig, err)
		}
		c.Seed = seed
	}
	if v, ok := get("PLAYER_MODE"); ok {
		c.PlayerMode = PlayerMode(v)
	}
	if v, ok := get("ENEMY_MOVEMENT"); ok {
		c.EnemyMovement = EnemyMovement(v)
	}
	if v, ok := get("AIM_MODE"); ok {
		c.AimMode = AimMode(v)
	}
	if v, ok := get("AUTO_FIRE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: NEONSHOOTER_AUTO_FIRE: %v", ErrInvalidConfig, err)
		}
		c.AutoFire = b
	}
	if v, ok := get("MUTE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: NEONSHOOTER_MUTE: %v", ErrInvalidConfig, err)
		}
		c.Mute = b
	}
	if v, ok := get("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	return nil
}

// SpawnInterval returns the delay between enemy spawns on a level
func SpawnInterval(level int) time.Duration {
	return max(SpawnIntervalMin, SpawnIntervalMax-SpawnIntervalCut*time.Duration(level))
}
