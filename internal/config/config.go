package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Map sources.
const (
	MapSourceFile = "file"
	MapSourceDB   = "db"
)

// Arena holds all configuration for the arena server.
type Arena struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Simulation
	TickRate int      `yaml:"tick_rate"` // ticks per second
	Origin   [3]int32 `yaml:"origin"`    // added to every template region

	// Map template
	MapSource string `yaml:"map_source"` // "file" or "db"
	MapPath   string `yaml:"map_path"`
	MapName   string `yaml:"map_name"`
	WatchMaps bool   `yaml:"watch_maps"`

	Teams   []TeamConfig   `yaml:"teams"`
	Weapons []WeaponConfig `yaml:"weapons"`

	// CriticalChance is the probability a projectile spawns critical.
	CriticalChance float64 `yaml:"critical_chance"`
	// Seed for the weapon RNG; 0 picks a random seed.
	Seed uint64 `yaml:"seed"`

	Feed     FeedConfig     `yaml:"feed"`
	Database DatabaseConfig `yaml:"database"`

	MetricsEnabled bool `yaml:"metrics_enabled"`
}

// TeamConfig declares one team.
type TeamConfig struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

// WeaponConfig binds an inventory item to a weapon kind.
type WeaponConfig struct {
	Item     string `yaml:"item"`
	Kind     string `yaml:"kind"`
	Cooldown int    `yaml:"cooldown"` // ticks
}

// FeedConfig controls the websocket spectator feed.
type FeedConfig struct {
	Enabled      bool          `yaml:"enabled"`
	BindAddress  string        `yaml:"bind_address"`
	Port         int           `yaml:"port"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	SendQueue    int           `yaml:"send_queue"` // per-client buffered events
}

// Addr returns host:port for the feed listener.
func (f FeedConfig) Addr() string {
	return fmt.Sprintf("%s:%d", f.BindAddress, f.Port)
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// TickInterval returns the duration of one simulation tick.
func (a Arena) TickInterval() time.Duration {
	if a.TickRate <= 0 {
		return 50 * time.Millisecond
	}
	return time.Second / time.Duration(a.TickRate)
}

// Validate checks values the loader cannot default.
func (a Arena) Validate() error {
	var errs []error
	if a.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", a.TickRate))
	}
	switch a.MapSource {
	case MapSourceFile:
		if a.MapPath == "" {
			errs = append(errs, errors.New("map_path is required for map_source file"))
		}
	case MapSourceDB:
		if a.MapName == "" {
			errs = append(errs, errors.New("map_name is required for map_source db"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown map_source %q", a.MapSource))
	}
	if a.CriticalChance < 0 || a.CriticalChance > 1 {
		errs = append(errs, fmt.Errorf("critical_chance must be within [0, 1], got %v", a.CriticalChance))
	}
	seen := make(map[string]bool, len(a.Weapons))
	for _, w := range a.Weapons {
		if w.Item == "" {
			errs = append(errs, errors.New("weapon without item"))
			continue
		}
		if seen[w.Item] {
			errs = append(errs, fmt.Errorf("weapon item %q bound twice", w.Item))
		}
		seen[w.Item] = true
		if w.Cooldown < 0 {
			errs = append(errs, fmt.Errorf("weapon %q: negative cooldown", w.Item))
		}
	}
	return errors.Join(errs...)
}

// DefaultArena returns Arena config with sensible defaults.
func DefaultArena() Arena {
	return Arena{
		LogLevel:  "info",
		TickRate:  20,
		Origin:    [3]int32{0, 32, 0},
		MapSource: MapSourceFile,
		MapPath:   "maps/quake_arena.yaml",
		Teams: []TeamConfig{
			{Name: "red", Color: "#ff5555"},
			{Name: "blue", Color: "#5555ff"},
		},
		Weapons: []WeaponConfig{
			{Item: "blaze_rod", Kind: "rocket_launcher", Cooldown: 20},
		},
		CriticalChance: 0.1,
		Feed: FeedConfig{
			Enabled:      false,
			BindAddress:  "127.0.0.1",
			Port:         8787,
			WriteTimeout: 5 * time.Second,
			SendQueue:    64,
		},
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "arenago",
			Password: "arenago",
			DBName:   "arenago",
			SSLMode:  "disable",
		},
	}
}

// LoadArena loads arena config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadArena(path string) (Arena, error) {
	cfg := DefaultArena()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}
