package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"weighbridge/internal/eventbus"
)

// CurrentVersion is written into new configuration files
const CurrentVersion = 1

// Config represents the application configuration
type Config struct {
	Version int            `toml:"version"`
	DataDir string         `toml:"data_dir"`
	Search  SearchSettings `toml:"search"`
	Scale   ScaleSettings  `toml:"scale"`
	Recent  RecentSettings `toml:"recent"`
	UI      UISettings     `toml:"ui"`
	Keys    KeySettings    `toml:"keys"`
}

// SearchSettings tunes fuzzy search and the simulated truck API
type SearchSettings struct {
	DebounceMS     int     `toml:"debounce_ms"`
	Threshold      float64 `toml:"threshold"`
	SearchMinMS    int     `toml:"search_latency_min_ms"`
	SearchMaxMS    int     `toml:"search_latency_max_ms"`
	DetailMinMS    int     `toml:"detail_latency_min_ms"`
	DetailMaxMS    int     `toml:"detail_latency_max_ms"`
	CacheTTLSecond int     `toml:"cache_ttl_seconds"`
}

// ScaleSettings tunes the simulated scale
type ScaleSettings struct {
	PollMinMS      int     `toml:"poll_min_ms"`
	PollMaxMS      int     `toml:"poll_max_ms"`
	ReadingChance  float64 `toml:"reading_chance"`
	StabilizeMinMS int     `toml:"stabilize_min_ms"`
	StabilizeMaxMS int     `toml:"stabilize_max_ms"`
	InitialGross   int64   `toml:"initial_gross_lbs"`
	InitialTare    int64   `toml:"initial_tare_lbs"`
}

// RecentSettings configures the recent activity ring
type RecentSettings struct {
	Limit  int    `toml:"limit"`
	DBPath string `toml:"db_path"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ToastSeconds int    `toml:"toast_seconds"`
	TicketDir    string `toml:"ticket_dir"`
}

// KeySettings maps logical actions to key names
type KeySettings struct {
	JumpTruck    []string `toml:"jump_truck"`
	JumpCustomer []string `toml:"jump_customer"`
	JumpOrder    []string `toml:"jump_order"`
	JumpProduct  []string `toml:"jump_product"`
	Print        []string `toml:"print"`
	Help         []string `toml:"help"`
	FocusRecent  []string `toml:"focus_recent"`
	ClearRecent  []string `toml:"clear_recent"`
	Quit         []string `toml:"quit"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultDir returns the per-user directory for configuration and data
func DefaultDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "weighbridge")
}

// NewConfigService creates a config service for path. An empty path uses
// config.toml in DefaultDir.
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = filepath.Join(DefaultDir(), "config.toml")
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string { return cs.filePath }

// Load loads the configuration from file, returning defaults when the file
// does not exist yet
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		cfg := DefaultConfig()
		cs.publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}
	cs.publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	cs.publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	return nil
}

// LoadFromPath loads configuration from a specific path. Missing settings
// take their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults(DefaultConfig())
	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (cs *configService) publish(e eventbus.DomainEvent) {
	if cs.bus != nil {
		cs.bus.Publish(e)
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		DataDir: DefaultDir(),
		Search: SearchSettings{
			DebounceMS:     150,
			Threshold:      0.3,
			SearchMinMS:    50,
			SearchMaxMS:    100,
			DetailMinMS:    100,
			DetailMaxMS:    200,
			CacheTTLSecond: 300,
		},
		Scale: ScaleSettings{
			PollMinMS:      3000,
			PollMaxMS:      5000,
			ReadingChance:  0.2,
			StabilizeMinMS: 2000,
			StabilizeMaxMS: 3000,
			InitialGross:   78000,
			InitialTare:    32000,
		},
		Recent: RecentSettings{
			Limit: 20,
		},
		UI: UISettings{
			ToastSeconds: 5,
		},
		Keys: KeySettings{
			JumpTruck:    []string{"ctrl+k"},
			JumpCustomer: []string{"ctrl+j"},
			JumpOrder:    []string{"ctrl+o"},
			JumpProduct:  []string{"ctrl+p"},
			Print:        []string{"alt+enter", "ctrl+s"},
			Help:         []string{"f1"},
			FocusRecent:  []string{"ctrl+u"},
			ClearRecent:  []string{"ctrl+x"},
			Quit:         []string{"ctrl+c"},
		},
	}
}

// applyDefaults fills zero values from d
func (c *Config) applyDefaults(d *Config) {
	if c.Version == 0 {
		c.Version = d.Version
	}
	if c.DataDir == "" {
		c.DataDir = d.DataDir
	}

	setInt(&c.Search.DebounceMS, d.Search.DebounceMS)
	setFloat(&c.Search.Threshold, d.Search.Threshold)
	setInt(&c.Search.SearchMinMS, d.Search.SearchMinMS)
	setInt(&c.Search.SearchMaxMS, d.Search.SearchMaxMS)
	setInt(&c.Search.DetailMinMS, d.Search.DetailMinMS)
	setInt(&c.Search.DetailMaxMS, d.Search.DetailMaxMS)
	setInt(&c.Search.CacheTTLSecond, d.Search.CacheTTLSecond)

	setInt(&c.Scale.PollMinMS, d.Scale.PollMinMS)
	setInt(&c.Scale.PollMaxMS, d.Scale.PollMaxMS)
	setFloat(&c.Scale.ReadingChance, d.Scale.ReadingChance)
	setInt(&c.Scale.StabilizeMinMS, d.Scale.StabilizeMinMS)
	setInt(&c.Scale.StabilizeMaxMS, d.Scale.StabilizeMaxMS)
	if c.Scale.InitialGross == 0 {
		c.Scale.InitialGross = d.Scale.InitialGross
	}
	if c.Scale.InitialTare == 0 {
		c.Scale.InitialTare = d.Scale.InitialTare
	}

	setInt(&c.Recent.Limit, d.Recent.Limit)
	setInt(&c.UI.ToastSeconds, d.UI.ToastSeconds)

	setKeys(&c.Keys.JumpTruck, d.Keys.JumpTruck)
	setKeys(&c.Keys.JumpCustomer, d.Keys.JumpCustomer)
	setKeys(&c.Keys.JumpOrder, d.Keys.JumpOrder)
	setKeys(&c.Keys.JumpProduct, d.Keys.JumpProduct)
	setKeys(&c.Keys.Print, d.Keys.Print)
	setKeys(&c.Keys.Help, d.Keys.Help)
	setKeys(&c.Keys.FocusRecent, d.Keys.FocusRecent)
	setKeys(&c.Keys.ClearRecent, d.Keys.ClearRecent)
	setKeys(&c.Keys.Quit, d.Keys.Quit)
}

func setInt(v *int, d int) {
	if *v <= 0 {
		*v = d
	}
}

func setFloat(v *float64, d float64) {
	if *v <= 0 {
		*v = d
	}
}

func setKeys(v *[]string, d []string) {
	if len(*v) == 0 {
		*v = append([]string(nil), d...)
	}
}

// RecentDBPath returns the sqlite file of the recent activity ring
func (c *Config) RecentDBPath() string {
	if c.Recent.DBPath != "" {
		return c.Recent.DBPath
	}
	return filepath.Join(c.DataDir, "recent.db")
}

// TicketDir returns the directory printed tickets are written to
func (c *Config) TicketDir() string {
	if c.UI.TicketDir != "" {
		return c.UI.TicketDir
	}
	return filepath.Join(c.DataDir, "tickets")
}

// Debounce returns the search debounce delay
func (c *Config) Debounce() time.Duration {
	return ms(c.Search.DebounceMS)
}

// CacheTTL returns the freshness window of cached search results
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Search.CacheTTLSecond) * time.Second
}

// ToastDuration returns how long notifications stay visible
func (c *Config) ToastDuration() time.Duration {
	return time.Duration(c.UI.ToastSeconds) * time.Second
}

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

// SearchLatency returns the simulated truck search window
func (c *Config) SearchLatency() (time.Duration, time.Duration) {
	return ms(c.Search.SearchMinMS), ms(c.Search.SearchMaxMS)
}

// DetailLatency returns the simulated truck detail window
func (c *Config) DetailLatency() (time.Duration, time.Duration) {
	return ms(c.Search.DetailMinMS), ms(c.Search.DetailMaxMS)
}

// PollWindow returns the interval between spontaneous scale readings
func (c *Config) PollWindow() (time.Duration, time.Duration) {
	return ms(c.Scale.PollMinMS), ms(c.Scale.PollMaxMS)
}

// StabilizeWindow returns how long a reading takes to settle
func (c *Config) StabilizeWindow() (time.Duration, time.Duration) {
	return ms(c.Scale.StabilizeMinMS), ms(c.Scale.StabilizeMaxMS)
}
