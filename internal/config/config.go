// Package config provides configuration management for dockpane with Viper integration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/bnema/dockpane/internal/logging"
)

// File permission constants
const (
	dirPerm = 0755 // Standard directory permissions (rwxr-xr-x)
)

// Config represents the complete configuration for dockpane.
type Config struct {
	Floating FloatingConfig `mapstructure:"floating" yaml:"floating"`
	Drop     DropConfig     `mapstructure:"drop" yaml:"drop"`
	Resize   ResizeConfig   `mapstructure:"resize" yaml:"resize"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
}

// FloatingConfig controls floating window defaults.
type FloatingConfig struct {
	// DefaultWidth/DefaultHeight apply the first time a node floats,
	// before it has any remembered size of its own.
	DefaultWidth  float64 `mapstructure:"default_width" yaml:"default_width"`
	DefaultHeight float64 `mapstructure:"default_height" yaml:"default_height"`
}

// DropConfig controls drop-target resolution during drags.
type DropConfig struct {
	// ZoneFraction is the width of each edge band as a fraction of the
	// target's size along that axis. Pointers closer than
	// ZoneFraction*size to an edge resolve to that edge, else center.
	ZoneFraction float64 `mapstructure:"zone_fraction" yaml:"zone_fraction"`
}

// ResizeConfig controls edge resizing of floating windows.
type ResizeConfig struct {
	// EdgeTolerance is the extra pixel slack added to the border
	// wrapper's padding when hit-testing resize edges.
	EdgeTolerance float64 `mapstructure:"edge_tolerance" yaml:"edge_tolerance"`
}

// LoggingConfig holds logging-related configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Manager loads the configuration and watches it for changes.
type Manager struct {
	mu        sync.Mutex
	viper     *viper.Viper
	config    *Config
	callbacks []func(*Config)
	watching  bool
}

// ErrNotLoaded is returned when Current is called before Load.
var ErrNotLoaded = errors.New("config not loaded")

// NewManager creates a config manager rooted at the given config file.
// An empty path resolves to the XDG default location.
func NewManager(path string) (*Manager, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if path == "" {
		dir, err := ConfigDir()
		if err != nil {
			return nil, err
		}
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return nil, fmt.Errorf("failed to create config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	v.SetConfigFile(path)

	applyDefaults(v)

	return &Manager{viper: v}, nil
}

// Load reads the config file, falling back to defaults when it is absent.
func (m *Manager) Load() (*Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.viper.ReadInConfig(); err != nil {
		var notFound *os.PathError
		if !errors.As(err, &notFound) && !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := m.viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	normalize(cfg)

	m.config = cfg
	return cfg, nil
}

// Current returns the most recently loaded config.
func (m *Manager) Current() (*Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.config == nil {
		return nil, ErrNotLoaded
	}
	return m.config, nil
}

// OnConfigChange registers a callback invoked after each successful reload.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, callback)
}

// Watch starts watching the config file for changes and reloads automatically.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil // Already watching
	}

	m.viper.WatchConfig()
	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log := logging.NewFromEnv()
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config change detected")

		m.mu.Lock()
		if err := m.reloadLocked(); err != nil {
			log.Warn().Err(err).Msg("failed to reload config")
			m.mu.Unlock()
			return
		}
		m.notifyCallbacksLocked()
	})

	m.watching = true
	return nil
}

// reloadLocked re-reads and re-unmarshals the config. Caller holds m.mu.
func (m *Manager) reloadLocked() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}
	cfg := &Config{}
	if err := m.viper.Unmarshal(cfg); err != nil {
		return err
	}
	normalize(cfg)
	m.config = cfg
	return nil
}

// notifyCallbacksLocked copies callbacks and config, releases the lock,
// then notifies. Caller holds m.mu; the lock is released on return.
func (m *Manager) notifyCallbacksLocked() {
	cfg := m.config
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, callback := range callbacks {
		callback(cfg)
	}
}

// ConfigDir returns the XDG config directory for dockpane
// ($XDG_CONFIG_HOME/dockpane, default ~/.config/dockpane).
func ConfigDir() (string, error) {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

const appName = "dockpane"
