package config

import "github.com/spf13/viper"

// Default values for the docking engine. The floating size matches the
// size a node receives the first time it is detached into its own window.
const (
	DefaultFloatingWidth  = 500.0
	DefaultFloatingHeight = 500.0
	DefaultZoneFraction   = 0.25
	DefaultEdgeTolerance  = 6.0
)

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Floating: FloatingConfig{
			DefaultWidth:  DefaultFloatingWidth,
			DefaultHeight: DefaultFloatingHeight,
		},
		Drop: DropConfig{
			ZoneFraction: DefaultZoneFraction,
		},
		Resize: ResizeConfig{
			EdgeTolerance: DefaultEdgeTolerance,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// applyDefaults seeds viper with the built-in defaults so partial config
// files only override what they mention.
func applyDefaults(v *viper.Viper) {
	v.SetDefault("floating.default_width", DefaultFloatingWidth)
	v.SetDefault("floating.default_height", DefaultFloatingHeight)
	v.SetDefault("drop.zone_fraction", DefaultZoneFraction)
	v.SetDefault("resize.edge_tolerance", DefaultEdgeTolerance)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// normalize clamps loaded values into usable ranges.
func normalize(cfg *Config) {
	if cfg.Floating.DefaultWidth <= 0 {
		cfg.Floating.DefaultWidth = DefaultFloatingWidth
	}
	if cfg.Floating.DefaultHeight <= 0 {
		cfg.Floating.DefaultHeight = DefaultFloatingHeight
	}
	if cfg.Drop.ZoneFraction <= 0 || cfg.Drop.ZoneFraction >= 0.5 {
		cfg.Drop.ZoneFraction = DefaultZoneFraction
	}
	if cfg.Resize.EdgeTolerance < 0 {
		cfg.Resize.EdgeTolerance = DefaultEdgeTolerance
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
}
