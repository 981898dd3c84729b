// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// AppConfig holds all application configuration.
// It is instantiated by NewConfig() and passed to components that need it (dependency injection).
type AppConfig struct {
	Log        LogConfig        `mapstructure:"log" yaml:"log"`
	Navigation NavigationConfig `mapstructure:"navigation" yaml:"navigation"`
	Gesture    GestureConfig    `mapstructure:"gesture" yaml:"gesture"`
	Transition TransitionConfig `mapstructure:"transition" yaml:"transition"`
	Storage    StorageConfig    `mapstructure:"storage" yaml:"storage"`
	Bridge     BridgeConfig     `mapstructure:"bridge" yaml:"bridge"`
	// Councils are offered on the council selection screen
	Councils []string `mapstructure:"councils" yaml:"councils"`
}

// LogConfig holds comprehensive logging configuration
type LogConfig struct {
	Level    string            `mapstructure:"level" yaml:"level"`
	Format   string            `mapstructure:"format" yaml:"format"`
	Output   []LogOutputConfig `mapstructure:"output" yaml:"output"`
	Levels   map[string]string `mapstructure:"levels" yaml:"levels"`
	Context  LogContextConfig  `mapstructure:"context" yaml:"context"`
	Sampling LogSamplingConfig `mapstructure:"sampling" yaml:"sampling"`
}

// LogOutputConfig defines where logs are written
type LogOutputConfig struct {
	Type    string          `mapstructure:"type" yaml:"type"` // "file", "console"
	Enabled bool            `mapstructure:"enabled" yaml:"enabled"`
	Path    string          `mapstructure:"path" yaml:"path,omitempty"`
	Rotate  LogRotateConfig `mapstructure:"rotate" yaml:"rotate,omitempty"`
}

// LogRotateConfig defines log rotation settings
type LogRotateConfig struct {
	MaxSizeMB  int  `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int  `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAgeDays int  `mapstructure:"max_age_days" yaml:"max_age_days"`
	Compress   bool `mapstructure:"compress" yaml:"compress"`
}

// LogContextConfig defines what context to include in logs
type LogContextConfig struct {
	IncludeCaller     bool   `mapstructure:"include_caller" yaml:"include_caller"`
	IncludeTimestamp  bool   `mapstructure:"include_timestamp" yaml:"include_timestamp"`
	IncludeStackTrace string `mapstructure:"include_stack_trace" yaml:"include_stack_trace"`
}

// LogSamplingConfig defines log sampling settings
type LogSamplingConfig struct {
	Enabled    bool          `mapstructure:"enabled" yaml:"enabled"`
	Initial    uint32        `mapstructure:"initial" yaml:"initial"`
	Thereafter uint32        `mapstructure:"thereafter" yaml:"thereafter"`
	Tick       time.Duration `mapstructure:"tick" yaml:"tick"`
}

// NavigationConfig holds screen stack settings.
type NavigationConfig struct {
	// BackDebounce is the window in which a second pop request is ignored.
	// It must be positive; one frame (16ms) is the usual value.
	BackDebounce time.Duration `mapstructure:"back_debounce" yaml:"back_debounce"`
	// SignedInScreen is the root screen when an auth token is stored.
	SignedInScreen string `mapstructure:"signed_in_screen" yaml:"signed_in_screen"`
	// SignedOutScreen is the root screen when no auth token is stored.
	SignedOutScreen string `mapstructure:"signed_out_screen" yaml:"signed_out_screen"`
}

// GestureConfig holds the edge-swipe recognizer thresholds, in logical pixels.
type GestureConfig struct {
	EdgeWidth        float64       `mapstructure:"edge_width" yaml:"edge_width"`
	ActivationSlop   float64       `mapstructure:"activation_slop" yaml:"activation_slop"`
	DirectionRatio   float64       `mapstructure:"direction_ratio" yaml:"direction_ratio"`
	CommitDistance   float64       `mapstructure:"commit_distance" yaml:"commit_distance"`
	FlickDistance    float64       `mapstructure:"flick_distance" yaml:"flick_distance"`
	FlickVelocity    float64       `mapstructure:"flick_velocity" yaml:"flick_velocity"` // px/ms
	CommitDuration   time.Duration `mapstructure:"commit_duration" yaml:"commit_duration"`
	VelocityWindow   time.Duration `mapstructure:"velocity_window" yaml:"velocity_window"`
	CellWidthPx      float64       `mapstructure:"cell_width_px" yaml:"cell_width_px"`
	CellHeightPx     float64       `mapstructure:"cell_height_px" yaml:"cell_height_px"`
	SpringFrequency  float64       `mapstructure:"spring_frequency" yaml:"spring_frequency"`
	SpringDamping    float64       `mapstructure:"spring_damping" yaml:"spring_damping"`
	MouseSwipeEnable bool          `mapstructure:"mouse_swipe" yaml:"mouse_swipe"`
}

// TransitionConfig holds enter animation settings.
type TransitionConfig struct {
	DefaultType     string        `mapstructure:"default_type" yaml:"default_type"` // fade, slide, scale
	FPS             int           `mapstructure:"fps" yaml:"fps"`
	FadeDuration    time.Duration `mapstructure:"fade_duration" yaml:"fade_duration"`
	ShortDuration   time.Duration `mapstructure:"short_duration" yaml:"short_duration"`
	SlideOffset     float64       `mapstructure:"slide_offset" yaml:"slide_offset"`
	ScaleFrom       float64       `mapstructure:"scale_from" yaml:"scale_from"`
	SpringFrequency float64       `mapstructure:"spring_frequency" yaml:"spring_frequency"`
	SpringDamping   float64       `mapstructure:"spring_damping" yaml:"spring_damping"`
}

// StorageConfig holds local preference store settings.
type StorageConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// BridgeConfig holds touch bridge server configuration.
type BridgeConfig struct {
	Enabled        bool     `mapstructure:"enabled" yaml:"enabled"`
	Host           string   `mapstructure:"host" yaml:"host"`
	Port           int      `mapstructure:"port" yaml:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins" yaml:"allowed_origins"` // Empty = allow all (development)
}

// NewConfig creates a new AppConfig by reading from a file, environment variables,
// and applying defaults.
func NewConfig(configPath string) (*AppConfig, error) {
	cfg := Default()

	v := viper.New()

	// Set config file if provided, otherwise search in standard locations
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.localfix")
	}

	v.SetEnvPrefix("LOCALFIX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read the config file. It's okay if it doesn't exist.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !(configPath != "" && errors.Is(err, os.ErrNotExist)) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.expandPaths()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Default returns an AppConfig with default values.
// This is more type-safe than using viper.SetDefault().
func Default() AppConfig {
	return AppConfig{
		Log: LogConfig{
			Level:  "INFO",
			Format: "console",
			Output: []LogOutputConfig{
				{
					Type:    "file",
					Enabled: true,
					Path:    "~/.localfix/logs/localfix.log",
					Rotate: LogRotateConfig{
						MaxSizeMB:  20,
						MaxBackups: 5,
						MaxAgeDays: 14,
						Compress:   true,
					},
				},
				{
					Type:    "console",
					Enabled: false, // Disabled by default for TUI
				},
			},
			Levels: map[string]string{
				"nav":        "INFO",
				"gesture":    "WARN",
				"transition": "WARN",
				"tui":        "WARN",
				"storage":    "INFO",
				"bridge":     "INFO",
			},
			Context: LogContextConfig{
				IncludeCaller:     false,
				IncludeTimestamp:  true,
				IncludeStackTrace: "ERROR",
			},
			Sampling: LogSamplingConfig{
				Enabled:    false,
				Initial:    100,
				Thereafter: 100,
				Tick:       time.Second,
			},
		},
		Navigation: NavigationConfig{
			BackDebounce:    16 * time.Millisecond,
			SignedInScreen:  "home",
			SignedOutScreen: "onboarding",
		},
		Gesture: GestureConfig{
			EdgeWidth:        50,
			ActivationSlop:   8,
			DirectionRatio:   1.5,
			CommitDistance:   120,
			FlickDistance:    60,
			FlickVelocity:    0.5,
			CommitDuration:   200 * time.Millisecond,
			VelocityWindow:   100 * time.Millisecond,
			CellWidthPx:      8,
			CellHeightPx:     16,
			SpringFrequency:  8.0,
			SpringDamping:    0.8,
			MouseSwipeEnable: true,
		},
		Transition: TransitionConfig{
			DefaultType:     "slide",
			FPS:             60,
			FadeDuration:    400 * time.Millisecond,
			ShortDuration:   300 * time.Millisecond,
			SlideOffset:     50,
			ScaleFrom:       0.95,
			SpringFrequency: 9.0,
			SpringDamping:   0.7,
		},
		Storage: StorageConfig{
			Path: "~/.localfix/localfix.db",
		},
		Bridge: BridgeConfig{
			Enabled: false,
			Host:    "127.0.0.1",
			Port:    8787,
		},
		Councils: []string{
			"City of York Council",
			"Leeds City Council",
			"Bristol City Council",
			"Brighton & Hove City Council",
			"Manchester City Council",
		},
	}
}

// expandPaths expands ~ and environment variables in path configuration values
func (c *AppConfig) expandPaths() {
	c.Storage.Path = expandPath(c.Storage.Path)
	for i := range c.Log.Output {
		c.Log.Output[i].Path = expandPath(c.Log.Output[i].Path)
	}
}

// expandPath expands ~ to home directory and environment variables
func expandPath(path string) string {
	if path == "" || path == ":memory:" {
		return path
	}

	if strings.HasPrefix(path, "~") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(homeDir, path[1:])
		}
	}

	return os.ExpandEnv(path)
}

var validTransitionTypes = map[string]bool{"fade": true, "slide": true, "scale": true}

// Validate checks if the configuration is valid.
func (c *AppConfig) Validate() error {
	validLogLevels := map[string]bool{
		"TRACE": true, "DEBUG": true, "INFO": true, "WARN": true, "ERROR": true, "FATAL": true, "PANIC": true,
	}
	if !validLogLevels[strings.ToUpper(c.Log.Level)] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	if c.Navigation.BackDebounce <= 0 {
		return fmt.Errorf("navigation.back_debounce must be positive, got: %s", c.Navigation.BackDebounce)
	}
	if c.Navigation.SignedInScreen == "" || c.Navigation.SignedOutScreen == "" {
		return errors.New("navigation.signed_in_screen and navigation.signed_out_screen are required")
	}

	g := c.Gesture
	if g.EdgeWidth <= 0 || g.CommitDistance <= 0 || g.FlickDistance <= 0 || g.FlickVelocity <= 0 {
		return errors.New("gesture thresholds must be positive")
	}
	if g.FlickDistance > g.CommitDistance {
		return fmt.Errorf("gesture.flick_distance (%v) must not exceed gesture.commit_distance (%v)", g.FlickDistance, g.CommitDistance)
	}
	if g.DirectionRatio < 1 {
		return fmt.Errorf("gesture.direction_ratio must be >= 1, got: %v", g.DirectionRatio)
	}
	if g.CellWidthPx <= 0 || g.CellHeightPx <= 0 {
		return errors.New("gesture cell sizes must be positive")
	}
	if g.CommitDuration <= 0 {
		return errors.New("gesture.commit_duration must be positive")
	}

	t := c.Transition
	if !validTransitionTypes[t.DefaultType] {
		return fmt.Errorf("transition.default_type must be fade, slide or scale, got: %s", t.DefaultType)
	}
	if t.FPS <= 0 || t.FPS > 240 {
		return fmt.Errorf("invalid transition.fps: %d", t.FPS)
	}
	if t.FadeDuration <= 0 || t.ShortDuration <= 0 {
		return errors.New("transition durations must be positive")
	}

	if c.Storage.Path == "" {
		return errors.New("storage.path is required")
	}

	if c.Bridge.Enabled && (c.Bridge.Port <= 0 || c.Bridge.Port > 65535) {
		return fmt.Errorf("invalid bridge port: %d", c.Bridge.Port)
	}

	return nil
}

// Addr returns the listen address of the touch bridge.
func (bc *BridgeConfig) Addr() string {
	return fmt.Sprintf("%s:%d", bc.Host, bc.Port)
}
