package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// AppConfig application configuration
type AppConfig struct {
	Server    ServerConfig    `toml:"server" yaml:"server"`
	Data      DataConfig      `toml:"data" yaml:"data"`
	Dashboard DashboardConfig `toml:"dashboard" yaml:"dashboard"`
	Log       LogConfig       `toml:"log" yaml:"log"`
}

// ServerConfig HTTP server settings
type ServerConfig struct {
	Port            int    `toml:"port" yaml:"port"`
	DevMode         bool   `toml:"dev_mode" yaml:"dev_mode"`
	ShutdownTimeout string `toml:"shutdown_timeout" yaml:"shutdown_timeout"` // Go duration, e.g. "5s"
	OpenBrowser     bool   `toml:"open_browser" yaml:"open_browser"`
}

// DataConfig roster loaded at startup
type DataConfig struct {
	RosterPath string `toml:"roster_path" yaml:"roster_path"`
	Sheet      string `toml:"sheet" yaml:"sheet"`
}

// DashboardConfig aggregation settings
type DashboardConfig struct {
	TopN             int    `toml:"top_n" yaml:"top_n"`
	OtherLocationKey string `toml:"other_location_key" yaml:"other_location_key"`
	OtherRoleKey     string `toml:"other_role_key" yaml:"other_role_key"`
	Timezone         string `toml:"timezone" yaml:"timezone"`
}

// LogConfig logger settings
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`   // debug, info, warn, error
	Format string `toml:"format" yaml:"format"` // json or console
}

// LoadConfigInfo metadata about the loaded file
type LoadConfigInfo struct {
	Path          string // file actually read; empty when defaults were used
	PortSpecified bool
}

// Environment variables overriding the file
const (
	EnvPort       = "PAINEL_PORT"
	EnvRosterPath = "PAINEL_ROSTER_PATH"
	EnvTimezone   = "PAINEL_TIMEZONE"
	EnvLogLevel   = "PAINEL_LOG_LEVEL"
)

// DefaultConfig built-in defaults
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:            20262,
			DevMode:         false,
			ShutdownTimeout: "5s",
		},
		Dashboard: DashboardConfig{
			TopN:             5,
			OtherLocationKey: "OUTRAS",
			OtherRoleKey:     "OUTROS",
			Timezone:         "America/Recife",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

func isPortSpecified(data []byte, yamlFile bool) bool {
	var raw map[string]any
	var err error
	if yamlFile {
		err = yaml.Unmarshal(data, &raw)
	} else {
		err = toml.Unmarshal(data, &raw)
	}
	if err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}

	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

// GetExeDir directory of the running executable
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// DefaultPath config.toml next to the executable
func DefaultPath() string {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	return filepath.Join(exeDir, "config.toml")
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// LoadConfigWithInfo loads path (config.toml next to the executable when empty),
// then applies environment overrides and validates the result.
// A missing file is not an error.
func LoadConfigWithInfo(path string) (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{}
	config := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		yamlFile := isYAML(path)
		info.Path = path
		info.PortSpecified = isPortSpecified(data, yamlFile)
		if yamlFile {
			err = yaml.Unmarshal(data, config)
		} else {
			err = toml.Unmarshal(data, config)
		}
		if err != nil {
			return nil, info, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// no file: defaults
	default:
		return nil, info, fmt.Errorf("read %s: %w", path, err)
	}

	if err := config.ApplyEnv(); err != nil {
		return nil, info, err
	}
	if err := config.Validate(); err != nil {
		return nil, info, err
	}
	return config, info, nil
}

// Overrides command-line values; zero values leave the config untouched
type Overrides struct {
	Port       int
	DevMode    bool
	RosterPath string
}

// ApplyOverrides applies command-line values and validates the result again
func (c *AppConfig) ApplyOverrides(o Overrides) error {
	if o.Port != 0 {
		c.Server.Port = o.Port
	}
	if o.DevMode {
		c.Server.DevMode = true
		c.Log.Format = "console"
	}
	if o.RosterPath != "" {
		c.Data.RosterPath = o.RosterPath
	}
	return c.Validate()
}

// LoadDotEnv loads .env files into the process environment; missing files are skipped.
// Variables already set are not overwritten.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// ApplyEnv applies PAINEL_* overrides
func (c *AppConfig) ApplyEnv() error {
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: invalid port %q", EnvPort, v)
		}
		c.Server.Port = port
	}
	if v := os.Getenv(EnvRosterPath); v != "" {
		c.Data.RosterPath = v
	}
	if v := os.Getenv(EnvTimezone); v != "" {
		c.Dashboard.Timezone = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	return nil
}

// Validate fills unset values with defaults and rejects invalid ones
func (c *AppConfig) Validate() error {
	def := DefaultConfig()

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Server.ShutdownTimeout == "" {
		c.Server.ShutdownTimeout = def.Server.ShutdownTimeout
	}
	if d, err := time.ParseDuration(c.Server.ShutdownTimeout); err != nil || d <= 0 {
		return fmt.Errorf("server.shutdown_timeout invalid: %q", c.Server.ShutdownTimeout)
	}

	if c.Dashboard.TopN <= 0 {
		c.Dashboard.TopN = def.Dashboard.TopN
	}
	if strings.TrimSpace(c.Dashboard.OtherLocationKey) == "" {
		c.Dashboard.OtherLocationKey = def.Dashboard.OtherLocationKey
	}
	if strings.TrimSpace(c.Dashboard.OtherRoleKey) == "" {
		c.Dashboard.OtherRoleKey = def.Dashboard.OtherRoleKey
	}
	if c.Dashboard.Timezone == "" {
		c.Dashboard.Timezone = def.Dashboard.Timezone
	}
	if _, err := time.LoadLocation(c.Dashboard.Timezone); err != nil {
		return fmt.Errorf("dashboard.timezone: %w", err)
	}

	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	switch c.Log.Level {
	case "":
		c.Log.Level = def.Log.Level
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level unknown: %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "":
		c.Log.Format = def.Log.Format
	case "json", "console":
	default:
		return fmt.Errorf("log.format unknown: %q", c.Log.Format)
	}
	return nil
}

// ShutdownDuration parsed server.shutdown_timeout
func (c *AppConfig) ShutdownDuration() time.Duration {
	d, err := time.ParseDuration(c.Server.ShutdownTimeout)
	if err != nil || d <= 0 {
		return 5 * time.Second
	}
	return d
}

// TimeLocation resolved dashboard timezone, time.Local when it cannot be loaded
func (c *AppConfig) TimeLocation() *time.Location {
	loc, err := time.LoadLocation(c.Dashboard.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
