package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/day02"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds settings of the solver and its server
type Config struct {
	Log    LogConfig    `toml:"log" yaml:"log"`
	Cache  CacheConfig  `toml:"cache" yaml:"cache"`
	Server ServerConfig `toml:"server" yaml:"server"`
	Day02  Day02Config  `toml:"day02" yaml:"day02"`
}

type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// CacheConfig selects where answers are remembered: none, memory, local or redis
type CacheConfig struct {
	Backend   string   `toml:"backend" yaml:"backend"`
	Dir       string   `toml:"dir" yaml:"dir"`
	RedisAddr string   `toml:"redis_addr" yaml:"redis_addr"`
	RedisDB   int      `toml:"redis_db" yaml:"redis_db"`
	TTL       Duration `toml:"ttl" yaml:"ttl"`
}

type ServerConfig struct {
	Addr string `toml:"addr" yaml:"addr"`
}

// Day02Config is the bag content games are checked against
type Day02Config struct {
	Red   int `toml:"red" yaml:"red"`
	Green int `toml:"green" yaml:"green"`
	Blue  int `toml:"blue" yaml:"blue"`
}

func (c Day02Config) Limit() day02.Cubes {
	return day02.Cubes{Red: c.Red, Green: c.Green, Blue: c.Blue}
}

// Duration wraps time.Duration for text based formats
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Cache: CacheConfig{
			Backend:   "none",
			Dir:       filepath.Join(os.TempDir(), "aoc2023-answers"),
			RedisAddr: "localhost:6379",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Day02: Day02Config{
			Red:   12,
			Green: 13,
			Blue:  14,
		},
	}
}

// Load reads the file on top of defaults. The format is chosen by extension:
// .yaml and .yml are YAML, everything else is TOML.
func Load(path string) (Config, error) {
	cfg := Default()
	path = os.ExpandEnv(path)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("cannot read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("cannot parse config %s: %w", path, err)
		}
	default:
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("cannot parse config %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.Log.Format)
	}

	switch c.Cache.Backend {
	case "none", "memory":
	case "local":
		if c.Cache.Dir == "" {
			return fmt.Errorf("%w: local cache needs a dir", ErrInvalidConfig)
		}
	case "redis":
		if c.Cache.RedisAddr == "" {
			return fmt.Errorf("%w: redis cache needs an address", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown cache backend %q", ErrInvalidConfig, c.Cache.Backend)
	}
	if c.Cache.TTL.Duration < 0 {
		return fmt.Errorf("%w: negative cache ttl", ErrInvalidConfig)
	}

	if c.Day02.Red < 0 || c.Day02.Green < 0 || c.Day02.Blue < 0 {
		return fmt.Errorf("%w: negative cube limit", ErrInvalidConfig)
	}
	return nil
}

// NewLogger builds the logger described by the config.
func NewLogger(w io.Writer, lc LogConfig) (*slog.Logger, error) {
	level, err := parseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if lc.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, s)
	}
	return level, nil
}
