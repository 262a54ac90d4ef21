package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/matzehuels/seasonviz/pkg/cache"
	serrors "github.com/matzehuels/seasonviz/pkg/errors"
	"github.com/matzehuels/seasonviz/pkg/pipeline"
	"github.com/matzehuels/seasonviz/pkg/render"
	"github.com/matzehuels/seasonviz/pkg/server"
	"github.com/matzehuels/seasonviz/pkg/theme"
)

// configName is the config file name without extension.
const configName = appName

// envPrefix prefixes environment overrides: SEASONVIZ_CACHE_REDIS_ADDR
// sets cache.redis_addr.
const envPrefix = "SEASONVIZ"

// Config is the resolved configuration: defaults, then the config file,
// then environment variables. Command-line flags are applied on top by
// each command.
type Config struct {
	Output OutputConfig `mapstructure:"output"`
	Cache  CacheConfig  `mapstructure:"cache"`
	Store  StoreConfig  `mapstructure:"store"`
	Server ServerConfig `mapstructure:"server"`
	Theme  ThemeConfig  `mapstructure:"theme"`
}

type OutputConfig struct {
	Dir     string   `mapstructure:"dir"`
	Formats []string `mapstructure:"formats"`
	Scale   float64  `mapstructure:"scale"`
}

type CacheConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	TTL       time.Duration `mapstructure:"ttl"`
	RedisAddr string        `mapstructure:"redis_addr"`
}

type StoreConfig struct {
	MongoURI string `mapstructure:"mongo_uri"`
	Database string `mapstructure:"database"`
	Dir      string `mapstructure:"dir"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// ThemeConfig overrides the base colours of the report palette.
type ThemeConfig struct {
	Background string `mapstructure:"background"`
	Text       string `mapstructure:"text"`
}

func defaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:     ".",
			Formats: pipeline.DefaultFormats,
			Scale:   pipeline.DefaultScale,
		},
		Cache:  CacheConfig{Enabled: true, TTL: cache.DefaultTTL},
		Store:  StoreConfig{Database: "seasonviz"},
		Server: ServerConfig{Addr: server.DefaultAddr},
	}
}

// setDefaults registers every key so environment variables are picked up
// by Unmarshal even when no config file sets them.
func setDefaults(v *viper.Viper) {
	d := defaultConfig()
	v.SetDefault("output.dir", d.Output.Dir)
	v.SetDefault("output.formats", d.Output.Formats)
	v.SetDefault("output.scale", d.Output.Scale)
	v.SetDefault("cache.enabled", d.Cache.Enabled)
	v.SetDefault("cache.ttl", d.Cache.TTL)
	v.SetDefault("cache.redis_addr", "")
	v.SetDefault("store.mongo_uri", "")
	v.SetDefault("store.database", d.Store.Database)
	v.SetDefault("store.dir", "")
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("theme.background", "")
	v.SetDefault("theme.text", "")
}

// loadConfig reads configFile, or seasonviz.toml from the current directory
// and the user config directory, and merges SEASONVIZ_* overrides.
// A missing config file is not an error.
func loadConfig(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		if _, err := os.Stat(configFile); err != nil {
			return nil, serrors.Wrap(serrors.ErrCodeFileNotFound, err, "config file %s", configFile)
		}
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if dir, err := configDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, serrors.Wrap(serrors.ErrCodeInvalidInput, err, "read config")
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, serrors.Wrap(serrors.ErrCodeInvalidInput, err, "decode config")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	for _, f := range c.Output.Formats {
		if _, err := render.ParseFormat(f); err != nil {
			return fmt.Errorf("output.formats: %w", err)
		}
	}
	if c.Output.Scale <= 0 || c.Output.Scale > pipeline.MaxScale {
		return serrors.New(serrors.ErrCodeInvalidInput, "output.scale must be between 0 and %g (got %g)", pipeline.MaxScale, c.Output.Scale)
	}
	if c.Cache.TTL < 0 {
		return serrors.New(serrors.ErrCodeInvalidInput, "cache.ttl must not be negative")
	}
	for key, col := range map[string]string{"theme.background": c.Theme.Background, "theme.text": c.Theme.Text} {
		if col != "" && !theme.Valid(col) {
			return serrors.New(serrors.ErrCodeInvalidInput, "%s: invalid colour %q", key, col)
		}
	}
	return nil
}

// applyTheme installs the configured palette for every chart rendered by
// this process.
func (c *Config) applyTheme() {
	theme.Set(theme.New(
		theme.WithBackground(c.Theme.Background),
		theme.WithText(c.Theme.Text),
	))
}
