package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/matzehuels/seasonviz/pkg/buildinfo"
	"github.com/matzehuels/seasonviz/pkg/cache"
	"github.com/matzehuels/seasonviz/pkg/pipeline"
	"github.com/matzehuels/seasonviz/pkg/storage"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "seasonviz"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Config is loaded before any subcommand runs.
	Config *Config

	v          *viper.Viper
	configFile string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: defaultConfig(),
		v:      viper.New(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Seasonviz renders the charts of a futsal league season",
		Long:         `Seasonviz turns the pre-aggregated tables of a league season into presentation charts: standings, scorers, assists, monthly tables and per-player drill-downs.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.setup(); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (default: ./seasonviz.toml)")

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.chartsCommand())
	root.AddCommand(c.pickCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.artifactsCommand())
	root.AddCommand(c.sampleCommand())
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the configuration, applies the theme and, at debug level,
// routes pipeline events to the logger.
func (c *CLI) setup() error {
	cfg, err := loadConfig(c.v, c.configFile)
	if err != nil {
		return err
	}
	cfg.applyTheme()
	c.Config = cfg

	if registerLogHooks(c.Logger) {
		if used := c.v.ConfigFileUsed(); used != "" {
			c.Logger.Debug("config loaded", "file", used)
		}
	}
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// runnerOpts selects the backends a command needs.
type runnerOpts struct {
	noCache bool
	store   bool
}

// newRunner creates a pipeline runner from the loaded configuration.
func (c *CLI) newRunner(ctx context.Context, o runnerOpts) (*pipeline.Runner, error) {
	ch, err := c.newCache(ctx, o.noCache)
	if err != nil {
		return nil, err
	}
	r := pipeline.NewRunner(ch, nil, c.Logger)
	if c.Config.Cache.TTL > 0 {
		r.TTL = c.Config.Cache.TTL
	}
	if o.store {
		st, err := c.newStore(ctx)
		if err != nil {
			_ = ch.Close()
			return nil, err
		}
		r.Store = st
	}
	return r, nil
}

func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	cfg := c.Config.Cache
	if noCache || !cfg.Enabled {
		return cache.NewNullCache(), nil
	}
	if cfg.RedisAddr != "" {
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{Addr: cfg.RedisAddr})
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		return rc, nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

func (c *CLI) newStore(ctx context.Context) (storage.Store, error) {
	cfg := c.Config.Store
	if cfg.MongoURI != "" {
		st, err := storage.NewMongoStore(ctx, storage.MongoConfig{
			URI:      cfg.MongoURI,
			Database: cfg.Database,
		})
		if err != nil {
			return nil, fmt.Errorf("mongo store: %w", err)
		}
		return st, nil
	}
	return storage.NewFileStore(cfg.Dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/seasonviz/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configDir returns the user config directory (~/.config/seasonviz/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// splitList parses a comma-separated flag value, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
