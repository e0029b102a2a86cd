package config

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/chatapp/internal/errors"
	"github.com/vango-dev/chatapp/pkg/render"
)

const (
	// ConfigFileName is the default configuration file name.
	ConfigFileName = "chatapp.json"

	// DefaultAddr is the default listen address.
	DefaultAddr = "127.0.0.1:3000"

	// DefaultSiteRoot is where the client bundle and static assets live.
	DefaultSiteRoot = "target/site"

	// DefaultPkgDir is the bundle directory under the site root.
	DefaultPkgDir = "pkg"

	// DefaultDatabaseURL is an in-memory SQLite database, recreated on
	// every start.
	DefaultDatabaseURL = ":memory:"

	// ReloadPath is where the dev live-reload socket is mounted.
	ReloadPath = "/_chatapp/reload"
)

// fileNames are tried in order by Load.
var fileNames = []string{ConfigFileName, "chatapp.yaml", "chatapp.yml"}

// Config is the complete project configuration.
type Config struct {
	// Name is the project name. It is also the default bundle name.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	Site     SiteConfig     `json:"site" yaml:"site"`
	Database DatabaseConfig `json:"database" yaml:"database"`
	Static   StaticConfig   `json:"static" yaml:"static"`
	CORS     CORSConfig     `json:"cors" yaml:"cors"`
	Metrics  MetricsConfig  `json:"metrics" yaml:"metrics"`
	Logging  LoggingConfig  `json:"logging" yaml:"logging"`

	configPath string
}

// SiteConfig holds the listen address and render options.
type SiteConfig struct {
	// Addr is the host:port to listen on.
	Addr string `json:"addr,omitempty" yaml:"addr,omitempty"`

	// Root is the directory static files are served from.
	Root string `json:"root,omitempty" yaml:"root,omitempty"`

	// PkgDir is the directory under Root holding the wasm bundle.
	PkgDir string `json:"pkgDir,omitempty" yaml:"pkgDir,omitempty"`

	// OutputName is the bundle base name (default: Name).
	OutputName string `json:"outputName,omitempty" yaml:"outputName,omitempty"`

	// Env is "dev" or "prod".
	Env string `json:"env,omitempty" yaml:"env,omitempty"`

	// ServerURL is written into pages for clients served from another
	// origin, such as a desktop shell.
	ServerURL string `json:"serverUrl,omitempty" yaml:"serverUrl,omitempty"`
}

// DatabaseConfig selects the SQLite database.
type DatabaseConfig struct {
	// URL is a modernc.org/sqlite DSN (":memory:", "file:chat.db", ...).
	URL string `json:"url,omitempty" yaml:"url,omitempty"`
}

// StaticConfig selects where static files come from. The site root is used
// unless an S3 bucket is configured.
type StaticConfig struct {
	S3 S3Config `json:"s3" yaml:"s3"`

	// CacheControl overrides the Cache-Control header on static responses.
	CacheControl string `json:"cacheControl,omitempty" yaml:"cacheControl,omitempty"`
}

// S3Config locates static files in a bucket.
type S3Config struct {
	Bucket string `json:"bucket,omitempty" yaml:"bucket,omitempty"`
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Region string `json:"region,omitempty" yaml:"region,omitempty"`
}

// CORSConfig controls cross-origin access to server functions.
type CORSConfig struct {
	AllowedOrigins []string `json:"allowedOrigins,omitempty" yaml:"allowedOrigins,omitempty"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`
}

// LoggingConfig sets the log level (debug, info, warn, error).
type LoggingConfig struct {
	Level string `json:"level,omitempty" yaml:"level,omitempty"`
}

// New returns a Config with every default applied.
func New() *Config {
	cfg := &Config{
		Name:    "chatapp",
		Metrics: MetricsConfig{Enabled: true},
	}
	cfg.applyDefaults()
	return cfg
}

// Load reads the first configuration file found in dir.
func Load(dir string) (*Config, error) {
	for _, name := range fileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return nil, errors.New("E100").
		WithDetail("No " + ConfigFileName + " found in " + dir).
		WithSuggestion("Create " + ConfigFileName + " or pass --config")
}

// LoadFile reads the configuration at path. The format follows the
// extension.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E100").
				WithDetail(path + " does not exist").
				WithSuggestion("Create " + ConfigFileName + " or pass --config")
		}
		return nil, errors.New("E101").Wrap(err)
	}

	cfg := &Config{Metrics: MetricsConfig{Enabled: true}}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, errors.New("E103").WithDetail(path + " has extension " + ext)
	}
	if err != nil {
		return nil, errors.New("E101").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			WithSuggestion("Check that " + filepath.Base(path) + " is well formed")
	}

	cfg.configPath = path
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Path returns the file the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file, or "." when the
// config was not loaded from disk.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return "."
	}
	return filepath.Dir(c.configPath)
}

func (c *Config) applyDefaults() {
	if c.Name == "" {
		c.Name = "chatapp"
	}
	if c.Site.Addr == "" {
		c.Site.Addr = DefaultAddr
	}
	if c.Site.Root == "" {
		c.Site.Root = DefaultSiteRoot
	}
	if c.Site.PkgDir == "" {
		c.Site.PkgDir = DefaultPkgDir
	}
	if c.Site.OutputName == "" {
		c.Site.OutputName = c.Name
	}
	if c.Site.Env == "" {
		c.Site.Env = string(render.EnvDev)
	}
	if c.Database.URL == "" {
		c.Database.URL = DefaultDatabaseURL
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Validate checks values that would otherwise fail later at startup.
func (c *Config) Validate() error {
	if _, _, err := net.SplitHostPort(c.Site.Addr); err != nil {
		return invalid("site.addr", fmt.Sprintf("%q is not host:port", c.Site.Addr))
	}
	switch render.Env(c.Site.Env) {
	case render.EnvDev, render.EnvProd:
	default:
		return invalid("site.env", fmt.Sprintf("%q must be dev or prod", c.Site.Env))
	}
	if !strings.HasPrefix(c.Metrics.Path, "/") {
		return invalid("metrics.path", "must start with /")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return invalid("logging.level", fmt.Sprintf("%q is not one of debug, info, warn, error", c.Logging.Level))
	}
	return nil
}

func invalid(field, detail string) error {
	return errors.New("E102").WithDetail(field + ": " + detail)
}

// SiteRoot returns the site root, resolved against the config directory
// when relative.
func (c *Config) SiteRoot() string {
	if filepath.IsAbs(c.Site.Root) {
		return c.Site.Root
	}
	return filepath.Join(c.Dir(), c.Site.Root)
}

// RenderOptions returns the page render options.
func (c *Config) RenderOptions() render.Options {
	return render.Options{
		OutputName: c.Site.OutputName,
		SiteRoot:   c.SiteRoot(),
		SitePkgDir: c.Site.PkgDir,
		SiteAddr:   c.Site.Addr,
		Env:        render.Env(c.Site.Env),
		ReloadPath: ReloadPath,
		ServerURL:  c.Site.ServerURL,
	}
}
