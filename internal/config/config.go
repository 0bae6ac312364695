package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. BOOKVIBE_CATALOG_API_KEY
const EnvPrefix = "BOOKVIBE"

// EnvFiles are dotenv files loaded before the environment is read.
// Variables already present in the process environment win.
var EnvFiles = []string{".env.local", ".env"}

// Config holds all application configuration
type Config struct {
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Checkout CheckoutConfig `mapstructure:"checkout"`
	Storage  StorageConfig  `mapstructure:"storage"`
	UI       UIConfig       `mapstructure:"ui"`
	Browser  BrowserConfig  `mapstructure:"browser"`
	Admin    AdminConfig    `mapstructure:"admin"`
	Site     SiteConfig     `mapstructure:"site"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// CatalogConfig holds books API configuration
type CatalogConfig struct {
	BaseURL           string        `mapstructure:"base_url"`
	APIKey            string        `mapstructure:"api_key"` // optional, raises quota
	MaxResults        int           `mapstructure:"max_results"`
	OrderBy           string        `mapstructure:"order_by"`
	PrintType         string        `mapstructure:"print_type"`
	LangRestrict      string        `mapstructure:"lang_restrict"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Retries           int           `mapstructure:"retries"`
	FallbackQueries   []string      `mapstructure:"fallback_queries"` // tried in order for the landing page
}

// CheckoutConfig holds the simulated payment settings
type CheckoutConfig struct {
	TaxRate         float64       `mapstructure:"tax_rate"`
	ProcessingDelay time.Duration `mapstructure:"processing_delay"`
	SuccessDelay    time.Duration `mapstructure:"success_delay"` // success screen before the library opens
	Currency        string        `mapstructure:"currency"`
}

// StorageConfig holds local storage configuration
type StorageConfig struct {
	Path string `mapstructure:"path"` // empty keeps everything in memory
}

// UIConfig holds UI configuration
type UIConfig struct {
	DefaultView string `mapstructure:"default_view"` // "grid" or "list"
	GridColumns int    `mapstructure:"grid_columns"`
}

// BrowserConfig holds the command used to open preview links
type BrowserConfig struct {
	Command string   `mapstructure:"command"`
	Args    []string `mapstructure:"args"`
}

// AdminConfig holds admin portal credentials
type AdminConfig struct {
	Username     string `mapstructure:"username"`
	PasswordHash string `mapstructure:"password_hash"` // bcrypt; empty accepts any non-empty password
}

// SiteConfig holds settings for the static site maintenance tools
type SiteConfig struct {
	Root          string   `mapstructure:"root"`
	SkipDirs      []string `mapstructure:"skip_dirs"`
	Exclude       []string `mapstructure:"exclude"` // doublestar globs relative to root
	BannerSkip    []string `mapstructure:"banner_skip"`
	MaxPasses     int      `mapstructure:"max_passes"`
	AnalyzeSource string   `mapstructure:"analyze_source"`
	AdminDir      string   `mapstructure:"admin_dir"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultFallbackQueries are tried in order until one returns displayable books
var DefaultFallbackQueries = []string{
	"bestseller fiction",
	"popular novels 2024",
	"harry potter",
	"stephen king",
	"agatha christie",
	"classic literature",
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Catalog: CatalogConfig{
			BaseURL:           "https://www.googleapis.com/books/v1/volumes",
			MaxResults:        40,
			OrderBy:           "relevance",
			PrintType:         "books",
			LangRestrict:      "en",
			RequestsPerSecond: 5,
			FallbackQueries:   append([]string(nil), DefaultFallbackQueries...),
		},
		Checkout: CheckoutConfig{
			TaxRate:         0.08,
			ProcessingDelay: 2 * time.Second,
			SuccessDelay:    3 * time.Second,
			Currency:        "USD",
		},
		Storage: StorageConfig{
			Path: filepath.Join(defaultDataPath(), "storage.db"),
		},
		UI: UIConfig{
			DefaultView: "grid",
			GridColumns: 4,
		},
		Browser: BrowserConfig{
			Args: []string{},
		},
		Admin: AdminConfig{
			Username: "admin",
		},
		Site: SiteConfig{
			Root:       ".",
			SkipDirs:   []string{"node_modules", "scripts"},
			Exclude:    []string{},
			BannerSkip: []string{"login", "register", "auth", "admin"},
			MaxPasses:  5,
			AdminDir:   "admin",
		},
		Logging: LoggingConfig{
			File:  filepath.Join(defaultDataPath(), "bookvibe.log"),
			Level: "INFO",
		},
	}
}

// defaultDataPath returns the per-user data directory for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "bookvibe")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "bookvibe")
	}
}

// DefaultDir returns the default config directory for the current OS
func DefaultDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "bookvibe")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "bookvibe")
	}
}

// DefaultPath returns the default config file path
func DefaultPath() string {
	return filepath.Join(DefaultDir(), "config.yaml")
}

// Load reads configuration from path (or the default locations when empty),
// dotenv files and BOOKVIBE_ environment variables, in increasing priority.
func Load(path string) (*Config, error) {
	if err := loadEnvFiles(EnvFiles...); err != nil {
		return nil, err
	}

	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(DefaultDir())
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
			// No config file, defaults and environment apply
		case path != "" && errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes cfg as YAML to path (or the default path when empty)
func Save(cfg *Config, path string) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	bind(cfg, v.Set)
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// newViper returns a viper instance with every key registered as a default,
// so environment overrides apply to keys missing from the config file.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bind(Default(), v.SetDefault)
	return v
}

// bind passes every configuration key with its value to set.
// Keys are set individually to keep snake_case names in written files.
func bind(cfg *Config, set func(key string, value any)) {
	set("catalog.base_url", cfg.Catalog.BaseURL)
	set("catalog.api_key", cfg.Catalog.APIKey)
	set("catalog.max_results", cfg.Catalog.MaxResults)
	set("catalog.order_by", cfg.Catalog.OrderBy)
	set("catalog.print_type", cfg.Catalog.PrintType)
	set("catalog.lang_restrict", cfg.Catalog.LangRestrict)
	set("catalog.timeout", cfg.Catalog.Timeout.String())
	set("catalog.requests_per_second", cfg.Catalog.RequestsPerSecond)
	set("catalog.retries", cfg.Catalog.Retries)
	set("catalog.fallback_queries", cfg.Catalog.FallbackQueries)

	set("checkout.tax_rate", cfg.Checkout.TaxRate)
	set("checkout.processing_delay", cfg.Checkout.ProcessingDelay.String())
	set("checkout.success_delay", cfg.Checkout.SuccessDelay.String())
	set("checkout.currency", cfg.Checkout.Currency)

	set("storage.path", cfg.Storage.Path)

	set("ui.default_view", cfg.UI.DefaultView)
	set("ui.grid_columns", cfg.UI.GridColumns)

	set("browser.command", cfg.Browser.Command)
	set("browser.args", cfg.Browser.Args)

	set("admin.username", cfg.Admin.Username)
	set("admin.password_hash", cfg.Admin.PasswordHash)

	set("site.root", cfg.Site.Root)
	set("site.skip_dirs", cfg.Site.SkipDirs)
	set("site.exclude", cfg.Site.Exclude)
	set("site.banner_skip", cfg.Site.BannerSkip)
	set("site.max_passes", cfg.Site.MaxPasses)
	set("site.analyze_source", cfg.Site.AnalyzeSource)
	set("site.admin_dir", cfg.Site.AdminDir)

	set("logging.file", cfg.Logging.File)
	set("logging.level", cfg.Logging.Level)
}

// loadEnvFiles loads the dotenv files that exist
func loadEnvFiles(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}
