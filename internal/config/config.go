package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Store kinds
const (
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Folder provider kinds
const (
	FoldersLocal      = "local"
	FoldersFilesystem = "filesystem"
	FoldersDrive      = "drive"
)

const DefaultHTTPAddr = ":8080"

// Config is the root of the YAML file
type Config struct {
	Store   StoreConfig   `yaml:"store"`
	Folders FoldersConfig `yaml:"folders"`
	Logger  LoggerConfig  `yaml:"logger"`
	HTTP    HTTPConfig    `yaml:"http"`
}

// StoreConfig selects and configures the key-value store
type StoreConfig struct {
	Kind  string      `yaml:"kind"` // sqlite, memory or redis
	Path  string      `yaml:"path"` // sqlite database file
	Redis RedisConfig `yaml:"redis"`
}

// RedisConfig holds the Redis connection settings
type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

// FoldersConfig selects and configures the folder provider
type FoldersConfig struct {
	Kind  string      `yaml:"kind"` // local, filesystem or drive
	Root  string      `yaml:"root"` // filesystem root directory
	Drive DriveConfig `yaml:"drive"`
}

// DriveConfig holds the Google Drive client settings
type DriveConfig struct {
	CredentialsFile string `yaml:"credentialsFile"`
	APIKey          string `yaml:"apiKey"`
	RootID          string `yaml:"rootId"`
	Endpoint        string `yaml:"endpoint"`
}

// LoggerConfig configures logrus
type LoggerConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text or json
}

// HTTPConfig configures the API server
type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

// DataDir returns $XDG_DATA_HOME/edet, falling back to ~/.local/share/edet.
func DataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "edet")
	}
	return filepath.Join("~", ".local", "share", "edet")
}

// DefaultPath returns $XDG_CONFIG_HOME/edet/config.yaml, falling back to ~/.config.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "edet", "config.yaml")
}

// Default returns the configuration used when nothing is set
func Default() Config {
	return Config{
		Store: StoreConfig{
			Kind: StoreSQLite,
			Path: filepath.Join(DataDir(), "edet.db"),
			Redis: RedisConfig{Address: "localhost:6379"},
		},
		Folders: FoldersConfig{
			Kind: FoldersLocal,
			Root: filepath.Join(DataDir(), "folders"),
		},
		Logger: LoggerConfig{Level: "info", Format: "text"},
		HTTP:   HTTPConfig{Addr: DefaultHTTPAddr},
	}
}

// Load builds the configuration from defaults, .env, the YAML file and EDET_* variables,
// in that order. An empty path falls back to EDET_CONFIG and then DefaultPath; only an
// explicitly named file must exist.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = os.Getenv("EDET_CONFIG")
		explicit = path != ""
	}
	if path == "" {
		path = DefaultPath()
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist) && !explicit:
		default:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() error {
	setString := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setString("EDET_STORE", &c.Store.Kind)
	setString("EDET_DB_PATH", &c.Store.Path)
	setString("EDET_REDIS_ADDR", &c.Store.Redis.Address)
	setString("EDET_REDIS_PASSWORD", &c.Store.Redis.Password)
	setString("EDET_REDIS_PREFIX", &c.Store.Redis.Prefix)
	setString("EDET_FOLDERS", &c.Folders.Kind)
	setString("EDET_FOLDERS_ROOT", &c.Folders.Root)
	setString("EDET_DRIVE_CREDENTIALS", &c.Folders.Drive.CredentialsFile)
	setString("EDET_DRIVE_API_KEY", &c.Folders.Drive.APIKey)
	setString("EDET_DRIVE_ROOT_ID", &c.Folders.Drive.RootID)
	setString("EDET_LOG_LEVEL", &c.Logger.Level)
	setString("EDET_LOG_FORMAT", &c.Logger.Format)
	setString("EDET_HTTP_ADDR", &c.HTTP.Addr)

	if v := os.Getenv("EDET_REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("EDET_REDIS_DB: %w", err)
		}
		c.Store.Redis.DB = db
	}
	return nil
}

// Validate rejects unknown store or provider kinds and missing required settings
func (c *Config) Validate() error {
	switch c.Store.Kind {
	case StoreSQLite:
		if c.Store.Path == "" {
			return fmt.Errorf("store.path is required for the sqlite store")
		}
	case StoreRedis:
		if c.Store.Redis.Address == "" {
			return fmt.Errorf("store.redis.address is required for the redis store")
		}
	case StoreMemory:
	default:
		return fmt.Errorf("unknown store kind: %q", c.Store.Kind)
	}

	switch c.Folders.Kind {
	case FoldersLocal, FoldersDrive:
	case FoldersFilesystem:
		if c.Folders.Root == "" {
			return fmt.Errorf("folders.root is required for the filesystem provider")
		}
	default:
		return fmt.Errorf("unknown folders kind: %q", c.Folders.Kind)
	}

	switch c.Logger.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown logger format: %q", c.Logger.Format)
	}
	return nil
}

// WriteDefault writes the default configuration to path unless a file is already there.
// It reports whether a file was created.
func WriteDefault(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return false, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return false, fmt.Errorf("failed to write config: %w", err)
	}
	return true, nil
}
