package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	drivev3 "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"edet/internal/adapters/folders/drive"
	"edet/internal/adapters/folders/filesystem"
	"edet/internal/adapters/folders/local"
	"edet/internal/adapters/memory"
	"edet/internal/adapters/redis"
	"edet/internal/adapters/sqlite"
	"edet/internal/application/facade"
	"edet/internal/application/registry"
	"edet/internal/config"
	"edet/internal/logging"
	"edet/internal/ports"
)

// App holds everything a front end needs
type App struct {
	Config   *config.Config
	Logger   *logrus.Logger
	Registry *registry.SeminarRegistry
	Facade   *facade.ConfigurationFacade

	closers []io.Closer
}

// Option configures New
type Option func(*options)

type options struct {
	logger *logrus.Logger
}

// WithLogger replaces the logger built from the config
func WithLogger(l *logrus.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Open loads the config at path and builds the App
func Open(ctx context.Context, path string, opts ...Option) (*App, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return New(ctx, cfg, opts...)
}

// New builds store, folder provider, registry and facade from cfg
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	logger := o.logger
	if logger == nil {
		var err error
		logger, err = logging.New(cfg.Logger.Level, cfg.Logger.Format)
		if err != nil {
			return nil, err
		}
	}

	app := &App{Config: cfg, Logger: logger}

	store, err := app.openStore(ctx)
	if err != nil {
		return nil, err
	}

	folders, err := openFolders(ctx, cfg.Folders)
	if err != nil {
		app.Close()
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"store":   cfg.Store.Kind,
		"folders": folders.Name(),
	}).Debug("edet configured")

	app.Registry = registry.New(store, folders, registry.WithLogger(logger))
	app.Facade = facade.New(app.Registry, facade.WithLogger(logger.WithField("component", "facade")))
	return app, nil
}

// Close releases the store connection
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (a *App) openStore(ctx context.Context) (ports.KeyValueStore, error) {
	sc := a.Config.Store
	switch sc.Kind {
	case config.StoreMemory:
		return memory.NewStore(), nil
	case config.StoreSQLite:
		s, err := sqlite.Open(sc.Path)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, s)
		return s, nil
	case config.StoreRedis:
		s, err := redis.Open(ctx, redis.Options{
			Addr:     sc.Redis.Address,
			Password: sc.Redis.Password,
			DB:       sc.Redis.DB,
			Prefix:   sc.Redis.Prefix,
		})
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, s)
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store kind: %q", sc.Kind)
	}
}

func openFolders(ctx context.Context, fc config.FoldersConfig) (ports.FolderProvider, error) {
	switch fc.Kind {
	case config.FoldersLocal:
		return local.NewProvider(), nil
	case config.FoldersFilesystem:
		return filesystem.NewProvider(fc.Root), nil
	case config.FoldersDrive:
		return drive.NewProvider(ctx, fc.Drive.RootID, driveOptions(fc.Drive)...)
	default:
		return nil, fmt.Errorf("unknown folders kind: %q", fc.Kind)
	}
}

func driveOptions(dc config.DriveConfig) []option.ClientOption {
	opts := []option.ClientOption{option.WithScopes(drivev3.DriveFileScope)}
	if dc.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(dc.CredentialsFile))
	}
	if dc.APIKey != "" {
		opts = append(opts, option.WithAPIKey(dc.APIKey))
	}
	if dc.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(dc.Endpoint))
	}
	return opts
}
