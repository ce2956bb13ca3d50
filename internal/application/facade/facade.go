package facade

import (
	"context"

	"github.com/sirupsen/logrus"

	"edet/internal/application"
	"edet/internal/application/commands"
	"edet/internal/application/registry"
	"edet/internal/domain"
)

// ConfigurationFacade is the public entry point used by every front end.
// Each operation returns an application.Result; errors never escape.
type ConfigurationFacade struct {
	reg *registry.SeminarRegistry
	log logrus.FieldLogger
}

// Option configures a ConfigurationFacade
type Option func(*ConfigurationFacade)

// WithLogger sets the logger used for failed operations.
// Defaults to the registry's logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(f *ConfigurationFacade) {
		f.log = log
	}
}

// New creates a facade over the registry
func New(reg *registry.SeminarRegistry, opts ...Option) *ConfigurationFacade {
	f := &ConfigurationFacade{reg: reg, log: reg.Logger()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// ListSeminars returns the static catalog
func (f *ConfigurationFacade) ListSeminars() application.Result[[]domain.SeminarEntry] {
	return application.Ok(f.reg.ListSeminars())
}

// Initialize creates the folder structure
func (f *ConfigurationFacade) Initialize(ctx context.Context) application.Result[registry.InitializeResult] {
	return run(f, "initialize", func() (*registry.InitializeResult, error) {
		return commands.NewInitializeCommand(f.reg).Execute(ctx)
	})
}

// ConnectIntegration links a seminar folder to the knowledge-base integration
func (f *ConfigurationFacade) ConnectIntegration(ctx context.Context, seminarID int) application.Result[commands.ConnectResult] {
	return run(f, "connect_integration", func() (*commands.ConnectResult, error) {
		return commands.NewConnectIntegrationCommand(f.reg, seminarID).Execute(ctx)
	})
}

// GetIntegration reads back the stored integration of a seminar
func (f *ConfigurationFacade) GetIntegration(ctx context.Context, seminarID int) application.Result[domain.IntegrationConfig] {
	return run(f, "get_integration", func() (*domain.IntegrationConfig, error) {
		return commands.NewGetIntegrationCommand(f.reg, seminarID).Execute(ctx)
	})
}

// OrganizeResources routes files to a seminar folder
func (f *ConfigurationFacade) OrganizeResources(ctx context.Context, files []domain.FileDescriptor, seminarID int) application.Result[domain.OrganizationRecord] {
	return run(f, "organize_resources", func() (*domain.OrganizationRecord, error) {
		return commands.NewOrganizeResourcesCommand(f.reg, files, seminarID).Execute(ctx)
	})
}

// GetStatus reports whether the structure is initialized
func (f *ConfigurationFacade) GetStatus(ctx context.Context) application.Result[domain.StatusSnapshot] {
	return run(f, "get_status", func() (*domain.StatusSnapshot, error) {
		return commands.NewStatusCommand(f.reg).Execute(ctx)
	})
}

// SaveSettings stores the configuration flags
func (f *ConfigurationFacade) SaveSettings(ctx context.Context, s domain.Settings) application.Result[domain.Settings] {
	return run(f, "save_settings", func() (*domain.Settings, error) {
		return commands.NewSaveSettingsCommand(f.reg, s).Execute(ctx)
	})
}

// LoadSettings reads the configuration flags
func (f *ConfigurationFacade) LoadSettings(ctx context.Context) application.Result[domain.Settings] {
	return run(f, "load_settings", func() (*domain.Settings, error) {
		return commands.NewLoadSettingsCommand(f.reg).Execute(ctx)
	})
}

func run[T any](f *ConfigurationFacade, op string, fn func() (*T, error)) application.Result[T] {
	v, err := fn()
	if err != nil {
		f.log.WithField("op", op).
			WithField("kind", application.Classify(err)).
			WithError(err).
			Warn("operation failed")
		return application.Fail[T](err)
	}
	return application.Ok(*v)
}
