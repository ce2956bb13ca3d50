package local

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"edet/internal/ports"
)

// Provider implements ports.FolderProvider without any backing service.
// It only mints ids of the form edet_<unix millis>_<9 random chars>.
type Provider struct {
	now func() time.Time
}

// Ensure Provider implements FolderProvider
var _ ports.FolderProvider = (*Provider)(nil)

// Option configures the Provider
type Option func(*Provider)

// WithClock sets the time source used for the id timestamp
func WithClock(now func() time.Time) Option {
	return func(p *Provider) {
		p.now = now
	}
}

// NewProvider creates a new local provider
func NewProvider(opts ...Option) *Provider {
	p := &Provider{now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// CreateFolder returns a fresh id; name and parent are not recorded here
func (p *Provider) CreateFolder(_ context.Context, name, _ string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("folder name is required")
	}
	return NewID(p.now()), nil
}

// Name identifies the provider in logs
func (p *Provider) Name() string {
	return "local"
}

// NewID builds a folder id from a timestamp and a random suffix
func NewID(t time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("edet_%d_%s", t.UnixMilli(), suffix)
}
