package trails

import (
	"context"

	i18n "github.com/goliatone/go-i18n"
	glog "github.com/goliatone/go-logger/glog"

	"github.com/goliatone/go-trails/internal/di"
	"github.com/goliatone/go-trails/pkg/activity"
	"github.com/goliatone/go-trails/pkg/block"
	"github.com/goliatone/go-trails/pkg/commands"
	"github.com/goliatone/go-trails/pkg/config"
	"github.com/goliatone/go-trails/pkg/domain"
	"github.com/goliatone/go-trails/pkg/interfaces/logger"
	"github.com/goliatone/go-trails/pkg/metrics"
	"github.com/goliatone/go-trails/pkg/resolver"
	"github.com/goliatone/go-trails/pkg/settings"
	"github.com/goliatone/go-trails/pkg/storage"
)

// ModuleOptions configure the trails module facade.
type ModuleOptions struct {
	Config         config.Config
	Storage        storage.Providers
	Logger         logger.Logger
	LoggerProvider glog.LoggerProvider
	Translator     i18n.Translator
	Hooks          []activity.Hook
	Metrics        *metrics.Collector
}

// Module bundles the container and exposes high-level accessors.
type Module struct {
	container *di.Container
}

// NewModule assembles storage, resolver, settings editor, block renderer and
// commands.
func NewModule(opts ModuleOptions) (*Module, error) {
	container, err := di.New(di.Options{
		Config:         opts.Config,
		Storage:        opts.Storage,
		Logger:         opts.Logger,
		LoggerProvider: opts.LoggerProvider,
		Translator:     opts.Translator,
		Hooks:          opts.Hooks,
		Metrics:        opts.Metrics,
	})
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Render builds the trails block for view.
func (m *Module) Render(ctx context.Context, view domain.ViewContext, locale string) (block.Payload, error) {
	if m == nil || m.container == nil {
		return block.Payload{}, nil
	}
	return m.container.Block.Build(ctx, view, locale)
}

// ShouldDisplay reports whether the iframe would be shown for view with the
// current base URL.
func (m *Module) ShouldDisplay(ctx context.Context, view domain.ViewContext) (bool, error) {
	if m == nil || m.container == nil {
		return false, nil
	}
	current, err := m.container.Settings.BaseURL(ctx)
	if err != nil {
		return false, err
	}
	return m.container.Resolver.ShouldDisplay(view, current.Value), nil
}

// Resolver returns the entity resolver.
func (m *Module) Resolver() *resolver.Resolver {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Resolver
}

// Settings returns the settings editor service.
func (m *Module) Settings() *settings.Service {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Settings
}

// Block returns the block renderer.
func (m *Module) Block() *block.Renderer {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Block
}

// Commands returns the go-command registry.
func (m *Module) Commands() *commands.Registry {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Commands
}

// Metrics returns the prometheus collector, nil when disabled.
func (m *Module) Metrics() *metrics.Collector {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Metrics
}

// Logger returns the module logger.
func (m *Module) Logger() logger.Logger {
	if m == nil || m.container == nil {
		return logger.Nop()
	}
	return m.container.Logger
}

// Config returns the effective module configuration.
func (m *Module) Config() config.Config {
	if m == nil || m.container == nil {
		return config.Config{}
	}
	return m.container.Config
}

// Container returns the internal DI container.
// This is exposed for advanced use cases like direct storage access.
func (m *Module) Container() *di.Container {
	if m == nil {
		return nil
	}
	return m.container
}
