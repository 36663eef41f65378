package di

import (
	"context"
	"reflect"

	i18n "github.com/goliatone/go-i18n"
	glog "github.com/goliatone/go-logger/glog"

	"github.com/goliatone/go-trails/internal/templates"
	"github.com/goliatone/go-trails/pkg/activity"
	"github.com/goliatone/go-trails/pkg/block"
	"github.com/goliatone/go-trails/pkg/commands"
	"github.com/goliatone/go-trails/pkg/config"
	"github.com/goliatone/go-trails/pkg/interfaces/logger"
	"github.com/goliatone/go-trails/pkg/metrics"
	"github.com/goliatone/go-trails/pkg/resolver"
	"github.com/goliatone/go-trails/pkg/settings"
	"github.com/goliatone/go-trails/pkg/storage"
	"github.com/goliatone/go-trails/pkg/translations"
)

// Options configure the DI container.
type Options struct {
	Config         config.Config
	Storage        storage.Providers
	Logger         logger.Logger
	LoggerProvider glog.LoggerProvider
	Translator     i18n.Translator
	Hooks          []activity.Hook
	Metrics        *metrics.Collector
	Templates      []templates.Option
}

// Container wires repositories, services, renderer and commands.
type Container struct {
	Config     config.Config
	Storage    storage.Providers
	Translator i18n.Translator
	Resolver   *resolver.Resolver
	Settings   *settings.Service
	Templates  *templates.Service
	Block      *block.Renderer
	Commands   *commands.Registry
	Metrics    *metrics.Collector
	Logger     logger.Logger
}

func isZeroConfig(cfg config.Config) bool {
	return reflect.ValueOf(cfg).IsZero()
}

// New constructs the container using the supplied options.
func New(opts Options) (*Container, error) {
	input := opts.Config
	if isZeroConfig(input) {
		input = config.Defaults()
	}
	cfg, err := config.Load(input)
	if err != nil {
		return nil, err
	}

	providers := opts.Storage
	if providers.Settings == nil {
		providers = storage.NewMemoryProviders()
	}

	lgr := logger.Named("trails", opts.LoggerProvider, opts.Logger)

	translator := opts.Translator
	if translator == nil {
		translator, err = translations.NewTranslator(cfg.Localization.DefaultLocale)
		if err != nil {
			return nil, err
		}
	}

	collector := opts.Metrics
	if collector == nil && cfg.Metrics.Enabled {
		collector = metrics.New(cfg.Metrics.Namespace)
	}

	resolverOpts := []resolver.Option{
		resolver.WithLogger(logger.Named("trails.resolver", opts.LoggerProvider, opts.Logger)),
		resolver.WithCandidateParams(cfg.Trails.CandidateParams...),
	}
	if collector != nil {
		resolverOpts = append(resolverOpts, resolver.WithRecorder(collector))
	}
	res := resolver.New(resolverOpts...)

	settingsDeps := settings.Dependencies{
		Repository:  providers.Settings,
		Transaction: providers.Transaction,
		Translator:  translator,
		Logger:      logger.Named("trails.settings", opts.LoggerProvider, opts.Logger),
		Hooks:       activity.Hooks(opts.Hooks),
		Config:      cfg,
	}
	if collector != nil {
		settingsDeps.Changes = collector
	}
	settingsSvc, err := settings.New(settingsDeps)
	if err != nil {
		return nil, err
	}

	tplOpts := append([]templates.Option{templates.WithDefaultLocale(cfg.Localization.DefaultLocale)}, opts.Templates...)
	tplSvc, err := templates.NewService(translator, tplOpts...)
	if err != nil {
		return nil, err
	}

	renderer := block.New(block.Dependencies{
		Resolver:  res,
		BaseURL:   block.BaseURLFunc(settingsBaseURL(settingsSvc)),
		Templates: tplSvc,
		Logger:    logger.Named("trails.block", opts.LoggerProvider, opts.Logger),
		Render:    cfg.Render,
	})

	cmdRegistry, err := commands.New(commands.Dependencies{
		Settings: settingsSvc,
		Block:    renderer,
		Logger:   lgr,
	})
	if err != nil {
		return nil, err
	}

	return &Container{
		Config:     cfg,
		Storage:    providers,
		Translator: translator,
		Resolver:   res,
		Settings:   settingsSvc,
		Templates:  tplSvc,
		Block:      renderer,
		Commands:   cmdRegistry,
		Metrics:    collector,
		Logger:     lgr,
	}, nil
}

func settingsBaseURL(svc *settings.Service) func(ctx context.Context) (string, error) {
	return func(ctx context.Context) (string, error) {
		current, err := svc.BaseURL(ctx)
		if err != nil {
			return "", err
		}
		return current.Value, nil
	}
}
