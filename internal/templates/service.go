package templates

import (
	"context"
	"fmt"
	"strings"
	"sync"

	i18n "github.com/goliatone/go-i18n"
	gotemplate "github.com/goliatone/go-template"
)

// Service renders named pongo2 templates with the go-i18n helpers registered.
type Service struct {
	renderer      *gotemplate.Engine
	helpers       *helperRegistry
	defaultLocale string
	localeKey     string

	mu        sync.RWMutex
	templates map[string]string
	renderMu  sync.Mutex
}

type serviceOptions struct {
	defaultLocale  string
	helperFuncs    []map[string]any
	rendererOpts   []gotemplate.Option
	missingHandler i18n.MissingTranslationHandler
	localeKey      string
	templates      map[string]string
}

// Option configures the template service.
type Option func(*serviceOptions)

// WithDefaultLocale overrides the locale used when render calls do not provide one.
func WithDefaultLocale(locale string) Option {
	return func(so *serviceOptions) {
		so.defaultLocale = locale
	}
}

// WithHelperFuncs registers additional helper functions with the renderer.
func WithHelperFuncs(funcs map[string]any) Option {
	return func(so *serviceOptions) {
		if len(funcs) == 0 {
			return
		}
		so.helperFuncs = append(so.helperFuncs, funcs)
	}
}

// WithRendererOptions forwards options directly to go-template's renderer.
func WithRendererOptions(opts ...gotemplate.Option) Option {
	return func(so *serviceOptions) {
		so.rendererOpts = append(so.rendererOpts, opts...)
	}
}

// WithLocaleKey customizes the key injected into the data map to expose the locale.
func WithLocaleKey(key string) Option {
	return func(so *serviceOptions) {
		if key == "" {
			return
		}
		so.localeKey = key
	}
}

// WithMissingTranslationHandler customizes how go-i18n helpers surface missing keys.
func WithMissingTranslationHandler(handler i18n.MissingTranslationHandler) Option {
	return func(so *serviceOptions) {
		so.missingHandler = handler
	}
}

// WithTemplate registers or overrides a named template source.
func WithTemplate(name, source string) Option {
	return func(so *serviceOptions) {
		if so.templates == nil {
			so.templates = make(map[string]string)
		}
		so.templates[name] = source
	}
}

// NewService builds the template service wiring the helper registry, renderer,
// and localization translator together. The trails iframe template is
// registered by default.
func NewService(translator i18n.Translator, opts ...Option) (*Service, error) {
	if translator == nil {
		return nil, ErrTranslatorRequired
	}

	settings := serviceOptions{
		localeKey: "locale",
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&settings)
		}
	}

	defaultLocale := strings.TrimSpace(settings.defaultLocale)
	if defaultLocale == "" {
		if provider, ok := translator.(interface{ DefaultLocale() string }); ok {
			defaultLocale = provider.DefaultLocale()
		}
	}
	if defaultLocale == "" {
		defaultLocale = "en"
	}

	rendererOpts := []gotemplate.Option{
		gotemplate.WithBaseDir("."),
	}
	rendererOpts = append(rendererOpts, settings.rendererOpts...)

	renderer, err := gotemplate.NewRenderer(rendererOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRendererConfig, err)
	}

	service := &Service{
		renderer:      renderer,
		helpers:       newHelperRegistry(renderer),
		defaultLocale: defaultLocale,
		localeKey:     settings.localeKey,
		templates:     builtinTemplates(),
	}
	for name, source := range settings.templates {
		service.templates[name] = source
	}

	helperCfg := i18n.HelperConfig{
		LocaleKey:         service.localeKey,
		TemplateHelperKey: "t",
		OnMissing:         settings.missingHandler,
	}
	service.helpers.Register(i18n.TemplateHelpers(translator, helperCfg))

	for _, funcs := range settings.helperFuncs {
		service.helpers.Register(funcs)
	}

	return service, nil
}

// Register adds or replaces a named template.
func (s *Service) Register(name, source string) {
	if s == nil || strings.TrimSpace(name) == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates[name] = source
}

// Has reports whether a template is registered under name.
func (s *Service) Has(name string) bool {
	if s == nil {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.templates[name]
	return ok
}

// RegisterHelpers adds helper functions to the underlying renderer.
func (s *Service) RegisterHelpers(funcs map[string]any) {
	if s == nil {
		return
	}
	s.helpers.Register(funcs)
}

// Render executes the named template for locale with data.
func (s *Service) Render(ctx context.Context, name, locale string, data map[string]any) (string, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return "", err
		}
	}
	if s == nil {
		return "", ErrRendererConfig
	}
	s.mu.RLock()
	source, ok := s.templates[name]
	s.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}

	locale = strings.TrimSpace(locale)
	if locale == "" {
		locale = s.defaultLocale
	}
	payload := cloneData(data)
	payload[s.localeKey] = locale

	s.renderMu.Lock()
	out, err := s.renderer.RenderString(source, payload)
	s.renderMu.Unlock()
	if err != nil {
		return "", fmt.Errorf("templates: render %s: %w", name, err)
	}
	return out, nil
}

func cloneData(data map[string]any) map[string]any {
	out := make(map[string]any, len(data)+1)
	for k, v := range data {
		out[k] = v
	}
	return out
}

// Helpers lists the registered helper names.
func (s *Service) Helpers() []string {
	if s == nil {
		return nil
	}
	return s.helpers.Names()
}
