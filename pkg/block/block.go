package block

import (
	"context"
	"strings"

	"github.com/jaytaylor/html2text"

	"github.com/goliatone/go-trails/internal/templates"
	"github.com/goliatone/go-trails/pkg/config"
	"github.com/goliatone/go-trails/pkg/domain"
	"github.com/goliatone/go-trails/pkg/interfaces/logger"
	"github.com/goliatone/go-trails/pkg/resolver"
)

// Block plugin metadata.
const (
	ID       = "trails_block"
	Theme    = templates.IframeTemplate
	Label    = "Trails"
	Category = "Trails"
)

// BaseURLSource supplies the effective base URL at render time.
type BaseURLSource interface {
	CurrentBaseURL(ctx context.Context) (string, error)
}

// BaseURLFunc adapts a function to BaseURLSource.
type BaseURLFunc func(ctx context.Context) (string, error)

func (f BaseURLFunc) CurrentBaseURL(ctx context.Context) (string, error) {
	return f(ctx)
}

// Payload is what a host needs to render the block. The zero value means
// "render nothing".
type Payload struct {
	Theme         string `json:"theme,omitempty"`
	IframeURL     string `json:"iframe_url,omitempty"`
	EntityID      string `json:"entity_id,omitempty"`
	ShouldDisplay bool   `json:"should_display"`
	HTML          string `json:"html,omitempty"`
	Text          string `json:"text,omitempty"`
	CacheMaxAge   int    `json:"cache_max_age"`
}

// Empty reports whether there is nothing to render.
func (p Payload) Empty() bool {
	return p.Theme == "" && p.IframeURL == ""
}

// Dependencies wires the renderer.
type Dependencies struct {
	Resolver  *resolver.Resolver
	BaseURL   BaseURLSource
	Templates *templates.Service
	Logger    logger.Logger
	Render    config.RenderConfig
}

// Renderer builds the trails block for the current view.
type Renderer struct {
	resolver  *resolver.Resolver
	baseURL   BaseURLSource
	templates *templates.Service
	logger    logger.Logger
	render    config.RenderConfig
}

// New builds a renderer. A nil resolver falls back to a default one.
func New(deps Dependencies) *Renderer {
	res := deps.Resolver
	if res == nil {
		res = resolver.New(resolver.WithLogger(deps.Logger))
	}
	render := deps.Render
	defaults := config.Defaults().Render
	if strings.TrimSpace(render.Theme) == "" {
		render.Theme = defaults.Theme
	}
	if strings.TrimSpace(render.Width) == "" {
		render.Width = defaults.Width
	}
	if strings.TrimSpace(render.Height) == "" {
		render.Height = defaults.Height
	}
	return &Renderer{
		resolver:  res,
		baseURL:   deps.BaseURL,
		templates: deps.Templates,
		logger:    logger.Ensure(deps.Logger),
		render:    render,
	}
}

// Build resolves the entity and iframe URL for view. Missing data degrades to
// an empty payload with a log entry; only base URL lookups and template
// failures return errors.
func (r *Renderer) Build(ctx context.Context, view domain.ViewContext, locale string) (Payload, error) {
	baseURL, err := r.currentBaseURL(ctx)
	if err != nil {
		r.logger.Error("trails block base url lookup failed", "error", err)
		return Payload{}, err
	}

	res := r.resolver.Resolve(view, baseURL)
	if !res.Displayed {
		if res.EntityID == "" {
			r.logger.Warn("No entity ID found for trails block.", "route", view.Route)
		} else {
			r.logger.Error("Could not build iframe URL for entity.", "entity_id", res.EntityID)
		}
		return Payload{}, nil
	}

	entityID, iframeURL := res.EntityID, res.IframeURL
	payload := Payload{
		Theme:         r.render.Theme,
		IframeURL:     iframeURL,
		EntityID:      entityID,
		ShouldDisplay: res.Displayed,
		CacheMaxAge:   0,
	}

	if r.templates != nil && r.templates.Has(r.render.Theme) {
		html, err := r.templates.Render(ctx, r.render.Theme, locale, map[string]any{
			"entity_id":      entityID,
			"iframe_url":     iframeURL,
			"should_display": payload.ShouldDisplay,
			"width":          r.render.Width,
			"height":         r.render.Height,
		})
		if err != nil {
			r.logger.Error("trails block render failed", "entity_id", entityID, "error", err)
			return Payload{}, err
		}
		payload.HTML = strings.TrimSpace(html)
		text, err := html2text.FromString(payload.HTML, html2text.Options{OmitLinks: false})
		if err != nil {
			r.logger.Warn("trails block text conversion failed", "entity_id", entityID, "error", err)
		} else {
			payload.Text = strings.TrimSpace(text)
		}
	}
	return payload, nil
}

func (r *Renderer) currentBaseURL(ctx context.Context) (string, error) {
	if r.baseURL == nil {
		return "", nil
	}
	return r.baseURL.CurrentBaseURL(ctx)
}
