package commands

import (
	command "github.com/goliatone/go-command"

	internalcommands "github.com/goliatone/go-trails/internal/commands"
	"github.com/goliatone/go-trails/pkg/block"
	"github.com/goliatone/go-trails/pkg/interfaces/logger"
	"github.com/goliatone/go-trails/pkg/settings"
)

// Re-export message types so consumers need not import internal packages.
type (
	SaveSettings  = internalcommands.SaveSettings
	ResetSettings = internalcommands.ResetSettings
	GetSettings   = internalcommands.GetSettings
	RenderBlock   = internalcommands.RenderBlock
)

// Registry exposes go-command compatible handlers backed by the module services.
type Registry struct {
	Catalog       *internalcommands.Catalog
	SaveSettings  command.Commander[SaveSettings]
	ResetSettings command.Commander[ResetSettings]
	GetSettings   command.Querier[GetSettings, settings.Form]
	RenderBlock   command.Querier[RenderBlock, block.Payload]
}

// Dependencies mirror the internal command dependencies but keep them public.
type Dependencies struct {
	Settings *settings.Service
	Block    *block.Renderer
	Logger   logger.Logger
}

// New builds the registry using the provided dependencies.
func New(deps Dependencies) (*Registry, error) {
	internalDeps := internalcommands.Dependencies{Logger: deps.Logger}
	if deps.Settings != nil {
		internalDeps.Settings = deps.Settings
	}
	if deps.Block != nil {
		internalDeps.Block = deps.Block
	}
	catalog, err := internalcommands.NewCatalog(internalDeps)
	if err != nil {
		return nil, err
	}
	return &Registry{
		Catalog:       catalog,
		SaveSettings:  catalog.SaveSettings,
		ResetSettings: catalog.ResetSettings,
		GetSettings:   catalog.GetSettings,
		RenderBlock:   catalog.RenderBlock,
	}, nil
}

// Commanders returns the mutating handlers so callers can register them with
// go-command registries.
func (r *Registry) Commanders() []any {
	if r == nil {
		return nil
	}
	return []any{
		r.SaveSettings,
		r.ResetSettings,
	}
}

// Queriers returns the read-only handlers.
func (r *Registry) Queriers() []any {
	if r == nil {
		return nil
	}
	return []any{
		r.GetSettings,
		r.RenderBlock,
	}
}
