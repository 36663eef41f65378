package commands

import (
	"context"
	"errors"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-trails/pkg/block"
	"github.com/goliatone/go-trails/pkg/domain"
	"github.com/goliatone/go-trails/pkg/interfaces/logger"
	"github.com/goliatone/go-trails/pkg/settings"
)

// Message types.
const (
	TypeSaveSettings  = "trails.command.settings.save"
	TypeResetSettings = "trails.command.settings.reset"
	TypeGetSettings   = "trails.query.settings.form"
	TypeRenderBlock   = "trails.query.block.render"
)

// Catalog exposes go-command compatible handlers for host transports.
type Catalog struct {
	SaveSettings  command.Commander[SaveSettings]
	ResetSettings command.Commander[ResetSettings]
	GetSettings   command.Querier[GetSettings, settings.Form]
	RenderBlock   command.Querier[RenderBlock, block.Payload]
}

type settingsService interface {
	Save(ctx context.Context, in settings.Input) (*domain.TrailSettings, error)
	Reset(ctx context.Context, actorID string) error
	Form(ctx context.Context, locale string) (settings.Form, error)
}

type blockRenderer interface {
	Build(ctx context.Context, view domain.ViewContext, locale string) (block.Payload, error)
}

// Dependencies wires services into the command catalog.
type Dependencies struct {
	Settings settingsService
	Block    blockRenderer
	Logger   logger.Logger
}

// NewCatalog builds the command catalog using the supplied dependencies.
func NewCatalog(deps Dependencies) (*Catalog, error) {
	if deps.Settings == nil {
		return nil, errors.New("commands: settings service is required")
	}
	if deps.Block == nil {
		return nil, errors.New("commands: block renderer is required")
	}
	lgr := logger.Ensure(deps.Logger)

	return &Catalog{
		SaveSettings:  saveSettingsCommand{svc: deps.Settings, logger: lgr},
		ResetSettings: resetSettingsCommand{svc: deps.Settings, logger: lgr},
		GetSettings:   getSettingsQuery{svc: deps.Settings},
		RenderBlock:   renderBlockQuery{renderer: deps.Block},
	}, nil
}

// SaveSettings stores a new base URL. An empty value disables the iframe.
type SaveSettings struct {
	BaseURL string `json:"base_url" form:"base_url"`
	ActorID string `json:"actor_id,omitempty" form:"actor_id"`
}

func (SaveSettings) Type() string { return TypeSaveSettings }

// Validate accepts any value; the settings service owns base URL parsing.
func (SaveSettings) Validate() error { return nil }

type saveSettingsCommand struct {
	svc    settingsService
	logger logger.Logger
}

func (c saveSettingsCommand) Execute(ctx context.Context, msg SaveSettings) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	record, err := c.svc.Save(ctx, settings.Input{BaseURL: msg.BaseURL, ActorID: msg.ActorID})
	if err != nil {
		return err
	}
	c.logger.Debug("trails settings command executed", "type", msg.Type())
	storeResult(ctx, record)
	return nil
}

// ResetSettings drops the stored base URL.
type ResetSettings struct {
	ActorID string `json:"actor_id,omitempty"`
}

func (ResetSettings) Type() string { return TypeResetSettings }

func (ResetSettings) Validate() error { return nil }

type resetSettingsCommand struct {
	svc    settingsService
	logger logger.Logger
}

func (c resetSettingsCommand) Execute(ctx context.Context, msg ResetSettings) error {
	if err := c.svc.Reset(ctx, msg.ActorID); err != nil {
		return err
	}
	c.logger.Debug("trails settings command executed", "type", msg.Type())
	return nil
}

// GetSettings loads the admin form for a locale.
type GetSettings struct {
	Locale string `json:"locale,omitempty" query:"locale"`
}

func (GetSettings) Type() string { return TypeGetSettings }

func (GetSettings) Validate() error { return nil }

type getSettingsQuery struct {
	svc settingsService
}

func (q getSettingsQuery) Query(ctx context.Context, msg GetSettings) (settings.Form, error) {
	return q.svc.Form(ctx, msg.Locale)
}

// RenderBlock renders the trails block for a view.
type RenderBlock struct {
	View   domain.ViewContext
	Locale string
}

func (RenderBlock) Type() string { return TypeRenderBlock }

func (RenderBlock) Validate() error { return nil }

type renderBlockQuery struct {
	renderer blockRenderer
}

func (q renderBlockQuery) Query(ctx context.Context, msg RenderBlock) (block.Payload, error) {
	return q.renderer.Build(ctx, msg.View, msg.Locale)
}

func storeResult[T any](ctx context.Context, value T) {
	collector := command.ResultFromContext[T](ctx)
	if collector == nil {
		return
	}
	collector.Store(value)
}
