package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-router"

	"github.com/goliatone/go-trails/pkg/commands"
	"github.com/goliatone/go-trails/pkg/domain"
	"github.com/goliatone/go-trails/pkg/interfaces/logger"
	"github.com/goliatone/go-trails/pkg/metrics"
	"github.com/goliatone/go-trails/pkg/trails"
)

// Route paths.
const (
	BlockPath    = "/trails/:entity_type/:entity_id"
	SettingsPath = "/admin/trails/settings"
	MetricsPath  = "/metrics"
)

// BlockRoute is the route name given to views built from the block endpoint.
const BlockRoute = "trails.block"

// API serves the trails block and the settings editor over HTTP.
type API struct {
	commands *commands.Registry
	metrics  *metrics.Collector
	logger   logger.Logger
}

// New builds the API on top of a module.
func New(module *trails.Module) (*API, error) {
	if module == nil || module.Commands() == nil {
		return nil, errors.New("httpapi: module is required")
	}
	return &API{
		commands: module.Commands(),
		metrics:  module.Metrics(),
		logger:   module.Logger(),
	}, nil
}

// Mount installs middleware, the metrics endpoint and every route on srv.
func (a *API) Mount(srv router.Server[*fiber.App]) {
	app := srv.WrappedRouter()
	app.Use(a.Middleware())
	if a.metrics != nil {
		app.Get(MetricsPath, adaptor.HTTPHandler(a.metrics.Handler()))
	}
	a.Register(srv.Router())
}

// Register adds the block and settings routes.
func (a *API) Register(r router.Router[*fiber.App]) {
	r.Get(BlockPath, a.RenderBlock)

	admin := r.Group("/admin/trails")
	admin.Get("/settings", a.GetSettings)
	admin.Post("/settings", a.SaveSettings)
	admin.Delete("/settings", a.ResetSettings)
}

// Middleware disables caching and records request metrics.
func (a *API) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		c.Set(fiber.HeaderCacheControl, "no-store, max-age=0")
		err := c.Next()
		c.Set(fiber.HeaderCacheControl, "no-store, max-age=0")
		if a.metrics != nil {
			status := c.Response().StatusCode()
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
			a.metrics.RecordHTTPRequest(c.Method(), c.Route().Path, status, time.Since(start))
		}
		return err
	}
}

// RenderBlock handles GET /trails/:entity_type/:entity_id.
func (a *API) RenderBlock(c router.Context) error {
	status, body := a.renderBlock(c.Context(),
		c.Param("entity_type", ""),
		c.Param("entity_id", ""),
		c.Query("locale"),
	)
	return c.JSON(status, body)
}

// GetSettings handles GET /admin/trails/settings.
func (a *API) GetSettings(c router.Context) error {
	status, body := a.settingsForm(c.Context(), c.Query("locale"))
	return c.JSON(status, body)
}

// SaveSettings handles POST /admin/trails/settings.
func (a *API) SaveSettings(c router.Context) error {
	var req commands.SaveSettings
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "invalid request"})
	}
	status, body := a.saveSettings(c.Context(), req)
	return c.JSON(status, body)
}

// ResetSettings handles DELETE /admin/trails/settings. The optional actor_id
// query param is recorded in the audit log.
func (a *API) ResetSettings(c router.Context) error {
	status, body := a.resetSettings(c.Context(), strings.TrimSpace(c.Query("actor_id")))
	return c.JSON(status, body)
}

func (a *API) renderBlock(ctx context.Context, entityType, entityID, locale string) (int, any) {
	view := domain.NewViewContext(BlockRoute)
	entityType, entityID = strings.TrimSpace(entityType), strings.TrimSpace(entityID)
	if entityID != "" {
		view = view.With(entityType, domain.EntityRef{Type: entityType, ID: entityID})
	}
	payload, err := a.commands.RenderBlock.Query(ctx, commands.RenderBlock{View: view, Locale: locale})
	if err != nil {
		return a.errorResponse(err)
	}
	if payload.Empty() {
		return http.StatusNoContent, nil
	}
	return http.StatusOK, payload
}

func (a *API) settingsForm(ctx context.Context, locale string) (int, any) {
	form, err := a.commands.GetSettings.Query(ctx, commands.GetSettings{Locale: locale})
	if err != nil {
		return a.errorResponse(err)
	}
	return http.StatusOK, form
}

func (a *API) saveSettings(ctx context.Context, req commands.SaveSettings) (int, any) {
	if err := req.Validate(); err != nil {
		return http.StatusBadRequest, map[string]any{"error": map[string]any{
			"text_code": "TRAILS_INVALID_SETTINGS",
			"message":   err.Error(),
		}}
	}
	if err := a.commands.SaveSettings.Execute(ctx, req); err != nil {
		return a.errorResponse(err)
	}
	return a.settingsForm(ctx, "")
}

func (a *API) resetSettings(ctx context.Context, actorID string) (int, any) {
	if err := a.commands.ResetSettings.Execute(ctx, commands.ResetSettings{ActorID: actorID}); err != nil {
		return a.errorResponse(err)
	}
	return a.settingsForm(ctx, "")
}

func (a *API) errorResponse(err error) (int, any) {
	var rich *goerrors.Error
	if goerrors.As(err, &rich) {
		status := rich.Code
		if status == 0 {
			status = http.StatusInternalServerError
		}
		if status >= http.StatusInternalServerError {
			a.logger.Error("trails request failed", "error", err)
		}
		return status, map[string]any{"error": map[string]any{
			"text_code": rich.TextCode,
			"category":  fmt.Sprint(rich.Category),
			"message":   rich.Message,
		}}
	}
	a.logger.Error("trails request failed", "error", err)
	return http.StatusInternalServerError, map[string]any{"error": map[string]any{
		"text_code": "TRAILS_INTERNAL",
		"message":   "internal error",
	}}
}
