package settings

import (
	"context"
	"errors"
	"net/url"
	"strings"

	i18n "github.com/goliatone/go-i18n"

	"github.com/goliatone/go-trails/pkg/activity"
	"github.com/goliatone/go-trails/pkg/config"
	"github.com/goliatone/go-trails/pkg/domain"
	"github.com/goliatone/go-trails/pkg/interfaces/logger"
	"github.com/goliatone/go-trails/pkg/interfaces/store"
	"github.com/goliatone/go-trails/pkg/options"
	"github.com/goliatone/go-trails/pkg/redact"
)

// Change actions reported to a ChangeRecorder.
const (
	ActionSave  = "save"
	ActionReset = "reset"
)

// ChangeRecorder observes settings changes (metrics).
type ChangeRecorder interface {
	RecordSettingsChange(action string)
}

// Dependencies wires the settings service.
type Dependencies struct {
	Repository  store.SettingsRepository
	Transaction store.TransactionManager
	Translator  i18n.Translator
	Logger      logger.Logger
	Hooks       activity.Hooks
	Changes     ChangeRecorder
	Config      config.Config
}

// Input is a settings submission.
type Input struct {
	BaseURL string
	ActorID string
}

// Service is the settings editor: it reads, writes and resets the base URL
// and describes the admin form.
type Service struct {
	repo          store.SettingsRepository
	tx            store.TransactionManager
	translator    i18n.Translator
	logger        logger.Logger
	hooks         activity.Hooks
	changes       ChangeRecorder
	key           string
	seed          string
	defaultLocale string
}

// New builds the settings service.
func New(deps Dependencies) (*Service, error) {
	if deps.Repository == nil {
		return nil, ErrRepositoryRequired
	}
	tx := deps.Transaction
	if tx == nil {
		tx = &store.NopTransactionManager{}
	}
	key := strings.TrimSpace(deps.Config.Trails.SettingsKey)
	if key == "" {
		key = config.DefaultSettingsKey
	}
	locale := strings.TrimSpace(deps.Config.Localization.DefaultLocale)
	if locale == "" {
		locale = "en"
	}
	return &Service{
		repo:          deps.Repository,
		tx:            tx,
		translator:    deps.Translator,
		logger:        logger.Ensure(deps.Logger),
		hooks:         deps.Hooks,
		changes:       deps.Changes,
		key:           key,
		seed:          strings.TrimSpace(deps.Config.Trails.BaseURL),
		defaultLocale: locale,
	}, nil
}

// Key is the config name the settings are stored under.
func (s *Service) Key() string {
	return s.key
}

// Get returns the stored record, if any.
func (s *Service) Get(ctx context.Context) (*domain.TrailSettings, bool, error) {
	record, err := s.repo.GetByKey(ctx, s.key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, internalError(err, "settings: load failed")
	}
	return record, true, nil
}

// BaseURL returns the effective base URL: stored value, else the configured
// seed, else empty.
func (s *Service) BaseURL(ctx context.Context) (options.BaseURL, error) {
	record, ok, err := s.Get(ctx)
	if err != nil {
		return options.BaseURL{}, err
	}
	input := options.BaseURLInput{Configured: s.seed}
	if ok {
		stored := record.BaseURL
		input.Stored = &stored
	}
	resolved, err := options.ResolveBaseURL(input)
	if err != nil {
		return options.BaseURL{}, internalError(err, "settings: resolve base url")
	}
	return resolved, nil
}

// Save trims and persists the submitted base URL. An empty value is stored
// as is and disables the iframe.
func (s *Service) Save(ctx context.Context, in Input) (*domain.TrailSettings, error) {
	value := strings.TrimSpace(in.BaseURL)
	if err := validateBaseURL(value); err != nil {
		return nil, err
	}

	var saved *domain.TrailSettings
	var previous string
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		record, ok, err := s.Get(ctx)
		if err != nil {
			return err
		}
		if !ok {
			previous = s.seed
			record = &domain.TrailSettings{Key: s.key}
			record.BaseURL = value
			record.UpdatedBy = strings.TrimSpace(in.ActorID)
			if err := s.repo.Create(ctx, record); err != nil {
				return internalError(err, "settings: create failed")
			}
			saved = record
			return nil
		}
		previous = record.BaseURL
		record.BaseURL = value
		record.UpdatedBy = strings.TrimSpace(in.ActorID)
		if err := s.repo.Update(ctx, record); err != nil {
			return internalError(err, "settings: update failed")
		}
		saved = record
		return nil
	})
	if err != nil {
		s.logger.Error("trails settings save failed", "error", err)
		return nil, err
	}

	s.logger.Info("trails settings saved",
		"key", s.key,
		"base_url", redact.MaskURL(value),
		"actor", in.ActorID,
	)
	s.notify(ctx, activity.VerbSettingsUpdated, in.ActorID, previous, value)
	s.record(ActionSave)
	return saved, nil
}

// Reset deletes the stored record so the configured seed applies again.
func (s *Service) Reset(ctx context.Context, actorID string) error {
	var previous string
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		record, ok, err := s.Get(ctx)
		if err != nil || !ok {
			return err
		}
		previous = record.BaseURL
		if err := s.repo.DeleteByKey(ctx, s.key); err != nil && !errors.Is(err, store.ErrNotFound) {
			return internalError(err, "settings: reset failed")
		}
		return nil
	})
	if err != nil {
		s.logger.Error("trails settings reset failed", "error", err)
		return err
	}
	s.logger.Info("trails settings reset", "key", s.key, "actor", actorID)
	s.notify(ctx, activity.VerbSettingsReset, actorID, previous, s.seed)
	s.record(ActionReset)
	return nil
}

// Form describes the admin form for locale, prefilled with the effective value.
func (s *Service) Form(ctx context.Context, locale string) (Form, error) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		locale = s.defaultLocale
	}
	current, err := s.BaseURL(ctx)
	if err != nil {
		return Form{}, err
	}
	return s.buildForm(locale, current.Value, current.Scope), nil
}

func (s *Service) notify(ctx context.Context, verb, actorID, previous, next string) {
	if len(s.hooks) == 0 {
		return
	}
	s.hooks.Notify(ctx, activity.Event{
		Verb:       verb,
		ActorID:    strings.TrimSpace(actorID),
		ObjectType: activity.ObjectTypeSettings,
		ObjectID:   s.key,
		Metadata: redact.MaskFields(map[string]any{
			"old_base_url": previous,
			"new_base_url": next,
		}),
	})
}

func (s *Service) record(action string) {
	if s.changes != nil {
		s.changes.RecordSettingsChange(action)
	}
}

func validateBaseURL(value string) error {
	if value == "" {
		return nil
	}
	if _, err := url.Parse(value); err != nil {
		return validationError(FieldBaseURL, ErrInvalidBaseURL.Error())
	}
	return nil
}
