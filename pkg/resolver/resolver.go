package resolver

import (
	"reflect"
	"strings"

	"github.com/goliatone/go-trails/pkg/domain"
	"github.com/goliatone/go-trails/pkg/interfaces/logger"
)

// Outcomes reported to a Recorder after each resolution.
const (
	OutcomeDisplayed      = "displayed"
	OutcomeNoEntity       = "no_entity"
	OutcomeMissingBaseURL = "missing_base_url"
)

// Recorder observes resolution outcomes (metrics, tests).
type Recorder interface {
	Record(outcome string)
}

// Result is the resolution outcome. The zero value means "not displayed".
type Result struct {
	Displayed bool
	// EntityID is set whenever an entity was found, even without a base URL.
	EntityID  string
	IframeURL string
	// Reason explains why nothing is displayed; nil when Displayed.
	Reason error
}

// Resolver decides whether the trail iframe is shown for the current view
// and builds its source URL. It holds no per-request state and is safe for
// concurrent use.
type Resolver struct {
	logger     logger.Logger
	candidates []string
	recorder   Recorder
}

// Option configures the resolver.
type Option func(*Resolver)

// WithLogger sets the channel warnings and errors are reported to.
func WithLogger(lgr logger.Logger) Option {
	return func(r *Resolver) {
		if lgr != nil {
			r.logger = lgr
		}
	}
}

// WithCandidateParams lists route params to check first, in order, before
// falling back to the context order.
func WithCandidateParams(names ...string) Option {
	return func(r *Resolver) {
		for _, name := range names {
			if name = strings.TrimSpace(name); name != "" {
				r.candidates = append(r.candidates, name)
			}
		}
	}
}

// WithRecorder registers an outcome recorder.
func WithRecorder(rec Recorder) Option {
	return func(r *Resolver) {
		r.recorder = rec
	}
}

// New builds a resolver.
func New(opts ...Option) *Resolver {
	r := &Resolver{logger: logger.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// ResolveEntityID returns the identifier of the entity being viewed. When the
// context has none it logs a warning and returns false.
func (r *Resolver) ResolveEntityID(view domain.ViewContext) (string, bool) {
	if entity, ok := r.findEntity(view); ok {
		return entity.EntityID(), true
	}
	r.log().Warn("No entity found in current route.", "route", view.Route)
	return "", false
}

// BuildIframeURL joins baseURL and entityID into the iframe source. It returns
// false and logs an error when baseURL is blank. entityID is not escaped.
func (r *Resolver) BuildIframeURL(entityID, baseURL string) (string, bool) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		r.log().Error("Base URL is not configured.", "entity_id", entityID)
		return "", false
	}
	return strings.TrimRight(baseURL, "/") + "/" + entityID + ".html", true
}

// ShouldDisplay reports whether both an entity and a base URL are present.
func (r *Resolver) ShouldDisplay(view domain.ViewContext, baseURL string) bool {
	_, ok := r.ResolveEntityID(view)
	return ok && strings.TrimSpace(baseURL) != ""
}

// Resolve runs the full decision and reports the outcome to the recorder.
func (r *Resolver) Resolve(view domain.ViewContext, baseURL string) Result {
	entityID, ok := r.ResolveEntityID(view)
	if !ok {
		r.record(OutcomeNoEntity)
		return Result{Reason: noEntityError()}
	}
	iframeURL, ok := r.BuildIframeURL(entityID, baseURL)
	if !ok {
		r.record(OutcomeMissingBaseURL)
		return Result{EntityID: entityID, Reason: missingBaseURLError(entityID)}
	}
	r.record(OutcomeDisplayed)
	return Result{
		Displayed: true,
		EntityID:  entityID,
		IframeURL: iframeURL,
	}
}

// Explain returns the reason nothing would be displayed, or nil. It does not
// log, so callers can use it to annotate responses.
func (r *Resolver) Explain(view domain.ViewContext, baseURL string) error {
	entity, ok := r.findEntity(view)
	if !ok {
		return noEntityError()
	}
	if strings.TrimSpace(baseURL) == "" {
		return missingBaseURLError(entity.EntityID())
	}
	return nil
}

func (r *Resolver) findEntity(view domain.ViewContext) (domain.Entity, bool) {
	for _, name := range r.candidates {
		for _, param := range view.Params {
			if !strings.EqualFold(param.Name, name) {
				continue
			}
			if entity, ok := asEntity(param.Value); ok {
				return entity, true
			}
		}
	}
	for _, param := range view.Params {
		if entity, ok := asEntity(param.Value); ok {
			return entity, true
		}
	}
	return nil, false
}

// asEntity accepts values implementing domain.Entity with a non-empty id.
func asEntity(value any) (domain.Entity, bool) {
	entity, ok := value.(domain.Entity)
	if !ok || entity == nil {
		return nil, false
	}
	if rv := reflect.ValueOf(entity); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, false
	}
	if strings.TrimSpace(entity.EntityID()) == "" {
		return nil, false
	}
	return entity, true
}

func (r *Resolver) log() logger.Logger {
	if r == nil || r.logger == nil {
		return logger.Nop()
	}
	return r.logger
}

func (r *Resolver) record(outcome string) {
	if r.recorder != nil {
		r.recorder.Record(outcome)
	}
}
