package resolver

import (
	"errors"
	"net/http"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to resolver error envelopes.
const (
	TextCodeNoEntity       = "TRAILS_NO_ENTITY"
	TextCodeMissingBaseURL = "TRAILS_MISSING_BASE_URL"
)

var (
	// ErrNoEntityInContext means the view context carries no entity-like param.
	ErrNoEntityInContext = errors.New("resolver: no entity found in current route")
	// ErrMissingBaseURL means no base URL has been configured.
	ErrMissingBaseURL = errors.New("resolver: base url is not configured")
)

func noEntityError() error {
	return goerrors.Wrap(ErrNoEntityInContext, goerrors.CategoryNotFound, ErrNoEntityInContext.Error()).
		WithCode(http.StatusNotFound).
		WithTextCode(TextCodeNoEntity)
}

func missingBaseURLError(entityID string) error {
	err := goerrors.Wrap(ErrMissingBaseURL, goerrors.CategoryBadInput, ErrMissingBaseURL.Error()).
		WithCode(http.StatusUnprocessableEntity).
		WithTextCode(TextCodeMissingBaseURL)
	if entityID != "" {
		err.WithMetadata(map[string]any{"entity_id": entityID})
	}
	return err
}

// IsNoEntity reports whether err describes a view without an entity.
func IsNoEntity(err error) bool {
	return hasTextCode(err, TextCodeNoEntity) || errors.Is(err, ErrNoEntityInContext)
}

// IsMissingBaseURL reports whether err describes an unconfigured base URL.
func IsMissingBaseURL(err error) bool {
	return hasTextCode(err, TextCodeMissingBaseURL) || errors.Is(err, ErrMissingBaseURL)
}

func hasTextCode(err error, code string) bool {
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		return false
	}
	return rich.TextCode == code
}
