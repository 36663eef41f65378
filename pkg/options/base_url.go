package options

import (
	"strings"

	opts "github.com/goliatone/go-options"
)

// Scope names used when layering the trails base URL.
const (
	ScopeDefaults = "defaults"
	ScopeConfig   = "config"
	ScopeStored   = "stored"
)

const baseURLPath = "trails.base_url"

// BaseURLInput lists the candidate base URL sources, lowest priority first.
// Stored is nil when no administrator value has been saved; a non-nil empty
// string means the administrator cleared the URL on purpose.
type BaseURLInput struct {
	Default    string
	Configured string
	Stored     *string
}

// BaseURL is the effective base URL along with the scope that supplied it.
type BaseURL struct {
	Value string
	Scope string
	Trace opts.Trace
}

// ResolveBaseURL layers defaults < config < stored and returns the winning
// value. Empty default/config values do not shadow lower layers.
func ResolveBaseURL(input BaseURLInput) (BaseURL, error) {
	snapshots := []Snapshot{{
		Scope:      opts.NewScope(ScopeDefaults, 0),
		Data:       baseURLData(strings.TrimSpace(input.Default)),
		SnapshotID: ScopeDefaults,
	}}
	source := ScopeDefaults

	if configured := strings.TrimSpace(input.Configured); configured != "" {
		snapshots = append(snapshots, Snapshot{
			Scope:      opts.NewScope(ScopeConfig, 10),
			Data:       baseURLData(configured),
			SnapshotID: ScopeConfig,
		})
		source = ScopeConfig
	}
	if input.Stored != nil {
		snapshots = append(snapshots, Snapshot{
			Scope:      opts.NewScope(ScopeStored, 20),
			Data:       baseURLData(strings.TrimSpace(*input.Stored)),
			SnapshotID: ScopeStored,
		})
		source = ScopeStored
	}

	resolver, err := NewResolver(snapshots...)
	if err != nil {
		return BaseURL{}, err
	}
	value, trace, err := resolver.ResolveString(baseURLPath)
	if err != nil {
		return BaseURL{}, err
	}
	// An empty stored value must win even if a merge strategy treats "" as unset.
	if input.Stored != nil {
		value = strings.TrimSpace(*input.Stored)
	}
	return BaseURL{Value: value, Scope: source, Trace: trace}, nil
}

func baseURLData(value string) map[string]any {
	return map[string]any{
		"trails": map[string]any{
			"base_url": value,
		},
	}
}
