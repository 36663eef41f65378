package options

import (
	"errors"
	"fmt"

	opts "github.com/goliatone/go-options"
	layering "github.com/goliatone/go-options/layering"
)

// Snapshot captures the immutable payload associated with a scope layer.
type Snapshot struct {
	Scope      opts.Scope
	Data       map[string]any
	SnapshotID string
}

// Resolver wraps a go-options Options value exposing typed helpers.
type Resolver struct {
	options *opts.Options[map[string]any]
}

var (
	// ErrNoSnapshots signals that at least one scope snapshot must be provided.
	ErrNoSnapshots = errors.New("options: at least one snapshot is required")
)

// NewResolver merges the provided scope snapshots ordered by their scope
// priority and returns a resolver exposing trace helpers.
func NewResolver(snapshots ...Snapshot) (*Resolver, error) {
	if len(snapshots) == 0 {
		return nil, ErrNoSnapshots
	}

	layers := make([]opts.Layer[map[string]any], 0, len(snapshots))
	for _, snap := range snapshots {
		if snap.Scope.Name == "" {
			return nil, fmt.Errorf("options: snapshot scope name is required")
		}
		layerOpts := []opts.LayerOption[map[string]any]{}
		if snap.SnapshotID != "" {
			layerOpts = append(layerOpts, opts.WithSnapshotID[map[string]any](snap.SnapshotID))
		}
		layers = append(layers, opts.NewLayer(snap.Scope, cloneMap(snap.Data), layerOpts...))
	}

	stack, err := opts.NewStack(layers...)
	if err != nil {
		return nil, err
	}
	merged, err := stack.Merge()
	if err != nil {
		return nil, err
	}
	return &Resolver{options: merged}, nil
}

// Resolve fetches the value stored at path and returns the accompanying trace.
func (r *Resolver) Resolve(path string) (any, opts.Trace, error) {
	if r == nil || r.options == nil {
		return nil, opts.Trace{Path: path}, fmt.Errorf("options: resolver not initialised")
	}
	return r.options.ResolveWithTrace(path)
}

// ResolveString resolves the value at path and ensures it is a string.
func (r *Resolver) ResolveString(path string) (string, opts.Trace, error) {
	value, trace, err := r.Resolve(path)
	if err != nil {
		return "", trace, err
	}
	str, ok := value.(string)
	if !ok {
		return "", trace, fmt.Errorf("options: path %s is not a string", path)
	}
	return str, trace, nil
}

func cloneMap(src map[string]any) map[string]any {
	if len(src) == 0 {
		return nil
	}
	return layering.Clone(src)
}
