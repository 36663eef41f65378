package domain

import "strings"

// Entity is a content object with a stable identifier. Any route parameter
// value implementing it counts as "the entity being viewed".
type Entity interface {
	EntityID() string
	EntityType() string
}

// EntityRef is a lightweight Entity used by transports that only know the
// type and identifier taken from the request path.
type EntityRef struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

func (e EntityRef) EntityID() string   { return e.ID }
func (e EntityRef) EntityType() string { return e.Type }

// Param is a single named value attached to the current route.
type Param struct {
	Name  string
	Value any
}

// ViewContext lists the parameters of the page currently being rendered in
// the order supplied by the routing layer.
type ViewContext struct {
	Route  string
	Params []Param
}

// NewViewContext builds a context for route with the provided params.
func NewViewContext(route string, params ...Param) ViewContext {
	return ViewContext{
		Route:  route,
		Params: append([]Param(nil), params...),
	}
}

// With returns a copy of the context with an extra param appended.
func (v ViewContext) With(name string, value any) ViewContext {
	out := ViewContext{Route: v.Route, Params: make([]Param, 0, len(v.Params)+1)}
	out.Params = append(out.Params, v.Params...)
	out.Params = append(out.Params, Param{Name: name, Value: value})
	return out
}

// Get returns the first param value registered under name (case-insensitive).
func (v ViewContext) Get(name string) (any, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false
	}
	for _, p := range v.Params {
		if strings.EqualFold(p.Name, name) {
			return p.Value, true
		}
	}
	return nil, false
}

// Len reports how many params the context carries.
func (v ViewContext) Len() int {
	return len(v.Params)
}
