package gocms

import (
	"strings"

	"github.com/goliatone/go-trails/pkg/domain"
)

// RouteSnapshot mirrors the JSON go-cms emits for the route being rendered.
type RouteSnapshot struct {
	Name   string               `json:"name"`
	Path   string               `json:"path"`
	Params []RouteParamSnapshot `json:"params"`
}

// RouteParamSnapshot is a single route parameter. Value holds either a
// scalar or an entity map such as {"type": "node", "id": "42"}.
type RouteParamSnapshot struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// PageSnapshot mirrors the go-cms page payload when no route params are
// available.
type PageSnapshot struct {
	ID          string         `json:"id"`
	ContentType string         `json:"content_type"`
	Slug        string         `json:"slug"`
	Route       string         `json:"route"`
	Metadata    map[string]any `json:"metadata"`
}

// ViewContextFromRouteSnapshot converts route params into a view context,
// preserving their order. Entity maps become domain.EntityRef values; other
// values are copied as-is.
func ViewContextFromRouteSnapshot(snapshot RouteSnapshot) domain.ViewContext {
	route := strings.TrimSpace(snapshot.Name)
	if route == "" {
		route = strings.TrimSpace(snapshot.Path)
	}
	params := make([]domain.Param, 0, len(snapshot.Params))
	for _, param := range snapshot.Params {
		name := strings.TrimSpace(param.Name)
		if name == "" {
			continue
		}
		params = append(params, domain.Param{Name: name, Value: paramValue(name, param.Value)})
	}
	return domain.NewViewContext(route, params...)
}

// ViewContextFromPageSnapshot exposes the page as a single "node" entity.
func ViewContextFromPageSnapshot(page PageSnapshot) domain.ViewContext {
	route := strings.TrimSpace(page.Route)
	if route == "" {
		route = strings.TrimSpace(page.Slug)
	}
	id := strings.TrimSpace(page.ID)
	if id == "" {
		return domain.NewViewContext(route)
	}
	kind := strings.TrimSpace(page.ContentType)
	if kind == "" {
		kind = "node"
	}
	return domain.NewViewContext(route, domain.Param{
		Name:  "node",
		Value: domain.EntityRef{Type: kind, ID: id},
	})
}

func paramValue(name string, value any) any {
	switch v := value.(type) {
	case domain.Entity:
		return v
	case map[string]any:
		if ref, ok := entityRef(name, v); ok {
			return ref
		}
		return cloneMap(v)
	case domain.JSONMap:
		if ref, ok := entityRef(name, v); ok {
			return ref
		}
		return cloneJSONMap(v)
	default:
		return cloneValue(value)
	}
}

func entityRef(name string, source map[string]any) (domain.EntityRef, bool) {
	id := firstString(source, "id")
	if id == "" {
		id = firstString(source, "entity_id")
	}
	if strings.TrimSpace(id) == "" {
		return domain.EntityRef{}, false
	}
	kind := firstString(source, "type")
	if kind == "" {
		kind = firstString(source, "entity_type")
	}
	if kind == "" {
		kind = name
	}
	return domain.EntityRef{Type: kind, ID: id}, true
}
