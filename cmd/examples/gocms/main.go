package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/goliatone/go-trails/adapters/gocms"
	"github.com/goliatone/go-trails/pkg/config"
	"github.com/goliatone/go-trails/pkg/settings"
	"github.com/goliatone/go-trails/pkg/storage"
	"github.com/goliatone/go-trails/pkg/trails"
)

const routeJSON = `{
	"name": "entity.node.canonical",
	"path": "/node/42",
	"params": [
		{"name": "view_mode", "value": "full"},
		{"name": "node", "value": {"type": "article", "id": 42}}
	]
}`

func main() {
	ctx := context.Background()

	cfg := config.Defaults()
	cfg.Metrics.Enabled = false
	module, err := trails.NewModule(trails.ModuleOptions{
		Config:  cfg,
		Storage: storage.NewMemoryProviders(),
	})
	if err != nil {
		log.Fatalf("build module: %v", err)
	}

	if _, err := module.Settings().Save(ctx, settings.Input{
		BaseURL: "https://trails.example.com/viz/",
		ActorID: "demo",
	}); err != nil {
		log.Fatalf("save settings: %v", err)
	}

	var snapshot gocms.RouteSnapshot
	if err := json.Unmarshal([]byte(routeJSON), &snapshot); err != nil {
		log.Fatalf("decode route: %v", err)
	}
	payload, err := module.Render(ctx, gocms.ViewContextFromRouteSnapshot(snapshot), "en")
	if err != nil {
		log.Fatalf("render: %v", err)
	}
	fmt.Printf("iframe: %s\n", payload.IframeURL)
	fmt.Printf("text:\n%s\n", payload.Text)

	form, err := module.Settings().Form(ctx, "en")
	if err != nil {
		log.Fatalf("form: %v", err)
	}
	definition, err := json.MarshalIndent(gocms.BlockDefinition(form, nil, "en", "de"), "", "  ")
	if err != nil {
		log.Fatalf("encode definition: %v", err)
	}
	fmt.Println(string(definition))
}
