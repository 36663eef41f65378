package main

import (
	"context"
	"strings"

	goconfig "github.com/goliatone/go-config/config"

	"github.com/goliatone/go-trails/pkg/config"
)

// envPrefix scopes environment overrides. Nested keys use a double
// underscore, e.g. TRAILS_SERVER__PORT or TRAILS_TRAILS__BASE_URL.
const envPrefix = "TRAILS_"

// loadConfig layers defaults < optional config file < TRAILS_ environment
// variables through a go-config container and normalizes the result with
// config.Load. A missing file is not an error.
func loadConfig(ctx context.Context, path string) (config.Config, error) {
	base := config.Defaults()
	container := goconfig.New(&base)

	var providers []goconfig.ProviderBuilder[*config.Config]
	if path = strings.TrimSpace(path); path != "" {
		providers = append(providers, goconfig.OptionalProvider(goconfig.FileProvider[*config.Config](path)))
	}
	providers = append(providers, goconfig.EnvProvider[*config.Config](envPrefix, "__"))
	container.WithProvider(providers...)

	if err := container.Load(ctx); err != nil {
		return config.Config{}, err
	}
	return config.Load(container.Raw())
}
