package gocms

import (
	"strings"

	i18n "github.com/goliatone/go-i18n"

	"github.com/goliatone/go-trails/pkg/block"
	"github.com/goliatone/go-trails/pkg/settings"
	"github.com/goliatone/go-trails/pkg/translations"
)

// BlockDefinitionSnapshot mirrors the block definition payload go-cms imports.
type BlockDefinitionSnapshot struct {
	ID            string                     `json:"id"`
	Label         string                     `json:"label"`
	Category      string                     `json:"category"`
	Theme         string                     `json:"theme"`
	Configuration map[string]any             `json:"configuration"`
	Translations  []BlockTranslationSnapshot `json:"translations"`
	Metadata      map[string]any             `json:"metadata"`
}

// BlockTranslationSnapshot carries the localized admin labels.
type BlockTranslationSnapshot struct {
	Locale   string `json:"locale"`
	Label    string `json:"label"`
	Category string `json:"category"`
}

// BlockDefinition exports the trails block for go-cms. The form describes
// the editable configuration; locales defaults to the form locale.
func BlockDefinition(form settings.Form, translator i18n.Translator, locales ...string) BlockDefinitionSnapshot {
	def := BlockDefinitionSnapshot{
		ID:       block.ID,
		Label:    block.Label,
		Category: block.Category,
		Theme:    block.Theme,
		Configuration: map[string]any{
			"config_form": form.ID,
			"config_name": form.Config,
		},
		Metadata: map[string]any{
			"cache_max_age": 0,
		},
	}
	if field, ok := form.Field(settings.FieldBaseURL); ok {
		def.Configuration[settings.FieldBaseURL] = field.Value
		def.Metadata["base_url_scope"] = form.Scope
	}

	if len(locales) == 0 && strings.TrimSpace(form.Locale) != "" {
		locales = []string{form.Locale}
	}
	seen := make(map[string]struct{}, len(locales))
	for _, locale := range locales {
		locale = strings.TrimSpace(locale)
		if locale == "" {
			continue
		}
		if _, ok := seen[locale]; ok {
			continue
		}
		seen[locale] = struct{}{}
		def.Translations = append(def.Translations, BlockTranslationSnapshot{
			Locale:   locale,
			Label:    translations.Translate(translator, locale, translations.KeyBlockLabel),
			Category: translations.Translate(translator, locale, translations.KeyBlockCategory),
		})
	}
	return def
}
