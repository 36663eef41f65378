package translations

import (
	"fmt"
	"strings"

	i18n "github.com/goliatone/go-i18n"
)

// Message keys used by the settings form and the block template.
const (
	KeyFormBaseURLTitle       = "trails.form.base_url.title"
	KeyFormBaseURLDescription = "trails.form.base_url.description"
	KeyFormSubmit             = "trails.form.submit"
	KeyBlockLabel             = "trails.block.label"
	KeyBlockCategory          = "trails.block.category"
	KeyIframeTitle            = "trails.iframe.title"
)

// Defaults maps every key to its English text. Callers use it when a
// translator is missing or has no entry for a key.
var Defaults = map[string]string{
	KeyFormBaseURLTitle:       "Base URL",
	KeyFormBaseURLDescription: "The base URL for the iframe sources.",
	KeyFormSubmit:             "Save configuration",
	KeyBlockLabel:             "Trails",
	KeyBlockCategory:          "Trails",
	KeyIframeTitle:            "Trail for %s",
}

// Translations returns the built-in catalogs.
func Translations() i18n.Translations {
	return i18n.Translations{
		"en": newCatalog("en", Defaults),
		"de": newCatalog("de", map[string]string{
			KeyFormBaseURLTitle:       "Basis-URL",
			KeyFormBaseURLDescription: "Die Basis-URL für die Iframe-Quellen.",
			KeyFormSubmit:             "Konfiguration speichern",
			KeyBlockLabel:             "Trails",
			KeyBlockCategory:          "Trails",
			KeyIframeTitle:            "Trail für %s",
		}),
	}
}

// NewTranslator builds a go-i18n translator over the built-in catalogs.
func NewTranslator(defaultLocale string) (i18n.Translator, error) {
	defaultLocale = strings.TrimSpace(defaultLocale)
	if defaultLocale == "" {
		defaultLocale = "en"
	}
	return i18n.NewSimpleTranslator(
		i18n.NewStaticStore(Translations()),
		i18n.WithTranslatorDefaultLocale(defaultLocale),
	)
}

// Translate resolves key for locale, falling back to the English default when
// the translator is nil or the key is missing.
func Translate(translator i18n.Translator, locale, key string, args ...any) string {
	if translator != nil {
		if out, err := translator.Translate(locale, key, args...); err == nil && out != "" {
			return out
		}
		if locale != "en" {
			if out, err := translator.Translate("en", key, args...); err == nil && out != "" {
				return out
			}
		}
	}
	text, ok := Defaults[key]
	if !ok {
		return key
	}
	if len(args) > 0 && strings.Contains(text, "%") {
		return fmt.Sprintf(text, args...)
	}
	return text
}

func newCatalog(locale string, entries map[string]string) *i18n.TranslationCatalog {
	catalog := &i18n.TranslationCatalog{
		Locale:   i18n.Locale{Code: locale},
		Messages: make(map[string]i18n.Message),
	}
	for key, template := range entries {
		msg := i18n.Message{}
		msg.SetContent(template)
		catalog.Messages[key] = msg
	}
	return catalog
}
