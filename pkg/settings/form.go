package settings

import "github.com/goliatone/go-trails/pkg/translations"

// FormID identifies the settings editor form.
const FormID = "trails_config_form"

// FieldBaseURL is the name of the only editable setting.
const FieldBaseURL = "base_url"

// Field describes one input of the settings form.
type Field struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Value       string `json:"value"`
}

// Form is the admin form definition, localized and prefilled.
type Form struct {
	ID     string  `json:"id"`
	Locale string  `json:"locale"`
	Config string  `json:"config"`
	Scope  string  `json:"scope"`
	Fields []Field `json:"fields"`
	Submit string  `json:"submit"`
}

// Field returns the named field.
func (f Form) Field(name string) (Field, bool) {
	for _, field := range f.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

func (s *Service) buildForm(locale, value, scope string) Form {
	return Form{
		ID:     FormID,
		Locale: locale,
		Config: s.key,
		Scope:  scope,
		Fields: []Field{{
			Name:        FieldBaseURL,
			Type:        "textfield",
			Title:       translations.Translate(s.translator, locale, translations.KeyFormBaseURLTitle),
			Description: translations.Translate(s.translator, locale, translations.KeyFormBaseURLDescription),
			Value:       value,
		}},
		Submit: translations.Translate(s.translator, locale, translations.KeyFormSubmit),
	}
}
