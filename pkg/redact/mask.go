package redact

import (
	"net/url"
	"strings"

	masker "github.com/goliatone/go-masker"
)

const (
	maskRule = "preserveEnds(2,2)"
	redacted = "xxxxx"
)

var secretParams = []string{
	"token", "access_token", "auth", "api_key", "apikey",
	"key", "secret", "signature", "sig", "password",
}

func isSecretParam(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, field := range secretParams {
		if name == field {
			return true
		}
	}
	return false
}

// MaskURL hides credentials embedded in raw: the userinfo password and
// token-like query values. Everything else is returned as is so log lines
// still show which host the iframes point to.
func MaskURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return maskString(raw)
	}
	changed := false
	if u.User != nil {
		if _, ok := u.User.Password(); ok {
			u.User = url.UserPassword(u.User.Username(), redacted)
			changed = true
		}
	}
	if u.RawQuery != "" {
		parts := strings.Split(u.RawQuery, "&")
		for i, part := range parts {
			name, value, found := strings.Cut(part, "=")
			if !found || value == "" || !isSecretParam(name) {
				continue
			}
			parts[i] = name + "=" + maskString(value)
			changed = true
		}
		u.RawQuery = strings.Join(parts, "&")
	}
	if !changed {
		return raw
	}
	return u.String()
}

// MaskFields returns a copy of fields with URL values masked, for audit
// metadata and structured log args.
func MaskFields(fields map[string]any) map[string]any {
	if len(fields) == 0 {
		return nil
	}
	out := make(map[string]any, len(fields))
	for key, value := range fields {
		if s, ok := value.(string); ok && (strings.HasSuffix(key, "url") || isSecretParam(key)) {
			if isSecretParam(key) {
				out[key] = maskString(s)
			} else {
				out[key] = MaskURL(s)
			}
			continue
		}
		out[key] = value
	}
	return out
}

func maskString(value string) string {
	if value == "" {
		return ""
	}
	masked, err := masker.Default.String(maskRule, value)
	if err != nil {
		return redacted
	}
	return masked
}
