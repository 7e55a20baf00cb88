// Package i18n provides internationalization support for error messages.
package i18n

import (
	"bytes"
	"strings"
	"text/template"

	"golang.org/x/text/language"
)

// BaseLocale is the locale every other catalog falls back to.
const BaseLocale = "en-US"

// Code is a machine-readable error code (duplicated from errors package to avoid cycle).
type Code = string

// Catalog maps error codes to message templates for a specific locale.
type Catalog struct {
	locale   string
	messages map[Code]string
}

// supported lists the built-in catalogs; the base locale comes first so the
// matcher falls back to it.
var supported = []*Catalog{enUSCatalog, ptBRCatalog}

var matcher = newMatcher(supported)

// GetCatalog returns the catalog for the given locale.
// Exact matches win; otherwise the closest supported language is used,
// falling back to en-US.
func GetCatalog(locale string) *Catalog {
	requested := strings.TrimSpace(locale)
	if requested == "" {
		return supported[0]
	}
	for _, c := range supported {
		if c.locale == requested {
			return c
		}
	}

	_, index, confidence := matcher.Match(language.Make(requested))
	if confidence == language.No {
		return supported[0]
	}
	return supported[index]
}

// Locale returns the locale of this catalog.
func (c *Catalog) Locale() string {
	return c.locale
}

// Format renders the message template with the given metadata.
// Falls back to the error code itself if no template is found.
// Templates are always executed even with nil/empty metadata to ensure
// consistent output (template variables without metadata render as empty).
func (c *Catalog) Format(code Code, metadata map[string]string) string {
	tmpl, ok := c.messages[code]
	if !ok {
		return code
	}

	if metadata == nil {
		metadata = map[string]string{}
	}

	t, err := template.New("msg").Parse(tmpl)
	if err != nil {
		return tmpl
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, metadata); err != nil {
		return tmpl
	}
	return buf.String()
}

func newMatcher(catalogs []*Catalog) language.Matcher {
	tags := make([]language.Tag, len(catalogs))
	for i, c := range catalogs {
		tags[i] = language.MustParse(c.locale)
	}
	return language.NewMatcher(tags)
}
