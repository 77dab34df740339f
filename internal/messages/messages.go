// Package messages holds the user-facing strings in Hebrew and English.
package messages

import (
	"embed"
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Message identifiers
const (
	NotFound         = "NotFound"
	InputRequired    = "InputRequired"
	ConnectionError  = "ConnectionError"
	GenericError     = "GenericError"
	CountryDataError = "CountryDataError"
	CityDataError    = "CityDataError"
	GeneralDataError = "GeneralDataError"
	PageNotFound     = "PageNotFound"
)

// Catalog resolves message identifiers for a requested language.
type Catalog struct {
	bundle        *i18n.Bundle
	defaultLocale string
	supported     []language.Tag
	matcher       language.Matcher
}

// New loads the bundled locales. defaultLocale is used when a request names
// no supported language.
func New(defaultLocale string) (*Catalog, error) {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("invalid default locale %q: %w", defaultLocale, err)
	}

	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("failed to list locales: %w", err)
	}
	for _, e := range entries {
		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+e.Name()); err != nil {
			return nil, fmt.Errorf("failed to load locale %s: %w", e.Name(), err)
		}
	}

	// The default locale goes first so the matcher falls back to it
	supported := []language.Tag{tag}
	for _, t := range bundle.LanguageTags() {
		if t != tag {
			supported = append(supported, t)
		}
	}

	return &Catalog{
		bundle:        bundle,
		defaultLocale: tag.String(),
		supported:     supported,
		matcher:       language.NewMatcher(supported),
	}, nil
}

// Get returns the message for id in the first supported language of langs,
// which may be raw Accept-Language header values. Unknown ids come back as-is.
func (c *Catalog) Get(id string, langs ...string) string {
	langs = append(langs, c.defaultLocale)
	loc := i18n.NewLocalizer(c.bundle, langs...)

	msg, err := loc.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}

// Languages lists the loaded locales.
func (c *Catalog) Languages() []language.Tag {
	return c.bundle.LanguageTags()
}

// Match picks the loaded locale that best serves an Accept-Language value.
func (c *Catalog) Match(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return c.supported[0]
	}
	_, idx, _ := c.matcher.Match(tags...)
	return c.supported[idx]
}

// Direction reports the text direction of tag, "rtl" or "ltr".
func Direction(tag language.Tag) string {
	base, _ := tag.Base()
	switch base.String() {
	case "he", "ar", "fa", "ur", "yi":
		return "rtl"
	}
	return "ltr"
}
