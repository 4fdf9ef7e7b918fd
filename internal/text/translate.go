package text

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/text/language"
)

// TextID identifies a translatable string.
type TextID uint32

var ErrNoTranslation = errors.New("no translation")

// Translator looks up the display string of a text id in a language.
type Translator interface {
	Lookup(id TextID, lang string) (string, error)
}

// Catalog is an in-memory Translator. Lookups for languages it does not know,
// or ids missing from the requested language, fall back to the default
// language.
type Catalog struct {
	defaultLang string
	strings     map[string]map[TextID]string
	tags        []language.Tag
	langs       []string
	matcher     language.Matcher
}

func NewCatalog(defaultLang string) *Catalog {
	c := &Catalog{defaultLang: defaultLang, strings: map[string]map[TextID]string{}}
	c.addLanguage(defaultLang)
	return c
}

func (c *Catalog) addLanguage(lang string) {
	if _, ok := c.strings[lang]; ok {
		return
	}
	c.strings[lang] = map[TextID]string{}
	c.tags = append(c.tags, language.Make(lang))
	c.langs = append(c.langs, lang)
	c.matcher = language.NewMatcher(c.tags)
}

// Add sets the string for id in lang.
func (c *Catalog) Add(lang string, id TextID, s string) *Catalog {
	c.addLanguage(lang)
	c.strings[lang][id] = s
	return c
}

// Default returns the fallback language.
func (c *Catalog) Default() string { return c.defaultLang }

// Languages lists the languages with at least one string, sorted.
func (c *Catalog) Languages() []string {
	out := make([]string, 0, len(c.strings))
	for lang, table := range c.strings {
		if len(table) > 0 {
			out = append(out, lang)
		}
	}
	sort.Strings(out)
	return out
}

// resolve maps a requested language (e.g. "de-CH") onto a catalog language.
func (c *Catalog) resolve(lang string) string {
	if _, ok := c.strings[lang]; ok {
		return lang
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return c.defaultLang
	}
	_, idx, conf := c.matcher.Match(tag)
	if conf == language.No {
		return c.defaultLang
	}
	return c.langs[idx]
}

func (c *Catalog) Lookup(id TextID, lang string) (string, error) {
	if s, ok := c.strings[c.resolve(lang)][id]; ok {
		return s, nil
	}
	if s, ok := c.strings[c.defaultLang][id]; ok {
		return s, nil
	}
	return "", fmt.Errorf("%w: text %d", ErrNoTranslation, id)
}

// Overlay serves runtime strings, such as the prompt being confirmed, ahead
// of a base Translator.
type Overlay struct {
	Base   Translator
	Values map[TextID]string
}

func (o Overlay) Lookup(id TextID, lang string) (string, error) {
	if s, ok := o.Values[id]; ok {
		return s, nil
	}
	if o.Base == nil {
		return "", fmt.Errorf("%w: text %d", ErrNoTranslation, id)
	}
	return o.Base.Lookup(id, lang)
}
