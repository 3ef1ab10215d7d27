// Package localization provides functionality for internationalization (i18n).
// It loads one nested translation document per language from JSON files and
// resolves dotted key paths ("contactForm.fields.email.label") against them,
// including {{ path }} token substitution inside arbitrary template strings.
package localization

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
)

// DefaultLanguage is the reference language of the datasets. Lookups fall
// back to it before falling back to the key itself.
const DefaultLanguage = "fr"

var tokenPattern = regexp.MustCompile(`\{\{\s*([\w.-]+)\s*\}\}`)

// Localizer manages the translations for the application.
// It holds one arbitrarily nested dictionary per language, exactly as
// parsed from the language's JSON document.
type Localizer struct {
	translations map[string]map[string]interface{}
	mu           sync.RWMutex
}

// NewLocalizer creates and returns a new Localizer instance.
// It loads all translations from the provided directory path. The directory
// should contain JSON files named with the language code (e.g. "en.json"),
// each a nested object of at least three levels where the content needs it.
func NewLocalizer(path string) (*Localizer, error) {
	l := &Localizer{
		translations: make(map[string]map[string]interface{}),
	}

	files, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read localization directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".json") {
			continue
		}

		lang := strings.TrimSuffix(file.Name(), ".json")
		data, err := os.ReadFile(filepath.Join(path, file.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read localization file %s: %w", file.Name(), err)
		}

		var dict map[string]interface{}
		if err := json.Unmarshal(data, &dict); err != nil {
			return nil, fmt.Errorf("failed to parse localization file %s: %w", file.Name(), err)
		}

		l.translations[lang] = dict
	}

	return l, nil
}

// NewLocalizerFromDictionaries builds a Localizer from already-parsed
// dictionaries. Used by tests and by callers that fetch dictionaries from
// a remote source instead of the local data directory.
func NewLocalizerFromDictionaries(dicts map[string]map[string]interface{}) *Localizer {
	l := &Localizer{translations: make(map[string]map[string]interface{})}
	for lang, dict := range dicts {
		l.translations[lang] = dict
	}
	return l
}

// Languages returns the loaded language tags.
func (l *Localizer) Languages() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	langs := make([]string, 0, len(l.translations))
	for lang := range l.translations {
		langs = append(langs, lang)
	}
	return langs
}

// Dictionary returns the raw nested dictionary for a language, nil when
// the language is not loaded. The handler serves this verbatim so the
// browser-side token applicator works from the same document.
func (l *Localizer) Dictionary(lang string) map[string]interface{} {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.translations[lang]
}

// Resolve walks a dotted key path through the language's nested dictionary.
// It reports false when the language is unknown, any segment is missing, or
// the leaf is not a string: only scalar strings are valid substitutions, so
// a path that lands on a nested object counts as "not found". It never
// panics on malformed paths.
func (l *Localizer) Resolve(lang, path string) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return resolve(l.translations[lang], path)
}

func resolve(dict map[string]interface{}, path string) (string, bool) {
	if dict == nil || path == "" {
		return "", false
	}

	var current interface{} = dict
	for _, part := range strings.Split(path, ".") {
		node, ok := current.(map[string]interface{})
		if !ok {
			return "", false
		}
		current, ok = node[part]
		if !ok {
			return "", false
		}
	}

	s, ok := current.(string)
	return s, ok
}

// GetString returns the localized string for a given key path and language.
// If the language or the key is not found, it falls back to the default
// language, and finally to the key itself.
func (l *Localizer) GetString(lang, key string) string {
	if value, ok := l.Resolve(lang, key); ok {
		return value
	}

	if lang != DefaultLanguage {
		if value, ok := l.Resolve(DefaultLanguage, key); ok {
			return value
		}
	}

	return key
}

// RegionLabel returns the translated label of a region tag, falling back
// to the raw tag when no translation exists.
func (l *Localizer) RegionLabel(lang, region string) string {
	if value, ok := l.Resolve(lang, "regions."+region); ok {
		return value
	}
	return region
}

// Substitute replaces every {{ path }} token in the template with the
// value resolved for the given language. Whitespace around the path is
// ignored. Unresolvable tokens are left verbatim so partially translated
// content stays visible; callers that re-translate must always start from
// the original template, never from a previous output.
func (l *Localizer) Substitute(lang, template string) string {
	return tokenPattern.ReplaceAllStringFunc(template, func(token string) string {
		path := tokenPattern.FindStringSubmatch(token)[1]
		if value, ok := l.Resolve(lang, path); ok {
			return value
		}
		return token
	})
}
