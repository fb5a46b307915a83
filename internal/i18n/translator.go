// Package i18n resolves translation keys against per-language catalogs
// loaded from disk. Lookup never fails: a missing key renders as the
// key itself so a hole in a catalog degrades visibly instead of
// crashing a page.
package i18n

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Default is the storefront's default language.
const Default = "mk"

// Supported lists the storefront languages in display order.
var Supported = []string{"mk", "en", "es", "sq"}

// Normalize maps an arbitrary language code onto a supported one,
// falling back to the default for anything unknown.
func Normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	for _, s := range Supported {
		if lang == s {
			return s
		}
	}
	return Default
}

// Direction returns the document text direction for a language. All
// four storefront languages read left to right; the mapping exists so
// the answer stays data, not an assumption scattered over handlers.
func Direction(lang string) string {
	return "ltr"
}

// Translator loads one JSON catalog per language, lazily. Catalogs are
// nested objects; keys are dotted paths into them.
type Translator struct {
	dir string

	mu       sync.RWMutex
	catalogs map[string]map[string]any
	missed   map[string]struct{}
}

// New creates a translator reading catalogs from dir/<lang>.json.
func New(dir string) *Translator {
	return &Translator{
		dir:      dir,
		catalogs: make(map[string]map[string]any),
		missed:   make(map[string]struct{}),
	}
}

// T resolves key ("pages.about.title") in the catalog for lang. A key
// with no translation returns the key itself and logs once per key.
func (t *Translator) T(lang, key string) string {
	lang = Normalize(lang)
	catalog := t.catalog(lang)

	if value, ok := lookup(catalog, key); ok {
		return value
	}

	t.warnOnce(lang, key)
	return key
}

// catalog returns the loaded catalog for lang, loading it on first use.
// A language whose file cannot be read falls back to the default
// catalog; if even that fails, lookups see an empty catalog.
func (t *Translator) catalog(lang string) map[string]any {
	t.mu.RLock()
	c, ok := t.catalogs[lang]
	t.mu.RUnlock()
	if ok {
		return c
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if c, ok := t.catalogs[lang]; ok {
		return c
	}

	c, err := t.load(lang)
	if err != nil {
		log.Printf("locale %s failed to load, falling back to %s: %v", lang, Default, err)
		c, err = t.load(Default)
		if err != nil {
			log.Printf("default locale failed to load: %v", err)
			c = map[string]any{}
		}
	}
	t.catalogs[lang] = c
	return c
}

func (t *Translator) load(lang string) (map[string]any, error) {
	path := filepath.Join(t.dir, lang+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read locale file: %w", err)
	}
	var catalog map[string]any
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse locale file %s: %w", path, err)
	}
	return catalog, nil
}

func (t *Translator) warnOnce(lang, key string) {
	miss := lang + ":" + key
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, seen := t.missed[miss]; seen {
		return
	}
	t.missed[miss] = struct{}{}
	log.Printf("translation missing: %s (%s)", key, lang)
}

// lookup walks the dotted path down the nested catalog.
func lookup(catalog map[string]any, key string) (string, bool) {
	parts := strings.Split(key, ".")
	var current any = catalog
	for _, part := range parts {
		node, ok := current.(map[string]any)
		if !ok {
			return "", false
		}
		current, ok = node[part]
		if !ok {
			return "", false
		}
	}
	value, ok := current.(string)
	return value, ok
}
