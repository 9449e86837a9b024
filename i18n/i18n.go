package i18n

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
)

//go:embed locales/*.json
var localeFS embed.FS

// SupportedLocales lists the shipped string tables, fallback first.
var SupportedLocales = []string{"de", "en", "fr", "ja", "tr", "fa", "nds"}

// DefaultFallback is the locale every missing key falls back to.
const DefaultFallback = "de"

// Store persists the locale preference. session.FileStore satisfies it when
// opened with the "locale" key.
type Store interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, value string) error
}

// Config selects the initial and fallback locales.
type Config struct {
	Default   string
	Fallback  string
	Supported []string
}

// Bundle is the set of loaded string tables plus the active locale. Safe for
// concurrent use.
type Bundle struct {
	mu        sync.RWMutex
	locale    string
	fallback  string
	supported map[string]bool
	messages  map[string]map[string]string
	store     Store
}

// NewBundle loads the embedded tables and resolves the initial locale:
// persisted preference, then environment language, then cfg.Default.
func NewBundle(ctx context.Context, cfg Config, store Store) (*Bundle, error) {
	if cfg.Fallback == "" {
		cfg.Fallback = DefaultFallback
	}
	if cfg.Default == "" {
		cfg.Default = cfg.Fallback
	}
	if len(cfg.Supported) == 0 {
		cfg.Supported = SupportedLocales
	}

	b := &Bundle{
		fallback:  cfg.Fallback,
		supported: map[string]bool{},
		messages:  map[string]map[string]string{},
		store:     store,
	}
	for _, locale := range cfg.Supported {
		b.supported[locale] = true
		table, err := loadTable(locale)
		if err != nil {
			return nil, err
		}
		b.messages[locale] = table
	}
	if !b.supported[cfg.Fallback] {
		return nil, fmt.Errorf("fallback locale %q not in supported set", cfg.Fallback)
	}

	b.locale = b.initialLocale(ctx, cfg.Default)
	return b, nil
}

func (b *Bundle) initialLocale(ctx context.Context, def string) string {
	if b.store != nil {
		if saved, err := b.store.Load(ctx); err == nil && b.supported[saved] {
			return saved
		}
	}
	if env := EnvLanguage(); b.supported[env] {
		return env
	}
	if b.supported[def] {
		return def
	}
	return b.fallback
}

// EnvLanguage returns the two-letter language of the process environment
// (LC_ALL, then LANG), or "" when undetectable.
func EnvLanguage() string {
	for _, key := range []string{"LC_ALL", "LANG"} {
		value := os.Getenv(key)
		if value == "" || value == "C" || value == "POSIX" {
			continue
		}
		if i := strings.IndexAny(value, "_-."); i > 0 {
			value = value[:i]
		}
		return strings.ToLower(value)
	}
	return ""
}

// Locale returns the active locale.
func (b *Bundle) Locale() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.locale
}

// SetLocale switches the active locale and persists the preference when a
// store is attached. Unsupported locales are rejected.
func (b *Bundle) SetLocale(ctx context.Context, locale string) error {
	b.mu.Lock()
	if !b.supported[locale] {
		b.mu.Unlock()
		return fmt.Errorf("unsupported locale %q", locale)
	}
	b.locale = locale
	store := b.store
	b.mu.Unlock()

	if store != nil {
		if err := store.Save(ctx, locale); err != nil {
			return fmt.Errorf("persist locale: %w", err)
		}
	}
	return nil
}

// T looks key up in the active locale, falling back per key to the fallback
// locale. Unknown keys come back verbatim so a missing translation is
// visible instead of blank.
func (b *Bundle) T(key string) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if msg, ok := b.messages[b.locale][key]; ok {
		return msg
	}
	if msg, ok := b.messages[b.fallback][key]; ok {
		return msg
	}
	return key
}

func loadTable(locale string) (map[string]string, error) {
	data, err := localeFS.ReadFile("locales/" + locale + ".json")
	if err != nil {
		return nil, fmt.Errorf("load locale %q: %w", locale, err)
	}
	table := map[string]string{}
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("decode locale %q: %w", locale, err)
	}
	return table, nil
}
