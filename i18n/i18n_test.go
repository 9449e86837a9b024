package i18n

import (
	"context"
	"errors"
	"sync"
	"testing"
)

type memStore struct {
	mu    sync.Mutex
	value string
	err   error
}

func (m *memStore) Load(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value, m.err
}

func (m *memStore) Save(_ context.Context, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.value = value
	return nil
}

func newBundleTest(t *testing.T, store Store) *Bundle {
	t.Helper()
	// Pin the default so the host environment language cannot leak in.
	t.Setenv("LC_ALL", "")
	t.Setenv("LANG", "")

	b, err := NewBundle(context.Background(), Config{Default: "de"}, store)
	if err != nil {
		t.Fatalf("new bundle: %v", err)
	}
	return b
}

func TestLookupAndFallback(t *testing.T) {
	b := newBundleTest(t, nil)

	if got := b.T("nav.recipes"); got != "Rezepte" {
		t.Fatalf("expected German string, got %q", got)
	}

	if err := b.SetLocale(context.Background(), "ja"); err != nil {
		t.Fatalf("set locale: %v", err)
	}
	if got := b.T("nav.recipes"); got != "レシピ" {
		t.Fatalf("expected Japanese string, got %q", got)
	}

	// Unknown keys come back verbatim, never blank.
	if got := b.T("nav.missing"); got != "nav.missing" {
		t.Fatalf("expected key echo for missing entry, got %q", got)
	}
}

func TestSetLocaleRejectsUnsupported(t *testing.T) {
	b := newBundleTest(t, nil)
	if err := b.SetLocale(context.Background(), "xx"); err == nil {
		t.Fatal("expected error for unsupported locale")
	}
	if b.Locale() != "de" {
		t.Fatalf("locale changed despite rejection: %q", b.Locale())
	}
}

func TestLocalePersistedAndRestored(t *testing.T) {
	store := &memStore{}
	b := newBundleTest(t, store)

	if err := b.SetLocale(context.Background(), "tr"); err != nil {
		t.Fatalf("set locale: %v", err)
	}
	if store.value != "tr" {
		t.Fatalf("expected persisted locale tr, got %q", store.value)
	}

	restored := newBundleTest(t, store)
	if restored.Locale() != "tr" {
		t.Fatalf("expected restored locale tr, got %q", restored.Locale())
	}
}

func TestCorruptPreferenceFallsBackToDefault(t *testing.T) {
	b := newBundleTest(t, &memStore{value: "klingon"})
	if b.Locale() != "de" {
		t.Fatalf("expected default locale, got %q", b.Locale())
	}

	failing := newBundleTest(t, &memStore{err: errors.New("disk gone")})
	if failing.Locale() != "de" {
		t.Fatalf("expected default locale on store failure, got %q", failing.Locale())
	}
}

func TestEnvironmentLanguageSeedsLocale(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LANG", "fr_FR.UTF-8")

	b, err := NewBundle(context.Background(), Config{Default: "de"}, nil)
	if err != nil {
		t.Fatalf("new bundle: %v", err)
	}
	if b.Locale() != "fr" {
		t.Fatalf("expected fr from environment, got %q", b.Locale())
	}
}

func TestContextOverride(t *testing.T) {
	ctx := WithLocale(context.Background(), "en")
	locale, ok := FromContext(ctx)
	if !ok || locale != "en" {
		t.Fatalf("expected en override, got %q (ok=%v)", locale, ok)
	}
	if _, ok := FromContext(context.Background()); ok {
		t.Fatal("expected no override on bare context")
	}
}

func TestAllLocalesShipAllKeys(t *testing.T) {
	b := newBundleTest(t, nil)

	reference := b.messages["de"]
	for _, locale := range SupportedLocales {
		table := b.messages[locale]
		for key := range reference {
			if _, ok := table[key]; !ok {
				t.Errorf("locale %s missing key %s", locale, key)
			}
		}
	}
}
