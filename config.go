package pantryclient

import (
	"errors"
	"strings"
	"time"

	"github.com/pantrylabs/pantryclient/i18n"
	"github.com/pantrylabs/pantryclient/session"
)

// Config carries every tunable of the client. Configure once, then treat as
// immutable; Build clones it.
type Config struct {
	HTTP      HTTPConfig
	Session   SessionConfig
	Routes    RoutesConfig
	Bootstrap BootstrapConfig
	Locale    LocaleConfig
	Audit     AuditConfig
	Metrics   MetricsConfig
}

/*
====================================
HTTP CONFIG
====================================
*/

// HTTPConfig holds the parameters of the outbound channel.
type HTTPConfig struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

/*
====================================
SESSION CONFIG
====================================
*/

// SessionConfig selects and parameterizes the durable token store.
type SessionConfig struct {
	// StorageKey is the key the token is stored under.
	StorageKey string
	// FilePath points the file store at a specific location. Empty means
	// the per-user default path.
	FilePath string
	// RedisPrefix namespaces the token key when a redis client is supplied.
	RedisPrefix string
	// RedisTTL bounds the token lifetime in redis. Zero means no expiry.
	RedisTTL time.Duration
}

/*
====================================
ROUTES CONFIG
====================================
*/

// RoutesConfig names the routes with special guard semantics.
type RoutesConfig struct {
	LoginRoute     string
	DashboardRoute string
}

/*
====================================
BOOTSTRAP CONFIG
====================================
*/

// BootstrapConfig controls startup behavior.
type BootstrapConfig struct {
	// DevTokenParam is the URL query parameter consumed as a token
	// override. Empty disables the override entirely.
	DevTokenParam string
	// PruneExpiredTokens clears tokens whose JWT expiry is visibly past
	// before any request is made with them.
	PruneExpiredTokens bool
	// PrefetchIdentity resolves the user behind a hydrated token during
	// Bootstrap instead of on first guarded navigation.
	PrefetchIdentity bool
}

/*
====================================
LOCALE CONFIG
====================================
*/

// LocaleConfig parameterizes the translation bundle.
type LocaleConfig struct {
	Default   string
	Fallback  string
	Supported []string
}

// AuditConfig controls the audit dispatcher.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// MetricsConfig controls metric recording.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

func defaultConfig() Config {
	return Config{
		HTTP: HTTPConfig{
			Timeout:   15 * time.Second,
			UserAgent: "pantryclient",
		},
		Session: SessionConfig{
			StorageKey:  session.DefaultStorageKey,
			RedisPrefix: "pantry",
		},
		Routes: RoutesConfig{
			LoginRoute:     "login",
			DashboardRoute: "dashboard",
		},
		Bootstrap: BootstrapConfig{
			DevTokenParam:      "__dev_token",
			PruneExpiredTokens: true,
			PrefetchIdentity:   true,
		},
		Locale: LocaleConfig{
			Default:   i18n.DefaultFallback,
			Fallback:  i18n.DefaultFallback,
			Supported: append([]string(nil), i18n.SupportedLocales...),
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 256,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

func cloneConfig(cfg Config) Config {
	out := cfg
	out.Locale.Supported = append([]string(nil), cfg.Locale.Supported...)
	return out
}

// Validate checks the config for contradictions before Build wires anything.
func (c Config) Validate() error {
	if strings.TrimSpace(c.HTTP.BaseURL) == "" {
		return errors.New("HTTP BaseURL required")
	}
	if c.HTTP.Timeout < 0 {
		return errors.New("HTTP Timeout must not be negative")
	}
	if c.Session.StorageKey == "" {
		return errors.New("Session StorageKey required")
	}
	if c.Routes.LoginRoute == "" {
		return errors.New("Routes LoginRoute required")
	}
	if c.Routes.DashboardRoute == "" {
		return errors.New("Routes DashboardRoute required")
	}
	if c.Bootstrap.DevTokenParam != "" && strings.ContainsAny(c.Bootstrap.DevTokenParam, "=&?") {
		return errors.New("Bootstrap DevTokenParam must be a plain query key")
	}
	if len(c.Locale.Supported) == 0 {
		return errors.New("Locale Supported must not be empty")
	}
	supported := map[string]bool{}
	for _, loc := range c.Locale.Supported {
		supported[loc] = true
	}
	if c.Locale.Default != "" && !supported[c.Locale.Default] {
		return errors.New("Locale Default not in Supported")
	}
	if c.Locale.Fallback != "" && !supported[c.Locale.Fallback] {
		return errors.New("Locale Fallback not in Supported")
	}
	if c.Audit.Enabled && c.Audit.BufferSize <= 0 {
		return errors.New("Audit BufferSize must be positive when audit is enabled")
	}
	return nil
}
