package pantryclient

import (
	"context"
	"net/http"

	"github.com/pantrylabs/pantryclient/api"
	"github.com/pantrylabs/pantryclient/i18n"
	internalaudit "github.com/pantrylabs/pantryclient/internal/audit"
	internalmetrics "github.com/pantrylabs/pantryclient/internal/metrics"
	"github.com/pantrylabs/pantryclient/session"
	"github.com/pantrylabs/pantryclient/transport"
	"github.com/redis/go-redis/v9"
)

// Builder assembles a [Client]. Configure it during initialization, call
// Build once, then discard it.
type Builder struct {
	config Config
	redis  *redis.Client

	tokenStore  TokenStore
	localeStore i18n.Store
	routes      []Route
	nav         Navigator
	httpClient  *http.Client
	auditSink   AuditSink

	built bool
}

// New creates a Builder seeded with defaults.
func New() *Builder {
	return &Builder{config: defaultConfig()}
}

// WithConfig replaces the whole config.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithBaseURL sets the backend base URL, typically ending in /api.
func (b *Builder) WithBaseURL(baseURL string) *Builder {
	b.config.HTTP.BaseURL = baseURL
	return b
}

// WithTokenStore substitutes the durable token store. Takes precedence over
// WithRedis and the default file store.
func (b *Builder) WithTokenStore(store TokenStore) *Builder {
	b.tokenStore = store
	return b
}

// WithRedis backs the token store with redis instead of the local file.
func (b *Builder) WithRedis(client *redis.Client) *Builder {
	b.redis = client
	return b
}

// WithLocaleStore persists the locale preference.
func (b *Builder) WithLocaleStore(store i18n.Store) *Builder {
	b.localeStore = store
	return b
}

// WithRoutes replaces the default route table.
func (b *Builder) WithRoutes(routes []Route) *Builder {
	b.routes = routes
	return b
}

// WithNavigator attaches the navigation side-effect target. Without one,
// guard decisions are returned but never applied.
func (b *Builder) WithNavigator(nav Navigator) *Builder {
	b.nav = nav
	return b
}

// WithHTTPClient substitutes the underlying HTTP client.
func (b *Builder) WithHTTPClient(hc *http.Client) *Builder {
	b.httpClient = hc
	return b
}

// WithAuditSink attaches an audit sink and enables the dispatcher.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	b.config.Audit.Enabled = sink != nil
	return b
}

// WithMetricsEnabled toggles metric recording.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithLatencyHistograms toggles guard latency histograms.
func (b *Builder) WithLatencyHistograms(enabled bool) *Builder {
	b.config.Metrics.EnableLatencyHistograms = enabled
	return b
}

// Build validates the config and wires the client. The builder is single
// use.
func (b *Builder) Build() (*Client, error) {
	if b.built {
		return nil, ErrBuilderUsed
	}

	cfg := cloneConfig(b.config)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	store, err := b.buildTokenStore(cfg)
	if err != nil {
		return nil, err
	}

	registry := NewRouteRegistry()
	routes := b.routes
	if len(routes) == 0 {
		routes = DefaultRoutes()
	}
	for _, route := range routes {
		if err := registry.Register(route); err != nil {
			return nil, err
		}
	}
	registry.Freeze()

	if _, ok := registry.Lookup(cfg.Routes.LoginRoute); !ok {
		return nil, ErrRouteUnknown
	}
	if _, ok := registry.Lookup(cfg.Routes.DashboardRoute); !ok {
		return nil, ErrRouteUnknown
	}

	bundle, err := i18n.NewBundle(context.Background(), i18n.Config{
		Default:   cfg.Locale.Default,
		Fallback:  cfg.Locale.Fallback,
		Supported: cfg.Locale.Supported,
	}, b.localeStore)
	if err != nil {
		return nil, err
	}

	client := &Client{
		cfg:     cfg,
		session: session.New(store),
		bundle:  bundle,
		routes:  registry,
		nav:     b.nav,
		metrics: internalmetrics.New(internalmetrics.Config{
			Enabled:       cfg.Metrics.Enabled,
			EnableLatency: cfg.Metrics.EnableLatencyHistograms,
		}),
		audit: internalaudit.NewDispatcher(internalaudit.Config{
			Enabled:    cfg.Audit.Enabled,
			BufferSize: cfg.Audit.BufferSize,
			DropIfFull: cfg.Audit.DropIfFull,
		}, b.auditSink),
	}

	client.session.Subscribe(func(ev SessionEvent) {
		switch ev.Type {
		case session.EventTokenSet:
			client.metrics.Inc(internalmetrics.MetricTokenSet)
		case session.EventTokenCleared:
			client.metrics.Inc(internalmetrics.MetricTokenCleared)
		case session.EventHydrated:
			client.metrics.Inc(internalmetrics.MetricSessionHydrated)
		}
	})

	opts := []transport.Option{transport.WithObserver(transportObserver{client: client})}
	if b.httpClient != nil {
		opts = append(opts, transport.WithHTTPClient(b.httpClient))
	}
	channel, err := transport.New(transport.Config{
		BaseURL:    cfg.HTTP.BaseURL,
		Timeout:    cfg.HTTP.Timeout,
		UserAgent:  cfg.HTTP.UserAgent,
		LoginRoute: cfg.Routes.LoginRoute,
	}, client.session, b.nav, opts...)
	if err != nil {
		client.audit.Close()
		return nil, err
	}

	client.channel = channel
	client.api = api.New(channel, bundle.Locale)

	b.built = true
	return client, nil
}

// buildTokenStore picks the durable store: explicit store, then redis, then
// the local file.
func (b *Builder) buildTokenStore(cfg Config) (TokenStore, error) {
	if b.tokenStore != nil {
		return b.tokenStore, nil
	}
	if b.redis != nil {
		return session.NewRedisStore(b.redis, cfg.Session.RedisPrefix, cfg.Session.StorageKey, cfg.Session.RedisTTL)
	}

	path := cfg.Session.FilePath
	if path == "" {
		var err error
		path, err = session.DefaultFileStorePath()
		if err != nil {
			return nil, err
		}
	}
	return session.NewFileStore(path, cfg.Session.StorageKey)
}
