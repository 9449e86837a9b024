package i18n

import "context"

type localeContextKey struct{}

// WithLocale attaches a per-call locale override to ctx. Language-sensitive
// API calls prefer it over the bundle's active locale.
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// FromContext returns the locale override attached to ctx, if any.
func FromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	locale, ok := ctx.Value(localeContextKey{}).(string)
	if locale == "" {
		return "", false
	}
	return locale, ok
}
