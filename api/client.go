package api

import (
	"context"

	"github.com/pantrylabs/pantryclient/i18n"
	"github.com/pantrylabs/pantryclient/transport"
)

// LocaleFunc supplies the current UI locale for language-sensitive calls.
type LocaleFunc func() string

// Client bundles the per-resource endpoint groups.
type Client struct {
	Auth          *AuthAPI
	Ingredients   *IngredientsAPI
	ShoppingLists *ShoppingListsAPI
	Recipes       *RecipesAPI
	News          *NewsAPI
}

// New wires the endpoint groups over the shared channel. locale may be nil;
// language-sensitive calls then rely solely on per-call context overrides.
func New(channel *transport.Client, locale LocaleFunc) *Client {
	return &Client{
		Auth:          &AuthAPI{channel: channel},
		Ingredients:   &IngredientsAPI{channel: channel},
		ShoppingLists: &ShoppingListsAPI{channel: channel},
		Recipes:       &RecipesAPI{channel: channel, locale: locale},
		News:          &NewsAPI{channel: channel, locale: locale},
	}
}

// language resolves the value for a language query parameter: per-call
// context override first, then the bundle's active locale.
func language(ctx context.Context, locale LocaleFunc) string {
	if override, ok := i18n.FromContext(ctx); ok {
		return override
	}
	if locale != nil {
		return locale()
	}
	return ""
}
