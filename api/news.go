package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/pantrylabs/pantryclient/transport"
)

// NewsAPI covers /news. Listing is language-sensitive and paginated.
type NewsAPI struct {
	channel *transport.Client
	locale  LocaleFunc
}

// List returns published articles, newest first. skip and limit page the
// result; limit 0 leaves the backend default in place.
func (a *NewsAPI) List(ctx context.Context, skip, limit int) ([]NewsArticle, error) {
	query := url.Values{}
	if skip > 0 {
		query.Set("skip", strconv.Itoa(skip))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if lang := language(ctx, a.locale); lang != "" {
		query.Set("language", lang)
	}
	var out []NewsArticle
	if err := a.channel.Get(ctx, "/news/", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one article by ID.
func (a *NewsAPI) Get(ctx context.Context, id int) (*NewsArticle, error) {
	var out NewsArticle
	if err := a.channel.Get(ctx, fmt.Sprintf("/news/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create publishes an article. Admin only on the backend.
func (a *NewsAPI) Create(ctx context.Context, in NewsArticle) (*NewsArticle, error) {
	var out NewsArticle
	if err := a.channel.Post(ctx, "/news/", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces an article. Admin only on the backend.
func (a *NewsAPI) Update(ctx context.Context, id int, in NewsArticle) (*NewsArticle, error) {
	var out NewsArticle
	if err := a.channel.Put(ctx, fmt.Sprintf("/news/%d", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes an article. Admin only on the backend.
func (a *NewsAPI) Delete(ctx context.Context, id int) error {
	return a.channel.Delete(ctx, fmt.Sprintf("/news/%d", id), nil)
}
