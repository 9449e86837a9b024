package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/pantrylabs/pantryclient/transport"
)

// RecipesAPI covers /recipes, including the AI-assisted generation
// endpoints. Listing and generation are language-sensitive.
type RecipesAPI struct {
	channel *transport.Client
	locale  LocaleFunc
}

// List returns stored recipes, optionally restricted to healthy ones.
func (a *RecipesAPI) List(ctx context.Context, healthyOnly bool) ([]Recipe, error) {
	query := url.Values{}
	query.Set("healthy_only", strconv.FormatBool(healthyOnly))
	a.setLanguage(ctx, query)
	var out []Recipe
	if err := a.channel.Get(ctx, "/recipes/", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one recipe by ID.
func (a *RecipesAPI) Get(ctx context.Context, id int) (*Recipe, error) {
	var out Recipe
	if err := a.channel.Get(ctx, fmt.Sprintf("/recipes/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create stores a recipe.
func (a *RecipesAPI) Create(ctx context.Context, in Recipe) (*Recipe, error) {
	var out Recipe
	if err := a.channel.Post(ctx, "/recipes/", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a recipe.
func (a *RecipesAPI) Delete(ctx context.Context, id int) error {
	return a.channel.Delete(ctx, fmt.Sprintf("/recipes/%d", id), nil)
}

// FindMatching returns recipes cookable from the ingredients on hand.
func (a *RecipesAPI) FindMatching(ctx context.Context) ([]Recipe, error) {
	query := url.Values{}
	a.setLanguage(ctx, query)
	var out []Recipe
	if err := a.channel.Get(ctx, "/recipes/match/ingredients", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SeedSample asks the backend to create its sample recipe set.
func (a *RecipesAPI) SeedSample(ctx context.Context) error {
	return a.channel.Post(ctx, "/recipes/seed-sample", nil, nil, nil)
}

// Generate asks the AI to draft a recipe from the available ingredients,
// optionally constrained to a dietary style.
func (a *RecipesAPI) Generate(ctx context.Context, dietary string) (*AISuggestion, error) {
	query := url.Values{}
	if dietary != "" {
		query.Set("dietary", dietary)
	}
	a.setLanguage(ctx, query)
	var out AISuggestion
	if err := a.channel.Post(ctx, "/recipes/generate", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SaveFromAI persists an AI-generated recipe text, optionally under a
// caller-chosen title.
func (a *RecipesAPI) SaveFromAI(ctx context.Context, text, title string) (*Recipe, error) {
	query := url.Values{}
	a.setLanguage(ctx, query)
	body := map[string]string{"text": text}
	if title != "" {
		body["title"] = title
	}
	var out Recipe
	if err := a.channel.Post(ctx, "/recipes/save-from-ai", query, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AISuggestions returns the most recent AI drafts, newest first.
func (a *RecipesAPI) AISuggestions(ctx context.Context, limit int) ([]AISuggestion, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	var out []AISuggestion
	if err := a.channel.Get(ctx, "/recipes/ai/suggestions", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *RecipesAPI) setLanguage(ctx context.Context, query url.Values) {
	if lang := language(ctx, a.locale); lang != "" {
		query.Set("language", lang)
	}
}
