package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/pantrylabs/pantryclient/transport"
)

// IngredientsAPI covers /ingredients.
type IngredientsAPI struct {
	channel *transport.Client
}

// List returns all ingredients, optionally filtered by storage location.
func (a *IngredientsAPI) List(ctx context.Context, location string) ([]Ingredient, error) {
	query := url.Values{}
	if location != "" {
		query.Set("location", location)
	}
	var out []Ingredient
	if err := a.channel.Get(ctx, "/ingredients/", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one ingredient by ID.
func (a *IngredientsAPI) Get(ctx context.Context, id int) (*Ingredient, error) {
	var out Ingredient
	if err := a.channel.Get(ctx, fmt.Sprintf("/ingredients/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create stores a new ingredient.
func (a *IngredientsAPI) Create(ctx context.Context, in Ingredient) (*Ingredient, error) {
	var out Ingredient
	if err := a.channel.Post(ctx, "/ingredients/", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces an ingredient.
func (a *IngredientsAPI) Update(ctx context.Context, id int, in Ingredient) (*Ingredient, error) {
	var out Ingredient
	if err := a.channel.Put(ctx, fmt.Sprintf("/ingredients/%d", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes an ingredient.
func (a *IngredientsAPI) Delete(ctx context.Context, id int) error {
	return a.channel.Delete(ctx, fmt.Sprintf("/ingredients/%d", id), nil)
}

// ExpiringSoon returns ingredients whose expiry date falls within the next
// days days (default 7 on the backend).
func (a *IngredientsAPI) ExpiringSoon(ctx context.Context, days int) ([]Ingredient, error) {
	query := url.Values{}
	if days > 0 {
		query.Set("days", strconv.Itoa(days))
	}
	var out []Ingredient
	if err := a.channel.Get(ctx, "/ingredients/expiring/soon", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}
