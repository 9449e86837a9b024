package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/pantrylabs/pantryclient/transport"
)

// ShoppingListsAPI covers /shopping-lists and its nested items.
type ShoppingListsAPI struct {
	channel *transport.Client
}

// List returns all shopping lists with their items.
func (a *ShoppingListsAPI) List(ctx context.Context) ([]ShoppingList, error) {
	var out []ShoppingList
	if err := a.channel.Get(ctx, "/shopping-lists/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one shopping list by ID.
func (a *ShoppingListsAPI) Get(ctx context.Context, id int) (*ShoppingList, error) {
	var out ShoppingList
	if err := a.channel.Get(ctx, fmt.Sprintf("/shopping-lists/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create stores a new shopping list.
func (a *ShoppingListsAPI) Create(ctx context.Context, in ShoppingList) (*ShoppingList, error) {
	var out ShoppingList
	if err := a.channel.Post(ctx, "/shopping-lists/", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a shopping list and its items.
func (a *ShoppingListsAPI) Delete(ctx context.Context, id int) error {
	return a.channel.Delete(ctx, fmt.Sprintf("/shopping-lists/%d", id), nil)
}

// AddItem appends an item to the list.
func (a *ShoppingListsAPI) AddItem(ctx context.Context, listID int, item ShoppingItem) (*ShoppingItem, error) {
	var out ShoppingItem
	if err := a.channel.Post(ctx, fmt.Sprintf("/shopping-lists/%d/items", listID), nil, item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateItem toggles the purchased state of an item. The flag travels as a
// query parameter, matching the backend's signature.
func (a *ShoppingListsAPI) UpdateItem(ctx context.Context, itemID int, isPurchased bool) (*ShoppingItem, error) {
	query := url.Values{}
	query.Set("is_purchased", strconv.FormatBool(isPurchased))
	var out ShoppingItem
	if err := a.channel.Put(ctx, fmt.Sprintf("/shopping-lists/items/%d", itemID), query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteItem removes one item.
func (a *ShoppingListsAPI) DeleteItem(ctx context.Context, itemID int) error {
	return a.channel.Delete(ctx, fmt.Sprintf("/shopping-lists/items/%d", itemID), nil)
}
