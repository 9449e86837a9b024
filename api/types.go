package api

// Ingredient is a pantry item. ExpiryDate is a date-only value in
// YYYY-MM-DD form; timestamps elsewhere arrive as the backend emits them.
type Ingredient struct {
	ID         int    `json:"id,omitempty"`
	Name       string `json:"name"`
	Category   string `json:"category,omitempty"`
	Location   string `json:"location,omitempty"`
	Quantity   int    `json:"quantity,omitempty"`
	Unit       string `json:"unit,omitempty"`
	ExpiryDate string `json:"expiry_date,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// ShoppingItem is one line of a shopping list.
type ShoppingItem struct {
	ID          int    `json:"id,omitempty"`
	ListID      int    `json:"list_id,omitempty"`
	ItemName    string `json:"item_name"`
	Quantity    int    `json:"quantity,omitempty"`
	Unit        string `json:"unit,omitempty"`
	IsPurchased bool   `json:"is_purchased,omitempty"`
}

// ShoppingList is a named list with its items.
type ShoppingList struct {
	ID    int            `json:"id,omitempty"`
	Name  string         `json:"name"`
	Items []ShoppingItem `json:"items,omitempty"`
}

// Recipe is a stored or AI-generated recipe. Ingredients is a JSON-encoded
// list, kept verbatim the way the backend stores it.
type Recipe struct {
	ID           int    `json:"id,omitempty"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
	PrepTime     int    `json:"prep_time,omitempty"`
	Servings     int    `json:"servings,omitempty"`
	Calories     int    `json:"calories,omitempty"`
	IsHealthy    bool   `json:"is_healthy,omitempty"`
	Language     string `json:"language,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
}

// AISuggestion is a raw recipe text produced by the AI generator.
type AISuggestion struct {
	ID        int    `json:"id,omitempty"`
	Text      string `json:"text"`
	Dietary   string `json:"dietary,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// NewsArticle is one entry of the news feed.
type NewsArticle struct {
	ID          int    `json:"id,omitempty"`
	Title       string `json:"title"`
	Excerpt     string `json:"excerpt,omitempty"`
	Content     string `json:"content"`
	Category    string `json:"category,omitempty"`
	Source      string `json:"source,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Language    string `json:"language,omitempty"`
	PublishedAt string `json:"published_at,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// TokenResponse is returned by login and register.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Credentials is the login/register request body.
type Credentials struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}
