package models

import "time"

// MenuItem is a dish on the menu.
type MenuItem struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	Ingredients  *string   `json:"ingredients"`
	Price        Money     `json:"price"`
	Image        *string   `json:"image"`
	CategoryID   string    `json:"categoryId"`
	IsVegetarian bool      `json:"isVegetarian"`
	IsSpicy      bool      `json:"isSpicy"`
	IsBestseller bool      `json:"isBestseller"`
	SpiceLevel   int       `json:"spiceLevel"`
	Tags         []string  `json:"tags"`
	IsAvailable  bool      `json:"isAvailable"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Category *CategorySummary `json:"category,omitempty"`
}

// MenuItemDetail is the single-item projection: unlike the list endpoint,
// which embeds only a CategorySummary, the detail response carries the full
// category row. The outer Category field takes the "category" key over the
// embedded summary.
type MenuItemDetail struct {
	MenuItem
	Category *Category `json:"category"`
}

// MenuItemSummary is the slim projection embedded in order item responses.
type MenuItemSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MenuFilter is the predicate built from menu list query parameters. All set
// fields are combined with logical AND.
type MenuFilter struct {
	CategoryID *string
	Vegetarian *bool
	Spicy      *bool
	Bestseller *bool
	Available  *bool

	// MatchNothing is set when a category slug or id resolves to no
	// category: the list is empty rather than an error.
	MatchNothing bool
}
