package models

import "time"

// Category groups menu items for presentation. DisplayOrder defines the
// sequence categories appear in on the site.
type Category struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  *string   `json:"description"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	// MenuItemCount is only populated by the category list endpoint.
	MenuItemCount *int `json:"menuItemCount,omitempty"`
	// MenuItems is only populated by the category detail endpoints.
	MenuItems []MenuItem `json:"menuItems,omitempty"`
}

// CategorySummary is the slim projection embedded in menu item responses.
type CategorySummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
