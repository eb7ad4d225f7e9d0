package model

import "time"

// Category groups dishes on the storefront.
type Category struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	IconURL   *string   `json:"icon_url" db:"icon_url"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CreateCategoryRequest represents the request payload for creating a category.
type CreateCategoryRequest struct {
	Title   string  `json:"title"`
	IconURL *string `json:"icon_url,omitempty"`
}

// UpdateCategoryRequest represents a partial update. Nil fields are left unchanged.
type UpdateCategoryRequest struct {
	Title   *string `json:"title,omitempty"`
	IconURL *string `json:"icon_url,omitempty"`
}

// NewCategory holds validated values for inserting a category.
type NewCategory struct {
	Title   string
	IconURL *string
}

// CategoryPatch holds validated values for a partial update.
type CategoryPatch struct {
	Title   *string
	IconURL *string
}

// IsEmpty reports whether the patch changes nothing.
func (p CategoryPatch) IsEmpty() bool {
	return p.Title == nil && p.IconURL == nil
}
