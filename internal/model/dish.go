package model

import "time"

// Dish represents a menu item offered by the storefront.
type Dish struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Stars       float64   `json:"stars" db:"stars"`
	Ratings     int       `json:"ratings" db:"ratings"`
	Price       float64   `json:"price" db:"price"`
	ImageURL    string    `json:"image_url" db:"image_url"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// CreateDishRequest represents the request payload for creating a dish.
type CreateDishRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       *Numeric `json:"price"`
	ImageURL    string   `json:"image_url"`
	Stars       *Numeric `json:"stars,omitempty"`
	Ratings     *Numeric `json:"ratings,omitempty"`
}

// UpdateDishRequest represents a partial update. Nil fields are left unchanged.
type UpdateDishRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *Numeric `json:"price,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty"`
	Stars       *Numeric `json:"stars,omitempty"`
	Ratings     *Numeric `json:"ratings,omitempty"`
}

// NewDish holds validated values for inserting a dish.
type NewDish struct {
	Title       string
	Description string
	Stars       float64
	Ratings     int
	Price       float64
	ImageURL    string
}

// DishPatch holds validated values for a partial update.
type DishPatch struct {
	Title       *string
	Description *string
	Stars       *float64
	Ratings     *int
	Price       *float64
	ImageURL    *string
}

// IsEmpty reports whether the patch changes nothing.
func (p DishPatch) IsEmpty() bool {
	return p.Title == nil &&
		p.Description == nil &&
		p.Stars == nil &&
		p.Ratings == nil &&
		p.Price == nil &&
		p.ImageURL == nil
}

// DishSort selects the ordering of a filtered dish listing.
type DishSort string

const (
	SortNewest    DishSort = ""
	SortPriceLow  DishSort = "price-low"
	SortPriceHigh DishSort = "price-high"
	SortRating    DishSort = "rating"
)

// ParseDishSort maps a sortBy query value to a DishSort.
// Unrecognised values fall back to newest first.
func ParseDishSort(s string) DishSort {
	switch DishSort(s) {
	case SortPriceLow, SortPriceHigh, SortRating:
		return DishSort(s)
	default:
		return SortNewest
	}
}

// DishFilter narrows a dish listing. Nil bounds are not applied.
type DishFilter struct {
	MinPrice  *float64
	MaxPrice  *float64
	MinRating *float64
	SortBy    DishSort
}

// DishFilterQuery carries the raw filter query parameters. Empty values are absent.
type DishFilterQuery struct {
	MinPrice  string
	MaxPrice  string
	MinRating string
	SortBy    string
}
