package service

import (
	"fmt"
	"strings"

	"foodhub/internal/model"
)

// Bounds of the dishes.price DECIMAL(8, 2) and dishes.stars columns.
const (
	maxPrice = 1000000
	minStars = 0
	maxStars = 5
)

// nonEmpty returns nil for absent or blank text so the stored value is kept.
func nonEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func optionalFloat(field string, n *model.Numeric) (*float64, error) {
	if n == nil || n.IsEmpty() {
		return nil, nil
	}
	f, err := n.Float()
	if err != nil {
		return nil, model.NewValidationError(fmt.Sprintf("%s must be a number", field))
	}
	return &f, nil
}

func optionalInt(field string, n *model.Numeric) (*int, error) {
	if n == nil || n.IsEmpty() {
		return nil, nil
	}
	i, err := n.Int()
	if err != nil {
		return nil, model.NewValidationError(fmt.Sprintf("%s must be an integer", field))
	}
	return &i, nil
}

func optionalPrice(n *model.Numeric) (*float64, error) {
	price, err := optionalFloat("price", n)
	if err != nil || price == nil {
		return price, err
	}
	if *price <= 0 {
		return nil, model.NewValidationError("price must be greater than 0")
	}
	if *price >= maxPrice {
		return nil, model.NewValidationError(fmt.Sprintf("price must be less than %d", maxPrice))
	}
	return price, nil
}

func optionalStars(n *model.Numeric) (*float64, error) {
	stars, err := optionalFloat("stars", n)
	if err != nil || stars == nil {
		return stars, err
	}
	if *stars < minStars || *stars > maxStars {
		return nil, model.NewValidationError(fmt.Sprintf("stars must be between %d and %d", minStars, maxStars))
	}
	return stars, nil
}

func queryFloat(field, raw string) (*float64, error) {
	n := model.NewNumeric(raw)
	return optionalFloat(field, &n)
}
