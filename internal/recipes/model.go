// Package recipes is the BBQ recipe book.
package recipes

import (
	"strings"
	"time"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/apperr"
)

const (
	MinRating = 1
	MaxRating = 5

	minSmokerTempF = 150
	maxSmokerTempF = 700
)

type Recipe struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Meat        string    `json:"meat"`
	Wood        string    `json:"wood"`
	SmokerTempF int       `json:"smoker_temp_f"`
	CookMinutes int       `json:"cook_minutes"`
	Rating      *int      `json:"rating"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Fields are the client-editable parts of a recipe.
type Fields struct {
	Name        string `json:"name" yaml:"name"`
	Meat        string `json:"meat" yaml:"meat"`
	Wood        string `json:"wood" yaml:"wood"`
	SmokerTempF int    `json:"smoker_temp_f" yaml:"smoker_temp_f"`
	CookMinutes int    `json:"cook_minutes" yaml:"cook_minutes"`
	Rating      *int   `json:"rating" yaml:"rating"`
	Notes       string `json:"notes" yaml:"notes"`
}

// Normalize trims text fields.
func (f Fields) Normalize() Fields {
	f.Name = strings.TrimSpace(f.Name)
	f.Meat = strings.TrimSpace(f.Meat)
	f.Wood = strings.TrimSpace(f.Wood)
	f.Notes = strings.TrimSpace(f.Notes)
	return f
}

func (f Fields) Validate() error {
	if f.Name == "" {
		return apperr.Invalid("name is required")
	}
	if f.SmokerTempF != 0 && (f.SmokerTempF < minSmokerTempF || f.SmokerTempF > maxSmokerTempF) {
		return apperr.Invalid("smoker_temp_f must be between %d and %d", minSmokerTempF, maxSmokerTempF)
	}
	if f.CookMinutes < 0 {
		return apperr.Invalid("cook_minutes must not be negative")
	}
	if f.Rating != nil {
		return validateRating(*f.Rating)
	}
	return nil
}

func validateRating(r int) error {
	if r < MinRating || r > MaxRating {
		return apperr.Invalid("rating must be between %d and %d", MinRating, MaxRating)
	}
	return nil
}

type CreateRecipe struct {
	Fields
}

type GetRecipe struct {
	ID string
}

type ListRecipes struct{}

type UpdateRecipe struct {
	ID string
	Fields
}

type RateRecipe struct {
	ID     string
	Rating int
}

type DeleteRecipe struct {
	ID string
}
