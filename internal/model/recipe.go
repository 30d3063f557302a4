package model

import "time"

// Difficulty levels accepted for a recipe.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// ValidDifficulty reports whether d is one of the accepted difficulty levels.
func ValidDifficulty(d string) bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

// Recipe represents a recipe as stored in the recipes collection.
// UserID is a non-owning reference; deleting a user does not cascade.
type Recipe struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Ingredients  []string  `json:"ingredients"`
	Instructions []string  `json:"instructions"`
	CookingTime  int       `json:"cooking_time"`
	Servings     int       `json:"servings"`
	Difficulty   string    `json:"difficulty"`
	Image        string    `json:"image"`
	Rating       float64   `json:"rating"`
	Tags         []string  `json:"tags"`
	UserID       string    `json:"user_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateRecipeRequest carries the fields a client supplies when creating
// a recipe. ID and CreatedAt are assigned by the service.
type CreateRecipeRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	CookingTime  int      `json:"cooking_time"`
	Servings     int      `json:"servings"`
	Difficulty   string   `json:"difficulty"`
	Image        string   `json:"image"`
	Rating       float64  `json:"rating"`
	Tags         []string `json:"tags"`
	UserID       string   `json:"user_id"`
}

// RecipePatch is a partial update. Nil fields are left untouched; an
// update call omitting a field preserves the stored value (shallow
// merge, never full replace).
type RecipePatch struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Ingredients  *[]string `json:"ingredients"`
	Instructions *[]string `json:"instructions"`
	CookingTime  *int      `json:"cooking_time"`
	Servings     *int      `json:"servings"`
	Difficulty   *string   `json:"difficulty"`
	Image        *string   `json:"image"`
	Rating       *float64  `json:"rating"`
	Tags         *[]string `json:"tags"`
}

// Apply merges the patch onto r, field by field.
func (p RecipePatch) Apply(r *Recipe) {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.Ingredients != nil {
		r.Ingredients = *p.Ingredients
	}
	if p.Instructions != nil {
		r.Instructions = *p.Instructions
	}
	if p.CookingTime != nil {
		r.CookingTime = *p.CookingTime
	}
	if p.Servings != nil {
		r.Servings = *p.Servings
	}
	if p.Difficulty != nil {
		r.Difficulty = *p.Difficulty
	}
	if p.Image != nil {
		r.Image = *p.Image
	}
	if p.Rating != nil {
		r.Rating = *p.Rating
	}
	if p.Tags != nil {
		r.Tags = *p.Tags
	}
}
