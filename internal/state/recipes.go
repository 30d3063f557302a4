package state

import (
	"context"
	"sync"

	"github.com/SandeepaMuthukumari/Recipe-Sharing-Platform/internal/model"
	"github.com/SandeepaMuthukumari/Recipe-Sharing-Platform/internal/service"
)

// RecipeState is a point-in-time snapshot of the recipe container.
type RecipeState struct {
	Recipes       []model.Recipe
	UserRecipes   []model.Recipe
	Favorites     []string
	CurrentRecipe *model.Recipe
	Loading       bool
	Error         string
}

// Recipes is the observable recipe container. Fetch and mutation
// actions follow the same loading/error/notify pattern as the auth
// container, and additionally reconcile list state: created recipes are
// prepended, updates replace matching entries, deletes remove them, and
// favorites are replaced wholesale with the service's returned list.
type Recipes struct {
	mu     sync.Mutex
	svc    *service.RecipeService
	notify NotifyFunc
	state  RecipeState
}

// NewRecipes creates a recipe container bound to the given service.
// notify may be nil.
func NewRecipes(svc *service.RecipeService, notify NotifyFunc) *Recipes {
	return &Recipes{svc: svc, notify: notify}
}

// Snapshot returns a copy of the current state. Slices are copied so
// callers cannot mutate container internals.
func (c *Recipes) Snapshot() RecipeState {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := RecipeState{
		Recipes:     append([]model.Recipe(nil), c.state.Recipes...),
		UserRecipes: append([]model.Recipe(nil), c.state.UserRecipes...),
		Favorites:   append([]string(nil), c.state.Favorites...),
		Loading:     c.state.Loading,
		Error:       c.state.Error,
	}
	if c.state.CurrentRecipe != nil {
		r := *c.state.CurrentRecipe
		s.CurrentRecipe = &r
	}
	return s
}

func (c *Recipes) begin() {
	c.mu.Lock()
	c.state.Loading = true
	c.state.Error = ""
	c.mu.Unlock()
}

func (c *Recipes) fail(err error, msg string) {
	c.mu.Lock()
	c.state.Loading = false
	c.state.Error = err.Error()
	c.mu.Unlock()
	if msg != "" {
		c.notify.error(msg)
	}
}

// FetchAll loads the full recipe list.
func (c *Recipes) FetchAll(ctx context.Context) {
	c.begin()

	recipes, err := c.svc.ListAll(ctx)
	if err != nil {
		c.fail(err, "Failed to load recipes")
		return
	}

	c.mu.Lock()
	c.state.Recipes = recipes
	c.state.Loading = false
	c.mu.Unlock()
}

// FetchByID loads one recipe into CurrentRecipe.
func (c *Recipes) FetchByID(ctx context.Context, id string) {
	c.begin()

	recipe, err := c.svc.GetByID(ctx, id)
	if err != nil {
		c.fail(err, "Recipe not found")
		return
	}

	c.mu.Lock()
	c.state.CurrentRecipe = &recipe
	c.state.Loading = false
	c.mu.Unlock()
}

// FetchByOwner loads the recipes owned by userID into UserRecipes.
func (c *Recipes) FetchByOwner(ctx context.Context, userID string) {
	c.begin()

	recipes, err := c.svc.ListByOwner(ctx, userID)
	if err != nil {
		c.fail(err, "Failed to load your recipes")
		return
	}

	c.mu.Lock()
	c.state.UserRecipes = recipes
	c.state.Loading = false
	c.mu.Unlock()
}

// Create creates a recipe and prepends it to both Recipes and
// UserRecipes.
func (c *Recipes) Create(ctx context.Context, req model.CreateRecipeRequest) {
	c.begin()

	recipe, err := c.svc.Create(ctx, req)
	if err != nil {
		c.fail(err, "Failed to create recipe")
		return
	}

	c.mu.Lock()
	c.state.Recipes = append([]model.Recipe{recipe}, c.state.Recipes...)
	c.state.UserRecipes = append([]model.Recipe{recipe}, c.state.UserRecipes...)
	c.state.Loading = false
	c.mu.Unlock()
	c.notify.success("Recipe created successfully!")
}

// Update patches a recipe and replaces the matching entry in both lists
// and in CurrentRecipe.
func (c *Recipes) Update(ctx context.Context, id string, patch model.RecipePatch) {
	c.begin()

	updated, err := c.svc.Update(ctx, id, patch)
	if err != nil {
		c.fail(err, "Failed to update recipe")
		return
	}

	c.mu.Lock()
	replaceByID(c.state.Recipes, updated)
	replaceByID(c.state.UserRecipes, updated)
	c.state.CurrentRecipe = &updated
	c.state.Loading = false
	c.mu.Unlock()
	c.notify.success("Recipe updated successfully!")
}

// Delete removes a recipe and drops the matching entry from both lists.
func (c *Recipes) Delete(ctx context.Context, id string) {
	c.begin()

	if err := c.svc.Delete(ctx, id); err != nil {
		c.fail(err, "Failed to delete recipe")
		return
	}

	c.mu.Lock()
	c.state.Recipes = removeByID(c.state.Recipes, id)
	c.state.UserRecipes = removeByID(c.state.UserRecipes, id)
	c.state.Loading = false
	c.mu.Unlock()
	c.notify.success("Recipe deleted successfully!")
}

// Search filters the recipe list by query. An empty query re-fetches
// the full collection instead of running a trivial match-everything
// search.
func (c *Recipes) Search(ctx context.Context, query string) {
	if query == "" {
		c.FetchAll(ctx)
		return
	}

	c.begin()

	recipes, err := c.svc.Search(ctx, query)
	if err != nil {
		c.fail(err, "")
		return
	}

	c.mu.Lock()
	c.state.Recipes = recipes
	c.state.Loading = false
	c.mu.Unlock()
}

// FetchFavorites loads the user's favorite recipe ids.
func (c *Recipes) FetchFavorites(ctx context.Context, userID string) {
	c.begin()

	favorites, err := c.svc.ListFavorites(ctx, userID)
	if err != nil {
		c.fail(err, "")
		return
	}

	c.mu.Lock()
	c.state.Favorites = favorites
	c.state.Loading = false
	c.mu.Unlock()
}

// AddFavorite favorites a recipe. The container's Favorites list is
// replaced with the service's returned list, last write wins.
func (c *Recipes) AddFavorite(ctx context.Context, userID, recipeID string) {
	favorites, err := c.svc.AddFavorite(ctx, userID, recipeID)
	if err != nil {
		c.notify.error("Failed to add to favorites")
		return
	}

	c.mu.Lock()
	c.state.Favorites = favorites
	c.mu.Unlock()
	c.notify.success("Added to favorites!")
}

// RemoveFavorite unfavorites a recipe, replacing Favorites wholesale.
func (c *Recipes) RemoveFavorite(ctx context.Context, userID, recipeID string) {
	favorites, err := c.svc.RemoveFavorite(ctx, userID, recipeID)
	if err != nil {
		c.notify.error("Failed to remove from favorites")
		return
	}

	c.mu.Lock()
	c.state.Favorites = favorites
	c.mu.Unlock()
	c.notify.success("Removed from favorites")
}

// ClearCurrent resets CurrentRecipe.
func (c *Recipes) ClearCurrent() {
	c.mu.Lock()
	c.state.CurrentRecipe = nil
	c.mu.Unlock()
}

func replaceByID(recipes []model.Recipe, updated model.Recipe) {
	for i := range recipes {
		if recipes[i].ID == updated.ID {
			recipes[i] = updated
		}
	}
}

func removeByID(recipes []model.Recipe, id string) []model.Recipe {
	kept := recipes[:0]
	for _, r := range recipes {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	return kept
}
