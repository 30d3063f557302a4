package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/SandeepaMuthukumari/Recipe-Sharing-Platform/internal/middleware"
	"github.com/SandeepaMuthukumari/Recipe-Sharing-Platform/internal/model"
	"github.com/SandeepaMuthukumari/Recipe-Sharing-Platform/internal/service"
)

// RecipeHandler handles HTTP requests for recipe and favorites operations.
type RecipeHandler struct {
	service *service.RecipeService
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(svc *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{service: svc}
}

func isRecipeValidationError(err error) bool {
	return errors.Is(err, service.ErrTitleRequired) ||
		errors.Is(err, service.ErrOwnerRequired) ||
		errors.Is(err, service.ErrInvalidDifficulty) ||
		errors.Is(err, service.ErrInvalidCookingTime) ||
		errors.Is(err, service.ErrInvalidServings) ||
		errors.Is(err, service.ErrInvalidRating)
}

// HandleList handles GET /api/v1/recipes requests. The optional q
// parameter searches; user_id filters by owner.
func (h *RecipeHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	var (
		recipes []model.Recipe
		err     error
	)

	switch {
	case r.URL.Query().Get("q") != "":
		recipes, err = h.service.Search(r.Context(), r.URL.Query().Get("q"))
	case r.URL.Query().Get("user_id") != "":
		recipes, err = h.service.ListByOwner(r.Context(), r.URL.Query().Get("user_id"))
	default:
		recipes, err = h.service.ListAll(r.Context())
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	if recipes == nil {
		recipes = []model.Recipe{}
	}
	writeJSON(w, http.StatusOK, recipes)
}

// HandleGet handles GET /api/v1/recipes/{recipe_id} requests.
func (h *RecipeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	recipe, err := h.service.GetByID(r.Context(), chi.URLParam(r, "recipe_id"))
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, recipe)
}

// HandleCreate handles POST /api/v1/recipes requests. The recipe owner
// is the authenticated user, regardless of the request body.
func (h *RecipeHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.CreateRecipeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.UserID = userID

	recipe, err := h.service.Create(r.Context(), req)
	if err != nil {
		if isRecipeValidationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusCreated, recipe)
}

// HandleUpdate handles PATCH /api/v1/recipes/{recipe_id} requests.
// Only the owner may update a recipe.
func (h *RecipeHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	recipeID := chi.URLParam(r, "recipe_id")

	existing, err := h.service.GetByID(r.Context(), recipeID)
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}
	if existing.UserID != userID {
		writeJSON(w, http.StatusForbidden, errorResponse("not the recipe owner"))
		return
	}

	var patch model.RecipePatch
	if !decodeBody(w, r, &patch) {
		return
	}

	recipe, err := h.service.Update(r.Context(), recipeID, patch)
	if err != nil {
		switch {
		case isRecipeValidationError(err):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrRecipeNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, recipe)
}

// HandleDelete handles DELETE /api/v1/recipes/{recipe_id} requests.
// Only the owner may delete; deleting an already-absent recipe returns
// 204 like a successful delete.
func (h *RecipeHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	recipeID := chi.URLParam(r, "recipe_id")

	existing, err := h.service.GetByID(r.Context(), recipeID)
	if err == nil && existing.UserID != userID {
		writeJSON(w, http.StatusForbidden, errorResponse("not the recipe owner"))
		return
	}
	if err != nil && !errors.Is(err, service.ErrRecipeNotFound) {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	if err := h.service.Delete(r.Context(), recipeID); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleListFavorites handles GET /api/v1/favorites requests.
func (h *RecipeHandler) HandleListFavorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	favorites, err := h.service.ListFavorites(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, favorites)
}

// HandleAddFavorite handles POST /api/v1/favorites/{recipe_id} requests.
func (h *RecipeHandler) HandleAddFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	favorites, err := h.service.AddFavorite(r.Context(), userID, chi.URLParam(r, "recipe_id"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, favorites)
}

// HandleRemoveFavorite handles DELETE /api/v1/favorites/{recipe_id} requests.
func (h *RecipeHandler) HandleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	favorites, err := h.service.RemoveFavorite(r.Context(), userID, chi.URLParam(r, "recipe_id"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, favorites)
}
