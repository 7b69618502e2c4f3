package recipes

import (
	"net/http"

	"forkful/logger"
	"forkful/models"
	"forkful/utils"

	"github.com/julienschmidt/httprouter"
)

type recipeRequest struct {
	Name        string `json:"name" validate:"required"`
	Ingredients string `json:"ingredients" validate:"required"`
	Steps       string `json:"steps" validate:"required"`
	PrepTime    int    `json:"prep_time" validate:"gte=0"`
}

// CreateRecipe handles POST /recipes/. The authenticated caller becomes
// the owner.
func CreateRecipe(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	var req recipeRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	recipe := &models.Recipe{
		Name:        req.Name,
		Ingredients: req.Ingredients,
		Steps:       req.Steps,
		PrepTime:    req.PrepTime,
		OwnerID:     userID,
	}
	if err := Create(recipe); err != nil {
		logger.Error("recipe insert failed:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create recipe")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, recipe)
}

// ListRecipes handles GET /recipes/ with skip/limit pagination, newest
// first.
func ListRecipes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	skip, limit := utils.ParsePagination(r)
	recipes, err := List(skip, limit)
	if err != nil {
		logger.Error("recipe list failed:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to list recipes")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, recipes)
}

// RecipeSubresource handles GET /recipes/:id and its trailing-slash form.
// httprouter cannot register a static path segment next to a wildcard, so
// /recipes/search/ and /recipes/suggestions/ dispatch off the param value.
func RecipeSubresource(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	switch ps.ByName("id") {
	case "search":
		searchRecipes(w, r)
	case "suggestions":
		suggestRecipes(w, r)
	default:
		getRecipe(w, r, ps)
	}
}

func getRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := utils.ParseIDParam(ps, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid recipe id")
		return
	}

	recipe, err := Get(id)
	if err != nil {
		logger.Error("recipe get failed:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch recipe")
		return
	}
	if recipe == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Recipe not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, recipe)
}

func searchRecipes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "query is required")
		return
	}

	skip, limit := utils.ParsePagination(r)
	recipes, err := SearchByName(query, skip, limit)
	if err != nil {
		logger.Error("recipe search failed:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to search recipes")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, recipes)
}

// suggestRecipes filters conjunctively: a recipe matches only when its
// ingredients text contains every requested substring. No ingredients
// means no filter.
func suggestRecipes(w http.ResponseWriter, r *http.Request) {
	var ingredients []string
	for _, value := range r.URL.Query()["ingredients"] {
		ingredients = append(ingredients, utils.SplitCSV(value)...)
	}

	skip, limit := utils.ParsePagination(r)
	recipes, err := Suggest(ingredients, skip, limit)
	if err != nil {
		logger.Error("recipe suggest failed:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to suggest recipes")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, recipes)
}

// UpdateRecipe handles PUT /recipes/:id. A recipe owned by someone else
// answers exactly like a missing one.
func UpdateRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	recipe, ok := ownedRecipe(w, r, ps)
	if !ok {
		return
	}

	var req recipeRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	recipe.Name = req.Name
	recipe.Ingredients = req.Ingredients
	recipe.Steps = req.Steps
	recipe.PrepTime = req.PrepTime
	if err := Update(recipe); err != nil {
		logger.Error("recipe update failed:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update recipe")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, recipe)
}

// DeleteRecipe handles DELETE /recipes/:id, returning the deleted record.
// Deletion is hard and does not cascade to ratings or comments.
func DeleteRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	recipe, ok := ownedRecipe(w, r, ps)
	if !ok {
		return
	}

	if err := Delete(recipe); err != nil {
		logger.Error("recipe delete failed:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete recipe")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, recipe)
}

// ownedRecipe resolves the recipe and enforces ownership. Not-found and
// not-owner are deliberately indistinguishable.
func ownedRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) (*models.Recipe, bool) {
	userID, authed := utils.GetUserIDFromContext(r.Context())
	if !authed {
		utils.RespondWithError(w, http.StatusUnauthorized, "Could not validate credentials")
		return nil, false
	}

	id, ok := utils.ParseIDParam(ps, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid recipe id")
		return nil, false
	}

	recipe, err := Get(id)
	if err != nil {
		logger.Error("recipe get failed:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch recipe")
		return nil, false
	}
	if recipe == nil || recipe.OwnerID != userID {
		utils.RespondWithError(w, http.StatusNotFound, "Recipe not found")
		return nil, false
	}
	return recipe, true
}
