// Package ratings holds the append-only recipe ratings. There is no
// update, no delete, and no dedup: the same user may rate a recipe again.
package ratings

import (
	"net/http"

	"forkful/db"
	"forkful/logger"
	"forkful/models"
	"forkful/utils"

	"github.com/julienschmidt/httprouter"
)

// Value is a pointer so a missing field is distinguishable from a zero
// rating: absence is a validation error, zero is stored.
type ratingRequest struct {
	Value *float64 `json:"rating" validate:"required"`
}

func Add(recipeID, userID uint, value float64) (*models.Rating, error) {
	rating := &models.Rating{
		Value:    value,
		UserID:   userID,
		RecipeID: recipeID,
	}
	if err := db.GetDB().Create(rating).Error; err != nil {
		return nil, err
	}
	return rating, nil
}

// AddRating handles POST /recipes/:id/ratings/. The authenticated caller
// becomes the rater.
func AddRating(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, authed := utils.GetUserIDFromContext(r.Context())
	if !authed {
		utils.RespondWithError(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	recipeID, ok := utils.ParseIDParam(ps, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid recipe id")
		return
	}

	var req ratingRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	rating, err := Add(recipeID, userID, *req.Value)
	if err != nil {
		logger.Error("rating insert failed:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add rating")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, rating)
}
