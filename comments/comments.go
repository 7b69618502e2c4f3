// Package comments holds the append-only recipe comments, listed in
// insertion order.
package comments

import (
	"net/http"

	"forkful/db"
	"forkful/logger"
	"forkful/models"
	"forkful/utils"

	"github.com/julienschmidt/httprouter"
)

type commentRequest struct {
	Text string `json:"text" validate:"required"`
}

func Add(recipeID, userID uint, text string) (*models.Comment, error) {
	comment := &models.Comment{
		Text:     text,
		UserID:   userID,
		RecipeID: recipeID,
	}
	if err := db.GetDB().Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// ListByRecipe returns a recipe's comments in id order, which is insertion
// order.
func ListByRecipe(recipeID uint) ([]models.Comment, error) {
	comments := []models.Comment{}
	err := db.GetDB().
		Where("recipe_id = ?", recipeID).
		Order("id").
		Find(&comments).Error
	return comments, err
}

// AddComment handles POST /recipes/:id/comments/. The authenticated caller
// becomes the author.
func AddComment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
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

	var req commentRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	comment, err := Add(recipeID, userID, req.Text)
	if err != nil {
		logger.Error("comment insert failed:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add comment")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, comment)
}

// GetComments handles GET /recipes/:id/comments/. No auth required.
func GetComments(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	recipeID, ok := utils.ParseIDParam(ps, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid recipe id")
		return
	}

	comments, err := ListByRecipe(recipeID)
	if err != nil {
		logger.Error("comment list failed:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to list comments")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, comments)
}
