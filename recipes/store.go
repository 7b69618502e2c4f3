package recipes

import (
	"forkful/db"
	"forkful/models"
)

func Create(recipe *models.Recipe) error {
	return db.GetDB().Create(recipe).Error
}

// List returns recipes newest first (id descending) with offset/limit
// pagination. No total count is computed.
func List(skip, limit int) ([]models.Recipe, error) {
	recipes := []models.Recipe{}
	err := db.GetDB().
		Order("id DESC").
		Offset(skip).
		Limit(limit).
		Find(&recipes).Error
	return recipes, err
}

// Get returns nil, nil when the recipe does not exist.
func Get(id uint) (*models.Recipe, error) {
	recipe := &models.Recipe{}
	err := db.GetDB().Where("id = ?", id).First(recipe).Error
	if db.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return recipe, nil
}

// Update replaces all mutable fields (name, ingredients, steps, prep_time).
// Ownership is immutable; OwnerID is never touched.
func Update(recipe *models.Recipe) error {
	return db.GetDB().Model(recipe).
		Select("name", "ingredients", "steps", "prep_time").
		Updates(map[string]any{
			"name":        recipe.Name,
			"ingredients": recipe.Ingredients,
			"steps":       recipe.Steps,
			"prep_time":   recipe.PrepTime,
		}).Error
}

// Delete removes the row for good. Ratings and comments referencing the
// recipe are left in place.
func Delete(recipe *models.Recipe) error {
	return db.GetDB().Delete(recipe).Error
}

// SearchByName matches recipes whose name contains the query substring,
// using the engine's LIKE operator. Ordered by id for determinism.
func SearchByName(query string, skip, limit int) ([]models.Recipe, error) {
	recipes := []models.Recipe{}
	err := db.GetDB().
		Where("name LIKE ?", "%"+query+"%").
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&recipes).Error
	return recipes, err
}

// Suggest returns recipes whose ingredients text contains every listed
// substring (logical AND). An empty list applies no filter at all.
func Suggest(ingredients []string, skip, limit int) ([]models.Recipe, error) {
	recipes := []models.Recipe{}
	q := db.GetDB().Model(&models.Recipe{})
	for _, ingredient := range ingredients {
		q = q.Where("ingredients LIKE ?", "%"+ingredient+"%")
	}
	err := q.Order("id").
		Offset(skip).
		Limit(limit).
		Find(&recipes).Error
	return recipes, err
}
