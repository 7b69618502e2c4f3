package models

// User accounts are created at registration and never mutated afterwards.
// Only the bcrypt hash of the password is ever stored.
type User struct {
	ID           uint     `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string   `json:"username" gorm:"uniqueIndex;not null"`
	Email        string   `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string   `json:"-" gorm:"column:password_hash;not null"`
	Recipes      []Recipe `json:"recipes" gorm:"foreignKey:OwnerID"`
}

// Recipe ownership is fixed at creation; only the owner may update or
// delete it. Ingredients and steps are free text, not normalized lists.
type Recipe struct {
	ID          uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string `json:"name" gorm:"index;not null"`
	Ingredients string `json:"ingredients" gorm:"type:text"`
	Steps       string `json:"steps" gorm:"type:text"`
	PrepTime    int    `json:"prep_time"`
	OwnerID     uint   `json:"owner_id" gorm:"index;not null"`
	Owner       *User  `json:"-" gorm:"foreignKey:OwnerID"`
}

// Rating is append-only. A user may rate the same recipe more than once.
// RecipeID is a plain column on purpose: recipe deletion is hard and does
// not cascade, so rows referencing a deleted recipe remain.
type Rating struct {
	ID       uint    `json:"id" gorm:"primaryKey;autoIncrement"`
	Value    float64 `json:"rating" gorm:"column:rating"`
	UserID   uint    `json:"user_id" gorm:"index;not null"`
	RecipeID uint    `json:"recipe_id" gorm:"index"`
	User     *User   `json:"-" gorm:"foreignKey:UserID"`
}

// Comment is append-only; listing order is insertion order (id order).
// RecipeID is unconstrained for the same reason as Rating.RecipeID.
type Comment struct {
	ID       uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Text     string `json:"text" gorm:"type:text;not null"`
	UserID   uint   `json:"user_id" gorm:"index;not null"`
	RecipeID uint   `json:"recipe_id" gorm:"index"`
	User     *User  `json:"-" gorm:"foreignKey:UserID"`
}
