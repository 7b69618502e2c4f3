package auth

import (
	"errors"

	"forkful/db"
	"forkful/logger"
	"forkful/models"
)

var (
	ErrUsernameTaken = errors.New("username already registered")
	ErrEmailTaken    = errors.New("email already registered")
)

// GetUserByUsername looks a user up by exact username. Absence is not an
// error; it returns nil, nil.
func GetUserByUsername(username string) (*models.User, error) {
	user := &models.User{}
	err := db.GetDB().Where("username = ?", username).First(user).Error
	if db.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser hashes the password and inserts the user. The unique index on
// username turns a lost check-then-insert race into ErrUsernameTaken.
func CreateUser(username, email, password string) (*models.User, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Recipes:      []models.Recipe{},
	}
	if err := db.GetDB().Create(user).Error; err != nil {
		if db.IsDuplicate(err) {
			if db.DuplicateColumn(err) == "users.email" {
				return nil, ErrEmailTaken
			}
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return user, nil
}

// Authenticate returns the user when the credentials match, nil otherwise.
// Unknown username and wrong password are indistinguishable to the caller.
func Authenticate(username, password string) *models.User {
	user, err := GetUserByUsername(username)
	if err != nil {
		logger.Warning("authenticate lookup err:", err)
		return nil
	}
	if user == nil {
		return nil
	}
	if !CheckPasswordHash(user.PasswordHash, password) {
		return nil
	}
	return user
}
