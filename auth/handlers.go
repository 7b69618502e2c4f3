package auth

import (
	"errors"
	"net/http"

	"forkful/logger"
	"forkful/utils"

	"github.com/julienschmidt/httprouter"
)

// Handler serves the registration and token endpoints.
type Handler struct {
	Tokens *TokenIssuer
}

func NewHandler(tokens *TokenIssuer) *Handler {
	return &Handler{Tokens: tokens}
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register handles POST /users/. Duplicate usernames are a 400 whether they
// are caught by the lookup or by the unique index on insert.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req registerRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	existing, err := GetUserByUsername(req.Username)
	if err != nil {
		logger.Error("register lookup failed:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}
	if existing != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Username already registered")
		return
	}

	user, err := CreateUser(req.Username, req.Email, req.Password)
	if errors.Is(err, ErrUsernameTaken) {
		utils.RespondWithError(w, http.StatusBadRequest, "Username already registered")
		return
	}
	if errors.Is(err, ErrEmailTaken) {
		utils.RespondWithError(w, http.StatusBadRequest, "Email already registered")
		return
	}
	if err != nil {
		logger.Error("register insert failed:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, user)
}

// Login handles POST /token. Credentials arrive form-encoded, OAuth2
// password-flow style.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseForm(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid form body")
		return
	}
	username := r.FormValue("username")
	password := r.FormValue("password")
	if username == "" || password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	user := Authenticate(username, password)
	if user == nil {
		w.Header().Set("WWW-Authenticate", "Bearer")
		utils.RespondWithError(w, http.StatusUnauthorized, "Incorrect username or password")
		return
	}

	token, err := h.Tokens.Issue(user.Username)
	if err != nil {
		logger.Error("token issue failed:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"access_token": token,
		"token_type":   "bearer",
	})
}
