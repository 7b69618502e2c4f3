package middleware

import (
	"context"
	"net/http"
	"strings"

	"forkful/auth"
	"forkful/globals"
	"forkful/utils"

	"github.com/julienschmidt/httprouter"
)

// Authenticate wraps a handler with bearer-token validation. Every failure
// mode (missing header, bad signature, expiry, vanished user) yields the
// same 401 so callers learn nothing about which check tripped.
func Authenticate(tokens *auth.TokenIssuer, next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		tokenString, ok := bearerToken(r)
		if !ok {
			unauthorized(w)
			return
		}

		username, err := tokens.Validate(tokenString)
		if err != nil {
			unauthorized(w)
			return
		}

		user, err := auth.GetUserByUsername(username)
		if err != nil || user == nil {
			unauthorized(w)
			return
		}

		ctx := r.Context()
		ctx = context.WithValue(ctx, globals.UserIDKey, user.ID)
		ctx = context.WithValue(ctx, globals.UsernameKey, user.Username)
		next(w, r.WithContext(ctx), ps)
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	utils.RespondWithError(w, http.StatusUnauthorized, "Could not validate credentials")
}
