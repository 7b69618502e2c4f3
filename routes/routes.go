package routes

import (
	"fmt"
	"net/http"

	"forkful/auth"
	"forkful/comments"
	"forkful/middleware"
	"forkful/ratelim"
	"forkful/ratings"
	"forkful/recipes"

	"github.com/julienschmidt/httprouter"
)

func health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

// Setup wires every endpoint. Reads are anonymous; writes go through the
// bearer-token middleware.
func Setup(tokens *auth.TokenIssuer, limiter *ratelim.RateLimiter) *httprouter.Router {
	router := httprouter.New()
	router.GET("/health", health)

	AddAuthRoutes(router, tokens, limiter)
	AddRecipeRoutes(router, tokens)
	AddRatingRoutes(router, tokens)
	AddCommentRoutes(router, tokens)

	return router
}

func AddAuthRoutes(router *httprouter.Router, tokens *auth.TokenIssuer, limiter *ratelim.RateLimiter) {
	h := auth.NewHandler(tokens)
	router.POST("/token", limiter.Limit(h.Login))
	router.POST("/users/", limiter.Limit(h.Register))
}

func AddRecipeRoutes(router *httprouter.Router, tokens *auth.TokenIssuer) {
	router.GET("/recipes/", recipes.ListRecipes)
	// Both forms so /recipes/search/ and /recipes/suggestions/ resolve
	// without a trailing-slash redirect.
	router.GET("/recipes/:id", recipes.RecipeSubresource)
	router.GET("/recipes/:id/", recipes.RecipeSubresource)

	router.POST("/recipes/", middleware.Authenticate(tokens, recipes.CreateRecipe))
	router.PUT("/recipes/:id", middleware.Authenticate(tokens, recipes.UpdateRecipe))
	router.DELETE("/recipes/:id", middleware.Authenticate(tokens, recipes.DeleteRecipe))
}

func AddRatingRoutes(router *httprouter.Router, tokens *auth.TokenIssuer) {
	router.POST("/recipes/:id/ratings/", middleware.Authenticate(tokens, ratings.AddRating))
}

func AddCommentRoutes(router *httprouter.Router, tokens *auth.TokenIssuer) {
	router.POST("/recipes/:id/comments/", middleware.Authenticate(tokens, comments.AddComment))
	router.GET("/recipes/:id/comments/", comments.GetComments)
}
