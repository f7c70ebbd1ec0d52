package routes

import (
	"net/http"

	"poimap/auth"
	"poimap/handlers"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func SetupRoutes(
	tokens *auth.TokenService,
	authHandler *handlers.AuthHandler,
	poiHandler *handlers.POIHandler,
	categoryHandler *handlers.CategoryHandler,
	userHandler *handlers.UserHandler,
) {
	// Public routes
	http.Handle("/login", withCORS(http.HandlerFunc(handlers.RecoverWrapper(authHandler.Login))))
	http.Handle("/categories", withCORS(http.HandlerFunc(handlers.RecoverWrapper(categoryHandler.ListCategories))))

	// POI routes
	http.Handle("/pois", withCORS(http.HandlerFunc(handlers.RecoverWrapper(auth.RequireAuth(tokens, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			poiHandler.ListPOIs(w, r)
		case http.MethodPost:
			poiHandler.CreatePOI(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})))))

	// POI by ID
	http.Handle("/pois/", withCORS(http.HandlerFunc(handlers.RecoverWrapper(auth.RequireAuth(tokens, func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Path[len("/pois/"):]
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodPut:
			poiHandler.UpdatePOI(w, r, id)
		case http.MethodDelete:
			poiHandler.DeletePOI(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})))))

	// User administration routes
	http.Handle("/users", withCORS(http.HandlerFunc(handlers.RecoverWrapper(auth.RequireAuth(tokens, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			userHandler.ListUsers(w, r)
		case http.MethodPost:
			userHandler.CreateUser(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})))))

	// User by ID
	http.Handle("/users/", withCORS(http.HandlerFunc(handlers.RecoverWrapper(auth.RequireAuth(tokens, func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Path[len("/users/"):]
		if id == "" || r.Method != http.MethodDelete {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		userHandler.DeleteUser(w, r, id)
	})))))
}
