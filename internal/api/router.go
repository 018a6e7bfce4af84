package api

import (
	"database/sql"
	"net/http"

	"github.com/homemate-app/homemate/internal/model"
	"github.com/homemate-app/homemate/internal/store"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, jwtSecret string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret}
	usersHandler := &UsersHandler{DB: db}
	reviewsHandler := &ReviewsHandler{DB: db, JWTSecret: jwtSecret}

	appliances := &ResourceHandler[model.Appliance]{
		DB: db, Name: "Appliance", Collection: store.Appliances, Parse: parseAppliance,
	}
	clothing := &ResourceHandler[model.Clothing]{
		DB: db, Name: "Clothing item", Collection: store.Clothing, Parse: parseClothing,
	}
	essentials := &ResourceHandler[model.Essential]{
		DB: db, Name: "Essential item", Collection: store.Essentials, Parse: parseEssential,
	}
	pantry := &ResourceHandler[model.PantryItem]{
		DB: db, Name: "Pantry item", Collection: store.PantryItems, Parse: parsePantryItem,
	}

	authMW := AuthMiddleware(jwtSecret, db)

	// Public: signup, signin, review submission and display.
	mux.HandleFunc("POST /api/auth/signup", authHandler.Signup)
	mux.HandleFunc("POST /api/auth/signin", authHandler.Signin)
	mux.HandleFunc("GET /api/reviews", reviewsHandler.List)
	mux.HandleFunc("GET /api/reviews/average", reviewsHandler.Average)
	mux.HandleFunc("POST /api/reviews", reviewsHandler.Create)

	// User account routes.
	mux.Handle("POST /api/user/signout", authMW(http.HandlerFunc(usersHandler.Signout)))
	mux.Handle("GET /api/user/profile", authMW(http.HandlerFunc(usersHandler.Profile)))
	mux.Handle("PUT /api/user/update/{userId}", authMW(http.HandlerFunc(usersHandler.Update)))
	mux.Handle("DELETE /api/user/delete/{userId}", authMW(http.HandlerFunc(usersHandler.Delete)))
	mux.Handle("GET /api/user", authMW(RequireAdmin(http.HandlerFunc(usersHandler.List))))
	mux.Handle("PUT /api/user/profile/picture", authMW(http.HandlerFunc(usersHandler.UploadProfilePicture)))
	mux.Handle("GET /api/user/profile/picture", authMW(http.HandlerFunc(usersHandler.GetProfilePicture)))

	// Inventory resources, all owner-scoped behind the gate.
	registerResource(mux, "appliances", authMW, appliances)
	registerResource(mux, "clothing", authMW, clothing)
	registerResource(mux, "essentials", authMW, essentials)
	registerResource(mux, "pantry", authMW, pantry)

	// Review moderation (admin).
	mux.Handle("GET /api/reviews/{id}", authMW(http.HandlerFunc(reviewsHandler.Get)))
	mux.Handle("PUT /api/reviews/{id}", authMW(RequireAdmin(http.HandlerFunc(reviewsHandler.Update))))
	mux.Handle("DELETE /api/reviews/{id}", authMW(RequireAdmin(http.HandlerFunc(reviewsHandler.Delete))))
	mux.Handle("PATCH /api/reviews/{id}/approve", authMW(RequireAdmin(http.HandlerFunc(reviewsHandler.Approve))))

	return mux
}

// registerResource registers the four CRUD routes for an inventory resource.
func registerResource[T any](mux *http.ServeMux, path string, authMW func(http.Handler) http.Handler, h *ResourceHandler[T]) {
	mux.Handle("GET /api/"+path, authMW(http.HandlerFunc(h.List)))
	mux.Handle("POST /api/"+path, authMW(http.HandlerFunc(h.Create)))
	mux.Handle("PUT /api/"+path+"/{id}", authMW(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /api/"+path+"/{id}", authMW(http.HandlerFunc(h.Delete)))
}
