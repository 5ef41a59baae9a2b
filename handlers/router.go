package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// NewRouter assembles the full API surface.
func NewRouter(db *pgxpool.Pool, client *redis.Client) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(CORS)

	// Public routes
	r.Get("/", IndexHandler)
	r.Get("/users", func(w http.ResponseWriter, r *http.Request) {
		ListUsersHandler(w, r, db)
	})
	r.Post("/signup", func(w http.ResponseWriter, r *http.Request) {
		SignUpHandler(w, r, db, client)
	})
	r.Post("/login", func(w http.ResponseWriter, r *http.Request) {
		LoginHandler(w, r, db, client)
	})

	// Session-protected routes
	r.Group(func(pr chi.Router) {
		pr.Use(RequireAuth(db, client))

		pr.Get("/me", MeHandler)
		pr.Post("/logout", func(w http.ResponseWriter, r *http.Request) {
			LogOutHandler(w, r, client)
		})

		pr.Get("/citas", func(w http.ResponseWriter, r *http.Request) {
			ListCitasHandler(w, r, db)
		})
		pr.Post("/citas", func(w http.ResponseWriter, r *http.Request) {
			CreateCitaHandler(w, r, db)
		})
		pr.Get("/citas/{id}", func(w http.ResponseWriter, r *http.Request) {
			GetCitaHandler(w, r, db)
		})
		pr.Patch("/citas/{id}", func(w http.ResponseWriter, r *http.Request) {
			UpdateCitaHandler(w, r, db)
		})
		pr.Delete("/citas/{id}", func(w http.ResponseWriter, r *http.Request) {
			DeleteCitaHandler(w, r, db)
		})
	})

	return r
}
