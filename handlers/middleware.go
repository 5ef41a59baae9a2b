package handlers

import (
	"context"
	"log"
	"net/http"

	"venvet/models"
	"venvet/utils"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type ctxKey string

const userKey ctxKey = "user"

// RequireAuth resolves the session cookie to a user row and stores it in the
// request context. Requests without a resolvable user get a 401 and never
// reach the wrapped handler.
func RequireAuth(db *pgxpool.Pool, client *redis.Client) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uid, err := utils.CurrentUserID(r, client)
			if err != nil {
				jsonMessage(w, http.StatusUnauthorized, false, "Usuario no loggeado")
				return
			}

			u, err := utils.GetUserByID(db, uid)
			if err != nil {
				// session points at a deleted user
				log.Println("session resolved to no user:", err)
				jsonMessage(w, http.StatusUnauthorized, false, "Usuario no loggeado")
				return
			}

			ctx := context.WithValue(r.Context(), userKey, u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentUser returns the authenticated user placed by RequireAuth.
func CurrentUser(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(userKey).(*models.User)
	return u, ok
}

// CORS mirrors the headers the service has always sent.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorizations, true")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS, POST, PATCH, DELETE")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
