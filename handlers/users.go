package handlers

import (
	"log"
	"net/http"

	"venvet/utils"

	"github.com/jackc/pgx/v5/pgxpool"
)

func IndexHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Bienvenido a la API Venvet",
	})
}

// ListUsersHandler is unauthenticated. An empty table answers 404, which the
// API has always done even though it conflates "no data" with "error".
func ListUsersHandler(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool) {
	users, err := utils.ListUsers(db)
	if err != nil {
		log.Println("list users failed:", err)
		jsonMessage(w, http.StatusInternalServerError, false, "Error interno")
		return
	}

	if len(users) == 0 {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"message": "No se encontaron usuarios",
		})
		return
	}

	out := make([]map[string]any, 0, len(users))
	for i := range users {
		out = append(out, users[i].Format())
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"users":       out,
		"total_users": len(users),
	})
}
