package handlers

import (
	"errors"
	"log"
	"net/http"

	"venvet/utils"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Body fields use pointers so that a missing field and an empty string stay
// distinguishable.
type signUpRequest struct {
	Name   *string `json:"name"`
	Contra *string `json:"contra"`
}

type loginRequest struct {
	Nombre *string `json:"nombre"`
	Contra *string `json:"contra"`
}

func SignUpHandler(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool, client *redis.Client) {
	if utils.IsAuthenticated(r, client) {
		jsonMessage(w, http.StatusBadRequest, false, "Usuario ya loggeado")
		return
	}

	var req signUpRequest
	if err := decodeBody(r, &req); err != nil {
		jsonMessage(w, http.StatusBadRequest, false, "No se ha enviado el nombre")
		return
	}
	if req.Name == nil {
		jsonMessage(w, http.StatusBadRequest, false, "No se ha enviado el nombre")
		return
	}
	if req.Contra == nil {
		jsonMessage(w, http.StatusBadRequest, false, "No se ha enviado contraseña")
		return
	}

	if err := utils.ValidatePassword(*req.Contra); err != nil {
		jsonMessage(w, http.StatusBadRequest, false, err.Error())
		return
	}

	taken, err := utils.UsernameInUse(db, *req.Name)
	if err != nil {
		log.Println("username check failed:", err)
		jsonMessage(w, http.StatusBadRequest, false, "Error al registrar usuario")
		return
	}
	if taken {
		jsonMessage(w, http.StatusBadRequest, false, "Error al registrar usuario")
		return
	}

	hash, err := utils.HashPassword(*req.Contra)
	if err != nil {
		log.Println("error hashing password:", err)
		jsonMessage(w, http.StatusBadRequest, false, "Error al registrar usuario")
		return
	}

	id, err := utils.InsertUser(db, *req.Name, hash)
	if err != nil {
		log.Println("signup failed for user:", *req.Name, "|error:", err)
		jsonMessage(w, http.StatusBadRequest, false, "Error al registrar usuario")
		return
	}

	if err := utils.EstablishSession(w, r, client, id); err != nil {
		log.Println("failed to establish session:", err)
		jsonMessage(w, http.StatusBadRequest, false, "Error al registrar usuario")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func LoginHandler(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool, client *redis.Client) {
	if utils.IsAuthenticated(r, client) {
		jsonMessage(w, http.StatusBadRequest, false, "Usuario ya loggeado")
		return
	}

	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		jsonMessage(w, http.StatusBadRequest, false, "No se ha enviado contraseña")
		return
	}
	if req.Contra == nil {
		jsonMessage(w, http.StatusBadRequest, false, "No se ha enviado contraseña")
		return
	}

	var nombre string
	if req.Nombre != nil {
		nombre = *req.Nombre
	}

	u, err := utils.GetUserByUsername(db, nombre)
	if err != nil {
		if !errors.Is(err, utils.ErrNotFound) {
			log.Println("user lookup failed:", err)
		}
		jsonMessage(w, http.StatusNotFound, false, "El usuario no existe")
		return
	}

	if !utils.CheckPasswordHash(*req.Contra, u.PasswordHash) {
		jsonMessage(w, http.StatusBadRequest, false, "Contraseña incorrecta")
		return
	}

	if err := utils.EstablishSession(w, r, client, u.ID); err != nil {
		log.Println("failed to establish session:", err)
		jsonMessage(w, http.StatusBadRequest, false, "Contraseña incorrecta")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func LogOutHandler(w http.ResponseWriter, r *http.Request, client *redis.Client) {
	if err := utils.DestroySession(w, r, client); err != nil {
		log.Println("failed to destroy session:", err)
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func MeHandler(w http.ResponseWriter, r *http.Request) {
	u, ok := CurrentUser(r.Context())
	if !ok {
		jsonMessage(w, http.StatusUnauthorized, false, "Usuario no loggeado")
		return
	}
	writeJSON(w, http.StatusOK, u.Format())
}
