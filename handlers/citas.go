package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"venvet/models"
	"venvet/utils"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type citaRequest struct {
	Name *string `json:"name"`
	Pet  *string `json:"pet"`
	Date *string `json:"date"`
}

func ListCitasHandler(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool) {
	u, ok := CurrentUser(r.Context())
	if !ok {
		jsonMessage(w, http.StatusUnauthorized, false, "Usuario no loggeado")
		return
	}

	citas, err := utils.ListCitasByOwner(db, u.ID)
	if err != nil {
		log.Println("list citas failed:", err)
		jsonMessage(w, http.StatusInternalServerError, false, "Error interno")
		return
	}

	out := make([]map[string]any, 0, len(citas))
	for i := range citas {
		out = append(out, citas[i].Format())
	}

	writeJSON(w, http.StatusOK, map[string]any{"citas": out})
}

// loadOwnedCita fetches the cita in the URL and enforces ownership. A
// non-numeric id behaves like a missing row. It writes the error response
// itself and reports success through the bool.
func loadOwnedCita(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool) (*models.Cita, bool) {
	u, ok := CurrentUser(r.Context())
	if !ok {
		jsonMessage(w, http.StatusUnauthorized, false, "Usuario no loggeado")
		return nil, false
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		jsonMessage(w, http.StatusNotFound, false, "Cita no encontrada")
		return nil, false
	}

	c, err := utils.GetCita(db, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			jsonMessage(w, http.StatusNotFound, false, "Cita no encontrada")
			return nil, false
		}
		log.Println("get cita failed:", err)
		jsonMessage(w, http.StatusInternalServerError, false, "Error interno")
		return nil, false
	}

	if c.OwnerID != u.ID {
		jsonMessage(w, http.StatusForbidden, false, "La cita no le pertenece a este usuario")
		return nil, false
	}

	return c, true
}

func GetCitaHandler(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool) {
	c, ok := loadOwnedCita(w, r, db)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, c.Format())
}

func CreateCitaHandler(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool) {
	u, ok := CurrentUser(r.Context())
	if !ok {
		jsonMessage(w, http.StatusUnauthorized, false, "Usuario no loggeado")
		return
	}

	var req citaRequest
	if err := decodeBody(r, &req); err != nil {
		jsonMessage(w, http.StatusBadRequest, false, "No se ha enviado el nombre")
		return
	}
	if req.Name == nil {
		jsonMessage(w, http.StatusBadRequest, false, "No se ha enviado el nombre")
		return
	}
	if req.Pet == nil {
		jsonMessage(w, http.StatusBadRequest, false, "No se ha enviado la raza de la mascota")
		return
	}
	if req.Date == nil {
		jsonMessage(w, http.StatusBadRequest, false, "No se ha enviado la fecha")
		return
	}

	date, err := utils.ParseCitaDate(*req.Date)
	if err != nil {
		jsonMessage(w, http.StatusBadRequest, false, "Error al registrar su cita")
		return
	}

	c := &models.Cita{
		Name:    *req.Name,
		Pet:     *req.Pet,
		Date:    date,
		OwnerID: u.ID,
	}

	if _, err := utils.InsertCita(db, c); err != nil {
		log.Println("insert cita failed:", err)
		jsonMessage(w, http.StatusBadRequest, false, "Error al registrar su cita")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// UpdateCitaHandler applies a partial update: only fields present in the
// request body are touched.
func UpdateCitaHandler(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool) {
	c, ok := loadOwnedCita(w, r, db)
	if !ok {
		return
	}

	var req citaRequest
	if err := decodeBody(r, &req); err != nil {
		jsonMessage(w, http.StatusBadRequest, false, "Error al actualizar la cita")
		return
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Pet != nil {
		c.Pet = *req.Pet
	}
	if req.Date != nil {
		date, err := utils.ParseCitaDate(*req.Date)
		if err != nil {
			jsonMessage(w, http.StatusBadRequest, false, "Error al actualizar la fecha de reserva")
			return
		}
		c.Date = date
	}

	if err := utils.UpdateCita(db, c); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			jsonMessage(w, http.StatusNotFound, false, "Cita no encontrada")
			return
		}
		log.Println("update cita failed:", err)
		jsonMessage(w, http.StatusBadRequest, false, "Error al actualizar la cita")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func DeleteCitaHandler(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool) {
	c, ok := loadOwnedCita(w, r, db)
	if !ok {
		return
	}

	if err := utils.DeleteCita(db, c.ID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			jsonMessage(w, http.StatusNotFound, false, "Cita no encontrada")
			return
		}
		log.Println("delete cita failed:", err)
		jsonMessage(w, http.StatusBadRequest, false, "Error al eliminar la cita")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
