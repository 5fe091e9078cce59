package breeds

import (
	"encoding/json"
	"net/http"
	"strings"

	"livestock-registry/internal/domain/registrations"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, c *Catalog) {
	r.Get("/breeds", listHandler(c))
}

type errorResponse struct {
	Error string `json:"error"`
}

// listHandler godoc
// @Summary Catálogo de razas
// @Description Razas reconocidas, opcionalmente filtradas por especie.
// @Tags breeds
// @Produce json
// @Param species query string false "Cattle o Buffalo"
// @Success 200 {array} Breed
// @Failure 400 {object} errorResponse
// @Router /breeds [get]
func listHandler(c *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		species := registrations.Species(strings.TrimSpace(r.URL.Query().Get("species")))
		if species != "" && !species.Valid() {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "species must be Cattle or Buffalo"})
			return
		}
		writeJSON(w, http.StatusOK, c.List(species))
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
