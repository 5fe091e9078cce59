package registrations

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"livestock-registry/internal/middleware"

	"github.com/go-chi/chi/v5"
)

const issueDateLayout = "2006-01-02"

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/registrations", func(rr chi.Router) {
		rr.Get("/", listHandler(svc))
		rr.Get("/export", exportHandler(svc))
		rr.Get("/{registrationID}", getHandler(svc))
		rr.Get("/{registrationID}/certificate", certificateHandler(svc))
	})
}

type errorResponse struct {
	Error string `json:"error"`
}

// listHandler godoc
// @Summary Listar registros
// @Description Devuelve todos los registros, del más reciente al más antiguo.
// @Tags registrations
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID del agente"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {array} Registration
// @Failure 401 {object} errorResponse
// @Router /registrations [get]
func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAgent(w, r) {
			return
		}
		items, err := svc.List(r.Context())
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// exportHandler godoc
// @Summary Exportar registros a CSV
// @Description Una fila por animal, con los datos del dueño repetidos.
// @Tags registrations
// @Produce text/csv
// @Success 200 {string} string "CSV"
// @Failure 401 {object} errorResponse
// @Router /registrations/export [get]
func exportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAgent(w, r) {
			return
		}
		// Se arma en memoria para poder responder 500 si falla a mitad.
		var buf bytes.Buffer
		if err := svc.Export(r.Context(), &buf); err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="registrations-`+svc.now().UTC().Format(issueDateLayout)+`.csv"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf.Bytes())
	}
}

// getHandler godoc
// @Summary Obtener registro
// @Tags registrations
// @Produce json
// @Param registrationID path string true "ID del registro"
// @Success 200 {object} Registration
// @Failure 404 {object} errorResponse
// @Router /registrations/{registrationID} [get]
func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAgent(w, r) {
			return
		}
		reg, err := svc.GetByID(r.Context(), chi.URLParam(r, "registrationID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, reg)
	}
}

// certificateHandler godoc
// @Summary Certificado del registro
// @Description Identificadores y validez calculados. issue_date (YYYY-MM-DD) es opcional; por defecto la fecha del registro.
// @Tags registrations
// @Produce json
// @Param registrationID path string true "ID del registro"
// @Param issue_date query string false "Fecha de emisión YYYY-MM-DD"
// @Success 200 {object} Certificate
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /registrations/{registrationID}/certificate [get]
func certificateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAgent(w, r) {
			return
		}

		var issue *time.Time
		if raw := strings.TrimSpace(r.URL.Query().Get("issue_date")); raw != "" {
			t, err := time.Parse(issueDateLayout, raw)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: "issue_date must be YYYY-MM-DD"})
				return
			}
			issue = &t
		}

		cert, err := svc.Certificate(r.Context(), chi.URLParam(r, "registrationID"), issue)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, cert)
	}
}

func requireAgent(w http.ResponseWriter, r *http.Request) bool {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
		return false
	}
	return true
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
