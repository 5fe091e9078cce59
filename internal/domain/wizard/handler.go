package wizard

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"livestock-registry/internal/domain/registrations"
	"livestock-registry/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/wizards", func(wr chi.Router) {
		wr.Post("/", startHandler(svc))

		wr.Route("/{wizardID}", func(one chi.Router) {
			one.Get("/", getHandler(svc))
			one.Put("/count", setCountHandler(svc))
			one.Patch("/animals/{n}", updateAnimalHandler(svc))
			one.Post("/animals/{n}/photos", addPhotoHandler(svc))
			one.Delete("/animals/{n}/photos/{p}", removePhotoHandler(svc))
			one.Post("/animals/{n}/detect", detectHandler(svc))
			one.Post("/next", nextHandler(svc))
			one.Post("/back", backHandler(svc))
			one.Put("/owner", submitOwnerHandler(svc))
			one.Put("/selections/{n}", selectHandler(svc))
		})
	})
}

// startRequest: registrationId vacío = alta; con valor = edición.
type startRequest struct {
	RegistrationID string `json:"registrationId"`
}

type setCountRequest struct {
	Count     int  `json:"count"`
	Confirmed bool `json:"confirmed"`
}

type updateAnimalRequest struct {
	Species     *registrations.Species `json:"species"`
	Sex         *registrations.Sex     `json:"sex"`
	AgeValue    *string                `json:"ageValue"`
	AgeUnit     *registrations.AgeUnit `json:"ageUnit"`
	HealthNotes *string                `json:"healthNotes"`
}

type addPhotoRequest struct {
	Photo string `json:"photo"` // data:image/...;base64,...
}

type selectRequest struct {
	BreedName string `json:"breedName"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Animal  int    `json:"animal,omitempty"`
	Field   string `json:"field,omitempty"`
	Animals []int  `json:"animals,omitempty"`
}

type detectResponse struct {
	Outcome DetectionOutcome `json:"outcome"`
	Wizard  View             `json:"wizard"`
}

// startHandler godoc
// @Summary Iniciar wizard de registro
// @Description Abre un wizard de alta (sin body o registrationId vacío) o de edición de un registro existente (entra directo a los datos de animales). Requiere agente autenticado.
// @Tags wizard
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID del agente"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body startRequest false "registrationId opcional"
// @Success 201 {object} View
// @Failure 401 {object} errorResponse
// @Failure 404 {object} errorResponse "registration not found"
// @Router /wizards [post]
func startHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		agentID, ok := agentFrom(w, r)
		if !ok {
			return
		}

		var req startRequest
		if r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
				return
			}
		}

		if strings.TrimSpace(req.RegistrationID) == "" {
			wz := svc.Start(r.Context(), agentID)
			writeJSON(w, http.StatusCreated, wz.Snapshot())
			return
		}

		wz, err := svc.StartUpdate(r.Context(), agentID, req.RegistrationID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, wz.Snapshot())
	}
}

// getHandler godoc
// @Summary Ver estado del wizard
// @Tags wizard
// @Produce json
// @Param wizardID path string true "ID del wizard"
// @Success 200 {object} View
// @Failure 404 {object} errorResponse
// @Router /wizards/{wizardID} [get]
func getHandler(svc *Service) http.HandlerFunc {
	return withWizard(svc, func(w http.ResponseWriter, r *http.Request, wz *Wizard) {
		writeJSON(w, http.StatusOK, wz.Snapshot())
	})
}

// setCountHandler godoc
// @Summary Fijar cantidad de animales
// @Description Rango 1-50. Reducir la cantidad cuando los animales eliminados ya tienen fotos o edad devuelve 409 salvo que confirmed=true.
// @Tags wizard
// @Accept json
// @Produce json
// @Param wizardID path string true "ID del wizard"
// @Param payload body setCountRequest true "cantidad"
// @Success 200 {object} View
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse "confirmación requerida"
// @Router /wizards/{wizardID}/count [put]
func setCountHandler(svc *Service) http.HandlerFunc {
	return withWizard(svc, func(w http.ResponseWriter, r *http.Request, wz *Wizard) {
		var req setCountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
			return
		}
		if err := wz.SetCount(req.Count, req.Confirmed); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, wz.Snapshot())
	})
}

// updateAnimalHandler godoc
// @Summary Editar datos de un animal
// @Tags wizard
// @Accept json
// @Produce json
// @Param wizardID path string true "ID del wizard"
// @Param n path int true "Número de animal (1-based)"
// @Param payload body updateAnimalRequest true "campos a modificar"
// @Success 200 {object} View
// @Failure 400 {object} errorResponse
// @Router /wizards/{wizardID}/animals/{n} [patch]
func updateAnimalHandler(svc *Service) http.HandlerFunc {
	return withWizard(svc, func(w http.ResponseWriter, r *http.Request, wz *Wizard) {
		n, ok := intParam(w, r, "n")
		if !ok {
			return
		}
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		var req updateAnimalRequest
		if err := dec.Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
			return
		}
		err := wz.UpdateAnimal(n, AnimalPatch{
			Species:     req.Species,
			Sex:         req.Sex,
			AgeValue:    req.AgeValue,
			AgeUnit:     req.AgeUnit,
			HealthNotes: req.HealthNotes,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, wz.Snapshot())
	})
}

// addPhotoHandler godoc
// @Summary Agregar foto a un animal
// @Description Máximo 5 fotos por animal, como data URL base64.
// @Tags wizard
// @Accept json
// @Produce json
// @Param wizardID path string true "ID del wizard"
// @Param n path int true "Número de animal (1-based)"
// @Param payload body addPhotoRequest true "foto"
// @Success 200 {object} View
// @Failure 400 {object} errorResponse
// @Router /wizards/{wizardID}/animals/{n}/photos [post]
func addPhotoHandler(svc *Service) http.HandlerFunc {
	return withWizard(svc, func(w http.ResponseWriter, r *http.Request, wz *Wizard) {
		n, ok := intParam(w, r, "n")
		if !ok {
			return
		}
		var req addPhotoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
			return
		}
		if err := wz.AddPhoto(n, req.Photo); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, wz.Snapshot())
	})
}

// removePhotoHandler godoc
// @Summary Quitar foto de un animal
// @Tags wizard
// @Produce json
// @Param wizardID path string true "ID del wizard"
// @Param n path int true "Número de animal (1-based)"
// @Param p path int true "Número de foto (1-based)"
// @Success 200 {object} View
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /wizards/{wizardID}/animals/{n}/photos/{p} [delete]
func removePhotoHandler(svc *Service) http.HandlerFunc {
	return withWizard(svc, func(w http.ResponseWriter, r *http.Request, wz *Wizard) {
		n, ok := intParam(w, r, "n")
		if !ok {
			return
		}
		p, ok := intParam(w, r, "p")
		if !ok {
			return
		}
		if err := wz.RemovePhoto(n, p); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, wz.Snapshot())
	})
}

// detectHandler godoc
// @Summary Autocompletar especie y sexo desde la primera foto
// @Description Best-effort: los fallos o detecciones múltiples vuelven en outcome.message sin bloquear la carga manual.
// @Tags wizard
// @Produce json
// @Param wizardID path string true "ID del wizard"
// @Param n path int true "Número de animal (1-based)"
// @Success 200 {object} detectResponse
// @Router /wizards/{wizardID}/animals/{n}/detect [post]
func detectHandler(svc *Service) http.HandlerFunc {
	return withWizard(svc, func(w http.ResponseWriter, r *http.Request, wz *Wizard) {
		n, ok := intParam(w, r, "n")
		if !ok {
			return
		}
		out, err := wz.Detect(r.Context(), n)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, detectResponse{Outcome: out, Wizard: wz.Snapshot()})
	})
}

// nextHandler godoc
// @Summary Avanzar a la siguiente etapa
// @Description Al entrar a datos del dueño se lanza la identificación de raza de todos los animales en paralelo. Desde revisión, aplica las elecciones y guarda el registro.
// @Tags wizard
// @Produce json
// @Param wizardID path string true "ID del wizard"
// @Success 200 {object} View
// @Failure 400 {object} errorResponse "validación (animal 1-based + campo)"
// @Failure 409 {object} errorResponse "etapa inválida"
// @Failure 502 {object} errorResponse "identificación fallida"
// @Failure 503 {object} errorResponse "guardado fallido, reintentar"
// @Router /wizards/{wizardID}/next [post]
func nextHandler(svc *Service) http.HandlerFunc {
	return withWizard(svc, func(w http.ResponseWriter, r *http.Request, wz *Wizard) {
		if err := wz.Next(r.Context()); err != nil {
			logTransitionError(svc, wz, err)
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, wz.Snapshot())
	})
}

// backHandler godoc
// @Summary Volver a la etapa anterior
// @Description Conserva los datos cargados; en edición no hay etapa previa a animales.
// @Tags wizard
// @Produce json
// @Param wizardID path string true "ID del wizard"
// @Success 200 {object} View
// @Failure 404 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /wizards/{wizardID}/back [post]
func backHandler(svc *Service) http.HandlerFunc {
	return withWizard(svc, func(w http.ResponseWriter, r *http.Request, wz *Wizard) {
		if err := wz.Back(); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, wz.Snapshot())
	})
}

// submitOwnerHandler godoc
// @Summary Enviar datos del dueño
// @Description Espera todas las identificaciones en curso. Si algún animal quedó con confianza baja pasa a revisión; si no, guarda el registro.
// @Tags wizard
// @Accept json
// @Produce json
// @Param wizardID path string true "ID del wizard"
// @Param payload body registrations.Owner true "dueño (todos los campos requeridos)"
// @Success 200 {object} View
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse "identificación fallida"
// @Failure 503 {object} errorResponse "guardado fallido, reintentar"
// @Router /wizards/{wizardID}/owner [put]
func submitOwnerHandler(svc *Service) http.HandlerFunc {
	return withWizard(svc, func(w http.ResponseWriter, r *http.Request, wz *Wizard) {
		var owner registrations.Owner
		if err := json.NewDecoder(r.Body).Decode(&owner); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
			return
		}
		if err := wz.SubmitOwner(r.Context(), owner); err != nil {
			logTransitionError(svc, wz, err)
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, wz.Snapshot())
	})
}

// selectHandler godoc
// @Summary Elegir raza para un animal en revisión
// @Description breedName debe ser uno de los candidatos sugeridos; vacío limpia la selección.
// @Tags wizard
// @Accept json
// @Produce json
// @Param wizardID path string true "ID del wizard"
// @Param n path int true "Número de animal (1-based)"
// @Param payload body selectRequest true "raza elegida"
// @Success 200 {object} View
// @Failure 400 {object} errorResponse
// @Router /wizards/{wizardID}/selections/{n} [put]
func selectHandler(svc *Service) http.HandlerFunc {
	return withWizard(svc, func(w http.ResponseWriter, r *http.Request, wz *Wizard) {
		n, ok := intParam(w, r, "n")
		if !ok {
			return
		}
		var req selectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
			return
		}
		if err := wz.Select(n, req.BreedName); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, wz.Snapshot())
	})
}

// withWizard exige agente y resuelve {wizardID}.
func withWizard(svc *Service, h func(http.ResponseWriter, *http.Request, *Wizard)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		agentID, ok := agentFrom(w, r)
		if !ok {
			return
		}
		wz, err := svc.Get(chi.URLParam(r, "wizardID"), agentID)
		if err != nil {
			writeError(w, err)
			return
		}
		h(w, r, wz)
	}
}

func agentFrom(w http.ResponseWriter, r *http.Request) (string, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
		return "", false
	}
	return claims.UserID, true
}

func intParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	n, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: name + " must be an integer"})
		return 0, false
	}
	return n, true
}

func logTransitionError(svc *Service, wz *Wizard, err error) {
	if IsValidation(err) {
		return
	}
	svc.Logger().Warn("wizard transition failed", map[string]any{
		"wizard_id": wz.ID(),
		"error":     err.Error(),
	})
}

func writeError(w http.ResponseWriter, err error) {
	var ve *ValidationError
	var ce *ConfirmationError

	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: ve.Message, Animal: ve.Animal, Field: ve.Field})
	case errors.As(err, &ce):
		writeJSON(w, http.StatusConflict, errorResponse{Error: ce.Error(), Animals: ce.Animals})
	case errors.Is(err, ErrNotFound), errors.Is(err, registrations.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, ErrWrongStage), errors.Is(err, ErrNoPreviousStage),
		errors.Is(err, ErrFinalized), errors.Is(err, ErrConcurrentChange):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, ErrIdentificationFailed):
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
	case errors.Is(err, ErrPersistFailed):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
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
