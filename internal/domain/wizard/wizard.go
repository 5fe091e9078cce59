package wizard

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"livestock-registry/internal/domain/registrations"
	"livestock-registry/internal/domain/validity"
	"livestock-registry/internal/ports/ai"
)

// Observer recibe eventos del flujo (métricas). Puede ser nil.
type Observer interface {
	IdentificationFinished(d time.Duration, failed bool)
	ReviewRequired(animals int)
	RegistrationSaved(mode string)
}

type noopObserver struct{}

func (noopObserver) IdentificationFinished(time.Duration, bool) {}
func (noopObserver) ReviewRequired(int)                         {}
func (noopObserver) RegistrationSaved(string)                   {}

// Deps son los colaboradores externos del wizard.
type Deps struct {
	Identifier ai.Identifier
	Detector   ai.Detector
	Repo       registrations.Repository
	Observer   Observer
}

// Wizard es la máquina de estados del alta/edición de un registro.
// Todas las transiciones se serializan con mu; las llamadas de identificación
// corren aparte y solo se leen al hacer join.
type Wizard struct {
	mu sync.Mutex

	id      string
	agentID string
	mode    Mode
	stage   Stage
	version int

	animals []registrations.Animal
	owner   registrations.Owner

	tasks      map[string]*identification
	flagged    []string          // animal IDs en revisión, en orden
	selections map[string]string // animal ID -> raza elegida

	// update mode: identidad del registro existente
	existing *registrations.Registration
	// create mode: id reservado en el primer intento de guardado
	pendingID string

	final *registrations.Registration

	deps  Deps
	now   func() time.Time
	newID func(time.Time) string
}

func newWizard(deps Deps) *Wizard {
	if deps.Observer == nil {
		deps.Observer = noopObserver{}
	}
	return &Wizard{
		id:         uuid.NewString(),
		tasks:      map[string]*identification{},
		selections: map[string]string{},
		deps:       deps,
		now:        time.Now,
		newID:      newRegistrationID,
	}
}

// New arranca un wizard de alta en CountSelection con un animal.
func New(deps Deps, agentID string) *Wizard {
	w := newWizard(deps)
	w.mode = ModeCreate
	w.stage = StageCountSelection
	w.agentID = strings.TrimSpace(agentID)
	w.animals = []registrations.Animal{newAnimal()}
	return w
}

// NewForUpdate entra directo a AnimalDetails con los datos del registro.
func NewForUpdate(deps Deps, agentID string, existing registrations.Registration) *Wizard {
	w := newWizard(deps)
	w.mode = ModeUpdate
	w.stage = StageAnimalDetails
	w.agentID = strings.TrimSpace(agentID)

	ex := existing.Clone()
	w.existing = &ex
	w.owner = ex.Owner
	w.animals = make([]registrations.Animal, 0, len(ex.Animals))
	for _, a := range ex.Animals {
		a = a.Clone()
		a.AIResult = nil
		w.animals = append(w.animals, a)
	}
	return w
}

func (w *Wizard) ID() string { return w.id }

func newAnimal() registrations.Animal {
	return registrations.Animal{ID: uuid.NewString(), Photos: []string{}}
}

// newRegistrationID: REG-<unix ms><4 dígitos aleatorios>. El sufijo numérico
// alimenta los identificadores del certificado.
func newRegistrationID(now time.Time) string {
	return "REG-" + strconv.FormatInt(now.UnixMilli(), 10) + fmt.Sprintf("%04d", rand.IntN(10000))
}

// -------------------------
// CountSelection
// -------------------------

// SetCount ajusta la cantidad de animales. Reducir y perder fotos o edades
// requiere confirmed=true.
func (w *Wizard) SetCount(n int, confirmed bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stage != StageCountSelection {
		return ErrWrongStage
	}
	if n < MinAnimals || n > MaxAnimals {
		return &ValidationError{Field: "count", Message: fmt.Sprintf("must be between %d and %d", MinAnimals, MaxAnimals)}
	}

	if n < len(w.animals) {
		var affected []int
		for i := n; i < len(w.animals); i++ {
			if w.animals[i].HasData() {
				affected = append(affected, i+1)
			}
		}
		if len(affected) > 0 && !confirmed {
			return &ConfirmationError{Animals: affected}
		}
		w.animals = w.animals[:n:n]
	}
	for len(w.animals) < n {
		w.animals = append(w.animals, newAnimal())
	}
	w.version++
	return nil
}

// -------------------------
// AnimalDetails
// -------------------------

// AnimalPatch: nil = no tocar.
type AnimalPatch struct {
	Species     *registrations.Species
	Sex         *registrations.Sex
	AgeValue    *string
	AgeUnit     *registrations.AgeUnit
	HealthNotes *string
}

func (w *Wizard) UpdateAnimal(n int, p AnimalPatch) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	a, err := w.editableAnimal(n)
	if err != nil {
		return err
	}
	if p.Species != nil {
		if *p.Species != "" && !p.Species.Valid() {
			return &ValidationError{Animal: n, Field: "species", Message: "must be Cattle or Buffalo"}
		}
	}
	if p.Sex != nil {
		if *p.Sex != "" && !p.Sex.Valid() {
			return &ValidationError{Animal: n, Field: "sex", Message: "must be Male or Female"}
		}
	}
	if p.AgeUnit != nil {
		if *p.AgeUnit != "" && !p.AgeUnit.Valid() {
			return &ValidationError{Animal: n, Field: "ageUnit", Message: "must be Years or Months"}
		}
	}

	if p.Species != nil {
		a.Species = *p.Species
	}
	if p.Sex != nil {
		a.Sex = *p.Sex
	}
	if p.AgeValue != nil {
		a.AgeValue = strings.TrimSpace(*p.AgeValue)
	}
	if p.AgeUnit != nil {
		a.AgeUnit = *p.AgeUnit
	}
	if p.HealthNotes != nil {
		a.HealthNotes = strings.TrimSpace(*p.HealthNotes)
	}
	w.version++
	return nil
}

func (w *Wizard) AddPhoto(n int, ref string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	a, err := w.editableAnimal(n)
	if err != nil {
		return err
	}
	if len(a.Photos) >= registrations.MaxPhotosPerAnimal {
		return &ValidationError{Animal: n, Field: "photos", Message: fmt.Sprintf("at most %d photos", registrations.MaxPhotosPerAnimal)}
	}
	if _, err := ai.ParsePhoto(ref); err != nil {
		return &ValidationError{Animal: n, Field: "photos", Message: err.Error()}
	}
	a.Photos = append(a.Photos, strings.TrimSpace(ref))
	w.version++
	return nil
}

// RemovePhoto: p es 1-based.
func (w *Wizard) RemovePhoto(n, p int) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	a, err := w.editableAnimal(n)
	if err != nil {
		return err
	}
	if p < 1 || p > len(a.Photos) {
		return &ValidationError{Animal: n, Field: "photos", Message: "photo not found"}
	}
	a.Photos = append(a.Photos[:p-1:p-1], a.Photos[p:]...)
	w.version++
	return nil
}

// DetectionOutcome informa qué pasó con el autocompletado.
type DetectionOutcome struct {
	Applied  bool   `json:"applied"`
	Detected int    `json:"detected"`
	Message  string `json:"message,omitempty"`
}

// Detect usa la primera foto para autocompletar especie/sexo vacíos. Nunca
// bloquea la carga manual: los fallos vuelven como mensaje.
func (w *Wizard) Detect(ctx context.Context, n int) (DetectionOutcome, error) {
	w.mu.Lock()
	a, err := w.editableAnimal(n)
	if err != nil {
		w.mu.Unlock()
		return DetectionOutcome{}, err
	}
	if len(a.Photos) == 0 {
		w.mu.Unlock()
		return DetectionOutcome{}, &ValidationError{Animal: n, Field: "photos", Message: "add a photo first"}
	}
	animalID, photo := a.ID, a.Photos[0]
	detector := w.deps.Detector
	w.mu.Unlock()

	if detector == nil {
		return DetectionOutcome{Message: "detection unavailable"}, nil
	}
	img, err := ai.ParsePhoto(photo)
	if err != nil {
		return DetectionOutcome{Message: err.Error()}, nil
	}
	res, err := detector.DetectAnimals(ctx, img)
	if err != nil {
		return DetectionOutcome{Message: err.Error()}, nil
	}
	if res.Error != "" {
		return DetectionOutcome{Message: res.Error}, nil
	}

	out := DetectionOutcome{Detected: len(res.Animals)}
	switch {
	case len(res.Animals) == 0:
		out.Message = "no animal detected"
		return out, nil
	case len(res.Animals) > 1:
		out.Message = "multiple animals detected; photograph one animal at a time"
		return out, nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	target := w.animalByID(animalID)
	if target == nil || w.stage != StageAnimalDetails {
		out.Message = "animal changed during detection"
		return out, nil
	}
	d := res.Animals[0]
	if target.Species == "" && d.Species.Valid() {
		target.Species = d.Species
		out.Applied = true
	}
	if target.Sex == "" && d.Sex.Valid() {
		target.Sex = d.Sex
		out.Applied = true
	}
	if out.Applied {
		w.version++
	}
	return out, nil
}

func (w *Wizard) editableAnimal(n int) (*registrations.Animal, error) {
	if w.stage != StageAnimalDetails {
		return nil, ErrWrongStage
	}
	if n < 1 || n > len(w.animals) {
		return nil, &ValidationError{Animal: n, Field: "animal", Message: "animal not found"}
	}
	return &w.animals[n-1], nil
}

func (w *Wizard) animalByID(id string) *registrations.Animal {
	for i := range w.animals {
		if w.animals[i].ID == id {
			return &w.animals[i]
		}
	}
	return nil
}

func validateAnimals(animals []registrations.Animal) error {
	for i, a := range animals {
		n := i + 1
		if len(a.Photos) == 0 {
			return &ValidationError{Animal: n, Field: "photos", Message: "at least one photo is required"}
		}
		if !a.Species.Valid() {
			return &ValidationError{Animal: n, Field: "species", Message: "species is required"}
		}
		if !a.Sex.Valid() {
			return &ValidationError{Animal: n, Field: "sex", Message: "sex is required"}
		}
		if err := validateAge(a); err != nil {
			err.Animal = n
			return err
		}
	}
	return nil
}

func validateAge(a registrations.Animal) *ValidationError {
	v, ok := validity.ParseAge(a.AgeValue)
	if !ok {
		return &ValidationError{Field: "ageValue", Message: "age must be a number"}
	}
	switch a.AgeUnit {
	case registrations.AgeUnitYears:
		if v < MinAgeYears || v > MaxAgeYears {
			return &ValidationError{Field: "ageValue", Message: fmt.Sprintf("years must be between %d and %d", MinAgeYears, MaxAgeYears)}
		}
	case registrations.AgeUnitMonths:
		if v < MinAgeMonths || v > MaxAgeMonths {
			return &ValidationError{Field: "ageValue", Message: fmt.Sprintf("months must be between %d and %d", MinAgeMonths, MaxAgeMonths)}
		}
	default:
		return &ValidationError{Field: "ageUnit", Message: "age unit is required"}
	}
	return nil
}

// -------------------------
// Navegación
// -------------------------

// Next avanza una etapa. En OwnerDetails envía el dueño ya cargado.
func (w *Wizard) Next(ctx context.Context) error {
	w.mu.Lock()
	switch w.stage {
	case StageCountSelection:
		defer w.mu.Unlock()
		if len(w.animals) < MinAnimals {
			return &ValidationError{Field: "count", Message: "at least one animal is required"}
		}
		w.stage = StageAnimalDetails
		w.version++
		return nil

	case StageAnimalDetails:
		defer w.mu.Unlock()
		if err := validateAnimals(w.animals); err != nil {
			return err
		}
		w.stage = StageOwnerDetails
		w.ensureLaunched(ctx)
		w.version++
		return nil

	case StageOwnerDetails:
		owner := w.owner
		w.mu.Unlock()
		return w.SubmitOwner(ctx, owner)

	case StageDisambiguationReview:
		defer w.mu.Unlock()
		return w.resolveAndFinalize(ctx)

	default:
		w.mu.Unlock()
		return ErrFinalized
	}
}

// Back vuelve a la etapa anterior sin descartar datos.
func (w *Wizard) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.stage {
	case StageCountSelection:
		return ErrNoPreviousStage
	case StageAnimalDetails:
		if w.mode == ModeUpdate {
			return ErrNoPreviousStage
		}
		w.stage = StageCountSelection
	case StageOwnerDetails:
		w.stage = StageAnimalDetails
	case StageDisambiguationReview:
		w.stage = StageOwnerDetails
	default:
		return ErrFinalized
	}
	w.version++
	return nil
}

// ensureLaunched dispara identificación para animales sin tarea. Requiere mu.
func (w *Wizard) ensureLaunched(ctx context.Context) {
	for _, a := range w.animals {
		if _, ok := w.tasks[a.ID]; ok {
			continue
		}
		w.tasks[a.ID] = launchIdentification(ctx, w.deps.Identifier, a, w.deps.Observer)
	}
}

// -------------------------
// OwnerDetails
// -------------------------

// SubmitOwner es el punto de sincronización: espera todas las
// identificaciones antes de decidir si hace falta revisión.
func (w *Wizard) SubmitOwner(ctx context.Context, owner registrations.Owner) error {
	w.mu.Lock()
	if w.stage != StageOwnerDetails {
		w.mu.Unlock()
		return ErrWrongStage
	}
	owner = owner.Normalize()
	if f := owner.MissingField(); f != "" {
		w.mu.Unlock()
		return &ValidationError{Field: "owner." + f, Message: "is required"}
	}

	w.ensureLaunched(ctx)
	version := w.version
	ids := make([]string, 0, len(w.animals))
	for _, a := range w.animals {
		ids = append(ids, a.ID)
	}
	tasks := make(map[string]*identification, len(w.tasks))
	for k, v := range w.tasks {
		tasks[k] = v
	}
	w.mu.Unlock()

	// Se espera sin el lock para que el estado (pendientes) siga consultable.
	results, joinErr := joinIdentifications(ctx, ids, tasks)

	w.mu.Lock()
	defer w.mu.Unlock()

	if joinErr != nil {
		// Las tareas fatales se descartan para que el próximo envío las reemita.
		for _, id := range ids {
			if t := w.tasks[id]; t != nil && t.settled() && t.fatal != nil {
				delete(w.tasks, id)
			}
		}
		return joinErr
	}
	if w.version != version || w.stage != StageOwnerDetails {
		return ErrConcurrentChange
	}

	animals := make([]registrations.Animal, 0, len(w.animals))
	var flagged []string
	for _, a := range w.animals {
		a = a.Clone()
		res := results[a.ID]
		a.AIResult = &res
		if needsReview(a.AIResult) {
			flagged = append(flagged, a.ID)
		}
		animals = append(animals, a)
	}

	w.owner = owner
	w.animals = animals
	w.flagged = flagged
	w.version++

	if len(flagged) > 0 {
		for _, id := range flagged {
			a := w.animalByID(id)
			if sel, ok := w.selections[id]; !ok || !isChoice(a.AIResult, sel) {
				w.selections[id] = a.AIResult.BreedName
			}
		}
		w.stage = StageDisambiguationReview
		w.deps.Observer.ReviewRequired(len(flagged))
		return nil
	}

	return w.finalize(ctx, animals)
}

// -------------------------
// DisambiguationReview
// -------------------------

// Select fija la raza elegida para el animal n (1-based). "" limpia.
func (w *Wizard) Select(n int, breed string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stage != StageDisambiguationReview {
		return ErrWrongStage
	}
	if n < 1 || n > len(w.animals) {
		return &ValidationError{Animal: n, Field: "animal", Message: "animal not found"}
	}
	a := w.animals[n-1]
	if !w.isFlagged(a.ID) {
		return &ValidationError{Animal: n, Field: "breedName", Message: "animal does not require review"}
	}

	breed = strings.TrimSpace(breed)
	if breed == "" {
		delete(w.selections, a.ID)
		w.version++
		return nil
	}
	name, ok := choiceName(a.AIResult, breed)
	if !ok {
		return &ValidationError{Animal: n, Field: "breedName", Message: "must be one of the suggested candidates"}
	}
	w.selections[a.ID] = name
	w.version++
	return nil
}

func (w *Wizard) isFlagged(animalID string) bool {
	for _, id := range w.flagged {
		if id == animalID {
			return true
		}
	}
	return false
}

// resolveAndFinalize aplica las elecciones y guarda. Requiere mu.
func (w *Wizard) resolveAndFinalize(ctx context.Context) error {
	for i, a := range w.animals {
		if !w.isFlagged(a.ID) {
			continue
		}
		if _, ok := w.selections[a.ID]; !ok {
			return &ValidationError{Animal: i + 1, Field: "breedName", Message: "select a breed"}
		}
	}

	animals := make([]registrations.Animal, 0, len(w.animals))
	for _, a := range w.animals {
		a = a.Clone()
		if w.isFlagged(a.ID) {
			res := resolveSelection(*a.AIResult, w.selections[a.ID])
			a.AIResult = &res
		}
		animals = append(animals, a)
	}
	return w.finalize(ctx, animals)
}

func resolveSelection(r registrations.BreedResult, selected string) registrations.BreedResult {
	original := r.BreedName
	pct := r.ConfidencePercent()
	r.Reasoning = fmt.Sprintf(
		"Breed verified by field agent as %s. Original AI guess: %s (%.0f%% confidence, below the %.0f%% review threshold). Original reasoning: %s",
		selected, original, pct, ReviewConfidenceThreshold, strings.TrimSpace(r.Reasoning),
	)
	r.BreedName = selected
	r.IsUserVerified = true
	return r
}

// choiceName valida contra candidatos + la adivinanza original.
func choiceName(r *registrations.BreedResult, breed string) (string, bool) {
	if r == nil {
		return "", false
	}
	if strings.EqualFold(r.BreedName, breed) {
		return r.BreedName, true
	}
	for _, c := range r.TopCandidates {
		if strings.EqualFold(c.BreedName, breed) {
			return c.BreedName, true
		}
	}
	return "", false
}

func isChoice(r *registrations.BreedResult, breed string) bool {
	_, ok := choiceName(r, breed)
	return ok
}

// -------------------------
// Results
// -------------------------

// finalize arma el registro y lo guarda (create u update). Requiere mu.
// Si falla el guardado la etapa no cambia y se puede reintentar.
func (w *Wizard) finalize(ctx context.Context, animals []registrations.Animal) error {
	reg := registrations.Registration{
		AgentID: w.agentID,
		Owner:   w.owner,
		Animals: animals,
	}

	var err error
	switch w.mode {
	case ModeUpdate:
		reg.ID = w.existing.ID
		reg.Timestamp = w.existing.Timestamp
		if w.existing.AgentID != "" {
			reg.AgentID = w.existing.AgentID
		}
		err = w.deps.Repo.Update(ctx, reg)
	default:
		now := w.now()
		if w.pendingID == "" {
			w.pendingID = w.newID(now)
		}
		reg.ID = w.pendingID
		reg.Timestamp = now.UTC()
		err = w.deps.Repo.Create(ctx, reg)
		if errors.Is(err, registrations.ErrAlreadyExists) {
			// un intento previo llegó a guardar: reintento como update
			err = w.deps.Repo.Update(ctx, reg)
		}
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}

	w.final = &reg
	w.animals = animals
	w.stage = StageResults
	w.version++
	w.deps.Observer.RegistrationSaved(string(w.mode))
	return nil
}
