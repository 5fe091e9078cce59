package wizard

import "livestock-registry/internal/domain/registrations"

// Estado de identificación por animal en la vista.
const (
	IdentificationNotStarted = "not_started"
	IdentificationPending    = "pending"
	IdentificationDone       = "done"
	IdentificationFailed     = "failed"
)

type AnimalView struct {
	Index          int    `json:"index"`
	Identification string `json:"identification"`
	registrations.Animal
}

type ReviewItem struct {
	Index             int                       `json:"index"`
	AnimalID          string                    `json:"animalId"`
	OriginalBreed     string                    `json:"originalBreed"`
	ConfidencePercent float64                   `json:"confidencePercent"`
	Candidates        []registrations.Candidate `json:"candidates"`
	Selection         string                    `json:"selection,omitempty"`
}

// View es una foto inmutable del wizard para la API.
type View struct {
	ID           string                      `json:"id"`
	Mode         Mode                        `json:"mode"`
	Stage        Stage                       `json:"stage"`
	StageName    string                      `json:"stageName"`
	Count        int                         `json:"count"`
	Animals      []AnimalView                `json:"animals"`
	Owner        registrations.Owner         `json:"owner"`
	Review       []ReviewItem                `json:"review,omitempty"`
	Registration *registrations.Registration `json:"registration,omitempty"`
}

func (w *Wizard) Snapshot() View {
	w.mu.Lock()
	defer w.mu.Unlock()

	v := View{
		ID:        w.id,
		Mode:      w.mode,
		Stage:     w.stage,
		StageName: w.stage.String(),
		Count:     len(w.animals),
		Animals:   make([]AnimalView, 0, len(w.animals)),
		Owner:     w.owner,
	}

	for i, a := range w.animals {
		v.Animals = append(v.Animals, AnimalView{
			Index:          i + 1,
			Identification: w.identificationState(a.ID),
			Animal:         a.Clone(),
		})
	}

	if w.stage == StageDisambiguationReview {
		for i, a := range w.animals {
			if !w.isFlagged(a.ID) || a.AIResult == nil {
				continue
			}
			v.Review = append(v.Review, ReviewItem{
				Index:             i + 1,
				AnimalID:          a.ID,
				OriginalBreed:     a.AIResult.BreedName,
				ConfidencePercent: a.AIResult.ConfidencePercent(),
				Candidates:        append([]registrations.Candidate(nil), a.AIResult.TopCandidates...),
				Selection:         w.selections[a.ID],
			})
		}
	}

	if w.final != nil {
		reg := w.final.Clone()
		v.Registration = &reg
	}
	return v
}

func (w *Wizard) identificationState(animalID string) string {
	t, ok := w.tasks[animalID]
	if !ok {
		return IdentificationNotStarted
	}
	if !t.settled() {
		return IdentificationPending
	}
	if t.fatal != nil || t.result.Failed() {
		return IdentificationFailed
	}
	return IdentificationDone
}
