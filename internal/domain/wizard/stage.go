package wizard

// Stage es una etapa del wizard, en orden.
type Stage int

const (
	StageCountSelection Stage = iota + 1
	StageAnimalDetails
	StageOwnerDetails
	StageDisambiguationReview
	StageResults
)

func (s Stage) String() string {
	switch s {
	case StageCountSelection:
		return "count_selection"
	case StageAnimalDetails:
		return "animal_details"
	case StageOwnerDetails:
		return "owner_details"
	case StageDisambiguationReview:
		return "disambiguation_review"
	case StageResults:
		return "results"
	default:
		return "unknown"
	}
}

// Mode: create arma un registro nuevo, update reemplaza dueño/animales de uno existente.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeUpdate Mode = "update"
)

// Umbrales fijos del flujo de revisión.
const (
	ReviewConfidenceThreshold = 75.0
	MaxTopCandidates          = 3

	MinAnimals = 1
	MaxAnimals = 50

	MinAgeYears  = 0
	MaxAgeYears  = 20
	MinAgeMonths = 6
	MaxAgeMonths = 12
)
