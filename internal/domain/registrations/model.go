package registrations

import (
	"strings"
	"time"
)

// Species define las especies soportadas.
// @Enum Cattle, Buffalo
type Species string

const (
	SpeciesCattle  Species = "Cattle"
	SpeciesBuffalo Species = "Buffalo"
)

func (s Species) Valid() bool {
	return s == SpeciesCattle || s == SpeciesBuffalo
}

// Sex define el sexo del animal.
// @Enum Male, Female
type Sex string

const (
	SexMale   Sex = "Male"
	SexFemale Sex = "Female"
)

func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale
}

// AgeUnit es la unidad en la que se capturó la edad.
// @Enum Years, Months
type AgeUnit string

const (
	AgeUnitYears  AgeUnit = "Years"
	AgeUnitMonths AgeUnit = "Months"
)

func (u AgeUnit) Valid() bool {
	return u == AgeUnitYears || u == AgeUnitMonths
}

// Confidence es la banda de confianza que devuelve el modelo.
// @Enum High, Medium, Low
type Confidence string

const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceLow    Confidence = "Low"
)

const (
	MaxPhotosPerAnimal = 5
	UnknownBreed       = "Unknown"
)

// Candidate es una raza alternativa sugerida por el modelo.
type Candidate struct {
	BreedName  string  `json:"breedName"`
	Confidence float64 `json:"confidence"` // porcentaje 0-100
}

// BreedResult es el resultado de identificación de raza para un animal.
// Error vacío = análisis exitoso.
type BreedResult struct {
	Error              string      `json:"error"`
	BreedName          string      `json:"breedName"`
	Confidence         Confidence  `json:"confidence"`
	MilkYieldPotential string      `json:"milkYieldPotential"`
	CareNotes          string      `json:"careNotes"`
	Reasoning          string      `json:"reasoning"`
	TopCandidates      []Candidate `json:"topCandidates,omitempty"`
	IsUserVerified     bool        `json:"isUserVerified,omitempty"`
}

func (r BreedResult) Failed() bool {
	return strings.TrimSpace(r.Error) != ""
}

// ConfidencePercent devuelve el porcentaje de la adivinanza principal:
// el del candidato con el mismo nombre o, si no está, el del primero.
// Sin candidatos se deriva de la banda.
func (r BreedResult) ConfidencePercent() float64 {
	for _, c := range r.TopCandidates {
		if strings.EqualFold(strings.TrimSpace(c.BreedName), strings.TrimSpace(r.BreedName)) {
			return c.Confidence
		}
	}
	if len(r.TopCandidates) > 0 {
		return r.TopCandidates[0].Confidence
	}
	switch r.Confidence {
	case ConfidenceHigh:
		return 90
	case ConfidenceMedium:
		return 70
	default:
		return 40
	}
}

// Animal representa un animal dentro de un registro.
type Animal struct {
	ID          string       `json:"id"`
	Species     Species      `json:"species"`
	Sex         Sex          `json:"sex"`
	AgeValue    string       `json:"ageValue"`
	AgeUnit     AgeUnit      `json:"ageUnit"`
	HealthNotes string       `json:"healthNotes"`
	Photos      []string     `json:"photos"` // data URLs
	AIResult    *BreedResult `json:"aiResult,omitempty"`
}

// HasData indica si el animal ya tiene información capturada que se perdería
// al eliminarlo.
func (a Animal) HasData() bool {
	return len(a.Photos) > 0 || strings.TrimSpace(a.AgeValue) != ""
}

// Clone copia profunda (fotos, candidatos) para no compartir slices.
func (a Animal) Clone() Animal {
	out := a
	out.Photos = append([]string(nil), a.Photos...)
	if a.AIResult != nil {
		r := *a.AIResult
		r.TopCandidates = append([]Candidate(nil), a.AIResult.TopCandidates...)
		out.AIResult = &r
	}
	return out
}

// Owner son los datos del dueño.
type Owner struct {
	Name     string `json:"name"`
	Mobile   string `json:"mobile"`
	IDType   string `json:"idType"`
	IDNumber string `json:"idNumber"`
	Village  string `json:"village"`
	District string `json:"district"`
	State    string `json:"state"`
}

// Normalize recorta espacios de todos los campos.
func (o Owner) Normalize() Owner {
	return Owner{
		Name:     strings.TrimSpace(o.Name),
		Mobile:   strings.TrimSpace(o.Mobile),
		IDType:   strings.TrimSpace(o.IDType),
		IDNumber: strings.TrimSpace(o.IDNumber),
		Village:  strings.TrimSpace(o.Village),
		District: strings.TrimSpace(o.District),
		State:    strings.TrimSpace(o.State),
	}
}

// MissingField devuelve el primer campo vacío ("" si está completo).
func (o Owner) MissingField() string {
	n := o.Normalize()
	fields := []struct {
		name  string
		value string
	}{
		{"name", n.Name},
		{"mobile", n.Mobile},
		{"idType", n.IDType},
		{"idNumber", n.IDNumber},
		{"village", n.Village},
		{"district", n.District},
		{"state", n.State},
	}
	for _, f := range fields {
		if f.value == "" {
			return f.name
		}
	}
	return ""
}

// Registration es la unidad de persistencia: un dueño + uno o más animales.
type Registration struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	AgentID   string    `json:"agentId,omitempty"`
	Owner     Owner     `json:"owner"`
	Animals   []Animal  `json:"animals"`
}

func (r Registration) Clone() Registration {
	out := r
	out.Animals = make([]Animal, 0, len(r.Animals))
	for _, a := range r.Animals {
		out.Animals = append(out.Animals, a.Clone())
	}
	return out
}
