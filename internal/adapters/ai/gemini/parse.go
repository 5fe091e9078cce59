package gemini

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"livestock-registry/internal/domain/registrations"
	"livestock-registry/internal/ports/ai"
)

type candidatePayload struct {
	BreedName  string  `json:"breedName"`
	Confidence float64 `json:"confidence"`
}

type breedPayload struct {
	BreedName          string             `json:"breedName"`
	Confidence         string             `json:"confidence"`
	MilkYieldPotential string             `json:"milkYieldPotential"`
	CareNotes          string             `json:"careNotes"`
	Reasoning          string             `json:"reasoning"`
	Error              string             `json:"error"`
	TopCandidates      []candidatePayload `json:"topCandidates"`
}

type detectionPayload struct {
	Species string `json:"species"`
	Gender  string `json:"gender"`
}

type detectPayload struct {
	Error   string             `json:"error"`
	Animals []detectionPayload `json:"animals"`
}

// stripFences quita un bloque ```json ... ``` si el modelo lo agrega igual.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "```"))
}

func parseBreedResult(text string) (registrations.BreedResult, error) {
	var p breedPayload
	if err := json.Unmarshal([]byte(stripFences(text)), &p); err != nil {
		return registrations.BreedResult{}, fmt.Errorf("invalid model response: %w", err)
	}
	if msg := strings.TrimSpace(p.Error); msg != "" {
		return ai.FailedResult(errors.New(msg)), nil
	}

	res := registrations.BreedResult{
		BreedName:          strings.TrimSpace(p.BreedName),
		Confidence:         parseConfidence(p.Confidence),
		MilkYieldPotential: strings.TrimSpace(p.MilkYieldPotential),
		CareNotes:          strings.TrimSpace(p.CareNotes),
		Reasoning:          strings.TrimSpace(p.Reasoning),
	}
	if res.BreedName == "" {
		res.BreedName = registrations.UnknownBreed
	}

	// Algunos modelos devuelven fracciones (0.8) en vez de porcentajes.
	scale := 1.0
	fractions := len(p.TopCandidates) > 0
	for _, c := range p.TopCandidates {
		if c.Confidence > 1 {
			fractions = false
			break
		}
	}
	if fractions {
		scale = 100
	}
	for _, c := range p.TopCandidates {
		name := strings.TrimSpace(c.BreedName)
		if name == "" {
			continue
		}
		res.TopCandidates = append(res.TopCandidates, registrations.Candidate{
			BreedName:  name,
			Confidence: clampPercent(c.Confidence * scale),
		})
	}
	return res, nil
}

func parseConfidence(s string) registrations.Confidence {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return registrations.ConfidenceHigh
	case "medium":
		return registrations.ConfidenceMedium
	default:
		return registrations.ConfidenceLow
	}
}

func clampPercent(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return math.Round(v*10) / 10
}

func parseDetection(text string) (ai.DetectionResult, error) {
	var p detectPayload
	if err := json.Unmarshal([]byte(stripFences(text)), &p); err != nil {
		return ai.DetectionResult{}, fmt.Errorf("invalid model response: %w", err)
	}
	out := ai.DetectionResult{Error: strings.TrimSpace(p.Error), Animals: []ai.Detection{}}
	for _, a := range p.Animals {
		var d ai.Detection
		switch strings.ToLower(strings.TrimSpace(a.Species)) {
		case "cattle", "cow", "bull":
			d.Species = registrations.SpeciesCattle
		case "buffalo":
			d.Species = registrations.SpeciesBuffalo
		default:
			continue
		}
		switch strings.ToLower(strings.TrimSpace(a.Gender)) {
		case "male":
			d.Sex = registrations.SexMale
		case "female":
			d.Sex = registrations.SexFemale
		}
		out.Animals = append(out.Animals, d)
	}
	return out, nil
}
