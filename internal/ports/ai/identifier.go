package ai

//go:generate mockgen -source=identifier.go -destination=mocks/mocks.go -package=mocks Identifier,Detector

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"livestock-registry/internal/domain/registrations"
)

// ErrUnavailable indica una falla total del servicio (no configurado, sin
// credenciales). El wizard la trata como fatal; cualquier otro error es por animal.
var ErrUnavailable = errors.New("identification service unavailable")

var ErrInvalidPhoto = errors.New("photo must be a base64 data url")

// Image es una foto decodificada lista para enviar al modelo.
type Image struct {
	MimeType string
	Data     []byte
}

// Identifier identifica la raza a partir de fotos + especie declarada.
type Identifier interface {
	IdentifyBreed(ctx context.Context, images []Image, species registrations.Species) (registrations.BreedResult, error)
}

// Detection es un animal detectado en una foto.
type Detection struct {
	Species registrations.Species `json:"species"`
	Sex     registrations.Sex     `json:"gender"`
}

type DetectionResult struct {
	Error   string      `json:"error"`
	Animals []Detection `json:"animals"`
}

// Detector autocompleta especie/sexo (best-effort).
type Detector interface {
	DetectAnimals(ctx context.Context, image Image) (DetectionResult, error)
}

// ChatSession es una conversación sobre una raza. La crea y la posee quien
// abre la vista de chat; no hay sesiones globales.
type ChatSession interface {
	Send(ctx context.Context, message string) (string, error)
}

type ChatStarter interface {
	StartChat(ctx context.Context, breedName string) (ChatSession, error)
}

// FailedResult mapea un error a un resultado degradado (nunca vacío).
func FailedResult(err error) registrations.BreedResult {
	msg := "identification failed"
	if err != nil && strings.TrimSpace(err.Error()) != "" {
		msg = err.Error()
	}
	return registrations.BreedResult{
		Error:      msg,
		BreedName:  registrations.UnknownBreed,
		Confidence: registrations.ConfidenceLow,
	}
}

// ParsePhoto decodifica una referencia data:<mime>;base64,<data>.
func ParsePhoto(ref string) (Image, error) {
	ref = strings.TrimSpace(ref)
	rest, ok := strings.CutPrefix(ref, "data:")
	if !ok {
		return Image{}, ErrInvalidPhoto
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return Image{}, ErrInvalidPhoto
	}
	mime, ok := strings.CutSuffix(meta, ";base64")
	if !ok || !strings.HasPrefix(mime, "image/") {
		return Image{}, ErrInvalidPhoto
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Image{}, fmt.Errorf("%w: %v", ErrInvalidPhoto, err)
	}
	if len(data) == 0 {
		return Image{}, ErrInvalidPhoto
	}
	return Image{MimeType: mime, Data: data}, nil
}

// ParsePhotos decodifica todas las fotos de un animal.
func ParsePhotos(refs []string) ([]Image, error) {
	out := make([]Image, 0, len(refs))
	for _, ref := range refs {
		img, err := ParsePhoto(ref)
		if err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, nil
}
