package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"livestock-registry/internal/domain/registrations"
	"livestock-registry/internal/ports/ai"
)

// identification es el handle de una llamada de identificación de un animal.
// Se crea una sola vez por animal; done se cierra al terminar.
type identification struct {
	done   chan struct{}
	result registrations.BreedResult
	fatal  error
}

func (t *identification) settled() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// launchIdentification dispara la llamada en background. El contexto pierde
// la cancelación del request: una vez emitida, la llamada corre hasta el final.
func launchIdentification(ctx context.Context, id ai.Identifier, a registrations.Animal, obs Observer) *identification {
	t := &identification{done: make(chan struct{})}
	ctx = context.WithoutCancel(ctx)
	photos := append([]string(nil), a.Photos...)
	species := a.Species

	go func() {
		start := time.Now()
		defer close(t.done)
		defer func() {
			if r := recover(); r != nil {
				t.fatal = fmt.Errorf("%w: panic: %v", ErrIdentificationFailed, r)
			}
			obs.IdentificationFinished(time.Since(start), t.fatal != nil || t.result.Failed())
		}()

		if id == nil {
			t.fatal = ai.ErrUnavailable
			return
		}

		images, err := ai.ParsePhotos(photos)
		if err != nil {
			t.result = ai.FailedResult(err)
			return
		}

		res, err := id.IdentifyBreed(ctx, images, species)
		if err != nil {
			if errors.Is(err, ai.ErrUnavailable) {
				t.fatal = err
				return
			}
			t.result = ai.FailedResult(err)
			return
		}
		t.result = normalizeResult(res)
	}()

	return t
}

// joinIdentifications espera a que todas las tareas terminen. Un error por
// animal queda en su resultado; solo una falla total devuelve error.
func joinIdentifications(ctx context.Context, ids []string, tasks map[string]*identification) (map[string]registrations.BreedResult, error) {
	results := make([]registrations.BreedResult, len(ids))

	var g errgroup.Group
	for i, animalID := range ids {
		t := tasks[animalID]
		if t == nil {
			return nil, fmt.Errorf("%w: animal %d was never submitted", ErrIdentificationFailed, i+1)
		}
		g.Go(func() error {
			select {
			case <-t.done:
				if t.fatal != nil {
					return t.fatal
				}
				results[i] = t.result
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}
	if err := g.Wait(); err != nil {
		if errors.Is(err, ErrIdentificationFailed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrIdentificationFailed, err)
	}

	out := make(map[string]registrations.BreedResult, len(ids))
	for i, animalID := range ids {
		out[animalID] = results[i]
	}
	return out, nil
}

// normalizeResult garantiza campos degradados válidos y recorta candidatos.
func normalizeResult(r registrations.BreedResult) registrations.BreedResult {
	r.BreedName = strings.TrimSpace(r.BreedName)
	if r.BreedName == "" {
		r.BreedName = registrations.UnknownBreed
	}
	switch r.Confidence {
	case registrations.ConfidenceHigh, registrations.ConfidenceMedium, registrations.ConfidenceLow:
	default:
		r.Confidence = registrations.ConfidenceLow
	}

	cands := make([]registrations.Candidate, 0, len(r.TopCandidates))
	for _, c := range r.TopCandidates {
		c.BreedName = strings.TrimSpace(c.BreedName)
		if c.BreedName == "" {
			continue
		}
		cands = append(cands, c)
		if len(cands) == MaxTopCandidates {
			break
		}
	}
	if len(cands) == 0 {
		cands = nil
	}
	r.TopCandidates = cands
	r.IsUserVerified = false
	return r
}

// needsReview: sin error, confianza < umbral y con alternativas.
func needsReview(r *registrations.BreedResult) bool {
	if r == nil || r.Failed() {
		return false
	}
	return len(r.TopCandidates) > 0 && r.ConfidencePercent() < ReviewConfidenceThreshold
}
