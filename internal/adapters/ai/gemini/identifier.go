package gemini

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"

	"livestock-registry/internal/domain/registrations"
	"livestock-registry/internal/ports/ai"
)

var _ ai.Identifier = (*Client)(nil)

// IdentifyBreed nunca devuelve un resultado vacío: errores de la API o de
// parseo quedan en BreedResult.Error. Solo ai.ErrUnavailable se propaga.
func (c *Client) IdentifyBreed(ctx context.Context, images []ai.Image, species registrations.Species) (registrations.BreedResult, error) {
	ctx, span := c.tracer.Start(ctx, "gemini.identify_breed", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("gemini.model", c.model),
		attribute.String("animal.species", string(species)),
		attribute.Int("animal.photos", len(images)),
	)

	if len(images) == 0 {
		err := errors.New("no photos to analyze")
		span.SetStatus(codes.Error, err.Error())
		return ai.FailedResult(err), nil
	}

	parts := make([]*genai.Part, 0, len(images)+1)
	parts = append(parts, genai.NewPartFromText(identifyPrompt(species, c.catalog.Names(species))))
	for _, img := range images {
		parts = append(parts, genai.NewPartFromBytes(img.Data, img.MimeType))
	}

	text, err := c.generateJSON(ctx, identifySystem, parts, breedSchema)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if errors.Is(err, ai.ErrUnavailable) {
			return registrations.BreedResult{}, err
		}
		return ai.FailedResult(err), nil
	}

	res, err := parseBreedResult(text)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return ai.FailedResult(err), nil
	}
	span.SetAttributes(
		attribute.String("breed.name", res.BreedName),
		attribute.String("breed.confidence", string(res.Confidence)),
	)
	span.SetStatus(codes.Ok, "")
	return res, nil
}
