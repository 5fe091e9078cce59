package gemini

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"

	"livestock-registry/internal/ports/ai"
)

var _ ai.Detector = (*Client)(nil)

// DetectAnimals es best-effort: el llamador decide qué hacer con el error.
func (c *Client) DetectAnimals(ctx context.Context, image ai.Image) (ai.DetectionResult, error) {
	ctx, span := c.tracer.Start(ctx, "gemini.detect_animals", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(attribute.String("gemini.model", c.model))

	parts := []*genai.Part{
		genai.NewPartFromText("List the animals in this photo."),
		genai.NewPartFromBytes(image.Data, image.MimeType),
	}
	text, err := c.generateJSON(ctx, detectSystem, parts, detectSchema)
	if err == nil {
		var res ai.DetectionResult
		if res, err = parseDetection(text); err == nil {
			span.SetAttributes(attribute.Int("animals.detected", len(res.Animals)))
			span.SetStatus(codes.Ok, "")
			return res, nil
		}
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return ai.DetectionResult{}, err
}
