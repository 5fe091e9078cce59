package gemini

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"

	"livestock-registry/internal/ports/ai"
)

var _ ai.ChatStarter = (*Client)(nil)

type chatSession struct {
	c     *Client
	breed string
	chat  chatSender
}

// StartChat abre una conversación nueva; el historial vive en la sesión.
func (c *Client) StartChat(ctx context.Context, breedName string) (ai.ChatSession, error) {
	if c.chats == nil {
		return nil, ai.ErrUnavailable
	}
	chat, err := c.chats.Create(ctx, c.model, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(chatSystem(breedName), genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.7),
	}, nil)
	if err != nil {
		return nil, classify(err)
	}
	return &chatSession{c: c, breed: breedName, chat: chat}, nil
}

func (s *chatSession) Send(ctx context.Context, message string) (string, error) {
	ctx, span := s.c.tracer.Start(ctx, "gemini.chat_send", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("gemini.model", s.c.model),
		attribute.String("breed.name", s.breed),
	)

	ctx, cancel := context.WithTimeout(ctx, s.c.timeout)
	defer cancel()

	resp, err := s.chat.SendMessage(ctx, genai.Part{Text: message})
	if err == nil && resp == nil {
		err = errors.New("empty response from model")
	}
	if err != nil {
		err = classify(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	span.SetStatus(codes.Ok, "")
	return strings.TrimSpace(resp.Text()), nil
}
