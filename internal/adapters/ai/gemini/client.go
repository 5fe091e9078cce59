// Package gemini implementa los puertos de IA (identificación, detección y
// chat) sobre la API de Gemini.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"

	"livestock-registry/internal/domain/breeds"
	"livestock-registry/internal/ports/ai"
)

const (
	DefaultModel   = "gemini-2.5-flash"
	DefaultTimeout = 60 * time.Second

	tracerName = "livestock-registry/gemini"
)

// generator es el subconjunto de *genai.Models que usamos.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// chatFactory abre conversaciones; en producción envuelve *genai.Chats.
type chatFactory interface {
	Create(ctx context.Context, model string, config *genai.GenerateContentConfig, history []*genai.Content) (chatSender, error)
}

type chatSender interface {
	SendMessage(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type Options struct {
	APIKey     string
	Model      string
	Timeout    time.Duration
	HTTPClient *http.Client
	Catalog    *breeds.Catalog
}

type Client struct {
	gen     generator
	chats   chatFactory
	model   string
	timeout time.Duration
	catalog *breeds.Catalog
	tracer  trace.Tracer
}

// New crea el cliente. Sin API key devuelve ai.ErrUnavailable: el servicio
// arranca igual y la identificación falla en forma total.
func New(ctx context.Context, opts Options) (*Client, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, fmt.Errorf("%w: missing gemini api key", ai.ErrUnavailable)
	}
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     opts.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: opts.HTTPClient,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return newClient(gc.Models, genaiChats{gc.Chats}, opts), nil
}

func newClient(gen generator, chats chatFactory, opts Options) *Client {
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = DefaultModel
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	catalog := opts.Catalog
	if catalog == nil {
		catalog = breeds.Default()
	}
	return &Client{
		gen:     gen,
		chats:   chats,
		model:   model,
		timeout: timeout,
		catalog: catalog,
		tracer:  otel.Tracer(tracerName),
	}
}

type genaiChats struct {
	chats *genai.Chats
}

func (c genaiChats) Create(ctx context.Context, model string, config *genai.GenerateContentConfig, history []*genai.Content) (chatSender, error) {
	return c.chats.Create(ctx, model, config, history)
}

// generateJSON hace una llamada con respuesta JSON según schema.
func (c *Client) generateJSON(ctx context.Context, system string, parts []*genai.Part, schema *genai.Schema) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.gen.GenerateContent(ctx, c.model,
		[]*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)},
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
			ResponseMIMEType:  "application/json",
			ResponseSchema:    schema,
			Temperature:       genai.Ptr[float32](0.2),
		},
	)
	if err != nil {
		return "", classify(err)
	}
	if resp == nil {
		return "", errors.New("empty response from model")
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.New("empty response from model")
	}
	return text, nil
}

// classify: credenciales/permiso inválidos son falla total; el resto es por animal.
func classify(err error) error {
	if apiErr, ok := asAPIError(err); ok {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %s", ai.ErrUnavailable, apiErr.Message)
		}
		return fmt.Errorf("gemini: %s", apiErr.Message)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.New("analysis timed out")
	}
	return err
}

// asAPIError acepta el error de la API por valor o por puntero.
func asAPIError(err error) (genai.APIError, bool) {
	var v genai.APIError
	if errors.As(err, &v) {
		return v, true
	}
	var p *genai.APIError
	if errors.As(err, &p) && p != nil {
		return *p, true
	}
	return genai.APIError{}, false
}
