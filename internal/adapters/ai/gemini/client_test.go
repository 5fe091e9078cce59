package gemini

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"google.golang.org/genai"

	"livestock-registry/internal/domain/registrations"
	"livestock-registry/internal/ports/ai"
)

// -------------------------
// Fakes
// -------------------------

type fakeGenerator struct {
	text     string
	err      error
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
	deadline bool
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model, f.contents, f.config = model, contents, config
	_, f.deadline = ctx.Deadline()
	if f.err != nil {
		return nil, f.err
	}
	return textResponse(f.text), nil
}

type fakeChat struct {
	sent  []string
	reply string
	err   error
}

func (f *fakeChat) SendMessage(_ context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	for _, p := range parts {
		f.sent = append(f.sent, p.Text)
	}
	if f.err != nil {
		return nil, f.err
	}
	return textResponse(f.reply), nil
}

type fakeChats struct {
	chat   *fakeChat
	config *genai.GenerateContentConfig
}

func (f *fakeChats) Create(_ context.Context, _ string, config *genai.GenerateContentConfig, _ []*genai.Content) (chatSender, error) {
	f.config = config
	return f.chat, nil
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Role: "model", Parts: []*genai.Part{{Text: text}}},
		}},
	}
}

func newTestClient(t *testing.T, gen generator, chats chatFactory) (*Client, *tracetest.InMemoryExporter) {
	t.Helper()
	exp := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	c := newClient(gen, chats, Options{Timeout: time.Second})
	c.tracer = tp.Tracer(tracerName)
	return c, exp
}

var jpeg = ai.Image{MimeType: "image/jpeg", Data: []byte{0xff, 0xd8, 0xff}}

// -------------------------
// IdentifyBreed
// -------------------------

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New(context.Background(), Options{APIKey: "  "})
	require.ErrorIs(t, err, ai.ErrUnavailable)
}

func TestIdentifyBreed_Success(t *testing.T) {
	gen := &fakeGenerator{text: `{"breedName":"Gir","confidence":"High","reasoning":"domed forehead",
		"topCandidates":[{"breedName":"Gir","confidence":91}]}`}
	c, exp := newTestClient(t, gen, nil)

	res, err := c.IdentifyBreed(context.Background(), []ai.Image{jpeg, jpeg}, registrations.SpeciesCattle)
	require.NoError(t, err)
	assert.Equal(t, "Gir", res.BreedName)
	assert.Equal(t, registrations.ConfidenceHigh, res.Confidence)

	assert.Equal(t, DefaultModel, gen.model)
	assert.True(t, gen.deadline)
	require.Len(t, gen.contents, 1)
	// prompt + 2 fotos
	require.Len(t, gen.contents[0].Parts, 3)
	assert.Contains(t, gen.contents[0].Parts[0].Text, "Declared species: Cattle")
	assert.Contains(t, gen.contents[0].Parts[0].Text, "Sahiwal")
	assert.NotContains(t, gen.contents[0].Parts[0].Text, "Murrah")
	assert.Equal(t, "application/json", gen.config.ResponseMIMEType)

	spans := exp.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "gemini.identify_breed", spans[0].Name)
	assert.Equal(t, codes.Ok, spans[0].Status.Code)
}

func TestIdentifyBreed_ErrorsAreDegraded(t *testing.T) {
	cases := []struct {
		name string
		gen  *fakeGenerator
		want string
	}{
		{"api error", &fakeGenerator{err: genai.APIError{Code: 500, Message: "backend error"}}, "gemini: backend error"},
		{"timeout", &fakeGenerator{err: context.DeadlineExceeded}, "analysis timed out"},
		{"garbage", &fakeGenerator{text: "sorry, I can't"}, "invalid model response"},
		{"empty", &fakeGenerator{text: "  "}, "empty response"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, exp := newTestClient(t, tc.gen, nil)
			res, err := c.IdentifyBreed(context.Background(), []ai.Image{jpeg}, registrations.SpeciesBuffalo)
			require.NoError(t, err)
			assert.Contains(t, res.Error, tc.want)
			assert.Equal(t, registrations.UnknownBreed, res.BreedName)
			assert.Equal(t, registrations.ConfidenceLow, res.Confidence)
			assert.Equal(t, codes.Error, exp.GetSpans()[0].Status.Code)
		})
	}
}

func TestIdentifyBreed_NoPhotos(t *testing.T) {
	gen := &fakeGenerator{}
	c, _ := newTestClient(t, gen, nil)
	res, err := c.IdentifyBreed(context.Background(), nil, registrations.SpeciesCattle)
	require.NoError(t, err)
	assert.True(t, res.Failed())
	assert.Nil(t, gen.contents)
}

func TestIdentifyBreed_AuthFailureIsUnavailable(t *testing.T) {
	gen := &fakeGenerator{err: genai.APIError{Code: http.StatusForbidden, Message: "API key not valid"}}
	c, _ := newTestClient(t, gen, nil)
	_, err := c.IdentifyBreed(context.Background(), []ai.Image{jpeg}, registrations.SpeciesCattle)
	require.ErrorIs(t, err, ai.ErrUnavailable)
}

// -------------------------
// DetectAnimals / Chat
// -------------------------

func TestDetectAnimals(t *testing.T) {
	gen := &fakeGenerator{text: `{"animals":[{"species":"Buffalo","gender":"Female"}]}`}
	c, _ := newTestClient(t, gen, nil)

	res, err := c.DetectAnimals(context.Background(), jpeg)
	require.NoError(t, err)
	require.Len(t, res.Animals, 1)
	assert.Equal(t, registrations.SpeciesBuffalo, res.Animals[0].Species)

	gen.err = errors.New("boom")
	_, err = c.DetectAnimals(context.Background(), jpeg)
	require.Error(t, err)
}

func TestChat(t *testing.T) {
	chat := &fakeChat{reply: " Feed green fodder. "}
	chats := &fakeChats{chat: chat}
	c, exp := newTestClient(t, &fakeGenerator{}, chats)

	s, err := c.StartChat(context.Background(), "Gir")
	require.NoError(t, err)
	assert.Contains(t, chats.config.SystemInstruction.Parts[0].Text, "Gir")

	reply, err := s.Send(context.Background(), "What should I feed?")
	require.NoError(t, err)
	assert.Equal(t, "Feed green fodder.", reply)
	assert.Equal(t, []string{"What should I feed?"}, chat.sent)
	assert.Equal(t, "gemini.chat_send", exp.GetSpans()[0].Name)

	chat.err = genai.APIError{Code: http.StatusUnauthorized, Message: "bad key"}
	_, err = s.Send(context.Background(), "again")
	require.ErrorIs(t, err, ai.ErrUnavailable)
}
