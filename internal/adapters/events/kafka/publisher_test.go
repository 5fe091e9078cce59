package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"livestock-registry/internal/domain/registrations"
)

type fakeProducer struct {
	records []*kgo.Record
	err     error
	closed  bool
}

func (f *fakeProducer) ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults {
	out := make(kgo.ProduceResults, 0, len(rs))
	for _, r := range rs {
		f.records = append(f.records, r)
		out = append(out, kgo.ProduceResult{Record: r, Err: f.err})
	}
	return out
}

func (f *fakeProducer) Close() { f.closed = true }

func TestPublisher_PublishSaved(t *testing.T) {
	fp := &fakeProducer{}
	p := newPublisher(fp, "registrations.saved")
	p.now = func() time.Time { return time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC) }

	reg := registrations.Registration{
		ID:        "REG-1",
		Timestamp: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		AgentID:   "agent-1",
		Owner:     registrations.Owner{State: "Punjab", District: "Ludhiana"},
		Animals: []registrations.Animal{
			{ID: "a1", Species: registrations.SpeciesCattle, Photos: []string{"data:image/png;base64,AA=="},
				AIResult: &registrations.BreedResult{BreedName: "Gir", IsUserVerified: true}},
			{ID: "a2", Species: registrations.SpeciesBuffalo},
		},
	}
	require.NoError(t, p.PublishSaved(context.Background(), reg, true))
	require.Len(t, fp.records, 1)

	rec := fp.records[0]
	assert.Equal(t, "registrations.saved", rec.Topic)
	assert.Equal(t, "REG-1", string(rec.Key))
	assert.Equal(t, EventCreated, string(rec.Headers[0].Value))
	assert.NotContains(t, string(rec.Value), "base64")

	var ev Event
	require.NoError(t, json.Unmarshal(rec.Value, &ev))
	assert.Equal(t, EventCreated, ev.Type)
	assert.Equal(t, "Punjab", ev.State)
	require.Len(t, ev.Animals, 2)
	assert.Equal(t, "Gir", ev.Animals[0].BreedName)
	assert.True(t, ev.Animals[0].IsUserVerified)
	assert.False(t, ev.Animals[0].AnalysisFailed)
	assert.True(t, ev.Animals[1].AnalysisFailed, "not analyzed counts as failed")

	p.Close()
	assert.True(t, fp.closed)
}

func TestPublisher_PropagatesProduceError(t *testing.T) {
	boom := errors.New("broker down")
	p := newPublisher(&fakeProducer{err: boom}, "t")
	err := p.PublishSaved(context.Background(), registrations.Registration{ID: "REG-1"}, false)
	assert.ErrorIs(t, err, boom)
}

func TestNewPublisher_RequiresBrokers(t *testing.T) {
	_, err := NewPublisher(nil, "t")
	assert.Error(t, err)
}
