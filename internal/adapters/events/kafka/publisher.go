// Package kafka publica un evento por cada registro guardado. El evento no
// lleva fotos: solo lo necesario para que otros sistemas pidan el registro.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"livestock-registry/internal/domain/registrations"
)

const (
	EventCreated = "registration.created"
	EventUpdated = "registration.updated"
)

type producer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Close()
}

type AnimalSummary struct {
	AnimalID       string                `json:"animalId"`
	Species        registrations.Species `json:"species"`
	BreedName      string                `json:"breedName"`
	IsUserVerified bool                  `json:"isUserVerified"`
	AnalysisFailed bool                  `json:"analysisFailed"`
}

type Event struct {
	Type           string          `json:"type"`
	RegistrationID string          `json:"registrationId"`
	AgentID        string          `json:"agentId,omitempty"`
	Timestamp      time.Time       `json:"timestamp"`
	State          string          `json:"state"`
	District       string          `json:"district"`
	Animals        []AnimalSummary `json:"animals"`
	OccurredAt     time.Time       `json:"occurredAt"`
}

type Publisher struct {
	client producer
	topic  string
	now    func() time.Time
}

// NewPublisher conecta a los brokers. El cliente de franz-go conecta en
// forma perezosa: un broker caído aparece recién al publicar.
func NewPublisher(brokers []string, topic string) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka: no brokers")
	}
	cl, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.ProducerLinger(5*time.Millisecond),
		kgo.RecordDeliveryTimeout(10*time.Second),
	)
	if err != nil {
		return nil, err
	}
	return newPublisher(cl, topic), nil
}

func newPublisher(p producer, topic string) *Publisher {
	return &Publisher{client: p, topic: topic, now: time.Now}
}

// PublishSaved implementa registrations.Publisher. La key es el id del
// registro para que create/update queden en la misma partición.
func (p *Publisher) PublishSaved(ctx context.Context, r registrations.Registration, created bool) error {
	ev := BuildEvent(r, created, p.now())
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	rec := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(r.ID),
		Value: payload,
		Headers: []kgo.RecordHeader{
			{Key: "event-type", Value: []byte(ev.Type)},
		},
	}
	return p.client.ProduceSync(ctx, rec).FirstErr()
}

func (p *Publisher) Close() {
	p.client.Close()
}

func BuildEvent(r registrations.Registration, created bool, now time.Time) Event {
	typ := EventUpdated
	if created {
		typ = EventCreated
	}
	animals := make([]AnimalSummary, 0, len(r.Animals))
	for _, a := range r.Animals {
		s := AnimalSummary{AnimalID: a.ID, Species: a.Species, AnalysisFailed: true}
		if a.AIResult != nil {
			s.BreedName = a.AIResult.BreedName
			s.IsUserVerified = a.AIResult.IsUserVerified
			s.AnalysisFailed = a.AIResult.Failed()
		}
		animals = append(animals, s)
	}
	return Event{
		Type:           typ,
		RegistrationID: r.ID,
		AgentID:        r.AgentID,
		Timestamp:      r.Timestamp.UTC(),
		State:          r.Owner.State,
		District:       r.Owner.District,
		Animals:        animals,
		OccurredAt:     now.UTC(),
	}
}
