package wizard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"livestock-registry/internal/domain/registrations"
)

func TestService_StartAndGet(t *testing.T) {
	svc := NewService(Deps{Repo: newTestRepo()}, Options{})

	w := svc.Start(context.Background(), "agent-1")
	got, err := svc.Get(w.ID(), "agent-1")
	require.NoError(t, err)
	assert.Same(t, w, got)
	assert.Equal(t, StageCountSelection, got.Snapshot().Stage)

	_, err = svc.Get("nope", "agent-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_GetIsScopedToAgent(t *testing.T) {
	svc := NewService(Deps{Repo: newTestRepo()}, Options{})
	w := svc.Start(context.Background(), "agent-1")

	_, err := svc.Get(w.ID(), "agent-2")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Get(w.ID(), "")
	assert.ErrorIs(t, err, ErrNotFound)

	// el dueño lo sigue viendo
	got, err := svc.Get(w.ID(), " agent-1 ")
	require.NoError(t, err)
	assert.Same(t, w, got)
}

func TestService_StartUpdate(t *testing.T) {
	repo := newTestRepo()
	require.NoError(t, repo.Create(context.Background(), registrations.Registration{
		ID:        "REG-1",
		Timestamp: time.Now(),
		Owner:     validOwner(),
		Animals:   []registrations.Animal{{ID: "a1", Photos: []string{photoOf("x")}}},
	}))
	svc := NewService(Deps{Repo: repo}, Options{})

	w, err := svc.StartUpdate(context.Background(), "agent-1", " REG-1 ")
	require.NoError(t, err)
	v := w.Snapshot()
	assert.Equal(t, ModeUpdate, v.Mode)
	assert.Equal(t, StageAnimalDetails, v.Stage)
	assert.Equal(t, "Jane", v.Owner.Name)

	_, err = svc.StartUpdate(context.Background(), "agent-1", "REG-404")
	assert.ErrorIs(t, err, registrations.ErrNotFound)
}

func TestService_SessionsExpire(t *testing.T) {
	svc := NewService(Deps{Repo: newTestRepo()}, Options{SessionTTL: 10 * time.Millisecond})
	w := svc.Start(context.Background(), "agent-1")

	time.Sleep(30 * time.Millisecond)
	_, err := svc.Get(w.ID(), "agent-1")
	assert.ErrorIs(t, err, ErrNotFound)
}
