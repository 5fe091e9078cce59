package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"livestock-registry/internal/domain/registrations"
)

func sampleRegistration(id string, ts time.Time) registrations.Registration {
	return registrations.Registration{
		ID:        id,
		Timestamp: ts,
		AgentID:   "agent-1",
		Owner:     registrations.Owner{Name: "Asha", State: "Punjab"},
		Animals: []registrations.Animal{{
			ID:      "a1",
			Species: registrations.SpeciesCattle,
			Photos:  []string{"data:image/png;base64,AA=="},
		}},
	}
}

func TestRegistrationsRepo_CreateGetUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewRegistrationsRepo()
	ts := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	reg := sampleRegistration("REG-1", ts)
	require.NoError(t, repo.Create(ctx, reg))
	require.ErrorIs(t, repo.Create(ctx, reg), registrations.ErrAlreadyExists)

	got, err := repo.GetByID(ctx, "REG-1")
	require.NoError(t, err)
	assert.Equal(t, reg, got)

	reg.Owner.Name = "Asha Devi"
	require.NoError(t, repo.Update(ctx, reg))
	got, err = repo.GetByID(ctx, "REG-1")
	require.NoError(t, err)
	assert.Equal(t, "Asha Devi", got.Owner.Name)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, registrations.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, sampleRegistration("missing", ts)), registrations.ErrNotFound)
}

func TestRegistrationsRepo_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewRegistrationsRepo()
	reg := sampleRegistration("REG-1", time.Now())
	require.NoError(t, repo.Create(ctx, reg))

	got, err := repo.GetByID(ctx, "REG-1")
	require.NoError(t, err)
	got.Animals[0].Photos[0] = "mutated"

	again, err := repo.GetByID(ctx, "REG-1")
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,AA==", again.Animals[0].Photos[0])
}

func TestRegistrationsRepo_GetAllNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewRegistrationsRepo()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, sampleRegistration("REG-old", base)))
	require.NoError(t, repo.Create(ctx, sampleRegistration("REG-new", base.Add(time.Hour))))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "REG-new", all[0].ID)
	assert.Equal(t, "REG-old", all[1].ID)
}
