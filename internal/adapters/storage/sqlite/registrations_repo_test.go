package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"livestock-registry/internal/domain/registrations"
)

func newTestRepo(t *testing.T) *RegistrationsRepo {
	t.Helper()
	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRegistrationsRepo(db)
}

func sample(id string, ts time.Time) registrations.Registration {
	return registrations.Registration{
		ID:        id,
		Timestamp: ts,
		AgentID:   "agent-1",
		Owner:     registrations.Owner{Name: "Asha", District: "Ludhiana", State: "Punjab"},
		Animals: []registrations.Animal{{
			ID:       "a1",
			Species:  registrations.SpeciesBuffalo,
			Sex:      registrations.SexFemale,
			AgeValue: "4",
			AgeUnit:  registrations.AgeUnitYears,
			Photos:   []string{"data:image/jpeg;base64,AA=="},
			AIResult: &registrations.BreedResult{
				BreedName:      "Murrah",
				Confidence:     registrations.ConfidenceMedium,
				TopCandidates:  []registrations.Candidate{{BreedName: "Murrah", Confidence: 70}},
				IsUserVerified: true,
			},
		}},
	}
}

func TestRegistrationsRepo_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	reg := sample("REG-1", time.Date(2025, 1, 1, 10, 0, 0, 123, time.UTC))

	require.NoError(t, repo.Create(ctx, reg))
	require.ErrorIs(t, repo.Create(ctx, reg), registrations.ErrAlreadyExists)

	got, err := repo.GetByID(ctx, "REG-1")
	require.NoError(t, err)
	assert.Equal(t, reg, got)

	reg.Animals[0].HealthNotes = "vaccinated"
	require.NoError(t, repo.Update(ctx, reg))
	got, err = repo.GetByID(ctx, "REG-1")
	require.NoError(t, err)
	assert.Equal(t, "vaccinated", got.Animals[0].HealthNotes)

	_, err = repo.GetByID(ctx, "REG-2")
	assert.ErrorIs(t, err, registrations.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, sample("REG-2", time.Now())), registrations.ErrNotFound)
}

func TestRegistrationsRepo_GetAllNewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, sample("REG-a", base)))
	require.NoError(t, repo.Create(ctx, sample("REG-b", base.Add(48*time.Hour))))
	require.NoError(t, repo.Create(ctx, sample("REG-c", base.Add(time.Hour))))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"REG-b", "REG-c", "REG-a"}, []string{all[0].ID, all[1].ID, all[2].ID})
}

func TestOpen_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "registrations.db")
	db, err := Open(path)
	require.NoError(t, err)
	defer db.Close()

	_, err = os.Stat(path)
	require.NoError(t, err)

	// reabrir no falla: el esquema es idempotente
	db2, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, db2.Close())
}
