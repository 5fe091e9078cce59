package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"livestock-registry/internal/domain/registrations"
)

// Requiere una base real: TEST_DB_DSN=postgres://... go test ./internal/adapters/storage/postgres
func openTestDB(t *testing.T) *RegistrationsRepo {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	db, err := Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db), "migrations are idempotent")

	_, err = db.Exec(`TRUNCATE registrations`)
	require.NoError(t, err)
	return NewRegistrationsRepo(db)
}

func TestRegistrationsRepo_RoundTrip(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	reg := registrations.Registration{
		ID:        "REG-17356896001231234",
		Timestamp: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		AgentID:   "agent-1",
		Owner:     registrations.Owner{Name: `Jane, "The Farmer"`, State: "Punjab"},
		Animals: []registrations.Animal{{
			ID:      "a1",
			Species: registrations.SpeciesCattle,
			Photos:  []string{"data:image/png;base64,AA=="},
			AIResult: &registrations.BreedResult{
				BreedName:     "Gir",
				Confidence:    registrations.ConfidenceHigh,
				TopCandidates: []registrations.Candidate{{BreedName: "Gir", Confidence: 92}},
			},
		}},
	}
	require.NoError(t, repo.Create(ctx, reg))
	require.ErrorIs(t, repo.Create(ctx, reg), registrations.ErrAlreadyExists)

	got, err := repo.GetByID(ctx, reg.ID)
	require.NoError(t, err)
	assert.Equal(t, reg, got)

	reg.Owner.Mobile = "9000000000"
	require.NoError(t, repo.Update(ctx, reg))
	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "9000000000", all[0].Owner.Mobile)

	_, err = repo.GetByID(ctx, "REG-404")
	assert.ErrorIs(t, err, registrations.ErrNotFound)
	reg.ID = "REG-404"
	assert.ErrorIs(t, repo.Update(ctx, reg), registrations.ErrNotFound)
}
