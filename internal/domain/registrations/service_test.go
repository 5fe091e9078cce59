package registrations

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"livestock-registry/internal/platform/logger"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Registration
	err  error
}

func newTestRepo(items ...Registration) *testRepo {
	r := &testRepo{byID: map[string]Registration{}}
	for _, it := range items {
		r.byID[it.ID] = it
	}
	return r
}

func (r *testRepo) GetAll(ctx context.Context) ([]Registration, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]Registration, 0, len(r.byID))
	for _, it := range r.byID {
		out = append(out, it)
	}
	return out, nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Registration, error) {
	it, ok := r.byID[id]
	if !ok {
		return Registration{}, ErrNotFound
	}
	return it, nil
}

func (r *testRepo) Create(ctx context.Context, reg Registration) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.byID[reg.ID]; ok {
		return ErrAlreadyExists
	}
	r.byID[reg.ID] = reg
	return nil
}

func (r *testRepo) Update(ctx context.Context, reg Registration) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.byID[reg.ID]; !ok {
		return ErrNotFound
	}
	r.byID[reg.ID] = reg
	return nil
}

func at(day int) time.Time {
	return time.Date(2025, 1, day, 0, 0, 0, 0, time.UTC)
}

// -------------------------
// Service
// -------------------------

func TestService_ListNewestFirst(t *testing.T) {
	svc := NewService(newTestRepo(
		Registration{ID: "REG-1", Timestamp: at(1)},
		Registration{ID: "REG-3", Timestamp: at(3)},
		Registration{ID: "REG-2", Timestamp: at(2)},
	))

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	ids := []string{items[0].ID, items[1].ID, items[2].ID}
	assert.Equal(t, []string{"REG-3", "REG-2", "REG-1"}, ids)
}

func TestService_GetByID(t *testing.T) {
	svc := NewService(newTestRepo(Registration{ID: "REG-1"}))

	_, err := svc.GetByID(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GetByID(context.Background(), "REG-2")
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := svc.GetByID(context.Background(), " REG-1 ")
	require.NoError(t, err)
	assert.Equal(t, "REG-1", got.ID)
}

func TestService_CertificateDefaultsToRegistrationDate(t *testing.T) {
	svc := NewService(newTestRepo(Registration{
		ID:        "REG-17356896001231234",
		Timestamp: time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC),
		Owner:     Owner{State: "Punjab", District: "Ludhiana"},
		Animals:   []Animal{{ID: "a1", AgeValue: "5", AgeUnit: AgeUnitYears}},
	}))

	cert, err := svc.Certificate(context.Background(), "REG-17356896001231234", nil)
	require.NoError(t, err)
	assert.Equal(t, "INAPH-CERT-2024-1234", cert.CertificateID)

	issue := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	cert, err = svc.Certificate(context.Background(), "REG-17356896001231234", &issue)
	require.NoError(t, err)
	assert.Equal(t, "BPA/PB/LUDH/2025/1234", cert.ReferenceNumber)
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), cert.Validity.ValidUntil)
}

func TestService_Export(t *testing.T) {
	svc := NewService(newTestRepo(
		Registration{ID: "REG-1", Timestamp: at(1), Animals: []Animal{{ID: "a"}}},
		Registration{ID: "REG-2", Timestamp: at(2), Animals: []Animal{{ID: "b"}, {ID: "c"}}},
	))

	var buf bytes.Buffer
	require.NoError(t, svc.Export(context.Background(), &buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "REG-2,"))

	repo := newTestRepo()
	repo.err = errors.New("db down")
	assert.Error(t, NewService(repo).Export(context.Background(), &buf))
}

// -------------------------
// Publishing decorator
// -------------------------

type testPublisher struct {
	calls []bool
	err   error
}

func (p *testPublisher) PublishSaved(ctx context.Context, r Registration, created bool) error {
	p.calls = append(p.calls, created)
	return p.err
}

func TestWithPublisher(t *testing.T) {
	repo := newTestRepo()
	pub := &testPublisher{}
	wrapped := WithPublisher(repo, pub, logger.Nop())

	ctx := context.Background()
	require.NoError(t, wrapped.Create(ctx, Registration{ID: "REG-1"}))
	require.NoError(t, wrapped.Update(ctx, Registration{ID: "REG-1"}))
	require.ErrorIs(t, wrapped.Update(ctx, Registration{ID: "REG-9"}), ErrNotFound)

	assert.Equal(t, []bool{true, false}, pub.calls, "failed writes are not published")
	assert.Same(t, repo, WithPublisher(repo, nil, nil))
}

func TestWithPublisher_FailureIsLoggedNotReturned(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	pub := &testPublisher{err: errors.New("broker down")}
	wrapped := WithPublisher(newTestRepo(), pub, logger.FromZap(zap.New(core)))

	require.NoError(t, wrapped.Create(context.Background(), Registration{ID: "REG-1"}))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "broker down", logs.All()[0].ContextMap()["error"])
}
