package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"livestock-registry/internal/domain/registrations"
)

type registrationsRepo struct {
	mu   sync.RWMutex
	byID map[string]registrations.Registration
}

func NewRegistrationsRepo() registrations.Repository {
	return &registrationsRepo{
		byID: make(map[string]registrations.Registration),
	}
}

func (r *registrationsRepo) Create(ctx context.Context, reg registrations.Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(reg.ID) == "" {
		return errors.New("registration id required")
	}
	if _, exists := r.byID[reg.ID]; exists {
		return registrations.ErrAlreadyExists
	}
	r.byID[reg.ID] = reg.Clone()
	return nil
}

func (r *registrationsRepo) Update(ctx context.Context, reg registrations.Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(reg.ID) == "" {
		return errors.New("registration id required")
	}
	if _, exists := r.byID[reg.ID]; !exists {
		return registrations.ErrNotFound
	}
	r.byID[reg.ID] = reg.Clone()
	return nil
}

func (r *registrationsRepo) GetByID(ctx context.Context, id string) (registrations.Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, ok := r.byID[id]
	if !ok {
		return registrations.Registration{}, registrations.ErrNotFound
	}
	return reg.Clone(), nil
}

func (r *registrationsRepo) GetAll(ctx context.Context) ([]registrations.Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]registrations.Registration, 0, len(r.byID))
	for _, reg := range r.byID {
		out = append(out, reg.Clone())
	}

	// Orden estable por timestamp desc, como lo lista el servicio
	sort.Slice(out, func(i, j int) bool {
		if out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].ID > out[j].ID
		}
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}
