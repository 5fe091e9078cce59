package registrations

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("registration not found")
	ErrAlreadyExists = errors.New("registration already exists")
)

// Repository es el contrato de persistencia de registros.
// Los backends (memory, sqlite, postgres, redis) deben devolver ErrNotFound y
// ErrAlreadyExists para que el resto del sistema no dependa del backend.
type Repository interface {
	GetAll(ctx context.Context) ([]Registration, error)
	GetByID(ctx context.Context, id string) (Registration, error)
	Create(ctx context.Context, r Registration) error
	Update(ctx context.Context, r Registration) error
}

// Publisher notifica registros guardados a sistemas externos.
type Publisher interface {
	PublishSaved(ctx context.Context, r Registration, created bool) error
}
