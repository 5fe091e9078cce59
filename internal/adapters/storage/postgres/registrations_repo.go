package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"livestock-registry/internal/domain/registrations"
)

// RegistrationsRepo guarda dueño y animales como JSONB: el registro se lee y
// escribe siempre completo.
type RegistrationsRepo struct {
	db *sql.DB
}

func NewRegistrationsRepo(db *sql.DB) *RegistrationsRepo {
	return &RegistrationsRepo{db: db}
}

func (r *RegistrationsRepo) Create(ctx context.Context, reg registrations.Registration) error {
	owner, animals, err := encodeParts(reg)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO registrations (id, created_at, agent_id, owner, animals, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (id) DO NOTHING
	`,
		reg.ID,
		reg.Timestamp.UTC(),
		reg.AgentID,
		owner,
		animals,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return registrations.ErrAlreadyExists
	}
	return nil
}

func (r *RegistrationsRepo) Update(ctx context.Context, reg registrations.Registration) error {
	owner, animals, err := encodeParts(reg)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE registrations
		SET
			agent_id = $2,
			owner = $3,
			animals = $4,
			updated_at = now()
		WHERE id = $1
	`,
		reg.ID,
		reg.AgentID,
		owner,
		animals,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return registrations.ErrNotFound
	}
	return nil
}

func (r *RegistrationsRepo) GetByID(ctx context.Context, id string) (registrations.Registration, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return registrations.Registration{}, registrations.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, created_at, agent_id, owner, animals
		FROM registrations
		WHERE id = $1
	`, id)

	reg, err := scanRegistration(row)
	if errors.Is(err, sql.ErrNoRows) {
		return registrations.Registration{}, registrations.ErrNotFound
	}
	return reg, err
}

func (r *RegistrationsRepo) GetAll(ctx context.Context) ([]registrations.Registration, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, created_at, agent_id, owner, animals
		FROM registrations
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]registrations.Registration, 0)
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, reg)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRegistration(s scanner) (registrations.Registration, error) {
	var (
		reg     registrations.Registration
		owner   []byte
		animals []byte
	)
	if err := s.Scan(&reg.ID, &reg.Timestamp, &reg.AgentID, &owner, &animals); err != nil {
		return registrations.Registration{}, err
	}
	if err := json.Unmarshal(owner, &reg.Owner); err != nil {
		return registrations.Registration{}, fmt.Errorf("decode owner of %s: %w", reg.ID, err)
	}
	if err := json.Unmarshal(animals, &reg.Animals); err != nil {
		return registrations.Registration{}, fmt.Errorf("decode animals of %s: %w", reg.ID, err)
	}
	reg.Timestamp = reg.Timestamp.UTC()
	return reg, nil
}

func encodeParts(reg registrations.Registration) (owner, animals []byte, err error) {
	if strings.TrimSpace(reg.ID) == "" {
		return nil, nil, errors.New("registration id required")
	}
	if owner, err = json.Marshal(reg.Owner); err != nil {
		return nil, nil, err
	}
	if reg.Animals == nil {
		reg.Animals = []registrations.Animal{}
	}
	if animals, err = json.Marshal(reg.Animals); err != nil {
		return nil, nil, err
	}
	return owner, animals, nil
}
