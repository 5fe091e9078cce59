package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"livestock-registry/internal/domain/registrations"
)

// Fechas en UTC con ancho fijo para que ORDER BY textual sea cronológico.
const tsLayout = "2006-01-02T15:04:05.000000000Z07:00"

type RegistrationsRepo struct {
	db  *sql.DB
	now func() time.Time
}

func NewRegistrationsRepo(db *sql.DB) *RegistrationsRepo {
	return &RegistrationsRepo{db: db, now: time.Now}
}

func (r *RegistrationsRepo) Create(ctx context.Context, reg registrations.Registration) error {
	owner, animals, err := encodeParts(reg)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO registrations (id, created_at, agent_id, owner, animals, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING
	`,
		reg.ID,
		reg.Timestamp.UTC().Format(tsLayout),
		reg.AgentID,
		owner,
		animals,
		r.now().UTC().Format(tsLayout),
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
		SET agent_id = ?, owner = ?, animals = ?, updated_at = ?
		WHERE id = ?
	`,
		reg.AgentID,
		owner,
		animals,
		r.now().UTC().Format(tsLayout),
		reg.ID,
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
		WHERE id = ?
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
		reg            registrations.Registration
		created        string
		owner, animals string
	)
	if err := s.Scan(&reg.ID, &created, &reg.AgentID, &owner, &animals); err != nil {
		return registrations.Registration{}, err
	}
	ts, err := time.Parse(tsLayout, created)
	if err != nil {
		return registrations.Registration{}, fmt.Errorf("decode timestamp of %s: %w", reg.ID, err)
	}
	reg.Timestamp = ts.UTC()
	if err := json.Unmarshal([]byte(owner), &reg.Owner); err != nil {
		return registrations.Registration{}, fmt.Errorf("decode owner of %s: %w", reg.ID, err)
	}
	if err := json.Unmarshal([]byte(animals), &reg.Animals); err != nil {
		return registrations.Registration{}, fmt.Errorf("decode animals of %s: %w", reg.ID, err)
	}
	return reg, nil
}

func encodeParts(reg registrations.Registration) (owner, animals string, err error) {
	if strings.TrimSpace(reg.ID) == "" {
		return "", "", errors.New("registration id required")
	}
	o, err := json.Marshal(reg.Owner)
	if err != nil {
		return "", "", err
	}
	if reg.Animals == nil {
		reg.Animals = []registrations.Animal{}
	}
	a, err := json.Marshal(reg.Animals)
	if err != nil {
		return "", "", err
	}
	return string(o), string(a), nil
}
