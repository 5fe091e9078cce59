package registrations

import (
	"context"

	"livestock-registry/internal/platform/logger"
)

// publishingRepo envuelve un Repository y publica cada escritura exitosa.
// La publicación es best-effort: un fallo se loguea pero no revierte el guardado.
type publishingRepo struct {
	Repository
	pub Publisher
	log logger.Logger
}

// WithPublisher devuelve repo tal cual si pub es nil.
func WithPublisher(repo Repository, pub Publisher, log logger.Logger) Repository {
	if pub == nil {
		return repo
	}
	return &publishingRepo{Repository: repo, pub: pub, log: log}
}

func (r *publishingRepo) Create(ctx context.Context, reg Registration) error {
	if err := r.Repository.Create(ctx, reg); err != nil {
		return err
	}
	r.publish(ctx, reg, true)
	return nil
}

func (r *publishingRepo) Update(ctx context.Context, reg Registration) error {
	if err := r.Repository.Update(ctx, reg); err != nil {
		return err
	}
	r.publish(ctx, reg, false)
	return nil
}

func (r *publishingRepo) publish(ctx context.Context, reg Registration, created bool) {
	if err := r.pub.PublishSaved(ctx, reg, created); err != nil && r.log != nil {
		r.log.Warn("publish registration failed", map[string]any{
			"registration_id": reg.ID,
			"error":           err.Error(),
		})
	}
}
