package registrations

import (
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// List devuelve los registros del más reciente al más antiguo.
func (s *Service) List(ctx context.Context) ([]Registration, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})
	return items, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Registration, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Registration{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// Certificate usa la fecha de registro como emisión si issueDate es nil.
func (s *Service) Certificate(ctx context.Context, id string, issueDate *time.Time) (Certificate, error) {
	r, err := s.GetByID(ctx, id)
	if err != nil {
		return Certificate{}, err
	}
	issue := r.Timestamp
	if issueDate != nil {
		issue = *issueDate
	}
	if issue.IsZero() {
		issue = s.now()
	}
	return BuildCertificate(r, issue), nil
}

// Export escribe todos los registros en CSV (orden de List).
func (s *Service) Export(ctx context.Context, w io.Writer) error {
	items, err := s.List(ctx)
	if err != nil {
		return err
	}
	return WriteCSV(w, items)
}
