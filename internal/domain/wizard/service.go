package wizard

import (
	"context"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"livestock-registry/internal/domain/registrations"
	"livestock-registry/internal/platform/logger"
)

const (
	DefaultSessionTTL      = 2 * time.Hour
	DefaultCleanupInterval = 10 * time.Minute
)

// Service guarda los wizards en curso. Un wizard abandonado expira solo;
// sus llamadas de identificación en vuelo no se cancelan.
type Service struct {
	deps     Deps
	regs     registrations.Repository
	sessions *gocache.Cache
	log      logger.Logger
}

type Options struct {
	SessionTTL time.Duration
	Logger     logger.Logger
}

func NewService(deps Deps, opts Options) *Service {
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		deps:     deps,
		regs:     deps.Repo,
		sessions: gocache.New(ttl, DefaultCleanupInterval),
		log:      log.With(map[string]any{"module": "wizard"}),
	}
}

// Start abre un wizard de alta.
func (s *Service) Start(ctx context.Context, agentID string) *Wizard {
	w := New(s.deps, agentID)
	s.sessions.SetDefault(w.ID(), w)
	s.log.Info("wizard started", map[string]any{"wizard_id": w.ID(), "agent_id": agentID, "mode": ModeCreate})
	return w
}

// StartUpdate abre un wizard de edición sobre un registro existente.
func (s *Service) StartUpdate(ctx context.Context, agentID, registrationID string) (*Wizard, error) {
	reg, err := s.regs.GetByID(ctx, strings.TrimSpace(registrationID))
	if err != nil {
		return nil, err
	}
	w := NewForUpdate(s.deps, agentID, reg)
	s.sessions.SetDefault(w.ID(), w)
	s.log.Info("wizard started", map[string]any{
		"wizard_id":       w.ID(),
		"agent_id":        agentID,
		"mode":            ModeUpdate,
		"registration_id": reg.ID,
	})
	return w, nil
}

// Get devuelve el wizard del agente y renueva su expiración. Un wizard
// ajeno se reporta igual que uno inexistente.
func (s *Service) Get(id, agentID string) (*Wizard, error) {
	v, ok := s.sessions.Get(strings.TrimSpace(id))
	if !ok {
		return nil, ErrNotFound
	}
	w, ok := v.(*Wizard)
	if !ok || w.agentID != strings.TrimSpace(agentID) {
		return nil, ErrNotFound
	}
	s.sessions.SetDefault(w.ID(), w)
	return w, nil
}

// Logger expone el logger del módulo para los handlers.
func (s *Service) Logger() logger.Logger {
	return s.log
}
