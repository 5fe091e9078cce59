// Package breedchat mantiene conversaciones sobre una raza. Cada chat es un
// objeto propio con expiración; no hay sesión global.
package breedchat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"livestock-registry/internal/ports/ai"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("chat not found")
	ErrUnavailable  = errors.New("chat unavailable")
)

const (
	DefaultTTL       = 30 * time.Minute
	MaxMessageLength = 2000
	cleanupInterval  = 5 * time.Minute
)

// Chat serializa los mensajes de una conversación.
type Chat struct {
	ID        string    `json:"id"`
	BreedName string    `json:"breedName"`
	AgentID   string    `json:"agentId"`
	CreatedAt time.Time `json:"createdAt"`

	mu      sync.Mutex
	session ai.ChatSession
}

type Service struct {
	starter ai.ChatStarter
	chats   *gocache.Cache
	now     func() time.Time
}

func NewService(starter ai.ChatStarter, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		starter: starter,
		chats:   gocache.New(ttl, cleanupInterval),
		now:     time.Now,
	}
}

func (s *Service) Start(ctx context.Context, agentID, breedName string) (*Chat, error) {
	breedName = strings.TrimSpace(breedName)
	if breedName == "" {
		return nil, fmt.Errorf("%w: breedName is required", ErrInvalidInput)
	}
	if s.starter == nil {
		return nil, ErrUnavailable
	}

	session, err := s.starter.StartChat(ctx, breedName)
	if err != nil {
		if errors.Is(err, ai.ErrUnavailable) {
			return nil, ErrUnavailable
		}
		return nil, err
	}

	c := &Chat{
		ID:        uuid.NewString(),
		BreedName: breedName,
		AgentID:   strings.TrimSpace(agentID),
		CreatedAt: s.now().UTC(),
		session:   session,
	}
	s.chats.SetDefault(c.ID, c)
	return c, nil
}

// Send reenvía el mensaje y renueva la expiración del chat.
func (s *Service) Send(ctx context.Context, agentID, chatID, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", fmt.Errorf("%w: message is required", ErrInvalidInput)
	}
	if len(message) > MaxMessageLength {
		return "", fmt.Errorf("%w: message exceeds %d characters", ErrInvalidInput, MaxMessageLength)
	}

	c, ok := s.owned(agentID, chatID)
	if !ok {
		return "", ErrNotFound
	}
	s.chats.SetDefault(c.ID, c)

	c.mu.Lock()
	defer c.mu.Unlock()
	reply, err := c.session.Send(ctx, message)
	if err != nil {
		if errors.Is(err, ai.ErrUnavailable) {
			return "", ErrUnavailable
		}
		return "", err
	}
	return reply, nil
}

// Close descarta el chat. Cerrar uno ajeno o inexistente da ErrNotFound.
func (s *Service) Close(agentID, chatID string) error {
	c, ok := s.owned(agentID, chatID)
	if !ok {
		return ErrNotFound
	}
	s.chats.Delete(c.ID)
	return nil
}

// owned busca el chat solo si pertenece al agente.
func (s *Service) owned(agentID, chatID string) (*Chat, bool) {
	v, ok := s.chats.Get(strings.TrimSpace(chatID))
	if !ok {
		return nil, false
	}
	c, ok := v.(*Chat)
	if !ok || c.AgentID != strings.TrimSpace(agentID) {
		return nil, false
	}
	return c, true
}
