// Package redis guarda registros como JSON en claves {prefix}:{id} con un
// sorted set {prefix}:index (score = timestamp en ms) para listar en orden.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"livestock-registry/internal/domain/registrations"
)

const DefaultPrefix = "registrations"

type RegistrationsRepo struct {
	client *redis.Client
	prefix string
}

func NewRegistrationsRepo(client *redis.Client, prefix string) *RegistrationsRepo {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &RegistrationsRepo{client: client, prefix: prefix}
}

// Dial crea el cliente y verifica la conexión.
func Dial(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

func (r *RegistrationsRepo) key(id string) string { return r.prefix + ":" + id }
func (r *RegistrationsRepo) indexKey() string     { return r.prefix + ":index" }

// Registro + índice van en un solo script: nunca queda un registro sin indexar.
var (
	createScript = redis.NewScript(`
if not redis.call('SET', KEYS[1], ARGV[1], 'NX') then
	return 0
end
redis.call('ZADD', KEYS[2], ARGV[2], ARGV[3])
return 1
`)

	// ZADD NX repara el índice si faltara, sin mover el orden original.
	updateScript = redis.NewScript(`
if not redis.call('SET', KEYS[1], ARGV[1], 'XX') then
	return 0
end
redis.call('ZADD', KEYS[2], 'NX', ARGV[2], ARGV[3])
return 1
`)
)

func (r *RegistrationsRepo) Create(ctx context.Context, reg registrations.Registration) error {
	ok, err := r.write(ctx, createScript, reg)
	if err != nil {
		return err
	}
	if !ok {
		return registrations.ErrAlreadyExists
	}
	return nil
}

func (r *RegistrationsRepo) Update(ctx context.Context, reg registrations.Registration) error {
	ok, err := r.write(ctx, updateScript, reg)
	if err != nil {
		return err
	}
	if !ok {
		return registrations.ErrNotFound
	}
	return nil
}

func (r *RegistrationsRepo) write(ctx context.Context, script *redis.Script, reg registrations.Registration) (bool, error) {
	raw, err := encode(reg)
	if err != nil {
		return false, err
	}
	n, err := script.Run(ctx, r.client,
		[]string{r.key(reg.ID), r.indexKey()},
		string(raw), reg.Timestamp.UnixMilli(), reg.ID,
	).Int()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *RegistrationsRepo) GetByID(ctx context.Context, id string) (registrations.Registration, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return registrations.Registration{}, registrations.ErrNotFound
	}
	raw, err := r.client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return registrations.Registration{}, registrations.ErrNotFound
	}
	if err != nil {
		return registrations.Registration{}, err
	}
	return decode(raw)
}

func (r *RegistrationsRepo) GetAll(ctx context.Context) ([]registrations.Registration, error) {
	ids, err := r.client.ZRevRange(ctx, r.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	out := make([]registrations.Registration, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, r.key(id))
	}
	vals, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			// índice huérfano (clave borrada a mano): se ignora
			continue
		}
		reg, err := decode([]byte(s))
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", ids[i], err)
		}
		out = append(out, reg)
	}
	return out, nil
}

func encode(reg registrations.Registration) ([]byte, error) {
	if strings.TrimSpace(reg.ID) == "" {
		return nil, errors.New("registration id required")
	}
	reg.Timestamp = reg.Timestamp.UTC()
	if reg.Animals == nil {
		reg.Animals = []registrations.Animal{}
	}
	return json.Marshal(reg)
}

func decode(raw []byte) (registrations.Registration, error) {
	var reg registrations.Registration
	if err := json.Unmarshal(raw, &reg); err != nil {
		return registrations.Registration{}, err
	}
	reg.Timestamp = reg.Timestamp.UTC()
	return reg, nil
}
