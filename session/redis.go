package session

import (
	"context"
	"encoding/json"

	"learnify/models"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// snapshot is the stored shape of a session. The password hash is never
// part of it.
type snapshot struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	FullName string `json:"full_name"`
}

// RedisStore keeps sessions in Redis so they survive process restarts.
// Entries are written without a TTL, matching the no-expiry contract.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Create(ctx context.Context, user models.User) (string, error) {
	data, err := json.Marshal(snapshot{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		FullName: user.FullName,
	})
	if err != nil {
		return "", err
	}

	token := NewToken()
	if err := s.rdb.Set(ctx, keyPrefix+token, data, 0).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisStore) Resolve(ctx context.Context, token string) (models.User, bool) {
	data, err := s.rdb.Get(ctx, keyPrefix+token).Bytes()
	if err != nil {
		return models.User{}, false
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return models.User{}, false
	}
	return models.User{
		ID:       snap.ID,
		Username: snap.Username,
		Email:    snap.Email,
		Role:     snap.Role,
		FullName: snap.FullName,
	}, true
}

func (s *RedisStore) Revoke(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, keyPrefix+token).Err()
}
