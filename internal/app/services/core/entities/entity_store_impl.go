package entities

import (
	"context"
	"panchkarma-service/internal/app/services/shared/redis"
	"panchkarma-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type entityStore struct {
	redisRepo redis.Repository
}

func NewEntityStore(repo redis.Repository) Store {
	return &entityStore{redisRepo: repo}
}

func (s *entityStore) PutJSON(ctx context.Context, key string, value interface{}) error {
	// Domain records never expire.
	return s.redisRepo.Set(ctx, key, value, 0)
}

func (s *entityStore) GetJSON(ctx context.Context, key string, dst interface{}) (bool, error) {
	raw, err := s.redisRepo.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if raw == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, exceptions.ErrCannotParseJSON(err)
	}
	return true, nil
}

func (s *entityStore) ReadIndex(ctx context.Context, key string) ([]string, error) {
	var ids []string
	found, err := s.GetJSON(ctx, key, &ids)
	if err != nil {
		return nil, err
	}
	if !found {
		return []string{}, nil
	}
	return ids, nil
}

func (s *entityStore) AppendToIndex(ctx context.Context, key, id string) error {
	ids, err := s.ReadIndex(ctx, key)
	if err != nil {
		return err
	}
	ids = append(ids, id)
	return s.PutJSON(ctx, key, ids)
}

func (s *entityStore) RemoveFromIndex(ctx context.Context, key, id string) error {
	ids, err := s.ReadIndex(ctx, key)
	if err != nil {
		return err
	}
	filtered := ids[:0]
	for _, existing := range ids {
		if existing != id {
			filtered = append(filtered, existing)
		}
	}
	return s.PutJSON(ctx, key, filtered)
}
