package redis

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// DescriptionStore keeps learned error descriptions in a Redis hash so every
// dispatcher sharing the instance learns them once.
type DescriptionStore struct {
	client *Client
	log    *slog.Logger
}

// NewDescriptionStore creates a Redis-backed description store.
func NewDescriptionStore(client *Client) *DescriptionStore {
	return &DescriptionStore{
		client: client,
		log:    slog.Default().With("component", "redis_descriptions"),
	}
}

// Description is a stored description with the number of times it was served.
type Description struct {
	Identifier  string
	Description string
	Hits        int64
}

// Get returns the description of a normalized identifier.
func (s *DescriptionStore) Get(ctx context.Context, identifier string) (string, bool, error) {
	d, err := s.client.rdb.HGet(ctx, s.client.descriptionsKey(), identifier).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("hget failed: %w", err)
	}
	// The hit counter is informational; a failure must not hide the description.
	if err := s.client.rdb.HIncrBy(ctx, s.client.occurrencesKey(), identifier, 1).Err(); err != nil {
		s.log.Warn("Failed to count description hit", "identifier", identifier, "error", err)
	}
	return d, true, nil
}

// Set stores the description of a normalized identifier. An existing
// description is kept.
func (s *DescriptionStore) Set(ctx context.Context, identifier, description string) error {
	if err := s.client.rdb.HSetNX(ctx, s.client.descriptionsKey(), identifier, description).Err(); err != nil {
		return fmt.Errorf("hsetnx failed: %w", err)
	}
	return nil
}

// List returns every stored description ordered by identifier.
func (s *DescriptionStore) List(ctx context.Context) ([]Description, error) {
	descs, err := s.client.rdb.HGetAll(ctx, s.client.descriptionsKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("hgetall failed: %w", err)
	}
	hits, err := s.client.rdb.HGetAll(ctx, s.client.occurrencesKey()).Result()
	if err != nil {
		s.log.Warn("Failed to read description hits", "error", err)
	}

	out := make([]Description, 0, len(descs))
	for id, d := range descs {
		n, _ := strconv.ParseInt(hits[id], 10, 64)
		out = append(out, Description{Identifier: id, Description: d, Hits: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Identifier < out[j].Identifier })
	return out, nil
}
