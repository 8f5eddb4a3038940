// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"
)

// Cache is a byte-oriented TTL cache. Get reports found=false for an absent key.
type Cache interface {
	Get(context context.Context, key string) (value []byte, found bool, err error)
	Set(context context.Context, key string, value []byte, ttl time.Duration) error
	Delete(context context.Context, key string) error
}

// CachedRepository serves GetAuthor from a read-through cache and evicts the
// entry on every write to the same id. GetAuthorForWrite is never cached.
// Cache failures are logged and fall through to the wrapped repository.
type CachedRepository struct {
	next   Repository
	cache  Cache
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedRepository(next Repository, cache Cache, ttl time.Duration, logger *slog.Logger) *CachedRepository {
	return &CachedRepository{next: next, cache: cache, ttl: ttl, logger: logger}
}

func (repository *CachedRepository) ListAuthors(context context.Context) ([]*Author, error) {
	return repository.next.ListAuthors(context)
}

func (repository *CachedRepository) GetAuthor(context context.Context, id int64) (*Author, error) {
	key := cacheKey(id)

	cached, found, err := repository.cache.Get(context, key)
	switch {
	case err != nil:
		repository.logger.Warn("author_cache_get_failed", slog.Int64("author_id", id), slog.Any("error", err))
	case found:
		a := &Author{}
		if jsonErr := json.Unmarshal(cached, a); jsonErr == nil {
			return a, nil
		}
		repository.logger.Warn("author_cache_corrupt", slog.Int64("author_id", id))
	}

	a, err := repository.next.GetAuthor(context, id)
	if err != nil {
		return nil, err
	}

	if encoded, jsonErr := json.Marshal(a); jsonErr == nil {
		if setErr := repository.cache.Set(context, key, encoded, repository.ttl); setErr != nil {
			repository.logger.Warn("author_cache_set_failed", slog.Int64("author_id", id), slog.Any("error", setErr))
		}
	}

	return a, nil
}

func (repository *CachedRepository) GetAuthorForWrite(context context.Context, id int64) (*Author, error) {
	return repository.next.GetAuthorForWrite(context, id)
}

func (repository *CachedRepository) CreateAuthor(context context.Context, a *Author) error {
	return repository.next.CreateAuthor(context, a)
}

func (repository *CachedRepository) UpdateAuthor(context context.Context, a *Author) error {
	err := repository.next.UpdateAuthor(context, a)
	repository.evict(context, a.ID)
	return err
}

func (repository *CachedRepository) DeleteAuthor(context context.Context, id int64) error {
	err := repository.next.DeleteAuthor(context, id)
	repository.evict(context, id)
	return err
}

func (repository *CachedRepository) evict(context context.Context, id int64) {
	if err := repository.cache.Delete(context, cacheKey(id)); err != nil {
		repository.logger.Warn("author_cache_evict_failed", slog.Int64("author_id", id), slog.Any("error", err))
	}
}

func cacheKey(id int64) string {
	return strconv.FormatInt(id, 10)
}
