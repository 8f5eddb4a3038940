// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"sync"

	"github.com/taibuivan/authors/internal/author"
	"github.com/taibuivan/authors/internal/platform/apperr"
)

// memoryRepository is an in-memory author.Repository with sequential ids.
type memoryRepository struct {
	mu      sync.Mutex
	nextID  int64
	rows    map[int64]author.Author
	writes  int
	failErr error
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{nextID: 1, rows: make(map[int64]author.Author)}
}

func (repository *memoryRepository) ListAuthors(context.Context) ([]*author.Author, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if repository.failErr != nil {
		return nil, repository.failErr
	}

	authors := make([]*author.Author, 0, len(repository.rows))
	for _, row := range repository.rows {
		a := row
		authors = append(authors, &a)
	}
	sort.Slice(authors, func(i, j int) bool { return authors[i].ID < authors[j].ID })
	return authors, nil
}

func (repository *memoryRepository) GetAuthor(_ context.Context, id int64) (*author.Author, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	row, ok := repository.rows[id]
	if !ok {
		return nil, apperr.NotFound("Author")
	}
	return &row, nil
}

func (repository *memoryRepository) GetAuthorForWrite(ctx context.Context, id int64) (*author.Author, error) {
	return repository.GetAuthor(ctx, id)
}

func (repository *memoryRepository) CreateAuthor(_ context.Context, a *author.Author) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	a.ID = repository.nextID
	repository.nextID++
	repository.rows[a.ID] = *a
	repository.writes++
	return nil
}

func (repository *memoryRepository) UpdateAuthor(_ context.Context, a *author.Author) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.rows[a.ID]; !ok {
		return apperr.NotFound("Author")
	}
	repository.rows[a.ID] = *a
	repository.writes++
	return nil
}

func (repository *memoryRepository) DeleteAuthor(_ context.Context, id int64) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.rows[id]; !ok {
		return apperr.NotFound("Author")
	}
	delete(repository.rows, id)
	repository.writes++
	return nil
}

// recordingPublisher captures published events. Like a broker, it refuses a
// done context.
type recordingPublisher struct {
	mu     sync.Mutex
	keys   []string
	bodies [][]byte
	err    error
}

func (publisher *recordingPublisher) Publish(ctx context.Context, routingKey string, body []byte) error {
	publisher.mu.Lock()
	defer publisher.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	publisher.keys = append(publisher.keys, routingKey)
	publisher.bodies = append(publisher.bodies, body)
	return publisher.err
}

var errBoom = errors.New("boom")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

