// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/authors/internal/platform/apperr"
	"github.com/taibuivan/authors/internal/platform/validate"
)

type Service struct {
	repo      Repository
	publisher Publisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewService wires the local author operations. publisher may be nil, in
// which case no change events are emitted.
func NewService(repo Repository, publisher Publisher, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

func (service *Service) ListAuthors(context context.Context) ([]*Author, error) {
	authors, err := service.repo.ListAuthors(context)
	if err != nil {
		return nil, err
	}
	if authors == nil {
		authors = []*Author{}
	}
	return authors, nil
}

func (service *Service) GetAuthor(context context.Context, id int64) (*Author, error) {
	return service.repo.GetAuthor(context, id)
}

func (service *Service) CreateAuthor(context context.Context, input CreateInput) (*Author, error) {
	input.Normalize()

	validator := &validate.Validator{}
	if err := validator.Struct(input).Err(); err != nil {
		return nil, err
	}

	author := input.Author()
	if err := service.repo.CreateAuthor(context, author); err != nil {
		return nil, err
	}

	service.logger.Info("author_created", slog.Int64("author_id", author.ID), slog.String("name", author.Name))
	service.publish(context, EventCreated, *author)
	return author, nil
}

// UpdateAuthor applies the present fields of input to the stored author.
// It fails with a 422 and writes nothing when no field would change.
func (service *Service) UpdateAuthor(context context.Context, id int64, input UpdateInput) (*Author, error) {
	input.Normalize()

	validator := &validate.Validator{}
	if err := validator.Struct(input).Err(); err != nil {
		return nil, err
	}

	current, err := service.repo.GetAuthorForWrite(context, id)
	if err != nil {
		return nil, err
	}

	merged := current.Apply(input)
	if !merged.Differs(*current) {
		return nil, apperr.NoChange(MsgNoChange)
	}

	if err := service.repo.UpdateAuthor(context, &merged); err != nil {
		return nil, err
	}

	service.logger.Info("author_updated", slog.Int64("author_id", merged.ID))
	service.publish(context, EventUpdated, merged)
	return &merged, nil
}

// DeleteAuthor removes the author and returns its last known values.
func (service *Service) DeleteAuthor(context context.Context, id int64) (*Author, error) {
	current, err := service.repo.GetAuthorForWrite(context, id)
	if err != nil {
		return nil, err
	}

	if err := service.repo.DeleteAuthor(context, id); err != nil {
		return nil, err
	}

	service.logger.Warn("author_deleted", slog.Int64("author_id", id))
	service.publish(context, EventDeleted, *current)
	return current, nil
}

// publish is best effort: the write has already been committed. The event
// outlives the request, so a cancelled request context does not drop it.
func (service *Service) publish(ctx context.Context, name string, a Author) {
	if service.publisher == nil {
		return
	}

	body, err := encodeEvent(name, a, service.now())
	if err != nil {
		service.logger.Error("author_event_encode_failed", slog.String("event", name), slog.Any("error", err))
		return
	}

	if err := service.publisher.Publish(context.WithoutCancel(ctx), name, body); err != nil {
		service.logger.Error("author_event_publish_failed",
			slog.String("event", name),
			slog.Int64("author_id", a.ID),
			slog.Any("error", err),
		)
	}
}
