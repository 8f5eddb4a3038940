// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import "context"

// Repository persists authors. Operations on a missing id return a 404 apperr.AppError.
type Repository interface {
	ListAuthors(context context.Context) ([]*Author, error)
	GetAuthor(context context.Context, id int64) (*Author, error)

	// GetAuthorForWrite reads the stored row, bypassing any cache. Writes
	// compare against and return this copy.
	GetAuthorForWrite(context context.Context, id int64) (*Author, error)
	CreateAuthor(context context.Context, a *Author) error
	UpdateAuthor(context context.Context, a *Author) error
	DeleteAuthor(context context.Context, id int64) error
}
