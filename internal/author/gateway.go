// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"context"
	"net/http"
	"net/url"

	"github.com/taibuivan/authors/internal/platform/remote"
)

// Requester is the generic "perform request" primitive of a remote service.
type Requester interface {
	PerformRequest(ctx context.Context, method, path string, body any) (*remote.Response, error)
}

/*
Gateway forwards author operations to the remote author service.

It does no validation and no error translation: every method returns the
remote reply or the Requester's error unchanged.
*/
type Gateway struct {
	requester  Requester
	readMethod string
}

// NewGateway creates a Gateway. readMethod is the method ObtainAuthor uses;
// an empty value keeps the historical POST.
func NewGateway(requester Requester, readMethod string) *Gateway {
	if readMethod == "" {
		readMethod = http.MethodPost
	}
	return &Gateway{requester: requester, readMethod: readMethod}
}

// ObtainAuthors fetches the full list of authors.
func (gateway *Gateway) ObtainAuthors(ctx context.Context) (*remote.Response, error) {
	return gateway.requester.PerformRequest(ctx, http.MethodGet, "/authors", nil)
}

// CreateAuthors creates an author from data.
func (gateway *Gateway) CreateAuthors(ctx context.Context, data any) (*remote.Response, error) {
	return gateway.requester.PerformRequest(ctx, http.MethodPost, "/authors", data)
}

// ObtainAuthor fetches one author. The remote contract historically takes
// this read as a POST; see NewGateway.
func (gateway *Gateway) ObtainAuthor(ctx context.Context, id string) (*remote.Response, error) {
	return gateway.requester.PerformRequest(ctx, gateway.readMethod, authorPath(id), nil)
}

// EditAuthor updates one author with data.
func (gateway *Gateway) EditAuthor(ctx context.Context, data any, id string) (*remote.Response, error) {
	return gateway.requester.PerformRequest(ctx, http.MethodPut, authorPath(id), data)
}

// DeleteAuthor removes one author.
func (gateway *Gateway) DeleteAuthor(ctx context.Context, id string) (*remote.Response, error) {
	return gateway.requester.PerformRequest(ctx, http.MethodDelete, authorPath(id), nil)
}

func authorPath(id string) string {
	return "/authors/" + url.PathEscape(id)
}
