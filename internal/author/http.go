// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/authors/internal/platform/apperr"
	requestutil "github.com/taibuivan/authors/internal/platform/request"
	"github.com/taibuivan/authors/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the author resource routes, to be mounted at /authors.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listAuthors)
	router.Post("/", handler.createAuthor)
	router.Get("/{id}", handler.getAuthor)
	router.Put("/{id}", handler.updateAuthor)
	router.Patch("/{id}", handler.updateAuthor)
	router.Delete("/{id}", handler.deleteAuthor)

	return router
}

func (handler *Handler) listAuthors(writer http.ResponseWriter, request *http.Request) {
	authors, err := handler.service.ListAuthors(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, authors)
}

func (handler *Handler) getAuthor(writer http.ResponseWriter, request *http.Request) {
	authorID, ok := pathID(writer, request)
	if !ok {
		return
	}

	author, err := handler.service.GetAuthor(request.Context(), authorID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, author)
}

func (handler *Handler) createAuthor(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	author, err := handler.service.CreateAuthor(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, author)
}

func (handler *Handler) updateAuthor(writer http.ResponseWriter, request *http.Request) {
	authorID, ok := pathID(writer, request)
	if !ok {
		return
	}

	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	author, err := handler.service.UpdateAuthor(request.Context(), authorID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, author)
}

func (handler *Handler) deleteAuthor(writer http.ResponseWriter, request *http.Request) {
	authorID, ok := pathID(writer, request)
	if !ok {
		return
	}

	author, err := handler.service.DeleteAuthor(request.Context(), authorID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, author)
}

// pathID parses {id}. An id that can never exist is answered as not found.
func pathID(writer http.ResponseWriter, request *http.Request) (int64, bool) {
	authorID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, apperr.NotFound(resourceName))
		return 0, false
	}
	return authorID, true
}
