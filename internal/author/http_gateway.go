// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/authors/internal/platform/apperr"
	"github.com/taibuivan/authors/internal/platform/remote"
	requestutil "github.com/taibuivan/authors/internal/platform/request"
	"github.com/taibuivan/authors/internal/platform/respond"
)

// MsgUpstreamUnavailable is returned when the remote author service cannot be reached.
const MsgUpstreamUnavailable = "Author service unavailable"

// GatewayHandler exposes the [Gateway] over HTTP and relays remote replies verbatim.
type GatewayHandler struct {
	gateway *Gateway
}

func NewGatewayHandler(gateway *Gateway) *GatewayHandler {
	return &GatewayHandler{gateway: gateway}
}

// Routes mirrors the local author routes.
func (handler *GatewayHandler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.obtainAuthors)
	router.Post("/", handler.createAuthors)
	router.Get("/{id}", handler.obtainAuthor)
	router.Put("/{id}", handler.editAuthor)
	router.Patch("/{id}", handler.editAuthor)
	router.Delete("/{id}", handler.deleteAuthor)

	return router
}

func (handler *GatewayHandler) obtainAuthors(writer http.ResponseWriter, request *http.Request) {
	response, err := handler.gateway.ObtainAuthors(request.Context())
	relay(writer, request, response, err)
}

func (handler *GatewayHandler) createAuthors(writer http.ResponseWriter, request *http.Request) {
	body, err := requestutil.ReadBody(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	response, err := handler.gateway.CreateAuthors(request.Context(), body)
	relay(writer, request, response, err)
}

func (handler *GatewayHandler) obtainAuthor(writer http.ResponseWriter, request *http.Request) {
	response, err := handler.gateway.ObtainAuthor(request.Context(), requestutil.Param(request, "id"))
	relay(writer, request, response, err)
}

func (handler *GatewayHandler) editAuthor(writer http.ResponseWriter, request *http.Request) {
	body, err := requestutil.ReadBody(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	response, err := handler.gateway.EditAuthor(request.Context(), body, requestutil.Param(request, "id"))
	relay(writer, request, response, err)
}

func (handler *GatewayHandler) deleteAuthor(writer http.ResponseWriter, request *http.Request) {
	response, err := handler.gateway.DeleteAuthor(request.Context(), requestutil.Param(request, "id"))
	relay(writer, request, response, err)
}

// relay writes the remote reply as-is. Only a transport failure, which has
// no reply to relay, is rendered by this service (502).
func relay(writer http.ResponseWriter, request *http.Request, response *remote.Response, err error) {
	if err != nil {
		var remoteErr *remote.Error
		if errors.As(err, &remoteErr) {
			respond.Raw(writer, remoteErr.Status, remoteErr.ContentType, remoteErr.Body)
			return
		}
		respond.Error(writer, request, apperr.BadGateway(MsgUpstreamUnavailable, err))
		return
	}

	respond.Raw(writer, response.Status, response.ContentType, response.Body)
}
