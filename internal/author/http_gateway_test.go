// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/authors/internal/author"
	"github.com/taibuivan/authors/internal/platform/remote"
)

type upstreamRequest struct {
	method        string
	path          string
	body          string
	authorization string
}

// newUpstream starts a fake remote author service answering every request
// with status and body, and records what it received.
func newUpstream(t *testing.T, status int, body string) (*httptest.Server, *[]upstreamRequest) {
	t.Helper()

	received := &[]upstreamRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		payload, _ := io.ReadAll(request.Body)
		*received = append(*received, upstreamRequest{
			method:        request.Method,
			path:          request.URL.EscapedPath(),
			body:          string(payload),
			authorization: request.Header.Get("Authorization"),
		})

		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(status)
		_, _ = io.WriteString(writer, body)
	}))
	t.Cleanup(server.Close)

	return server, received
}

func newGatewayRouter(baseURL string) http.Handler {
	client := remote.NewClient(baseURL, "s3cret", 2*time.Second)
	handler := author.NewGatewayHandler(author.NewGateway(client, ""))

	router := chi.NewRouter()
	router.Mount("/gateway/authors", handler.Routes())
	return router
}

/*
TestGatewayHandler_RelaysSuccess checks each route forwards method, path,
body and secret, then relays the remote reply verbatim.
*/
func TestGatewayHandler_RelaysSuccess(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantMethod string
		wantPath   string
	}{
		{"obtain_authors", http.MethodGet, "/gateway/authors", "", http.MethodGet, "/authors"},
		{"create_authors", http.MethodPost, "/gateway/authors", janeAustenJSON, http.MethodPost, "/authors"},
		{"obtain_author", http.MethodGet, "/gateway/authors/7", "", http.MethodPost, "/authors/7"},
		{"edit_author_put", http.MethodPut, "/gateway/authors/7", `{"country":"England"}`, http.MethodPut, "/authors/7"},
		{"edit_author_patch", http.MethodPatch, "/gateway/authors/7", `{"country":"England"}`, http.MethodPut, "/authors/7"},
		{"delete_author", http.MethodDelete, "/gateway/authors/7", "", http.MethodDelete, "/authors/7"},
	}

	const reply = `{"data":{"id":7,"name":"Jane Austen","gender":"female","country":"UK"}}`

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upstream, received := newUpstream(t, http.StatusOK, reply)

			recorder := do(t, newGatewayRouter(upstream.URL), tt.method, tt.target, tt.body)

			assert.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, reply, recorder.Body.String())

			require.Len(t, *received, 1)
			got := (*received)[0]
			assert.Equal(t, tt.wantMethod, got.method)
			assert.Equal(t, tt.wantPath, got.path)
			assert.Equal(t, tt.body, got.body)
			assert.Equal(t, "s3cret", got.authorization)
		})
	}
}

/*
TestGatewayHandler_RelaysRemoteError checks a remote error status and body
pass through untouched.
*/
func TestGatewayHandler_RelaysRemoteError(t *testing.T) {
	const reply = `{"error":"Author not found","code":404}`
	upstream, _ := newUpstream(t, http.StatusNotFound, reply)

	recorder := do(t, newGatewayRouter(upstream.URL), http.MethodGet, "/gateway/authors/999", "")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	assert.Equal(t, reply, recorder.Body.String())
}

/*
TestGatewayHandler_Unreachable checks a transport failure becomes a 502.
*/
func TestGatewayHandler_Unreachable(t *testing.T) {
	upstream := httptest.NewServer(http.NotFoundHandler())
	baseURL := upstream.URL
	upstream.Close()

	recorder := do(t, newGatewayRouter(baseURL), http.MethodGet, "/gateway/authors", "")

	assert.Equal(t, http.StatusBadGateway, recorder.Code)
	assert.JSONEq(t, `{"error":"Author service unavailable","code":502}`, recorder.Body.String())
}
