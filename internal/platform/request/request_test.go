// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	requestutil "github.com/taibuivan/authors/internal/platform/request"
	"github.com/taibuivan/authors/internal/platform/validate"
)

type payload struct {
	Name string `json:"name"`
}

/*
TestDecodeJSON verifies a body must be exactly one JSON value, or empty.
*/
func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		invalid bool
	}{
		{name: "object", body: `{"name":"Jane Austen"}`, want: "Jane Austen"},
		{name: "trailing_whitespace", body: "{\"name\":\"Jane\"}\n  \n", want: "Jane"},
		{name: "empty", body: ""},
		{name: "malformed", body: `{"name":`, invalid: true},
		{name: "trailing_partial_value", body: `{"name":"Jane"} {"junk":`, invalid: true},
		{name: "trailing_value", body: `{"name":"Jane"} {}`, invalid: true},
		{name: "trailing_garbage", body: `{"name":"Jane"}]`, invalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var target payload

			err := requestutil.DecodeJSON(request, &target)

			if tt.invalid {
				assert.ErrorIs(t, err, validate.ErrInvalidJSON)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, target.Name)
		})
	}
}

/*
TestIntID verifies only positive integers are accepted as identifiers.
*/
func TestIntID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		invalid bool
	}{
		{raw: "42", want: 42},
		{raw: "0", invalid: true},
		{raw: "-3", invalid: true},
		{raw: "abc", invalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			routeContext := chi.NewRouteContext()
			routeContext.URLParams.Add("id", tt.raw)
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			request = request.WithContext(context.WithValue(request.Context(), chi.RouteCtxKey, routeContext))

			id, err := requestutil.IntID(request, "id")

			if tt.invalid {
				assert.ErrorIs(t, err, requestutil.ErrInvalidID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}
