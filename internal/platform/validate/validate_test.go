// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/authors/internal/platform/apperr"
	"github.com/taibuivan/authors/internal/platform/validate"
)

type profile struct {
	Name  string  `json:"name"  validate:"required,notblank,max=5"`
	Kind  string  `json:"kind"  validate:"required,oneof=a b"`
	Alias *string `json:"alias" validate:"omitnil,notblank,max=3"`
}

func strPtr(s string) *string { return &s }

/*
TestValidator_Struct tests tag evaluation and JSON field naming.
*/
func TestValidator_Struct(t *testing.T) {
	tests := []struct {
		name     string
		input    profile
		fields   []string
		messages []string
	}{
		{"valid", profile{Name: "tai", Kind: "a"}, nil, nil},
		{"valid_with_alias", profile{Name: "tai", Kind: "b", Alias: strPtr("t")}, nil, nil},
		{"missing_name", profile{Kind: "a"}, []string{"name"}, []string{"This field is required"}},
		{"blank_name", profile{Name: "   ", Kind: "a"}, []string{"name"}, []string{"This field is required"}},
		{"name_too_long", profile{Name: "abcdef", Kind: "a"}, []string{"name"}, []string{"Maximum 5 characters"}},
		{"bad_kind", profile{Name: "tai", Kind: "c"}, []string{"kind"}, []string{"Must be one of: a, b"}},
		{"empty_alias", profile{Name: "tai", Kind: "a", Alias: strPtr("")}, []string{"alias"}, []string{"This field is required"}},
		{"everything_wrong", profile{Alias: strPtr("long")}, []string{"name", "kind", "alias"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			err := v.Struct(tt.input).Err()

			if len(tt.fields) == 0 {
				assert.NoError(t, err)
				assert.False(t, v.HasErrors())
				return
			}

			require.Error(t, err)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, apperr.KindValidation, ae.Kind)
			assert.Equal(t, http.StatusUnprocessableEntity, ae.HTTPStatus)
			assert.Equal(t, validate.MsgValidationFailed, ae.Message)

			require.Len(t, ae.Details, len(tt.fields))
			for i, field := range tt.fields {
				assert.Equal(t, field, ae.Details[i].Field)
				if tt.messages != nil {
					assert.Equal(t, tt.messages[i], ae.Details[i].Message)
				}
			}
		})
	}
}

/*
TestValidator_MaxCountsCharacters ensures limits are measured in characters, not bytes.
*/
func TestValidator_MaxCountsCharacters(t *testing.T) {
	v := &validate.Validator{}
	assert.NoError(t, v.Struct(profile{Name: strings.Repeat("é", 5), Kind: "a"}).Err())
}
