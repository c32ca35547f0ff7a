package schema_test

import (
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/chatwin/pkg/schema"
)

const flatSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "additionalProperties": {
    "anyOf": [
      {"type": "string"},
      {"type": "number"},
      {"type": "boolean"}
    ]
  }
}`

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	pb := &yaml.PathBuilder{}

	tcs := map[string]struct {
		err  schema.ValidationError
		want string
	}{
		"with path": {
			err: schema.ValidationError{
				Path:   pb.Root().Child("chatWidth").Build(),
				Detail: "bad value",
			},
			want: "error at $.chatWidth: bad value",
		},
		"without path": {
			err:  schema.ValidationError{Detail: "bad value"},
			want: "validation error: bad value",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.err.Error())
			require.ErrorIs(t, tc.err, schema.ErrSchemaValidation)
		})
	}
}

func TestNewValidator(t *testing.T) {
	t.Parallel()

	_, err := schema.NewValidator("/bad.json", []byte("{not json"))
	require.Error(t, err)

	assert.Panics(t, func() {
		schema.MustNewValidator("/bad.json", []byte("{not json"))
	})

	v, err := schema.NewValidator("/flat.json", []byte(flatSchema))
	require.NoError(t, err)
	require.NotNil(t, v)
}

func TestValidator_Validate(t *testing.T) {
	t.Parallel()

	v := schema.MustNewValidator("/flat.json", []byte(flatSchema))

	tcs := map[string]struct {
		data     any
		wantPath string
		wantErr  bool
	}{
		"flat scalars": {
			data: map[string]any{
				"chatWidth":      "500",
				"chatHeight":     400.0,
				"chatScrollable": true,
			},
		},
		"nested mapping": {
			data: map[string]any{
				"chatWidth": map[string]any{"value": "500"},
			},
			wantErr:  true,
			wantPath: "$.chatWidth",
		},
		"list value": {
			data: map[string]any{
				"chatHeight": []any{"1", "2"},
			},
			wantErr:  true,
			wantPath: "$.chatHeight",
		},
		"not a mapping": {
			data:     []any{"a"},
			wantErr:  true,
			wantPath: "$",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := v.Validate(tc.data)
			if !tc.wantErr {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)

			var verr *schema.ValidationError
			require.ErrorAs(t, err, &verr)
			require.NotNil(t, verr.Path)
			assert.Equal(t, tc.wantPath, verr.Path.String())
		})
	}
}
