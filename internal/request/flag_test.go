package request_test

import (
	"encoding/json"
	"testing"

	"github.com/Kyz7/albums/internal/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagUnmarshalJSON(t *testing.T) {
	tests := []struct {
		raw     string
		want    bool
		wantErr bool
	}{
		{raw: `true`, want: true},
		{raw: `false`, want: false},
		{raw: `1`, want: true},
		{raw: `0`, want: false},
		{raw: `"1"`, want: true},
		{raw: `"0"`, want: false},
		{raw: `"true"`, want: true},
		{raw: `"FALSE"`, want: false},
		{raw: `""`, want: false},
		{raw: `"maybe"`, wantErr: true},
		{raw: `[1]`, wantErr: true},
		{raw: `{}`, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			var f request.Flag
			err := json.Unmarshal([]byte(tc.raw), &f)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, bool(f))
		})
	}
}

func TestFlagInStruct(t *testing.T) {
	var body struct {
		Comment *string       `json:"comment"`
		Liked   *request.Flag `json:"liked"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"comment":"nice"}`), &body))
	assert.Nil(t, body.Liked)
	require.NotNil(t, body.Comment)
	assert.Equal(t, "nice", *body.Comment)

	require.NoError(t, json.Unmarshal([]byte(`{"liked":1,"comment":null}`), &body))
	require.NotNil(t, body.Liked)
	assert.Equal(t, 1, body.Liked.Int())
}

func TestFlagInt(t *testing.T) {
	assert.Equal(t, 1, request.Flag(true).Int())
	assert.Equal(t, 0, request.Flag(false).Int())
}
