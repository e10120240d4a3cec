package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDateUnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "calendar date", input: `"1990-05-17"`, want: time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)},
		{name: "rfc3339 keeps the calendar day", input: `"1990-05-17T22:10:00-03:00"`, want: time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)},
		{name: "garbage", input: `"17/05/1990"`, wantErr: true},
		{name: "not a string", input: `19900517`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.True(t, tt.want.Equal(d.Time), "got %s", d.Time)
		})
	}
}

func TestDateInPayloads(t *testing.T) {
	t.Parallel()

	t.Run("null birth date stays absent", func(t *testing.T) {
		var in UpdateClientDTO
		require.NoError(t, json.Unmarshal([]byte(`{"name":"a","birthDate":null}`), &in))
		require.Nil(t, in.BirthDate)
	})

	t.Run("marshals as calendar date", func(t *testing.T) {
		b, err := json.Marshal(struct {
			D Date `json:"d"`
		}{D: NewDate(2001, 2, 3)})
		require.NoError(t, err)
		require.JSONEq(t, `{"d":"2001-02-03"}`, string(b))
	})
}

func TestResultEnvelope(t *testing.T) {
	t.Parallel()

	ok := OK(42, "info")
	require.True(t, ok.Success)
	require.Equal(t, 42, *ok.Payload)
	require.Equal(t, []string{"info"}, ok.Messages)

	fail := Fail[int](KindNotFound)
	require.False(t, fail.Success)
	require.Nil(t, fail.Payload)
	require.NotEmpty(t, fail.Messages)

	fail.AddMessages("a", "b")
	require.Len(t, fail.Messages, 3)
}
