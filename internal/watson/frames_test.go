package watson

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	data := []byte(`[
		[1599898800, 1599912300, "website", "f47ac10b", ["backend", "admin"], 1599912301],
		[1599922800, 1599932400, "website", "9e107d9d", ["frontend"], 1599932401]
	]`)

	frames, err := Decode(data)
	require.NoError(t, err)
	require.Len(t, frames, 2)

	first := frames[0]
	require.Equal(t, "website", first.Project)
	require.Equal(t, "f47ac10b", first.ExternalID)
	require.Equal(t, []string{"backend", "admin"}, first.Tags)
	require.True(t, first.StartedOn.Equal(time.Unix(1599898800, 0)))
	require.True(t, first.StoppedOn.Equal(time.Unix(1599912300, 0)))
}

func TestDecodeEmptyTags(t *testing.T) {
	data := []byte(`[[1599898800, 1599912300, "website", "f47ac10b", [], 1599912301]]`)

	frames, err := Decode(data)
	require.NoError(t, err)
	require.Len(t, frames, 1)
	require.Empty(t, frames[0].Tags)
}

func TestDecodeMalformed(t *testing.T) {
	cases := map[string]string{
		"not an array":     `{"start": 1599898800}`,
		"frame not array":  `[{"start": 1599898800}]`,
		"wrong arity":      `[[1599898800, 1599912300, "website"]]`,
		"non-numeric time": `[["yesterday", 1599912300, "website", "id", [], 0]]`,
		"non-string name":  `[[1599898800, 1599912300, 42, "id", [], 0]]`,
		"tags not a list":  `[[1599898800, 1599912300, "website", "id", "backend", 0]]`,
	}

	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode([]byte(data))
			require.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestDecodeFileMissing(t *testing.T) {
	_, err := DecodeFile("does-not-exist.json")
	require.Error(t, err)
}
