package multipart

import (
	"testing"

	json "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
)

func TestMarshalJSON(t *testing.T) {
	form, err := Parse([]byte(uploadForm), "----WebKitFormBoundary7MA4YWxkTrZu0gW")
	require.NoError(t, err)

	data, err := json.Marshal(form)
	require.NoError(t, err)

	var summary formSummary
	require.NoError(t, json.Unmarshal(data, &summary))
	require.Equal(t, "----WebKitFormBoundary7MA4YWxkTrZu0gW", summary.Boundary)
	require.Len(t, summary.Parts, 2)

	field := summary.Parts[0]
	require.Equal(t, "username", field.Name)
	require.Nil(t, field.Filename)
	require.NotNil(t, field.Value)
	require.Equal(t, "Alice", *field.Value)
	require.Equal(t, "text/plain", field.Type)
	require.Equal(t, "utf8", field.Charset)

	file := summary.Parts[1]
	require.Equal(t, "profile_pic", file.Name)
	require.NotNil(t, file.Filename)
	require.Equal(t, "profile.png", *file.Filename)
	require.Nil(t, file.Value)
	require.Equal(t, "image/png", file.Type)
	require.Equal(t, 16, file.Size)
}
