package multipart

import (
	"bytes"
	"testing"

	"github.com/indigo-web/formdata/mime"
	"github.com/stretchr/testify/require"
)

func BenchmarkSerialize(b *testing.B) {
	form, err := Parse([]byte(basicForm), webkit)
	require.NoError(b, err)
	buff := make([]byte, 0, form.Size())

	b.SetBytes(int64(form.Size()))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		buff = form.AppendTo(buff[:0])
	}
}

func TestSerialize(t *testing.T) {
	t.Run("built form", func(t *testing.T) {
		form := NewForm("xyz").
			AddField("a", "1").
			AddFile("f", "a.txt", mime.Plain, []byte("hello"))

		want := "--xyz\r\n" +
			"Content-Disposition: form-data; name=\"a\"\r\n" +
			"\r\n" +
			"1\r\n" +
			"--xyz\r\n" +
			"Content-Disposition: form-data; name=\"f\"; filename=\"a.txt\"\r\n" +
			"Content-Type: text/plain\r\n" +
			"\r\n" +
			"hello\r\n" +
			"--xyz--\r\n"
		require.Equal(t, want, string(Serialize(form)))
		require.Equal(t, len(want), form.Size())
	})

	t.Run("built form parses back", func(t *testing.T) {
		form := NewForm(NewBoundary()).
			AddField("username", "Alice").
			AddFile("docs[]", "a.bin", "", []byte{0, 1, 2, '\r', '\n'}).
			AddFile("docs[]", "", "", nil)

		parsed, err := Parse(Serialize(form), form.Boundary)
		require.NoError(t, err)
		require.Equal(t, form.Len(), parsed.Len())

		value, err := parsed.Value("username")
		require.NoError(t, err)
		require.Equal(t, "Alice", value)

		files, err := parsed.Files("docs[]")
		require.NoError(t, err)
		require.Len(t, files, 2)
		require.Equal(t, "a.bin", files[0].Filename())
		require.Equal(t, []byte{0, 1, 2, '\r', '\n'}, files[0].Data())
		require.Equal(t, mime.OctetStream, files[0].ContentType())
		require.Empty(t, files[1].Filename())
		require.Empty(t, files[1].Data())
	})

	t.Run("names are escaped", func(t *testing.T) {
		form := NewForm("b").AddField("a\"b\r\n", "v")
		parsed, err := Parse(Serialize(form), "b")
		require.NoError(t, err)

		value, err := parsed.Value("a%22b%0D%0A")
		require.NoError(t, err)
		require.Equal(t, "v", value)
	})

	t.Run("empty form", func(t *testing.T) {
		form := NewForm("b")
		require.Equal(t, "--b--\r\n", string(Serialize(form)))
		require.Equal(t, 7, form.Size())
	})

	t.Run("append to", func(t *testing.T) {
		form := NewForm("b").AddField("a", "1")
		dst := form.AppendTo([]byte("prefix"))
		require.Equal(t, "prefix"+string(Serialize(form)), string(dst))
	})

	t.Run("write to", func(t *testing.T) {
		form, err := Parse([]byte(uploadForm), "----WebKitFormBoundary7MA4YWxkTrZu0gW")
		require.NoError(t, err)

		var buff bytes.Buffer
		n, err := form.WriteTo(&buff)
		require.NoError(t, err)
		require.Equal(t, int64(len(uploadForm)), n)
		require.Equal(t, uploadForm, buff.String())
	})
}
