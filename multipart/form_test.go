package multipart

import (
	"slices"
	"testing"

	"github.com/indigo-web/formdata/status"
	"github.com/stretchr/testify/require"
)

func TestForm(t *testing.T) {
	// parts are named in sequence [A, B, A]
	form := NewForm("b").
		AddFile("A", "first.txt", "", []byte("1")).
		AddField("B", "2").
		AddFile("A", "second.txt", "", []byte("3"))

	t.Run("order preservation", func(t *testing.T) {
		files, err := form.Files("A")
		require.NoError(t, err)
		require.Len(t, files, 2)
		require.Equal(t, "first.txt", files[0].Filename())
		require.Equal(t, "second.txt", files[1].Filename())

		file, err := form.File("A")
		require.NoError(t, err)
		require.Equal(t, "first.txt", file.Filename())
	})

	t.Run("field lookup skips files", func(t *testing.T) {
		_, err := form.Value("A")
		require.ErrorIs(t, err, status.NotFound)
		require.ErrorIs(t, err, status.ErrNoSuchField)

		_, err = form.File("B")
		require.ErrorIs(t, err, status.ErrNoSuchFile)
	})

	t.Run("absent names", func(t *testing.T) {
		_, err := form.Value("C")
		require.ErrorIs(t, err, status.NotFound)

		_, err = form.File("C")
		require.ErrorIs(t, err, status.NotFound)

		files, err := form.Files("C")
		require.ErrorIs(t, err, status.NotFound)
		require.Nil(t, files)
		require.Nil(t, form.Values("C"))
	})

	t.Run("named", func(t *testing.T) {
		require.Len(t, slices.Collect(form.Named("A")), 2)
		require.Len(t, slices.Collect(form.Named("B")), 1)

		for part := range form.Named("A") {
			require.Equal(t, "first.txt", part.(*File).Filename())
			break
		}
	})

	t.Run("all", func(t *testing.T) {
		var names []string
		for i, part := range form.All() {
			require.Same(t, form.Parts()[i], part)
			names = append(names, part.Name())
		}

		require.Equal(t, []string{"A", "B", "A"}, names)
	})

	t.Run("values", func(t *testing.T) {
		form := NewForm("b").
			AddField("tags[]", "a").
			AddField("other", "x").
			AddField("tags[]", "b")
		require.Equal(t, []string{"a", "b"}, form.Values("tags[]"))
	})
}
