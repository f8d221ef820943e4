package strutil

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/require"
)

type strpair struct {
	K, V string
}

func collect(i iter.Seq2[string, string]) (pairs []strpair) {
	for k, v := range i {
		pairs = append(pairs, strpair{k, v})
	}

	return pairs
}

func TestWalkParams(t *testing.T) {
	t.Run("single flag", func(t *testing.T) {
		require.Equal(t, []strpair{{"abc", ""}}, collect(WalkParams("abc")))
	})

	t.Run("single pair", func(t *testing.T) {
		require.Equal(t, []strpair{{"abc", "cba"}}, collect(WalkParams("abc=cba")))
	})

	t.Run("multiple pairs", func(t *testing.T) {
		values := collect(WalkParams(`name="field"; filename="a.txt";`))
		require.Equal(t, []strpair{{"name", "field"}, {"filename", "a.txt"}}, values)
	})

	t.Run("empty quoted value", func(t *testing.T) {
		values := collect(WalkParams(`name="named"; filename=""`))
		require.Equal(t, []strpair{{"name", "named"}, {"filename", ""}}, values)
	})

	t.Run("semicolon inside quotes", func(t *testing.T) {
		values := collect(WalkParams(`name="a;b=c"; x=y`))
		require.Equal(t, []strpair{{"name", "a;b=c"}, {"x", "y"}}, values)
	})

	t.Run("escaped quote", func(t *testing.T) {
		values := collect(WalkParams(`name="say \"hi\""`))
		require.Equal(t, []strpair{{"name", `say "hi"`}}, values)
	})

	t.Run("windows path", func(t *testing.T) {
		values := collect(WalkParams(`filename="C:\dir\file.txt"`))
		require.Equal(t, []strpair{{"filename", `C:\dir\file.txt`}}, values)
	})

	t.Run("whitespaces", func(t *testing.T) {
		values := collect(WalkParams(` name = "x" ;  flag ; k=v `))
		require.Equal(t, []strpair{{"name", "x"}, {"flag", ""}, {"k", "v"}}, values)
	})

	t.Run("unterminated quote", func(t *testing.T) {
		values := collect(WalkParams(`name="abc`))
		require.Equal(t, []strpair{{"", ""}}, values)
	})

	t.Run("garbage after quoted value", func(t *testing.T) {
		values := collect(WalkParams(`name="abc"def; x=y`))
		require.Equal(t, []strpair{{"", ""}}, values)
	})

	t.Run("empty key", func(t *testing.T) {
		values := collect(WalkParams(`=value`))
		require.Equal(t, []strpair{{"", ""}}, values)
	})

	t.Run("early break", func(t *testing.T) {
		for k := range WalkParams("a=1; b=2") {
			require.Equal(t, "a", k)
			break
		}
	})
}
