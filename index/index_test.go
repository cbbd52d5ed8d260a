package index_test

import (
	"testing"

	"github.com/ehsanranjbar/objwalk"
	"github.com/ehsanranjbar/objwalk/index"
	"github.com/stretchr/testify/require"
)

func TestSegmentIndex(t *testing.T) {
	x := index.New()

	flatten := func(v any) *objwalk.Result {
		res, err := objwalk.Flatten(v)
		require.NoError(t, err)
		return res
	}

	ord0 := x.Add(flatten(struct {
		Title  string
		Author string
	}{Title: "a", Author: "b"}))
	ord1 := x.Add(flatten(struct {
		Title string
		Pages int
	}{Title: "c", Pages: 100}))
	ord2 := x.Add(flatten(map[string]any{"Pages": 7}))

	require.Equal(t, uint32(0), ord0)
	require.Equal(t, uint32(1), ord1)
	require.Equal(t, uint32(2), ord2)

	t.Run("Lookup", func(t *testing.T) {
		require.Equal(t, []uint32{0, 1}, x.Lookup("Title").ToArray())
		require.Equal(t, []uint32{1, 2}, x.Lookup("Pages").ToArray())
		require.Empty(t, x.Lookup("Nope").ToArray())
	})

	t.Run("LookupAll", func(t *testing.T) {
		require.Equal(t, []uint32{1}, x.LookupAll("Title", "Pages").ToArray())
		require.Empty(t, x.LookupAll().ToArray())
	})

	t.Run("LookupCopies", func(t *testing.T) {
		bm := x.Lookup("Title")
		bm.Add(99)
		require.Equal(t, []uint32{0, 1}, x.Lookup("Title").ToArray())
	})

	t.Run("Segments", func(t *testing.T) {
		// Title, Author, Pages.
		require.Equal(t, 3, x.Segments())
	})
}
