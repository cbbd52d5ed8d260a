package objwalk_test

import (
	"testing"

	"github.com/ehsanranjbar/objwalk"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	type record struct{ A int }
	type mapAlias map[string]int

	i := 7
	pp := &i

	tests := []struct {
		name string
		v    any
		want objwalk.Kind
	}{
		{name: "Nil", v: nil, want: objwalk.KindNil},
		{name: "NilPointer", v: (*record)(nil), want: objwalk.KindNil},
		{name: "NilMap", v: map[string]int(nil), want: objwalk.KindNil},
		{name: "Int", v: 42, want: objwalk.KindScalar},
		{name: "String", v: "foo", want: objwalk.KindScalar},
		{name: "Bool", v: true, want: objwalk.KindScalar},
		{name: "PointerToScalar", v: &pp, want: objwalk.KindScalar},
		{name: "Slice", v: []int{1}, want: objwalk.KindSequence},
		{name: "Array", v: [2]string{}, want: objwalk.KindSequence},
		{name: "Map", v: map[string]int{}, want: objwalk.KindMap},
		{name: "NamedMapType", v: mapAlias{}, want: objwalk.KindMap},
		{name: "Struct", v: record{}, want: objwalk.KindRecord},
		{name: "StructPointer", v: &record{}, want: objwalk.KindRecord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, objwalk.Classify(tt.v))
		})
	}
}

func TestKind(t *testing.T) {
	require.True(t, objwalk.KindMap.Composite())
	require.True(t, objwalk.KindSequence.Composite())
	require.True(t, objwalk.KindRecord.Composite())
	require.False(t, objwalk.KindScalar.Composite())
	require.False(t, objwalk.KindNil.Composite())

	require.Equal(t, "record", objwalk.KindRecord.String())
	require.Equal(t, "nil", objwalk.KindNil.String())
}

func TestChildren(t *testing.T) {
	t.Run("Record", func(t *testing.T) {
		type record struct {
			A      int
			B      string
			hidden bool
		}

		children, err := objwalk.Children(record{A: 1, B: "x", hidden: true})
		require.NoError(t, err)
		require.Len(t, children, 2)
		require.Equal(t, "A", children[0].Name)
		require.Equal(t, objwalk.AccessField, children[0].Access)
		require.Equal(t, 1, children[0].Value)
		require.Equal(t, "B", children[1].Name)
	})

	t.Run("MapSorted", func(t *testing.T) {
		children, err := objwalk.Children(map[string]int{"b": 2, "a": 1, "c": 3})
		require.NoError(t, err)
		require.Len(t, children, 3)
		require.Equal(t, "a", children[0].Name)
		require.Equal(t, objwalk.AccessKey, children[0].Access)
		require.Equal(t, "b", children[1].Name)
		require.Equal(t, "c", children[2].Name)
	})

	t.Run("Sequence", func(t *testing.T) {
		children, err := objwalk.Children([]string{"x", "y"})
		require.NoError(t, err)
		require.Len(t, children, 2)
		require.Equal(t, "0", children[0].Name)
		require.Equal(t, objwalk.AccessIndex, children[0].Access)
		require.Equal(t, 0, children[0].Index)
		require.Equal(t, "y", children[1].Value)
	})

	t.Run("Scalar", func(t *testing.T) {
		children, err := objwalk.Children("just a string")
		require.NoError(t, err)
		require.Empty(t, children)
	})

	t.Run("IntKeyedMap", func(t *testing.T) {
		children, err := objwalk.Children(map[int]string{2: "b", 10: "j"})
		require.NoError(t, err)
		require.Len(t, children, 2)
		// Keys are rendered as strings and sorted lexically.
		require.Equal(t, "10", children[0].Name)
		require.Equal(t, "2", children[1].Name)
	})
}
