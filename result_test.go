package objwalk_test

import (
	"testing"

	"github.com/ehsanranjbar/objwalk"
	"github.com/stretchr/testify/require"
)

func TestResult(t *testing.T) {
	r := objwalk.NewResult()
	r.Set("root.b", 2)
	r.Set("root.a", 1)
	r.Set("root.c", "three")

	t.Run("Order", func(t *testing.T) {
		require.Equal(t, []string{"root.b", "root.a", "root.c"}, r.Keys())
	})

	t.Run("LastWriteWins", func(t *testing.T) {
		r.Set("root.b", 20)
		v, ok := r.Get("root.b")
		require.True(t, ok)
		require.Equal(t, 20, v)
		require.Equal(t, []string{"root.b", "root.a", "root.c"}, r.Keys())
	})

	t.Run("Iter", func(t *testing.T) {
		var keys []string
		for k := range r.Iter() {
			keys = append(keys, k)
		}
		require.Equal(t, r.Keys(), keys)
	})
}

func TestResultMarshalJSON(t *testing.T) {
	r := objwalk.NewResult()
	r.Set("root.b", 2)
	r.Set("root.a", "x")

	bz, err := r.MarshalJSON()
	require.NoError(t, err)
	require.JSONEq(t, `{"root.b": 2, "root.a": "x"}`, string(bz))
	// Member order is traversal order, not lexical.
	require.Equal(t, `{"root.b":2,"root.a":"x"}`, string(bz))
}

func TestResultBinaryRoundTrip(t *testing.T) {
	r := objwalk.NewResult()
	r.Set("root.b", int8(2))
	r.Set("root.a", "x")
	r.Set("root.t", true)

	bz, err := r.MarshalBinary()
	require.NoError(t, err)

	var back objwalk.Result
	require.NoError(t, back.UnmarshalBinary(bz))

	require.Equal(t, r.Keys(), back.Keys())
	v, ok := back.Get("root.a")
	require.True(t, ok)
	require.Equal(t, "x", v)
	v, ok = back.Get("root.t")
	require.True(t, ok)
	require.Equal(t, true, v)
}
