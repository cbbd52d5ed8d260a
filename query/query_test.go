package query_test

import (
	"testing"

	"github.com/ehsanranjbar/objwalk"
	"github.com/ehsanranjbar/objwalk/query"
	"github.com/stretchr/testify/require"
)

type item struct {
	Title string
	Price float64
	Tags  []string
}

func flattened(t *testing.T, v any) *objwalk.Result {
	t.Helper()
	res, err := objwalk.Flatten(v)
	require.NoError(t, err)
	return res
}

func TestMatch(t *testing.T) {
	res := flattened(t, item{Title: "XML in a Nutshell", Price: 39.95, Tags: []string{"xml"}})

	tests := []struct {
		name string
		q    string
		want bool
	}{
		{name: "EqualString", q: `Title = "XML in a Nutshell"`, want: true},
		{name: "NotEqual", q: `Title != "Learning Go"`, want: true},
		{name: "NumericCompare", q: `Price > 10`, want: true},
		{name: "NumericCompareFalse", q: `Price > 100`, want: false},
		{name: "Conjunction", q: `Price > 10 AND Price < 50`, want: true},
		{name: "FullPathIdentity", q: "`root.Title` LIKE \"XML*\"", want: true},
		{name: "MissingIdentity", q: `Author = "nobody"`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := query.Match(res, tt.q)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestMatchParseError(t *testing.T) {
	res := flattened(t, item{})
	_, err := query.Match(res, "AND AND")
	require.Error(t, err)
}

func TestResultContext(t *testing.T) {
	res := flattened(t, map[string]any{"status": "ok"})
	ctx := query.NewResultContext(res, "root")

	v, ok := ctx.Get("status")
	require.True(t, ok)
	require.Equal(t, "ok", v.Value())

	_, ok = ctx.Get("missing")
	require.False(t, ok)

	row := ctx.Row()
	require.Contains(t, row, "root['status']")
}
