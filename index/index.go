// Package index builds an inverted index over batches of flattened results:
// which inputs contained a field of a given name anywhere in their graph.
package index

import (
	roaring "github.com/RoaringBitmap/roaring/v2"

	"github.com/ehsanranjbar/objwalk"
)

// SegmentIndex maps final path segments to the set of batch ordinals whose
// results contained them.
type SegmentIndex struct {
	m    map[string]*roaring.Bitmap
	next uint32
}

// New creates an empty SegmentIndex.
func New() *SegmentIndex {
	return &SegmentIndex{m: make(map[string]*roaring.Bitmap)}
}

// Add indexes a result under the next ordinal and returns that ordinal.
func (x *SegmentIndex) Add(res *objwalk.Result) uint32 {
	ord := x.next
	x.next++

	for _, path := range res.Keys() {
		seg := objwalk.LastSegment(path)
		bm, ok := x.m[seg]
		if !ok {
			bm = roaring.New()
			x.m[seg] = bm
		}
		bm.Add(ord)
	}
	return ord
}

// Lookup returns the ordinals of all results that contained the given
// segment. The returned bitmap is a copy and safe to mutate.
func (x *SegmentIndex) Lookup(segment string) *roaring.Bitmap {
	bm, ok := x.m[segment]
	if !ok {
		return roaring.New()
	}
	return bm.Clone()
}

// LookupAll intersects the ordinal sets of several segments.
func (x *SegmentIndex) LookupAll(segments ...string) *roaring.Bitmap {
	if len(segments) == 0 {
		return roaring.New()
	}

	acc := x.Lookup(segments[0])
	for _, seg := range segments[1:] {
		acc.And(x.Lookup(seg))
	}
	return acc
}

// Segments returns the number of distinct segments indexed.
func (x *SegmentIndex) Segments() int {
	return len(x.m)
}
