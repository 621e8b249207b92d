package tables

import (
	"regexp"
	"sort"
	"strconv"
)

// GraftBucket is a post-transplant graft-month coefficient segment
// discovered from the loaded coefficient table, e.g. segment
// "GRAFT_0_3" covering months 0 through 3 inclusive. Keeping the
// literal month boundaries in reference data (spec.md design note,
// Open Question 3) means a future CMS release can move them without a
// code change; demographics.Classify only encodes the shape: the first
// discovered bucket containing graft_months wins, otherwise dialysis.
type GraftBucket struct {
	Lo, Hi  int
	Segment string
}

var graftSegmentPattern = regexp.MustCompile(`GRAFT_(\d+)_(\d+)$`)

// GraftBuckets scans the coefficient table's own segment names for the
// GRAFT_<lo>_<hi> convention and returns them sorted ascending by Lo.
func (t *CoefficientTable) GraftBuckets() []GraftBucket {
	var buckets []GraftBucket
	for segment := range t.bySegment {
		m := graftSegmentPattern.FindStringSubmatch(segment)
		if m == nil {
			continue
		}
		lo, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		hi, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		buckets = append(buckets, GraftBucket{Lo: lo, Hi: hi, Segment: segment})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Lo < buckets[j].Lo })
	return buckets
}
