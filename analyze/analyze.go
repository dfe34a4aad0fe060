package analyze

import (
	"sort"

	"github.com/bjornpagen/locdist/freqmap"
	"github.com/bjornpagen/locdist/pairlist"
)

type Result struct {
	Distance   int64
	Similarity int64
}

// Run sorts copies of both columns and computes the distance and similarity
// over the shorter column's length. Values are paired by sorted position, not
// by the line they came from.
func Run(l pairlist.Lists) Result {
	left := sorted(l.Left)
	right := sorted(l.Right)

	n := len(left)
	if len(right) < n {
		n = len(right)
	}

	return Result{
		Distance:   Distance(left, right),
		Similarity: Similarity(left, freqmap.New(right), n),
	}
}

// Distance expects both slices sorted ascending.
func Distance(left, right []int32) int64 {
	var sum int64
	for i := 0; i < len(left) && i < len(right); i++ {
		d := int64(left[i]) - int64(right[i])
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return sum
}

func Similarity(left []int32, table freqmap.FreqMap, n int) int64 {
	if n > len(left) {
		n = len(left)
	}
	return table.Score(left[:n])
}

func sorted(vals []int32) []int32 {
	out := make([]int32, len(vals))
	copy(out, vals)
	sort.Slice(out, func(i, j int) bool {
		return out[i] < out[j]
	})
	return out
}
