package freqmap

// FreqMap maps a value to how many times it occurs.
type FreqMap map[int32]uint32

func New(vals []int32) FreqMap {
	m := make(FreqMap)
	for _, v := range vals {
		m[v]++
	}
	return m
}

// Count returns 0 for values that never occurred.
func (m FreqMap) Count(v int32) uint32 {
	return m[v]
}

// takes a list of values and weighs each one by its count in m
func (m FreqMap) Score(vals []int32) int64 {
	var score int64
	for _, v := range vals {
		freq, ok := m[v]
		if !ok {
			continue
		}

		score += int64(v) * int64(freq)
	}

	return score
}
