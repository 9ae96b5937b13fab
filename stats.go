package chash

// Stats describes how entries are spread over a table's chains.
type Stats struct {
	Buckets      int
	Entries      int
	UsedBuckets  int
	LongestChain int
}

// LoadFactor returns the mean chain length over all buckets.
func (s Stats) LoadFactor() float64 {
	if s.Buckets == 0 {
		return 0
	}
	return float64(s.Entries) / float64(s.Buckets)
}

// Stats walks every chain and reports the table's shape. A LongestChain
// close to Entries means the hash function collapses keys into few buckets.
func (t *Table) Stats() Stats {
	s := Stats{Buckets: len(t.heads), Entries: t.count}
	for _, head := range t.heads {
		n := 0
		for l := head; l != 0; l = t.slot(l).next {
			n++
		}
		if n > 0 {
			s.UsedBuckets++
		}
		if n > s.LongestChain {
			s.LongestChain = n
		}
	}
	return s
}
