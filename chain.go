package chash

// link references an entry in the arena by index+1. The zero link marks the
// end of a chain, so a freshly allocated head array is a set of empty chains.
type link uint32

// maxLinks is the largest number of entries a link can address.
const maxLinks uint32 = 1<<32 - 2

// entry is one stored pair. next is the intrusive chain link: it threads the
// entry onto its bucket's chain while live and onto the free list once popped.
type entry struct {
	key   MutView
	value MutView
	next  link
}

// slot returns the arena element referenced by l. l must not be zero.
func (t *Table) slot(l link) *entry {
	return &t.entries[l-1]
}

// find scans the chain rooted at head and returns the slot holding the link
// to the entry whose key equals key, or nil if no entry matches. Unlinking is
// a single store through the returned slot, whether it is the bucket head or
// the previous entry's next field.
func (t *Table) find(head *link, key View) *link {
	for at := head; *at != 0; at = &t.slot(*at).next {
		if t.slot(*at).key.Equal(key) {
			return at
		}
	}
	return nil
}

// insert links l at the front of the chain rooted at head.
func (t *Table) insert(head *link, l link) {
	t.slot(l).next = *head
	*head = l
}

// unlink removes the entry referenced by *at from its chain and returns it.
func (t *Table) unlink(at *link) link {
	l := *at
	*at = t.slot(l).next
	t.slot(l).next = 0
	return l
}

// alloc hands out a zeroed entry, reusing a released slot when one exists.
// The arena append may move entries, so callers must not hold slot pointers
// across it.
func (t *Table) alloc() link {
	if t.free != 0 {
		l := t.free
		t.free = t.slot(l).next
		t.slot(l).next = 0
		return l
	}
	if uint64(len(t.entries)) >= uint64(t.maxEntries) {
		exhausted(t.maxEntries)
	}
	t.entries = append(t.entries, entry{})
	return link(len(t.entries))
}

// release zeroes the entry so the table stops referencing caller memory and
// pushes it onto the free list.
func (t *Table) release(l link) {
	e := t.slot(l)
	*e = entry{next: t.free}
	t.free = l
}
