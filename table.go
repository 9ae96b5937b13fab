package chash

import (
	"fmt"

	logging "github.com/op/go-logging"
)

var log = logging.MustGetLogger("chash")

// Pair is a stored key and value as handed to Put.
type Pair struct {
	Key   MutView
	Value MutView
}

// Table is a hash table with a fixed number of chained buckets. It stores
// views, never the bytes behind them: whoever passes a view to Put must keep
// those bytes valid and unchanged until the entry is overwritten, popped or
// cleared. A Table is not safe for concurrent use.
type Table struct {
	hash       HashFunc
	heads      []link
	entries    []entry
	free       link
	count      int
	maxEntries uint32
}

// New creates an empty table with the given hash function and bucket count.
// It panics if hash is nil or buckets is not positive.
func New(hash HashFunc, buckets int) *Table {
	t, err := NewFromConfig(Config{Hash: hash, Buckets: buckets})
	if err != nil {
		panic(err)
	}
	return t
}

// NewFromConfig creates an empty table from cfg after validating it.
func NewFromConfig(cfg Config) (*Table, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log.Debugf("new table: buckets=%d max_entries=%d", cfg.Buckets, cfg.maxEntries())
	return &Table{
		hash:       cfg.Hash,
		heads:      make([]link, cfg.Buckets),
		maxEntries: cfg.maxEntries(),
	}, nil
}

func (t *Table) bucket(key View) *link {
	return &t.heads[t.hash(key)%uint64(len(t.heads))]
}

// Has reports whether an entry with an equal key is stored.
func (t *Table) Has(key View) bool {
	return t.find(t.bucket(key), key) != nil
}

// Get returns the value stored for key. If no entry matches it returns the
// empty view and false. The returned view aliases the bytes given to Put.
func (t *Table) Get(key View) (MutView, bool) {
	at := t.find(t.bucket(key), key)
	if at == nil {
		return MutView{}, false
	}
	return t.slot(*at).value, true
}

// Put stores value under key. When an equal key is already stored its entry
// is updated in place and the pair it held before is returned with replaced
// set. Otherwise a new entry is linked at the head of the key's chain and the
// zero Pair is returned.
//
// Put panics with ErrEntriesExhausted if a new entry is needed and the
// table's entry limit is reached.
func (t *Table) Put(key, value MutView) (old Pair, replaced bool) {
	head := t.bucket(key.View())
	if at := t.find(head, key.View()); at != nil {
		e := t.slot(*at)
		old = Pair{Key: e.key, Value: e.value}
		e.key, e.value = key, value
		return old, true
	}

	l := t.alloc()
	e := t.slot(l)
	e.key, e.value = key, value
	t.insert(head, l)
	t.count++
	return Pair{}, false
}

// Pop removes the entry stored for key and returns the pair it held. If no
// entry matches it returns the zero Pair and false.
func (t *Table) Pop(key View) (old Pair, found bool) {
	at := t.find(t.bucket(key), key)
	if at == nil {
		return Pair{}, false
	}
	l := t.unlink(at)
	e := t.slot(l)
	old = Pair{Key: e.key, Value: e.value}
	t.release(l)
	t.count--
	return old, true
}

// Len returns the number of stored entries.
func (t *Table) Len() int { return t.count }

// Buckets returns the fixed bucket count.
func (t *Table) Buckets() int { return len(t.heads) }

// Range calls fn for every entry in bucket order, stopping early if fn
// returns false. fn must not call Put, Pop or Clear on t.
func (t *Table) Range(fn func(key, value MutView) bool) {
	for i := range t.heads {
		for l := t.heads[i]; l != 0; l = t.slot(l).next {
			e := t.slot(l)
			if !fn(e.key, e.value) {
				return
			}
		}
	}
}

// Clear releases every entry. The bucket count and hash function are kept.
func (t *Table) Clear() {
	log.Debugf("clearing table: entries=%d", t.count)
	for i := range t.heads {
		t.heads[i] = 0
	}
	t.entries = nil
	t.free = 0
	t.count = 0
}

// exhausted is the fail-fast path for entry allocation. It is never
// recovered by the table.
func exhausted(limit uint32) {
	err := fmt.Errorf("%w: limit %d", ErrEntriesExhausted, limit)
	log.Critical(err)
	panic(err)
}
