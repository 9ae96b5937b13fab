/*
Package chash provides a hash table with separate chaining over non-owning
byte views.

A Table stores pairs of views. It never copies the bytes a view points to,
so the memory behind every stored key and value stays owned by the caller
and must remain valid and unchanged while its entry is in the table.

Basic usage:

	import "github.com/theflywheel/chash"

	t := chash.New(chash.XXHash, 64)

	key := []byte("user:42")
	value := []byte("alice")
	t.Put(chash.MutViewOf(key), chash.MutViewOf(value))

	if v, ok := t.Get(chash.ViewString("user:42")); ok {
		fmt.Println("Value:", v.String())
	}

	if old, ok := t.Pop(chash.ViewOf(key)); ok {
		fmt.Println("Removed:", old.Value.String())
	}

Features:

  - Arbitrary keys and values through read-only (View) and read-write
    (MutView) byte views
  - Fixed bucket count chosen at construction; no rehashing
  - Caller-supplied hash function, with FNV-1a and xxHash provided
  - Intrusive chain links stored inside each entry, so chain traversal and
    splicing never allocate
  - Put updates an existing entry in place and reports the pair it replaced

Implementation Details:

Entries live in an arena owned by the table. Each bucket holds the link of
the first entry in its chain and each entry holds the link of the next one;
a zero link ends a chain. New entries are linked at the chain head. Popped
entries are zeroed and threaded onto a free list through the same link, and
later inserts reuse them before the arena grows.

The table is not safe for concurrent use. Callers that share one across
goroutines must serialize every operation themselves.

Running out of entries is fatal: Put panics with ErrEntriesExhausted rather
than returning an error, and the table makes no attempt to recover.
*/
package chash
