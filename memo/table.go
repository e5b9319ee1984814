package memo

import "github.com/puzpuzpuz/xsync/v3"

// table is the insert-only result store of a Memoizer.
type table[K comparable, O any] interface {
	load(K) (O, bool)
	// insert keeps the existing value if the key is already present.
	insert(K, O)
	size() int
}

var (
	_ table[int, int] = mapTable[int, int]{}
	_ table[int, int] = sharedTable[int, int]{}
)

type mapTable[K comparable, O any] map[K]O

func (t mapTable[K, O]) load(k K) (O, bool) {
	v, ok := t[k]
	return v, ok
}

func (t mapTable[K, O]) insert(k K, v O) {
	if _, ok := t[k]; !ok {
		t[k] = v
	}
}

func (t mapTable[K, O]) size() int {
	return len(t)
}

// boxed wraps keys of xsync maps. xsync cannot hash a nil interface key,
// but it can hash a struct holding one.
type boxed[K comparable] struct {
	k K
}

type sharedTable[K comparable, O any] struct {
	m *xsync.MapOf[boxed[K], O]
}

func newSharedTable[K comparable, O any]() sharedTable[K, O] {
	return sharedTable[K, O]{m: xsync.NewMapOf[boxed[K], O]()}
}

func (t sharedTable[K, O]) load(k K) (O, bool) {
	return t.m.Load(boxed[K]{k})
}

func (t sharedTable[K, O]) insert(k K, v O) {
	t.m.LoadOrStore(boxed[K]{k}, v)
}

func (t sharedTable[K, O]) size() int {
	return t.m.Size()
}

// call is a computation in progress in shared mode.
type call[O any] struct {
	done     chan struct{}
	val      O
	err      error
	finished bool // false if the computing caller panicked
}
