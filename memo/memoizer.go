package memo

import (
	"reflect"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
)

// Stats counts how calls to a Memoizer were answered.
type Stats struct {
	Hits     uint64 // answered from the table
	Misses   uint64 // computed by the target function
	Failures uint64 // misses whose computation returned an error
	Shared   uint64 // answered by waiting on another caller's computation
}

// Memoizer caches the results of a single-key function.
// Multi-argument functions use a TupleN as the key; see MemoizeI2O1 and friends.
type Memoizer[K comparable, O any] struct {
	fn        func(K) (O, error)
	table     table[K, O]
	inflight  *xsync.MapOf[boxed[K], *call[O]] // nil unless shared
	checkKeys bool

	id     uuid.UUID
	name   string
	logger *zap.Logger

	hits     atomic.Uint64
	misses   atomic.Uint64
	failures atomic.Uint64
	shared   atomic.Uint64
}

// New wraps fn. Successful results are cached for the lifetime of the Memoizer;
// errors are returned unchanged and not cached.
func New[K comparable, O any](fn func(K) (O, error), opts ...Option) *Memoizer[K, O] {
	m := newMemoizer[K, O](NewConfig(opts...))
	m.fn = fn
	return m
}

func newMemoizer[K comparable, O any](cfg Config) *Memoizer[K, O] {
	m := &Memoizer[K, O]{
		checkKeys: mayHoldUnhashable(reflect.TypeFor[K]()),
		id:        uuid.New(),
		name:      cfg.Name,
		logger:    cfg.Logger,
	}
	if cfg.Shared {
		m.table = newSharedTable[K, O]()
		m.inflight = xsync.NewMapOf[boxed[K], *call[O]]()
	} else {
		m.table = mapTable[K, O]{}
	}
	m.logger.Debug("memoizer created", m.fields(zap.Bool("shared", cfg.Shared))...)
	return m
}

// Call returns the cached result for key, computing it on a miss.
func (m *Memoizer[K, O]) Call(key K) (O, error) {
	if m.checkKeys {
		if err := checkKey(key); err != nil {
			m.logUnhashable(err)
			var zero O
			return zero, err
		}
	}
	return m.do(key, m.fn)
}

func (m *Memoizer[K, O]) do(key K, compute func(K) (O, error)) (O, error) {
	if v, ok := m.table.load(key); ok {
		m.hits.Add(1)
		return v, nil
	}
	if m.inflight != nil {
		return m.doShared(key, compute)
	}
	return m.compute(key, compute)
}

func (m *Memoizer[K, O]) compute(key K, compute func(K) (O, error)) (O, error) {
	m.misses.Add(1)
	traced := m.logger.Core().Enabled(zap.DebugLevel)
	var start time.Time
	if traced {
		start = time.Now()
	}
	v, err := compute(key)
	if err != nil {
		m.failures.Add(1)
		if traced {
			m.logFailure(key, timespan.BetweenTimes(start, time.Now()), err)
		}
		return v, err
	}
	m.table.insert(key, v)
	if traced {
		m.logMiss(key, timespan.BetweenTimes(start, time.Now()))
	}
	return v, nil
}

// doShared lets the first caller of a missing key compute it while the others wait.
func (m *Memoizer[K, O]) doShared(key K, compute func(K) (O, error)) (O, error) {
	for {
		c := &call[O]{done: make(chan struct{})}
		prev, loaded := m.inflight.LoadOrStore(boxed[K]{key}, c)
		if loaded {
			<-prev.done
			if !prev.finished {
				continue
			}
			m.shared.Add(1)
			return prev.val, prev.err
		}
		if v, ok := m.table.load(key); ok {
			// stored between the lookup in do and the registration above
			c.val, c.finished = v, true
			m.inflight.Delete(boxed[K]{key})
			close(c.done)
			m.hits.Add(1)
			return v, nil
		}
		return m.lead(key, c, compute)
	}
}

func (m *Memoizer[K, O]) lead(key K, c *call[O], compute func(K) (O, error)) (O, error) {
	defer func() {
		m.inflight.Delete(boxed[K]{key})
		close(c.done)
	}()
	c.val, c.err = m.compute(key, compute)
	c.finished = true
	return c.val, c.err
}

// Len returns the number of cached results.
func (m *Memoizer[K, O]) Len() int {
	return m.table.size()
}

// Stats returns a snapshot of the call counters.
func (m *Memoizer[K, O]) Stats() Stats {
	return Stats{
		Hits:     m.hits.Load(),
		Misses:   m.misses.Load(),
		Failures: m.failures.Load(),
		Shared:   m.shared.Load(),
	}
}

// ID identifies the memoizer in log lines.
func (m *Memoizer[K, O]) ID() uuid.UUID {
	return m.id
}

// Name returns the name set with WithName, "memo" by default.
func (m *Memoizer[K, O]) Name() string {
	return m.name
}

func (m *Memoizer[K, O]) fields(extra ...zap.Field) []zap.Field {
	return append([]zap.Field{
		zap.String("memoizer", m.name),
		zap.Stringer("memoizer_id", m.id),
	}, extra...)
}

func (m *Memoizer[K, O]) logMiss(key K, span timespan.TimeSpan) {
	if ce := m.logger.Check(zap.DebugLevel, "memo miss"); ce != nil {
		ce.Write(m.fields(
			zap.Uint64("key_hash", keyHash(key)),
			zap.Time("started", span.Start()),
			zap.Duration("took", span.Duration()),
		)...)
	}
}

func (m *Memoizer[K, O]) logFailure(key K, span timespan.TimeSpan, err error) {
	if ce := m.logger.Check(zap.DebugLevel, "target function failed, result not cached"); ce != nil {
		ce.Write(m.fields(
			zap.Uint64("key_hash", keyHash(key)),
			zap.Time("started", span.Start()),
			zap.Duration("took", span.Duration()),
			zap.Error(err),
		)...)
	}
}

func (m *Memoizer[K, O]) logUnhashable(err error) {
	m.logger.Warn("unhashable memo key", m.fields(zap.Error(err))...)
}
