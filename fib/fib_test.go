package fib_test

import (
	"testing"

	"github.com/on-the-ground/memoize_go/fib"
	"github.com/on-the-ground/memoize_go/internal/testlog"
	"github.com/on-the-ground/memoize_go/memo"

	"github.com/stretchr/testify/assert"
)

func TestFib_Values(t *testing.T) {
	f := fib.New()
	want := []uint64{0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55}
	for n, v := range want {
		assert.Equal(t, v, f.Of(uint(n)), "fib(%d)", n)
	}
	assert.NotPanics(t, func() {
		assert.Equal(t, uint64(12200160415121876738), f.Of(93))
	})
}

func TestFib_RecursivePopulation(t *testing.T) {
	f := fib.New()

	assert.Equal(t, uint64(55), f.Of(10))
	assert.Equal(t, 11, f.Memo().Len())
	assert.Equal(t, uint64(11), f.Memo().Stats().Misses)

	before := f.Memo().Stats()
	assert.Equal(t, uint64(5), f.Of(5))
	after := f.Memo().Stats()
	assert.Equal(t, before.Misses, after.Misses)
	assert.Equal(t, before.Hits+1, after.Hits)
}

func TestFib_NamedLogger(t *testing.T) {
	logger, logs := testlog.New()
	f := fib.New(memo.WithLogger(logger))

	f.Of(3)
	assert.Equal(t, "fib", f.Memo().Name())
	assert.Equal(t, 4, logs.FilterMessage("memo miss").Len())
}

func TestFib_Shared(t *testing.T) {
	f := fib.New(memo.WithSharedAccess())
	done := make(chan uint64)
	for i := 0; i < 4; i++ {
		go func() { done <- f.Of(80) }()
	}
	for i := 0; i < 4; i++ {
		assert.Equal(t, uint64(23416728348467685), <-done)
	}
	assert.Equal(t, uint64(81), f.Memo().Stats().Misses)
}
