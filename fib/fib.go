// Package fib computes Fibonacci numbers through a memoized recursion.
package fib

import "github.com/on-the-ground/memoize_go/memo"

// Fib is a memoized Fibonacci function. Every recursive step goes through the
// memo table, so computing Of(n) caches Of(0) to Of(n) along the way.
type Fib struct {
	memo *memo.Memoizer[uint, uint64]
}

func New(opts ...memo.Option) *Fib {
	f := &Fib{}
	f.memo = memo.New(func(n uint) (uint64, error) {
		if n <= 1 {
			return uint64(n), nil
		}
		return f.Of(n-1) + f.Of(n-2), nil
	}, append([]memo.Option{memo.WithName("fib")}, opts...)...)
	return f
}

// Of returns the n-th Fibonacci number. Results past n = 93 overflow uint64.
func (f *Fib) Of(n uint) uint64 {
	v, err := f.memo.Call(n)
	if err != nil {
		panic(err)
	}
	return v
}

func (f *Fib) Memo() *memo.Memoizer[uint, uint64] {
	return f.memo
}
