// Package memo provides memoization wrappers for pure functions.
//
// A memoized function remembers the result of every successful call, keyed by
// the exact argument tuple, and answers repeated calls from its table instead of
// calling the wrapped function again.
//
//	var fib func(uint) uint64
//	fib = memo.MemoizeI1O1(func(n uint) uint64 {
//	    if n <= 1 {
//	        return uint64(n)
//	    }
//	    return fib(n-1) + fib(n-2)
//	})
//
// Recursive calls must go through the memoized wrapper, as above, so that every
// sub-problem lands in the table.
//
// Features:
//   - MemoizeI1O1 to MemoizeI4O1: typed memoizers for pure functions.
//   - MemoizeI1E to MemoizeI4E: typed memoizers for functions that can fail.
//     Errors are returned as is and never cached.
//   - MemoizeVariadic: arbitrary arity, hashability checked at call time.
//   - Memoizer: the underlying table, with statistics.
//
// The table grows without bound and entries are never evicted or replaced.
// Callers are responsible for keeping the input domain small.
//
// A Memoizer is not safe for concurrent use unless it is created with
// WithSharedAccess, in which case concurrent callers of the same missing key
// wait for a single computation.
//
// WARNING: Do not memoize impure functions (e.g., those depending on time, I/O, etc).
package memo
