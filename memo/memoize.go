package memo

// MemoizeI1O1 memoizes a pure function of one argument.
// MemoizeI2O1 to MemoizeI4O1 do the same for two to four arguments, keyed by
// the TupleN of the arguments.
//
// The wrapped function panics with an *UnhashableKeyError if an argument
// holds a slice, map or func behind an interface. Use the E variants to get
// that error returned instead.
func MemoizeI1O1[I1 comparable, O any](
	pureFn func(I1) O,
	opts ...Option,
) func(I1) O {
	m := New(func(i1 I1) (O, error) {
		return pureFn(i1), nil
	}, opts...)
	return func(i1 I1) O {
		return mustValue(m.Call(i1))
	}
}

func MemoizeI2O1[I1, I2 comparable, O any](
	pureFn func(I1, I2) O,
	opts ...Option,
) func(I1, I2) O {
	m := New(func(k Tuple2[I1, I2]) (O, error) {
		return pureFn(k.V1, k.V2), nil
	}, opts...)
	return func(i1 I1, i2 I2) O {
		return mustValue(m.Call(Tuple2[I1, I2]{i1, i2}))
	}
}

func MemoizeI3O1[I1, I2, I3 comparable, O any](
	pureFn func(I1, I2, I3) O,
	opts ...Option,
) func(I1, I2, I3) O {
	m := New(func(k Tuple3[I1, I2, I3]) (O, error) {
		return pureFn(k.V1, k.V2, k.V3), nil
	}, opts...)
	return func(i1 I1, i2 I2, i3 I3) O {
		return mustValue(m.Call(Tuple3[I1, I2, I3]{i1, i2, i3}))
	}
}

func MemoizeI4O1[I1, I2, I3, I4 comparable, O any](
	pureFn func(I1, I2, I3, I4) O,
	opts ...Option,
) func(I1, I2, I3, I4) O {
	m := New(func(k Tuple4[I1, I2, I3, I4]) (O, error) {
		return pureFn(k.V1, k.V2, k.V3, k.V4), nil
	}, opts...)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O {
		return mustValue(m.Call(Tuple4[I1, I2, I3, I4]{i1, i2, i3, i4}))
	}
}

// MemoizeI1E memoizes a function that can fail. Failed calls are not cached,
// so the next call with the same argument tries again. MemoizeI2E to
// MemoizeI4E cover two to four arguments. An unhashable argument is returned
// as an *UnhashableKeyError.
func MemoizeI1E[I1 comparable, O any](
	fn func(I1) (O, error),
	opts ...Option,
) func(I1) (O, error) {
	return New(fn, opts...).Call
}

func MemoizeI2E[I1, I2 comparable, O any](
	fn func(I1, I2) (O, error),
	opts ...Option,
) func(I1, I2) (O, error) {
	m := New(func(k Tuple2[I1, I2]) (O, error) {
		return fn(k.V1, k.V2)
	}, opts...)
	return func(i1 I1, i2 I2) (O, error) {
		return m.Call(Tuple2[I1, I2]{i1, i2})
	}
}

func MemoizeI3E[I1, I2, I3 comparable, O any](
	fn func(I1, I2, I3) (O, error),
	opts ...Option,
) func(I1, I2, I3) (O, error) {
	m := New(func(k Tuple3[I1, I2, I3]) (O, error) {
		return fn(k.V1, k.V2, k.V3)
	}, opts...)
	return func(i1 I1, i2 I2, i3 I3) (O, error) {
		return m.Call(Tuple3[I1, I2, I3]{i1, i2, i3})
	}
}

func MemoizeI4E[I1, I2, I3, I4 comparable, O any](
	fn func(I1, I2, I3, I4) (O, error),
	opts ...Option,
) func(I1, I2, I3, I4) (O, error) {
	m := New(func(k Tuple4[I1, I2, I3, I4]) (O, error) {
		return fn(k.V1, k.V2, k.V3, k.V4)
	}, opts...)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) (O, error) {
		return m.Call(Tuple4[I1, I2, I3, I4]{i1, i2, i3, i4})
	}
}

// mustValue panics with the key error of a pure wrapper, which has no error result.
func mustValue[O any](v O, err error) O {
	if err != nil {
		panic(err)
	}
	return v
}
