package memo

// tuple marks the composite key types so that key errors can name the argument.
type tuple interface {
	isTuple()
}

// Tuple2 is the key of a two-argument call.
type Tuple2[A, B comparable] struct {
	V1 A
	V2 B
}

// Tuple3 is the key of a three-argument call.
type Tuple3[A, B, C comparable] struct {
	V1 A
	V2 B
	V3 C
}

// Tuple4 is the key of a four-argument call.
type Tuple4[A, B, C, D comparable] struct {
	V1 A
	V2 B
	V3 C
	V4 D
}

func (Tuple2[A, B]) isTuple()       {}
func (Tuple3[A, B, C]) isTuple()    {}
func (Tuple4[A, B, C, D]) isTuple() {}
