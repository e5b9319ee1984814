package memo

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/puzpuzpuz/xsync/v3"
)

// keyNode is the interned identity of one argument list. Equal lists reach
// the same node, so the node pointer serves as the table key.
type keyNode struct {
	parent   *keyNode
	arg      any
	children *xsync.MapOf[any, *keyNode]
}

func newKeyNode(parent *keyNode, arg any) *keyNode {
	return &keyNode{
		parent:   parent,
		arg:      arg,
		children: xsync.NewMapOf[any, *keyNode](),
	}
}

func (n *keyNode) String() string {
	var parts []string
	for ; n.parent != nil; n = n.parent {
		parts = append(parts, fmt.Sprintf("%v", n.arg))
	}
	slices.Reverse(parts)
	return "(" + strings.Join(parts, ", ") + ")"
}

// interner is a trie over argument lists. The root stands for the empty list.
type interner struct {
	root *keyNode
}

func newInterner() *interner {
	return &interner{root: newKeyNode(nil, nil)}
}

func (in *interner) intern(args []any) (*keyNode, error) {
	keys := make([]any, len(args))
	for i, arg := range args {
		k, err := argKey(arg)
		if err != nil {
			err.Position = i
			return nil, err
		}
		keys[i] = k
	}

	node := in.root
	for _, k := range keys {
		parent := node
		node, _ = parent.children.LoadOrCompute(k, func() *keyNode {
			return newKeyNode(parent, k)
		})
	}
	return node, nil
}

// nilArg is the interned form of a nil argument.
type nilArg struct{}

func (nilArg) String() string {
	return "<nil>"
}

func argKey(arg any) (any, *UnhashableKeyError) {
	if arg == nil {
		return nilArg{}, nil
	}
	if t, bad := unhashableType(reflect.ValueOf(arg)); bad {
		return nil, &UnhashableKeyError{Position: -1, Type: t}
	}
	return arg, nil
}

// MemoizeVariadic memoizes a function of any number of arguments.
//
// Every argument must be usable as a map key, nil included. A slice, map or
// func anywhere in an argument makes the call fail with an *UnhashableKeyError
// without calling fn. Errors from fn are returned unchanged and not cached.
func MemoizeVariadic[O any](
	fn func(args ...any) (O, error),
	opts ...Option,
) func(args ...any) (O, error) {
	in := newInterner()
	m := newMemoizer[*keyNode, O](NewConfig(opts...))
	return func(args ...any) (O, error) {
		key, err := in.intern(args)
		if err != nil {
			m.logUnhashable(err)
			var zero O
			return zero, err
		}
		return m.do(key, func(*keyNode) (O, error) {
			return fn(args...)
		})
	}
}
