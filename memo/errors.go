package memo

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrUnhashableKey is returned when an argument tuple cannot be used as a table key.
var ErrUnhashableKey = errors.New("unhashable memo key")

// UnhashableKeyError reports which argument made the key unhashable.
type UnhashableKeyError struct {
	Position int // -1 when unknown
	Type     reflect.Type
}

func (e *UnhashableKeyError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("%v: type %v", ErrUnhashableKey, e.Type)
	}
	return fmt.Sprintf("%v: argument %d has type %v", ErrUnhashableKey, e.Position, e.Type)
}

func (e *UnhashableKeyError) Unwrap() error {
	return ErrUnhashableKey
}
