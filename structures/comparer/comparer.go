package comparer

import (
	"fmt"
	"github.com/zeebo/xxh3"
	"strings"
)

// EqualityComparer defines equality for T, along with a hash that must be equal for equal values.
type EqualityComparer[T any] interface {
	Hash(val T) uint64
	Equal(a, b T) bool
}

type defaultComparer[T comparable] struct{}

// Default returns an [EqualityComparer] that uses == for equality.
// Values are hashed from their Go-syntax representation, so types with multiple representations of equal values (like +0 and -0) should use [Func] instead.
func Default[T comparable]() EqualityComparer[T] {
	return defaultComparer[T]{}
}

func (defaultComparer[T]) Hash(val T) uint64 {
	return xxh3.HashString(fmt.Sprintf("%#v", val))
}

func (defaultComparer[T]) Equal(a, b T) bool {
	return a == b
}

type ignoreCase struct{}

// IgnoreCase returns an [EqualityComparer] for strings that ignores case.
func IgnoreCase() EqualityComparer[string] {
	return ignoreCase{}
}

func (ignoreCase) Hash(val string) uint64 {
	return xxh3.HashString(strings.ToUpper(val))
}

func (ignoreCase) Equal(a, b string) bool {
	return strings.ToUpper(a) == strings.ToUpper(b)
}

type funcComparer[T any] struct {
	hash  func(T) uint64
	equal func(a, b T) bool
}

// Func creates an [EqualityComparer] from a pair of functions.
// Passing a nil function will panic.
func Func[T any](hash func(val T) uint64, equal func(a, b T) bool) EqualityComparer[T] {
	if hash == nil || equal == nil {
		panic("nil comparer function")
	}
	return funcComparer[T]{hash: hash, equal: equal}
}

func (c funcComparer[T]) Hash(val T) uint64 {
	return c.hash(val)
}

func (c funcComparer[T]) Equal(a, b T) bool {
	return c.equal(a, b)
}

// Wrapper binds a value to an [EqualityComparer].
// The hash is calculated once, on first use.
type Wrapper[T any] struct {
	comparer EqualityComparer[T]
	val      T
	hash     uint64
	hashed   bool
}

func Wrap[T any](comparer EqualityComparer[T], val T) *Wrapper[T] {
	if comparer == nil {
		panic("nil comparer")
	}
	return &Wrapper[T]{comparer: comparer, val: val}
}

// Unwrap returns the original value.
func (w *Wrapper[T]) Unwrap() T {
	return w.val
}

func (w *Wrapper[T]) Hash() uint64 {
	if !w.hashed {
		w.hash = w.comparer.Hash(w.val)
		w.hashed = true
	}
	return w.hash
}

// Equal compares the wrapped values with this Wrapper's comparer.
// A nil other is never equal.
func (w *Wrapper[T]) Equal(other *Wrapper[T]) bool {
	if other == nil {
		return false
	}
	return w.comparer.Equal(w.val, other.val)
}
