package convert

import (
	"errors"
	"fmt"
	"golang.org/x/exp/constraints"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var (
	ErrArgumentType    = errors.New("invalid conversion target")
	ErrUnsupportedType = errors.New("unsupported conversion type")
	ErrConvert         = errors.New("failed to convert value")

	durationType = reflect.TypeOf(time.Duration(0))
)

// Scalar is the set of types that a string may be converted to.
type Scalar interface {
	~bool | ~string | constraints.Integer | constraints.Float
}

// To converts s to a value of type t.
// The returned value will have exactly the type t, even if t is a named type like [time.Duration].
//
// Supported kinds are bool, all int and uint kinds, float32, float64, and string.
// A [time.Duration] is parsed with [time.ParseDuration] instead of as an integer.
func To(t reflect.Type, s string) (any, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil type", ErrArgumentType)
	}
	if t == durationType {
		d, err := time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("%w: '%s' as %s: %w", ErrConvert, s, t, err)
		}
		return d, nil
	}
	var val any
	switch t.Kind() {
	case reflect.Bool:
		b, err := Bool(s)
		if err != nil {
			return nil, err
		}
		val = b
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 10, t.Bits())
		if err != nil {
			return nil, fmt.Errorf("%w: '%s' as %s: %w", ErrConvert, s, t, err)
		}
		val = i
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u, err := strconv.ParseUint(s, 10, t.Bits())
		if err != nil {
			return nil, fmt.Errorf("%w: '%s' as %s: %w", ErrConvert, s, t, err)
		}
		val = u
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, t.Bits())
		if err != nil {
			return nil, fmt.Errorf("%w: '%s' as %s: %w", ErrConvert, s, t, err)
		}
		val = f
	case reflect.String:
		val = s
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}
	return reflect.ValueOf(val).Convert(t).Interface(), nil
}

// As is the generic form of [To].
func As[T Scalar](s string) (T, error) {
	var zero T
	val, err := To(reflect.TypeOf(zero), s)
	if err != nil {
		return zero, err
	}
	return val.(T), nil
}

// Bool accepts "true" or "1" as true, and "false" or "0" as false.
// Comparison is case-insensitive, and anything else is an error.
func Bool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("%w: '%s' is not a boolean", ErrConvert, s)
}

func Int[T constraints.Signed](s string) (T, error) {
	var zero T
	i, err := strconv.ParseInt(s, 10, reflect.TypeOf(zero).Bits())
	if err != nil {
		return zero, fmt.Errorf("%w: '%s' as %T: %w", ErrConvert, s, zero, err)
	}
	return T(i), nil
}

func Uint[T constraints.Unsigned](s string) (T, error) {
	var zero T
	u, err := strconv.ParseUint(s, 10, reflect.TypeOf(zero).Bits())
	if err != nil {
		return zero, fmt.Errorf("%w: '%s' as %T: %w", ErrConvert, s, zero, err)
	}
	return T(u), nil
}

func Float[T constraints.Float](s string) (T, error) {
	var zero T
	f, err := strconv.ParseFloat(s, reflect.TypeOf(zero).Bits())
	if err != nil {
		return zero, fmt.Errorf("%w: '%s' as %T: %w", ErrConvert, s, zero, err)
	}
	return T(f), nil
}
