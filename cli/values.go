package cli

import "reflect"

// Values holds bound argument values keyed by parameter name.
type Values map[string]any

func (v Values) Get(name string) (any, bool) {
	val, ok := v[name]
	return val, ok
}

func (v Values) Len() int {
	return len(v)
}

// String returns the named value if it's a string.
func (v Values) String(name string) (string, bool) {
	return ValueOf[string](v, name)
}

// Int returns the named value as an int if it has any integer kind.
func (v Values) Int(name string) (int, bool) {
	val, ok := v[name]
	if !ok || val == nil {
		return 0, false
	}
	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rv.Uint()), true
	default:
		return 0, false
	}
}

// Float returns the named value as a float64 if it has a float kind.
func (v Values) Float(name string) (float64, bool) {
	val, ok := v[name]
	if !ok || val == nil {
		return 0, false
	}
	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// ValueOf returns the named value if it's exactly of type T.
func ValueOf[T any](v Values, name string) (T, bool) {
	val, ok := v[name].(T)
	return val, ok
}
