package cli

// MustGet is used with a getter to panic if it returns an error.
// The developer usually knows whether a get call will fail, so this function makes it easier to avoid global flag state.
func MustGet[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
