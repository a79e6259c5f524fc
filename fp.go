package primcoll

// Const returns a function that produces a.
func Const[T any](a T) func() T {
	return func() T {
		return a
	}
}
