package primcoll

import "fmt"

// --- Pair ------------------------------------------------------------------

// Pair is the element type of sequences producing two values per step.
type Pair[A, B comparable] struct {
	Left  A
	Right B
}

// P creates a pair. Type inference usually lets clients write
//
//     p := primcoll.P(1, int64(2))
//
func P[A, B comparable](x A, y B) Pair[A, B] {
	return Pair[A, B]{x, y}
}

// Matches is true if both components of p and other are equal.
func (p Pair[A, B]) Matches(other Pair[A, B]) bool {
	return p.Left == other.Left && p.Right == other.Right
}

// Decompose returns the components of p.
func (p Pair[A, B]) Decompose() (A, B) {
	return p.Left, p.Right
}

// Swap returns a pair with left and right exchanged.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{p.Right, p.Left}
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v,%v)", p.Left, p.Right)
}

// First is the left projection of a pair, suitable for mapping.
func First[A, B comparable](p Pair[A, B]) A {
	return p.Left
}

// Second is the right projection of a pair, suitable for mapping.
func Second[A, B comparable](p Pair[A, B]) B {
	return p.Right
}
