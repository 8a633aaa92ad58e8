package ds

import (
	"golang.org/x/exp/constraints"
)

func IsPowerOfTwo[T constraints.Unsigned](n T) bool {
	return n != 0 && n&(n-1) == 0
}
