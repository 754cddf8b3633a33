package bits

import (
	"sync"

	"github.com/mewkiz/pkg/dbg"
)

// fibBasis holds, per supported stream width, the Fibonacci basis
// F[2]=1, F[3]=2, F[4]=3, F[5]=5, ... capped at the largest term not
// exceeding 2^W-1. Built lazily once per width and thereafter immutable,
// the one piece of shared global state this library owns (code registries
// are per-instance values).
var (
	fibOnce  [3]sync.Once
	fibTable [3][]uint64
)

func widthSlot(w int) int {
	switch w {
	case 16:
		return 0
	case 64:
		return 2
	default:
		return 1 // 32, and any other width defaults to the middle slot
	}
}

// FibonacciBasis returns the memoized Zeckendorf basis for width w,
// building it on first use.
func FibonacciBasis(w int) []uint64 {
	slot := widthSlot(w)
	fibOnce[slot].Do(func() {
		fibTable[slot] = buildFibBasis(w)
		dbg.Println("built Fibonacci basis for width", w, ":", fibTable[slot])
	})
	return fibTable[slot]
}

func buildFibBasis(w int) []uint64 {
	var max uint64
	var capped bool
	if w >= 64 {
		// 2^64-1 doesn't fit in the max computation below; cap by
		// overflow instead of by comparison against an unrepresentable
		// bound.
		max = ^uint64(0)
		capped = false
	} else {
		max = (uint64(1) << uint(w)) - 1
		capped = true
	}
	basis := []uint64{1, 2} // F[2], F[3]
	for {
		last, prev := basis[len(basis)-1], basis[len(basis)-2]
		next := last + prev
		if next < last || (capped && next > max) {
			return basis
		}
		basis = append(basis, next)
	}
}

// ZeckendorfDecompose returns, for n >= 1, a slice of booleans indexed like
// basis (index i corresponds to F[i+2]) indicating which basis terms sum to
// n. The result's length is hi+1, where hi is the highest basis index used.
func ZeckendorfDecompose(n uint64, basis []uint64) []bool {
	hi := -1
	for i, f := range basis {
		if f <= n {
			hi = i
		} else {
			break
		}
	}
	coeffs := make([]bool, hi+1)
	remaining := n
	for i := hi; i >= 0; i-- {
		if basis[i] <= remaining {
			coeffs[i] = true
			remaining -= basis[i]
		}
	}
	return coeffs
}
