package flott

import "math"

// log2FastTableSize is the number of precomputed log2 values, matching
// spec.md §4.1's "first 512 values" and the teacher's own hard-coded
// LOG2_LUT generator (found in original_source/main.c's MAKE_LOG_LUT
// branch, which emits exactly 512 entries).
const log2FastTableSize = 512

// log2Table is process-wide, read-only state, built once at package
// initialisation time — the Go analogue of the teacher's once-built
// lookup arrays (axiomhq-fsst/table.go's newTable populates byteCodes/
// shortCodes/hashTab once and treats them as immutable thereafter).
// log2Table[0] is +Inf per spec.md §4.1 ("log2(0) is defined as +Inf
// but is never consumed in practice"); it is never read by the core
// loop since copy-pattern lengths and copy factors are always >= 1.
var log2Table = buildLog2Table()

func buildLog2Table() [log2FastTableSize]float64 {
	var t [log2FastTableSize]float64
	t[0] = math.Inf(1)
	for i := 1; i < log2FastTableSize; i++ {
		t[i] = math.Log2(float64(i))
	}
	return t
}

// log2Fast returns log2(n) using the precomputed table for n < 512 and
// the platform log2 otherwise (spec.md §4.1).
func log2Fast(n uint) float64 {
	if n < log2FastTableSize {
		return log2Table[n]
	}
	return math.Log2(float64(n))
}

// kahanSum is a compensated running sum (classic Kahan summation) used to accumulate the many log2(kappa+1) contributions to
// T-complexity without the low-order-bit drift spec.md §4.1 warns
// about ("without compensation, the accumulation of ~N log-terms
// exhibits drift that corrupts the low-order bits of C on large
// inputs").
type kahanSum struct {
	sum         float64
	compensation float64
}

// add folds x into the running sum.
func (k *kahanSum) add(x float64) {
	y := x - k.compensation
	t := k.sum + y
	k.compensation = (t - k.sum) - y
	k.sum = t
}

// value returns the current compensated sum.
func (k *kahanSum) value() float64 { return k.sum }
