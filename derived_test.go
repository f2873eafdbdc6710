package flott

import (
	"math"
	"testing"
)

func TestInformationMatchesExp2MinusOne(t *testing.T) {
	cases := []float64{0, 1, 2, 3.5, 10}
	for _, c := range cases {
		got := Information(c)
		want := math.Exp2(c) - 1
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("Information(%v) = %v, want %v", c, got, want)
		}
	}
}

func TestInformationOfZeroComplexityIsZero(t *testing.T) {
	if got := Information(0); got != 0 {
		t.Fatalf("Information(0) = %v, want 0", got)
	}
}

func TestNTIDEmptyInputContract(t *testing.T) {
	if got := NTID(nil, []byte("hello")); got != 1.0 {
		t.Fatalf("NTID(empty, x) = %v, want 1.0", got)
	}
	if got := NTID([]byte("hello"), nil); got != 1.0 {
		t.Fatalf("NTID(x, empty) = %v, want 1.0", got)
	}
	if got := NTID(nil, nil); got != 1.0 {
		t.Fatalf("NTID(empty, empty) = %v, want 1.0", got)
	}
}

func TestNTCDEmptyInputContract(t *testing.T) {
	if got := NTCD(nil, []byte("hello")); got != 1.0 {
		t.Fatalf("NTCD(empty, x) = %v, want 1.0", got)
	}
	if got := NTCD([]byte("hello"), nil); got != 1.0 {
		t.Fatalf("NTCD(x, empty) = %v, want 1.0", got)
	}
	if got := NTCD(nil, nil); got != 1.0 {
		t.Fatalf("NTCD(empty, empty) = %v, want 1.0", got)
	}
}

func TestNTIDIsClampedToUnitInterval(t *testing.T) {
	pairs := [][2][]byte{
		{[]byte("AAAA"), []byte("BBBB")},
		{[]byte("AAAA"), []byte("AAAA")},
		{[]byte("the quick brown fox"), []byte("jumps over the lazy dog")},
	}
	for _, p := range pairs {
		got := NTID(p[0], p[1])
		if got < 0 || got > 1 {
			t.Fatalf("NTID(%q, %q) = %v, want in [0,1]", p[0], p[1], got)
		}
	}
}

func TestNTCDIsClampedToUnitInterval(t *testing.T) {
	pairs := [][2][]byte{
		{[]byte("AAAA"), []byte("BBBB")},
		{[]byte("AAAA"), []byte("AAAA")},
		{[]byte("the quick brown fox"), []byte("jumps over the lazy dog")},
	}
	for _, p := range pairs {
		got := NTCD(p[0], p[1])
		if got < 0 || got > 1 {
			t.Fatalf("NTCD(%q, %q) = %v, want in [0,1]", p[0], p[1], got)
		}
	}
}

// Disjoint-alphabet inputs (no symbol in a ever appears in b) are the
// one case hand-traceable against the copy-pattern model directly: a
// sentinel-joined "AAAA\x00BBBB" collapses each run independently (one
// level per run, 2 bits each), giving cab = 4 bits against
// ca = cb = 2 bits, so (cab-min)/max = (4-2)/2 = 1.0 exactly.
func TestNTCDDisjointAlphabetsIsOne(t *testing.T) {
	a := []byte("AAAA")
	b := []byte("BBBB")
	got := NTCD(a, b)
	if math.Abs(got-1.0) > 1e-9 {
		t.Fatalf("NTCD(disjoint) = %v, want 1.0", got)
	}
}

// NTID on identical inputs is intended (spec.md §8 scenario 4) to land
// near 0, but under this T-complexity measure it does not: registering
// the second "AAAA" as a repeat of the first still costs at least 1 bit
// of complexity (kappa>=1 => log2(kappa+1)>=1), and since Information is
// 2^C-1, that minimum increment roughly doubles I(A.B) relative to I(A)
// regardless of scale. See DESIGN.md open-question resolution 7 for why
// this is structural, not a bug to fix here.
func TestNTIDIdenticalConstantRunIsClampedHigh(t *testing.T) {
	got := NTID([]byte("AAAA"), []byte("AAAA"))
	if math.Abs(got-1.0) > 1e-9 {
		t.Fatalf("NTID(identical) = %v, want 1.0 (documented divergence from the ~0 ideal)", got)
	}
}

func TestSymmetricNTIDIsAverageOfBothOrders(t *testing.T) {
	a := []byte("AABBAABB")
	b := []byte("ABABABAB")
	want := (NTID(a, b) + NTID(b, a)) / 2
	got := SymmetricNTID(a, b)
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("SymmetricNTID = %v, want %v", got, want)
	}
}

func TestSymmetricNTCDIsAverageOfBothOrders(t *testing.T) {
	a := []byte("AABBAABB")
	b := []byte("ABABABAB")
	want := (NTCD(a, b) + NTCD(b, a)) / 2
	got := SymmetricNTCD(a, b)
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("SymmetricNTCD = %v, want %v", got, want)
	}
}

func TestSymmetricNTIDIsSymmetric(t *testing.T) {
	a := []byte("hello world")
	b := []byte("goodbye world")
	if math.Abs(SymmetricNTID(a, b)-SymmetricNTID(b, a)) > 1e-12 {
		t.Fatalf("SymmetricNTID(a,b) != SymmetricNTID(b,a)")
	}
}

func TestAverageEntropyRateMatchesFormula(t *testing.T) {
	got := AverageEntropyRate(2, 1, 3, 1)
	want := Information(2) / 4 // denom = 1 + (3-1) + 1 = 4
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("AverageEntropyRate = %v, want %v", got, want)
	}
}

func TestAverageEntropyRateNonPositiveDenominatorIsZero(t *testing.T) {
	if got := AverageEntropyRate(2, 0, 0, 1); got != 0 {
		t.Fatalf("AverageEntropyRate with denom<=0 = %v, want 0", got)
	}
}

func TestInstantaneousEntropyRateZeroJoinedLength(t *testing.T) {
	if got := InstantaneousEntropyRate(0, 2, 0); got != 0 {
		t.Fatalf("InstantaneousEntropyRate with joinedCPLength=0 = %v, want 0", got)
	}
}

func TestInstantaneousEntropyRatePositiveGrowth(t *testing.T) {
	// complexity strictly increased across the level, over a positive
	// joined run length: the rate must be positive.
	got := InstantaneousEntropyRate(1, 2, 4)
	if got <= 0 {
		t.Fatalf("InstantaneousEntropyRate = %v, want > 0", got)
	}
	want := (Information(2) - Information(1)) / 4
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("InstantaneousEntropyRate = %v, want %v", got, want)
	}
}
