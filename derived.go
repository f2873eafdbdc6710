package flott

import "math"

// Information computes T-information I = 2^C - 1 from a T-complexity
// value expressed in bits (spec.md §4.4). Unlike Config.Unit, which
// only affects how Complexity is reported, Information is always
// derived from the bits-valued complexity: the 2^C term has no
// natural nats-based analogue in the source material, so Result.
// Information is computed before any nats conversion.
func Information(cBits float64) float64 {
	return math.Exp2(cBits) - 1
}

// complexityBits runs the level loop to exhaustion over data and
// returns the resulting T-complexity in bits, without going through
// the Instance/Handler machinery. NTID and NTCD use it to evaluate
// complexity of the two inputs and of their concatenation (joined
// directly for NTID, sentinel-joined for NTCD).
func complexityBits(data []byte, alphabet Alphabet) float64 {
	symbols := symbolize(data, alphabet)
	if len(symbols) == 0 {
		return 0
	}
	tg := buildTokenGraph(symbols, alphabet.size())
	nextSymbol := int64(alphabet.size())
	sum := kahanSum{}
	for tg.len() > 1 {
		cp, ok := tg.bestCopyPattern()
		if !ok {
			break
		}
		tg.splice(cp, nextSymbol)
		nextSymbol++
		sum.add(log2Fast(uint(cp.kappa + 1)))
	}
	return sum.value()
}

// concatWithSentinel joins a and b with a single sentinel byte between
// them, per spec.md §10's resolution that NTCD always implies
// sentinel-separated concatenation (matching main.c's -D flag): the
// sentinel keeps cab from collapsing a and b into one run purely
// because they happen to align at the boundary, as long as neither
// contains a 0x00 byte (the sentinel is the ordinary byte 0x00).
func concatWithSentinel(a, b []byte) []byte {
	out := make([]byte, 0, len(a)+len(b)+1)
	out = append(out, a...)
	out = append(out, sentinelByte)
	out = append(out, b...)
	return out
}

func clamp01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}

// NTID is the normalised T-information distance between a and b
// (spec.md §4.4). Per the empty-input contract, NTID of any pair
// involving an empty sequence is 1.0. The result is clamped to [0,1]
// and is not symmetric in general: NTID(a,b) and NTID(b,a) can differ,
// since the joint complexity of the concatenation depends on which
// sequence comes first. Use SymmetricNTID for a symmetric variant.
//
// Unlike NTCD, NTID joins a and b directly with no sentinel: an
// information-distance metric wants genuine cross-sequence repeats
// (a itself reoccurring inside a·b) to register, which a sentinel
// would suppress by shifting every cross-boundary back-reference off
// by one position.
func NTID(a, b []byte) float64 {
	return ntid(a, b, SymbolByte)
}

func ntid(a, b []byte, alphabet Alphabet) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 1.0
	}
	joined := make([]byte, 0, len(a)+len(b))
	joined = append(joined, a...)
	joined = append(joined, b...)

	ia := Information(complexityBits(a, alphabet))
	ib := Information(complexityBits(b, alphabet))
	iab := Information(complexityBits(joined, alphabet))
	lo, hi := ia, ib
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi == 0 {
		return 1.0
	}
	return clamp01((iab - lo) / hi)
}

// NTCD is the normalised T-complexity distance between a and b,
// defined analogously to NTID but over raw T-complexity rather than
// T-information (spec.md §4.4). Same empty-input and clamping
// contract as NTID.
func NTCD(a, b []byte) float64 {
	return ntcd(a, b, SymbolByte)
}

func ntcd(a, b []byte, alphabet Alphabet) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 1.0
	}
	ca := complexityBits(a, alphabet)
	cb := complexityBits(b, alphabet)
	cab := complexityBits(concatWithSentinel(a, b), alphabet)
	lo, hi := ca, cb
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi == 0 {
		return 1.0
	}
	return clamp01((cab - lo) / hi)
}

// SymmetricNTID averages NTID(a,b) and NTID(b,a). NTID itself is
// order-sensitive (see NTID); this is the symmetric distance a caller
// comparing unordered pairs usually wants.
func SymmetricNTID(a, b []byte) float64 {
	return (NTID(a, b) + NTID(b, a)) / 2
}

// SymmetricNTCD averages NTCD(a,b) and NTCD(b,a).
func SymmetricNTCD(a, b []byte) float64 {
	return (NTCD(a, b) + NTCD(b, a)) / 2
}

// AverageEntropyRate computes the average T-entropy rate at level k per
// spec.md §4.3: I_k / (remaining_list_length_k + (joined_cp_length −
// cp_length) + 1). complexityBitsAtK is the running T-complexity after
// level k (converted to T-information internally, same as
// InstantaneousEntropyRate); remainingListLength is the token list
// length after level k's splice; joinedCPLength and cpLength are that
// level's StepEvent.JoinedCPLength and StepEvent.CPLength.
func AverageEntropyRate(complexityBitsAtK float64, remainingListLength, joinedCPLength, cpLength int) float64 {
	denom := remainingListLength + (joinedCPLength - cpLength) + 1
	if denom <= 0 {
		return 0
	}
	return Information(complexityBitsAtK) / float64(denom)
}

// InstantaneousEntropyRate computes the per-level T-entropy rate from
// two consecutive step events' complexity values and the later
// event's JoinedCPLength, per spec.md §4.3: (I_k - I_{k-1}) /
// joined_cp_length, expressed here in terms of complexity deltas
// converted through Information rather than raw complexity, since
// T-entropy is an information-rate quantity.
func InstantaneousEntropyRate(prevComplexityBits, curComplexityBits float64, joinedCPLength int) float64 {
	if joinedCPLength <= 0 {
		return 0
	}
	return (Information(curComplexityBits) - Information(prevComplexityBits)) / float64(joinedCPLength)
}
