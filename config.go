package flott

// Alphabet selects the symbol mode the engine packs input bytes into
// (spec.md §3 "Symbol").
type Alphabet int

const (
	// SymbolByte is the default alphabet: one symbol per input byte,
	// A = 256.
	SymbolByte Alphabet = iota
	// SymbolBit packs eight bits per input byte, MSB-first, A = 2.
	SymbolBit
)

// size returns the alphabet cardinality A.
func (a Alphabet) size() int {
	if a == SymbolBit {
		return 2
	}
	return 256
}

func (a Alphabet) String() string {
	if a == SymbolBit {
		return "bit"
	}
	return "byte"
}

// Unit selects the information unit T-complexity is reported in
// (spec.md §4.3 "Numerical semantics"). The accumulator itself always
// sums in bits; the unit is applied when complexity is reported.
type Unit int

const (
	// UnitBits reports in bits (log base 2); the
	// default, matching libflott's own default (main.c sets
	// FLOTT_OUT_UNITS_BITS unconditionally).
	UnitBits Unit = iota
	// UnitNats reports in nats (bits scaled by ln 2).
	UnitNats
)

// ln2 converts a bits-valued quantity to nats: nats = bits * ln(2).
const ln2 = 0.6931471805599453

// Config declares the engine's behaviour for one run. A Config is copied
// into the Instance at construction time and is immutable thereafter —
// spec.md §3 Lifecycle: "configuration is frozen" before the level loop
// runs.
type Config struct {
	// Alphabet selects byte or bit symbol packing.
	Alphabet Alphabet
	// Unit selects bits or nats for reported complexity.
	Unit Unit
	// Concatenate joins all input sources into a single sequence
	// before transforming (spec.md §3 "Input set"; CLI -j).
	Concatenate bool
	// AppendSentinel appends the sentinel byte 0x00 after each source
	// (spec.md §3 "Input set"; CLI -z, implied by -D/NTCD). It is an
	// ordinary byte symbol, so it prevents cross-input matches only for
	// inputs that contain no 0x00 bytes; see sentinelByte.
	AppendSentinel bool
	// MaxLevels caps the number of levels the loop will run, 0 means
	// unbounded (still bounded above by n-1 per spec.md §8). A safety
	// valve for callers processing untrusted inputs.
	MaxLevels int
}

// DefaultConfig returns the engine's default configuration: byte
// alphabet, bits unit, no concatenation, no sentinel, unbounded levels.
func DefaultConfig() Config {
	return Config{
		Alphabet: SymbolByte,
		Unit:     UnitBits,
	}
}

// InputSource is a single materialisable input to the engine (spec.md
// §3 "Input set"). Construct with BytesSource or FileSource.
type InputSource struct {
	bytes []byte // borrowed; caller must outlive the Instance
	path  string // set when this source comes from a file
}

// BytesSource wraps a borrowed byte buffer as an input source. The
// caller must keep data alive for the Instance's lifetime (spec.md §5
// "Shared resources": pass-through buffers are borrowed, not owned).
func BytesSource(data []byte) InputSource {
	return InputSource{bytes: data}
}

// StringSource wraps a string as an input source.
func StringSource(s string) InputSource {
	return InputSource{bytes: []byte(s)}
}

// FileSource names a filesystem path to be materialised into an
// engine-owned buffer when Run is called (spec.md §3 "Input set":
// "each source is either a byte buffer or a filesystem path"). File
// reading itself is the external frontend's concern per spec.md §1,
// but the tagged-union input model that distinguishes owned-file vs.
// borrowed-buffer sources belongs to the engine, since the ownership
// rules in spec.md §5 depend on it.
func FileSource(path string) InputSource {
	return InputSource{path: path}
}

func (s InputSource) isFile() bool { return s.path != "" }
