package flott

import (
	"context"
	"os"
)

// Instance is one configured run of the T-transform engine. Create one
// with New, add input sources with AddSource, then call Run exactly
// once. An Instance is not safe for concurrent use (spec.md §5: the
// engine is single-threaded per run).
type Instance struct {
	cfg     Config
	sources []InputSource
	handler Handler
	frozen  bool
	cancel  cancelFlag
}

// New validates cfg and returns a fresh Instance. It never touches the
// filesystem; file sources are materialised lazily by Run.
func New(cfg Config) (*Instance, error) {
	if cfg.Alphabet != SymbolByte && cfg.Alphabet != SymbolBit {
		return nil, newStatus(CodeInvalidOption, "Alphabet", "unknown alphabet")
	}
	if cfg.Unit != UnitBits && cfg.Unit != UnitNats {
		return nil, newStatus(CodeInvalidOption, "Unit", "unknown unit")
	}
	if cfg.MaxLevels < 0 {
		return nil, newStatus(CodeInvalidOption, "MaxLevels", "must be >= 0")
	}
	return &Instance{cfg: cfg}, nil
}

// SetHandler attaches a Handler that will receive lifecycle and
// per-level events during Run. Calling it again replaces the previous
// handler. Must be called before Run.
func (inst *Instance) SetHandler(h Handler) error {
	if inst.frozen {
		return ErrFrozen
	}
	inst.handler = h
	return nil
}

// AddSource registers one more input to be concatenated or processed
// per Config.Concatenate (spec.md §3 "Input set"). Must be called
// before Run.
func (inst *Instance) AddSource(src InputSource) error {
	if inst.frozen {
		return ErrFrozen
	}
	inst.sources = append(inst.sources, src)
	return nil
}

// Cancel requests cooperative termination of an in-progress Run. It is
// only meaningful when called from within a Handler callback on the
// same goroutine that invoked Run (spec.md §5).
func (inst *Instance) Cancel() {
	inst.cancel.Cancel()
}

// Result holds the scalar outputs of a completed Run (spec.md §3
// "Result").
type Result struct {
	// FinalTokenCount is the token list length when the loop stopped.
	FinalTokenCount int
	// Levels is the number of levels the loop performed.
	Levels int
	// Complexity is the total T-complexity C, in Config.Unit.
	Complexity float64
	// Information is T-information I = 2^C - 1, always computed from
	// the bits-valued complexity regardless of Config.Unit (see
	// Information).
	Information float64
	// AverageEntropyRate is the average T-entropy rate at the final
	// completed level (spec.md §4.3; see AverageEntropyRate), zero for
	// an input with no levels (empty or already-minimal token lists).
	AverageEntropyRate float64
	// Cancelled reports whether the run stopped via Instance.Cancel or
	// cancellation of Run's context rather than running to exhaustion.
	Cancelled bool

	sequence []int64 // retained for NTID/NTCD composition; not exported
}

// materialize turns the configured sources into one flat symbol
// sequence, applying Config.Concatenate and Config.AppendSentinel
// (spec.md §3 "the engine materialises all sources into a single
// linear byte stream"). File sources are read here, not in New:
// spec.md §1 excludes "smart" file/stdin readers (buffering flags,
// stdin detection) as external-frontend concerns, but the engine
// itself still owns turning a named path into bytes once a run starts.
func (inst *Instance) materialize() ([]byte, error) {
	var buf []byte
	for _, src := range inst.sources {
		data := src.bytes
		if src.isFile() {
			b, err := os.ReadFile(src.path)
			if err != nil {
				return nil, newStatus(CodeInputNotFound, src.path, err.Error())
			}
			data = b
		}
		buf = append(buf, data...)
		if inst.cfg.AppendSentinel {
			buf = append(buf, sentinelByte)
		}
		if !inst.cfg.Concatenate {
			break
		}
	}
	return buf, nil
}

// sentinelByte is the byte appended between sources when AppendSentinel
// is set, and by NTCD's concatenation (spec.md §10 NTCD sentinel
// coupling). Under SymbolByte it becomes symbol 0, the same symbol as
// any 0x00 byte in the input, so it keeps copy patterns from crossing a
// source boundary only when the sources contain no 0x00 bytes.
// AppendSentinel with SymbolBit is rejected in Run.
const sentinelByte = 0x00

// symbolize converts raw bytes into the engine's internal symbol
// alphabet. Byte mode is the identity mapping into [0,256); bit mode
// unpacks each byte into eight MSB-first bits, each in [0,2).
func symbolize(data []byte, alphabet Alphabet) []int64 {
	if alphabet == SymbolByte {
		out := make([]int64, len(data))
		for i, b := range data {
			out[i] = int64(b)
		}
		return out
	}
	out := make([]int64, 0, len(data)*8)
	for _, b := range data {
		for bit := 7; bit >= 0; bit-- {
			out = append(out, int64((b>>uint(bit))&1))
		}
	}
	return out
}

// Run executes the level loop to exhaustion (or cancellation) and
// returns the resulting scalar metrics. Run may be called only once
// per Instance; subsequent calls return ErrFrozen.
func (inst *Instance) Run(ctx context.Context) (Result, error) {
	if inst.frozen {
		return Result{}, ErrFrozen
	}
	inst.frozen = true
	if len(inst.sources) == 0 {
		return Result{}, ErrNoInputSources
	}
	if inst.cfg.AppendSentinel && inst.cfg.Alphabet == SymbolBit {
		return Result{}, newStatus(CodeInvalidOption, "AppendSentinel", "sentinel byte has no representation in bit alphabet")
	}

	raw, err := inst.materialize()
	if err != nil {
		return Result{}, err
	}
	symbols := symbolize(raw, inst.cfg.Alphabet)

	if inst.handler != nil {
		inst.handler.Init(len(symbols))
		defer inst.handler.Destroy()
	}

	result, err := inst.transform(ctx, symbols)
	return result, err
}

// transform runs the level loop over symbols, per spec.md §4.3.
func (inst *Instance) transform(ctx context.Context, symbols []int64) (Result, error) {
	totalLen := len(symbols)
	if totalLen == 0 {
		return Result{sequence: symbols}, nil
	}

	alphabetSize := inst.cfg.Alphabet.size()
	tg := buildTokenGraph(symbols, alphabetSize)

	nextSymbol := int64(alphabetSize)
	complexity := kahanSum{}
	levels := 0
	cancelled := false
	avgEntropyRate := 0.0

levelLoop:
	for {
		if err := ctx.Err(); err != nil {
			cancelled = true
			break
		}
		if inst.cancel.cancelled() {
			cancelled = true
			break
		}
		if inst.cfg.MaxLevels > 0 && levels >= inst.cfg.MaxLevels {
			break
		}
		if tg.len() <= 1 {
			break
		}

		cp, ok := tg.bestCopyPattern()
		if !ok {
			break levelLoop
		}

		cpStart := 0
		for pos := tg.head; pos != cp.matchStart; pos = tg.nodes[pos].next {
			cpStart++
		}

		tg.splice(cp, nextSymbol)
		nextSymbol++
		levels++

		bits := log2Fast(uint(cp.kappa + 1))
		complexity.add(bits)
		joinedCPLength := cp.kappa * cp.period
		avgEntropyRate = AverageEntropyRate(complexity.value(), tg.len(), joinedCPLength, cp.period)

		if inst.handler != nil {
			inst.handler.Step(StepEvent{
				Level:           levels,
				CPStart:         cpStart,
				CPLength:        cp.period,
				Kappa:           cp.kappa,
				JoinedCPLength:  joinedCPLength,
				Complexity:      inst.toUnit(complexity.value()),
				RemainingTokens: tg.len(),
			})
			inst.handler.Progress(ProgressEvent{
				TokensProcessed: totalLen - tg.len(),
				TokensTotal:     totalLen,
			})
		}
	}

	cBits := complexity.value()
	c := inst.toUnit(cBits)
	result := Result{
		FinalTokenCount:    tg.len(),
		Levels:             levels,
		Complexity:         c,
		Information:        Information(cBits),
		AverageEntropyRate: avgEntropyRate,
		Cancelled:          cancelled,
		sequence:           symbols,
	}
	return result, nil
}

// toUnit converts a bits-valued quantity to Config.Unit.
func (inst *Instance) toUnit(bits float64) float64 {
	if inst.cfg.Unit == UnitNats {
		return bits * ln2
	}
	return bits
}
