package flott

// StepEvent is a non-owning view of one completed level, handed to
// Handler.Step. Fields are valid only for the duration of the call;
// implementations that need to retain data must copy it (spec.md §4.5
// "Event emission").
type StepEvent struct {
	// Level is the 1-based level index that just completed.
	Level int
	// CPStart is the index, in the token list as it existed before this
	// level's splice, of the copy pattern's original (template)
	// occurrence.
	CPStart int
	// CPLength is the copy pattern's own length (period).
	CPLength int
	// Kappa is the copy factor: the number of additional repeats of the
	// pattern found beyond the template occurrence.
	Kappa int
	// JoinedCPLength is Kappa * CPLength: the length of the copies
	// portion alone, used as the denominator of the instantaneous
	// T-entropy rate (spec.md §4.3).
	JoinedCPLength int
	// Complexity is the running T-complexity total after this level,
	// in the Instance's configured Unit.
	Complexity float64
	// RemainingTokens is the token list length after this level's
	// splice.
	RemainingTokens int
}

// ProgressEvent reports coarse-grained progress through a Run, handed
// to Handler.Progress. Intended for long-running inputs where a caller
// wants to render a progress bar without instrumenting every level.
type ProgressEvent struct {
	// TokensProcessed is the number of tokens consumed by completed
	// levels so far (the original list length minus the current one).
	TokensProcessed int
	// TokensTotal is the token list length at the start of Run.
	TokensTotal int
}

// Handler is the capability interface an Instance drives during Run.
// Each method is optional in spirit: embed HandlerFuncs (or any partial
// implementation) and only the needed hooks, matching the capability-
// interface style of zetxqx-llm-d-kv-cache-manager's KVBlockScorer,
// where callers implement only the scoring method they need and the
// rest fall back to a no-op default.
type Handler interface {
	// Init is called once, before the first level, with the initial
	// token count.
	Init(tokenCount int)
	// Step is called once per completed level.
	Step(StepEvent)
	// Progress is called periodically during long runs; an Instance may
	// call it zero or more times between Init and Destroy.
	Progress(ProgressEvent)
	// Destroy is called exactly once, after the loop ends (whether by
	// exhaustion, cancellation, or error), to release handler-owned
	// resources.
	Destroy()
}

// HandlerFuncs adapts plain functions to Handler; nil fields are
// treated as no-ops. This mirrors axiomhq-fsst's preference for small
// concrete adapters over requiring every caller to implement a full
// interface by hand.
type HandlerFuncs struct {
	InitFunc     func(tokenCount int)
	StepFunc     func(StepEvent)
	ProgressFunc func(ProgressEvent)
	DestroyFunc  func()
}

func (h HandlerFuncs) Init(tokenCount int) {
	if h.InitFunc != nil {
		h.InitFunc(tokenCount)
	}
}

func (h HandlerFuncs) Step(e StepEvent) {
	if h.StepFunc != nil {
		h.StepFunc(e)
	}
}

func (h HandlerFuncs) Progress(e ProgressEvent) {
	if h.ProgressFunc != nil {
		h.ProgressFunc(e)
	}
}

func (h HandlerFuncs) Destroy() {
	if h.DestroyFunc != nil {
		h.DestroyFunc()
	}
}

// cancelFlag is the single mutable flag used for cooperative
// cancellation (spec.md §5: "a single mutable flag, no concurrency").
// It is not synchronised: the engine is single-threaded per run, and
// the flag is only ever set from within a Handler callback invoked on
// that same goroutine.
type cancelFlag struct {
	set bool
}

func (c *cancelFlag) Cancel()         { c.set = true }
func (c *cancelFlag) cancelled() bool { return c.set }
