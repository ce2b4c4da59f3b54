package angstrom // import "github.com/kayceesrk/angstrom"

import "strings"

// More reports whether a parse may still receive input.
type More int

const (
	// Incomplete means more input may arrive; a parser that runs out of
	// bytes suspends instead of failing.
	Incomplete More = iota
	// Complete means no more input will ever arrive.
	Complete
)

func (m More) String() string {
	switch m {
	case Incomplete:
		return "incomplete"
	case Complete:
		return "complete"
	}
	return "invalid"
}

// Unit is the value of parsers run only for their effect on the input.
type Unit struct{}

// Parser is a parser yielding a value of type A. Parsers are written in
// continuation-passing style: a parser receives the current input view, an
// absolute position, the more-flag, and the two continuations, and invokes
// exactly one of them -- or returns a suspension that eventually does.
//
// A Parser is a plain value and may be run any number of times; one parse in
// progress, however, is single-threaded.
type Parser[A any] func(in *input, pos int, more More, fk failK, sk succK[A]) state

// failK is invoked on failure with the breadcrumb marks (outermost first)
// and the primitive message.
type failK func(in *input, pos int, more More, marks []string, msg string) state

// succK is invoked on success with the position advanced past the consumed
// prefix.
type succK[A any] func(in *input, pos int, more More, v A) state

type stateKind uint8

const (
	statePartial stateKind = iota
	stateDone
	stateFail
)

// state is the untyped terminal result threaded through the engine. The
// final value is carried as any; the typed State wrapper recovers it at the
// driver boundary. Go has no rank-2 polymorphism to quantify the engine over
// the answer type, so the answer type is erased here instead.
type state struct {
	kind     stateKind
	consumed int
	value    any
	marks    []string
	msg      string
	resume   func(chunk []byte, more More) state
}

func topFail(in *input, pos int, _ More, marks []string, msg string) state {
	return state{kind: stateFail, consumed: pos - in.initialCommitted, marks: marks, msg: msg}
}

func topSucc[A any](in *input, pos int, _ More, v A) state {
	return state{kind: stateDone, consumed: pos - in.initialCommitted, value: v}
}

// prompt suspends the parse until the driver supplies more bytes. The
// suspension must not capture the input view itself -- views are per-chunk
// objects -- so the committed mark and the uncommitted byte count are taken
// now and a fresh view is rebuilt around the next chunk. The next chunk is
// the old uncommitted tail plus whatever arrived, anchored at the committed
// mark; a chunk shorter than the tail means the driver lost bytes, which is
// unrecoverable.
func prompt(in *input, pos int, fk, sk func(*input, int, More) state) state {
	committed := in.committed
	uncommitted := in.uncommitted()
	resume := func(chunk []byte, more More) state {
		if len(chunk) < uncommitted {
			panic("angstrom: prompt: input shrunk")
		}
		next := newInput(committed, chunk)
		if len(chunk) == uncommitted {
			if more == Complete {
				return fk(next, pos, more)
			}
			return prompt(next, pos, fk, sk)
		}
		return sk(next, pos, more)
	}
	return state{kind: statePartial, consumed: in.parserConsumed(), resume: resume}
}

// demandInput suspends once for more input, failing if the input is already
// complete.
func demandInput(in *input, pos int, more More, fk failK, sk func(*input, int, More) state) state {
	if more == Complete {
		return fk(in, pos, more, nil, "not enough input")
	}
	pfk := func(in *input, pos int, more More) state {
		return fk(in, pos, more, nil, "not enough input")
	}
	return prompt(in, pos, pfk, sk)
}

// ensure runs sk once n bytes are available starting at pos, suspending as
// many times as it takes. Primitives built on it may then read the region
// unchecked.
func ensure(n int, in *input, pos int, more More, fk failK, sk func(*input, int, More) state) state {
	if pos+n <= in.length() {
		return sk(in, pos, more)
	}
	return ensureSuspended(n, in, pos, more, fk, sk)
}

func ensureSuspended(n int, in *input, pos int, more More, fk failK, sk func(*input, int, More) state) state {
	retry := func(in *input, pos int, more More) state {
		if pos+n <= in.length() {
			return sk(in, pos, more)
		}
		return ensureSuspended(n, in, pos, more, fk, sk)
	}
	return demandInput(in, pos, more, fk, retry)
}

// countWhileRun scans forward from pos+init without advancing the position,
// resuming the scan across chunk boundaries. Callers follow up with an
// advance or a substring; keeping the scan separate from consumption is what
// lets TakeWhile, TakeWhile1, SkipWhile, and TakeTill share it.
func countWhileRun(init int, pred func(byte) bool, in *input, pos int, more More, sk func(*input, int, More, int) state) state {
	acc := init + in.countWhile(pos+init, pred)
	if pos+acc < in.length() || more == Complete {
		return sk(in, pos, more, acc)
	}
	psk := func(in *input, pos int, more More) state {
		return countWhileRun(acc, pred, in, pos, more, sk)
	}
	pfk := func(in *input, pos int, more More) state {
		return sk(in, pos, more, acc)
	}
	return prompt(in, pos, pfk, psk)
}

// ParseError is a parse failure: the breadcrumb trail of Label marks,
// outermost first, and the message of the primitive that failed.
type ParseError struct {
	Marks   []string
	Message string
}

func (e *ParseError) Error() string {
	if len(e.Marks) == 0 {
		return e.Message
	}
	return strings.Join(e.Marks, " > ") + ": " + e.Message
}

// StateKind discriminates the three terminal results of running a parser.
type StateKind uint8

const (
	// StatePartial is a suspended parse awaiting more input.
	StatePartial = StateKind(statePartial)
	// StateDone is a successful parse.
	StateDone = StateKind(stateDone)
	// StateFail is a failed parse.
	StateFail = StateKind(stateFail)
)

// State is the result of running a parser: Done with a value, Fail with an
// error, or Partial awaiting more input.
type State[A any] struct {
	inner state
}

func wrapState[A any](s state) State[A] {
	return State[A]{inner: s}
}

// Kind reports which of the three results this is.
func (s State[A]) Kind() StateKind {
	return StateKind(s.inner.kind)
}

// Done returns the parsed value if the parse succeeded.
func (s State[A]) Done() (A, bool) {
	if s.inner.kind != stateDone {
		var zero A
		return zero, false
	}
	return s.inner.value.(A), true
}

// Failed returns the failure if the parse failed.
func (s State[A]) Failed() (*ParseError, bool) {
	if s.inner.kind != stateFail {
		return nil, false
	}
	return &ParseError{Marks: s.inner.marks, Message: s.inner.msg}, true
}

// Partial reports whether the parse is suspended awaiting more input.
func (s State[A]) Partial() bool {
	return s.inner.kind == statePartial
}

// Consumed reports chunk-relative byte counts: for a Partial state, the
// committed prefix of the current chunk, which the parser will never re-read
// and the driver may drop; for a terminal state, the bytes consumed from the
// current chunk.
func (s State[A]) Consumed() int {
	return s.inner.consumed
}

// Continue resumes a suspended parse with the next chunk. The chunk must
// begin with the uncommitted tail of the previous one; a shorter chunk
// panics. Continue panics when the state is not Partial.
func (s State[A]) Continue(chunk []byte, more More) State[A] {
	if s.inner.kind != statePartial {
		panic("angstrom: Continue on a terminal state")
	}
	return wrapState[A](s.inner.resume(chunk, more))
}

// Parse runs p against input with the expectation that more bytes may
// follow; input may be nil to begin a parse with no bytes at all. The
// returned state is Partial whenever p needs bytes past the end of input.
func (p Parser[A]) Parse(input []byte) State[A] {
	in := newInput(0, input)
	return wrapState[A](p(in, 0, Incomplete, topFail, topSucc[A]))
}

// ParseOnly runs p against the complete input and projects the result.
// Trailing unconsumed bytes are not an error; sequence with EndOfInput to
// require full consumption.
func (p Parser[A]) ParseOnly(input []byte) (A, error) {
	in := newInput(0, input)
	s := p(in, 0, Complete, topFail, topSucc[A])
	switch s.kind {
	case stateDone:
		return s.value.(A), nil
	case stateFail:
		var zero A
		return zero, &ParseError{Marks: s.marks, Message: s.msg}
	}
	panic("angstrom: parser suspended on complete input")
}

// ParseOnlyString is ParseOnly over the bytes of s.
func (p Parser[A]) ParseOnlyString(s string) (A, error) {
	return p.ParseOnly([]byte(s))
}
