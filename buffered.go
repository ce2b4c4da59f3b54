package angstrom // import "github.com/kayceesrk/angstrom"

// DefaultBufferSize is the initial size of the buffered driver's scratch
// when no BufferSize option is given.
const DefaultBufferSize = 4096

type bufferedConfig struct {
	size int
}

// BufferedOption configures the buffered driver.
type BufferedOption func(*bufferedConfig)

// BufferSize sets the initial scratch size in bytes. Sizes below 1 are a
// programming error.
func BufferSize(n int) BufferedOption {
	return func(c *bufferedConfig) { c.size = n }
}

// BufferedState is the state of a buffered parse. The driver owns a growable
// scratch holding the still-uncommitted tail plus freshly fed chunks, and
// re-presents the whole of it to the engine on every resumption, so callers
// never have to respect the engine's resumption protocol themselves.
type BufferedState[A any] struct {
	kind       stateKind
	buffering  *buffering
	committed  int
	resume     func(chunk []byte, more More) state
	value      A
	marks      []string
	msg        string
	unconsumed Unconsumed
}

// BufferedParse starts a buffered parse of p, feeding it the initial input
// (which may be nil) and running it once. The scratch is pre-sized to the
// larger of the configured size and the initial input.
func BufferedParse[A any](p Parser[A], input []byte, opts ...BufferedOption) *BufferedState[A] {
	cfg := bufferedConfig{size: DefaultBufferSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.size < 1 {
		panic("angstrom: BufferedParse: buffer size < 1")
	}
	size := cfg.size
	if len(input) > size {
		size = len(input)
	}
	b := newBuffering(size)
	b.feed(input)
	in := newInput(0, b.view())
	return fromUnbuffered[A](b, p(in, 0, Incomplete, topFail, topSucc[A]))
}

func fromUnbuffered[A any](b *buffering, s state) *BufferedState[A] {
	switch s.kind {
	case statePartial:
		return &BufferedState[A]{kind: statePartial, buffering: b, committed: s.consumed, resume: s.resume}
	case stateDone:
		u := b.unconsumed()
		u.Off += s.consumed
		u.Len -= s.consumed
		return &BufferedState[A]{kind: stateDone, buffering: b, value: s.value.(A), unconsumed: u}
	default:
		u := b.unconsumed()
		u.Off += s.consumed
		u.Len -= s.consumed
		return &BufferedState[A]{kind: stateFail, buffering: b, marks: s.marks, msg: s.msg, unconsumed: u}
	}
}

// Feed supplies the next chunk. On a suspended parse the committed prefix
// reported by the engine is dropped from the scratch, the chunk is appended,
// and the whole scratch is re-presented as still-incomplete input. On a
// terminal parse the chunk extends the unconsumed tail and the state stays
// terminal.
func (s *BufferedState[A]) Feed(chunk []byte) *BufferedState[A] {
	switch s.kind {
	case statePartial:
		b := s.buffering
		b.consume(s.committed)
		b.feed(chunk)
		return fromUnbuffered[A](b, s.resume(b.view(), Incomplete))
	default:
		b := bufferingOfUnconsumed(s.unconsumed)
		b.feed(chunk)
		next := *s
		next.buffering = b
		next.unconsumed = b.unconsumed()
		return &next
	}
}

// FeedEOF signals that no more input will arrive, re-presenting the scratch
// as complete. On a terminal parse it is a no-op.
func (s *BufferedState[A]) FeedEOF() *BufferedState[A] {
	if s.kind != statePartial {
		return s
	}
	b := s.buffering
	b.consume(s.committed)
	return fromUnbuffered[A](b, s.resume(b.view(), Complete))
}

// Partial reports whether the parse is suspended awaiting more input.
func (s *BufferedState[A]) Partial() bool {
	return s.kind == statePartial
}

// Value returns the parsed value if the parse has succeeded.
func (s *BufferedState[A]) Value() (A, bool) {
	if s.kind != stateDone {
		var zero A
		return zero, false
	}
	return s.value, true
}

// Result projects the state to a value or an error. A still-suspended parse
// is an error too.
func (s *BufferedState[A]) Result() (A, error) {
	switch s.kind {
	case stateDone:
		return s.value, nil
	case stateFail:
		var zero A
		return zero, &ParseError{Marks: s.marks, Message: s.msg}
	default:
		var zero A
		return zero, &ParseError{Message: "incomplete input"}
	}
}

// UnconsumedTail names the input the parser never consumed. It is only
// meaningful on a terminal state; ok is false while suspended.
func (s *BufferedState[A]) UnconsumedTail() (Unconsumed, bool) {
	if s.kind == statePartial {
		return Unconsumed{}, false
	}
	return s.unconsumed, true
}
