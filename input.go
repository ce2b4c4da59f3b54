package angstrom // import "github.com/kayceesrk/angstrom"

// input is the engine's per-chunk view of the available bytes. All positions
// handed to it are absolute: valued in the original stream, unaffected by
// chunk boundaries. buf[0] sits at absolute position initialCommitted; bytes
// below initialCommitted were dropped by an earlier resumption.
//
// committed is the backtracking low-water mark. It never decreases, and bytes
// below it are never re-read, which is what makes it safe for a driver to
// reclaim them.
type input struct {
	buf              []byte
	initialCommitted int
	committed        int
}

func newInput(committed int, buf []byte) *input {
	return &input{buf: buf, initialCommitted: committed, committed: committed}
}

// length is the absolute position one past the last available byte.
func (in *input) length() int {
	return in.initialCommitted + len(in.buf)
}

// get reads the byte at abs. Bounds are the caller's responsibility;
// combinators check availability before reading.
func (in *input) get(abs int) byte {
	return in.buf[abs-in.initialCommitted]
}

// substring copies n bytes starting at abs out of the chunk. The chunk's
// backing array belongs to the driver and may be compacted or grown on the
// next feed, so the copy is required for the value to outlive the run.
func (in *input) substring(abs, n int) []byte {
	i := abs - in.initialCommitted
	out := make([]byte, n)
	copy(out, in.buf[i:i+n])
	return out
}

// countWhile returns the largest k such that pred holds on every byte in
// [abs, abs+k) or the chunk ends. It never suspends; resuming a scan across
// a chunk boundary is the engine's job.
func (in *input) countWhile(abs int, pred func(byte) bool) int {
	i := abs - in.initialCommitted
	k := 0
	for i+k < len(in.buf) && pred(in.buf[i+k]) {
		k++
	}
	return k
}

// commit raises the committed mark to abs. Marks only move forward.
func (in *input) commit(abs int) {
	if abs > in.committed {
		in.committed = abs
	}
}

// parserConsumed is the committed prefix of the current chunk, in bytes.
func (in *input) parserConsumed() int {
	return in.committed - in.initialCommitted
}

// uncommitted is the number of chunk bytes at or above the committed mark.
func (in *input) uncommitted() int {
	return len(in.buf) - in.parserConsumed()
}
