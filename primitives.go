package angstrom // import "github.com/kayceesrk/angstrom"

import "fmt"

// NoChar is yielded by PeekChar when the input has ended for good.
const NoChar = -1

// Return succeeds with v without consuming input.
func Return[A any](v A) Parser[A] {
	return func(in *input, pos int, more More, fk failK, sk succK[A]) state {
		return sk(in, pos, more, v)
	}
}

// FailWith fails with msg without consuming input.
func FailWith[A any](msg string) Parser[A] {
	return func(in *input, pos int, more More, fk failK, sk succK[A]) state {
		return fk(in, pos, more, nil, msg)
	}
}

func satisfyMsg(pred func(byte) bool, msg string) Parser[byte] {
	return func(in *input, pos int, more More, fk failK, sk succK[byte]) state {
		read := func(in *input, pos int, more More) state {
			c := in.get(pos)
			if !pred(c) {
				return fk(in, pos, more, nil, msg)
			}
			return sk(in, pos+1, more, c)
		}
		return ensure(1, in, pos, more, fk, read)
	}
}

// Satisfy consumes one byte matched by pred.
func Satisfy(pred func(byte) bool) Parser[byte] {
	return satisfyMsg(pred, "satisfy")
}

// Skip consumes one byte matched by pred and discards it.
func Skip(pred func(byte) bool) Parser[Unit] {
	return func(in *input, pos int, more More, fk failK, sk succK[Unit]) state {
		read := func(in *input, pos int, more More) state {
			if !pred(in.get(pos)) {
				return fk(in, pos, more, nil, "skip")
			}
			return sk(in, pos+1, more, Unit{})
		}
		return ensure(1, in, pos, more, fk, read)
	}
}

// Char consumes the byte c.
func Char(c byte) Parser[byte] {
	msg := fmt.Sprintf("char %q", rune(c))
	return satisfyMsg(func(b byte) bool { return b == c }, msg)
}

// NotChar consumes any byte other than c.
func NotChar(c byte) Parser[byte] {
	msg := fmt.Sprintf("not char %q", rune(c))
	return satisfyMsg(func(b byte) bool { return b != c }, msg)
}

// AnyChar consumes the next byte, whatever it is.
var AnyChar Parser[byte] = satisfyMsg(func(byte) bool { return true }, "any_char")

// PeekChar yields the next byte without consuming it, or NoChar when no byte
// will ever arrive. It suspends rather than guess while more input may come.
var PeekChar Parser[int] = func(in *input, pos int, more More, fk failK, sk succK[int]) state {
	if pos < in.length() {
		return sk(in, pos, more, int(in.get(pos)))
	}
	if more == Complete {
		return sk(in, pos, more, NoChar)
	}
	psk := func(in *input, pos int, more More) state {
		return sk(in, pos, more, int(in.get(pos)))
	}
	pfk := func(in *input, pos int, more More) state {
		return sk(in, pos, more, NoChar)
	}
	return prompt(in, pos, pfk, psk)
}

// PeekCharFail yields the next byte without consuming it, failing at end of
// input.
var PeekCharFail Parser[byte] = func(in *input, pos int, more More, fk failK, sk succK[byte]) state {
	var run func(in *input, pos int, more More) state
	pfk := func(in *input, pos int, more More) state {
		return fk(in, pos, more, nil, "peek_char_fail")
	}
	run = func(in *input, pos int, more More) state {
		if pos < in.length() {
			return sk(in, pos, more, in.get(pos))
		}
		if more == Complete {
			return pfk(in, pos, more)
		}
		return prompt(in, pos, pfk, run)
	}
	return run(in, pos, more)
}

// PeekString yields the next n bytes without consuming them.
func PeekString(n int) Parser[[]byte] {
	if n < 0 {
		n = 0
	}
	return func(in *input, pos int, more More, fk failK, sk succK[[]byte]) state {
		read := func(in *input, pos int, more More) state {
			return sk(in, pos, more, in.substring(pos, n))
		}
		return ensure(n, in, pos, more, fk, read)
	}
}

// Take consumes exactly n bytes.
func Take(n int) Parser[[]byte] {
	if n < 0 {
		n = 0
	}
	return func(in *input, pos int, more More, fk failK, sk succK[[]byte]) state {
		read := func(in *input, pos int, more More) state {
			return sk(in, pos+n, more, in.substring(pos, n))
		}
		return ensure(n, in, pos, more, fk, read)
	}
}

// Advance consumes n bytes and discards them.
func Advance(n int) Parser[Unit] {
	if n < 0 {
		n = 0
	}
	return func(in *input, pos int, more More, fk failK, sk succK[Unit]) state {
		read := func(in *input, pos int, more More) state {
			return sk(in, pos+n, more, Unit{})
		}
		return ensure(n, in, pos, more, fk, read)
	}
}

func stringMatch(s string, fold func(byte) byte, msg string) Parser[string] {
	n := len(s)
	return func(in *input, pos int, more More, fk failK, sk succK[string]) state {
		read := func(in *input, pos int, more More) state {
			for i := 0; i < n; i++ {
				if fold(in.get(pos+i)) != fold(s[i]) {
					return fk(in, pos, more, nil, msg)
				}
			}
			return sk(in, pos+n, more, string(in.substring(pos, n)))
		}
		return ensure(n, in, pos, more, fk, read)
	}
}

func foldNone(c byte) byte { return c }

func foldASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// String consumes the bytes of s exactly.
func String(s string) Parser[string] {
	return stringMatch(s, foldNone, "string")
}

// StringCI consumes the bytes of s up to ASCII case, yielding the matched
// input. Folding is locale-independent: only A-Z and a-z are identified.
func StringCI(s string) Parser[string] {
	return stringMatch(s, foldASCII, "string_ci")
}

// TakeWhile consumes the longest (possibly empty) prefix of bytes satisfying
// pred.
func TakeWhile(pred func(byte) bool) Parser[[]byte] {
	return func(in *input, pos int, more More, fk failK, sk succK[[]byte]) state {
		done := func(in *input, pos int, more More, n int) state {
			return sk(in, pos+n, more, in.substring(pos, n))
		}
		return countWhileRun(0, pred, in, pos, more, done)
	}
}

// TakeWhile1 is TakeWhile, but fails on an empty match.
func TakeWhile1(pred func(byte) bool) Parser[[]byte] {
	return func(in *input, pos int, more More, fk failK, sk succK[[]byte]) state {
		done := func(in *input, pos int, more More, n int) state {
			if n == 0 {
				return fk(in, pos, more, nil, "take_while1")
			}
			return sk(in, pos+n, more, in.substring(pos, n))
		}
		return countWhileRun(0, pred, in, pos, more, done)
	}
}

// TakeTill consumes bytes up to, but not including, the first byte
// satisfying pred.
func TakeTill(pred func(byte) bool) Parser[[]byte] {
	return TakeWhile(func(c byte) bool { return !pred(c) })
}

// SkipWhile consumes bytes satisfying pred and discards them.
func SkipWhile(pred func(byte) bool) Parser[Unit] {
	return func(in *input, pos int, more More, fk failK, sk succK[Unit]) state {
		done := func(in *input, pos int, more More, n int) state {
			return sk(in, pos+n, more, Unit{})
		}
		return countWhileRun(0, pred, in, pos, more, done)
	}
}

// TakeRest consumes everything up to the end of input.
var TakeRest Parser[[]byte] = TakeWhile(func(byte) bool { return true })

// Scan consumes bytes while f keeps accepting, threading a state value
// through the scan, and yields the matched bytes paired with the final
// state.
func Scan[S any](init S, f func(S, byte) (S, bool)) Parser[Pair[[]byte, S]] {
	return func(in *input, pos int, more More, fk failK, sk succK[Pair[[]byte, S]]) state {
		st := init
		pred := func(c byte) bool {
			next, ok := f(st, c)
			if ok {
				st = next
			}
			return ok
		}
		done := func(in *input, pos int, more More, n int) state {
			return sk(in, pos+n, more, Pair[[]byte, S]{in.substring(pos, n), st})
		}
		return countWhileRun(0, pred, in, pos, more, done)
	}
}

// ScanState is Scan without the matched bytes.
func ScanState[S any](init S, f func(S, byte) (S, bool)) Parser[S] {
	return func(in *input, pos int, more More, fk failK, sk succK[S]) state {
		st := init
		pred := func(c byte) bool {
			next, ok := f(st, c)
			if ok {
				st = next
			}
			return ok
		}
		done := func(in *input, pos int, more More, n int) state {
			return sk(in, pos+n, more, st)
		}
		return countWhileRun(0, pred, in, pos, more, done)
	}
}

// Commit raises the committed mark to the current position. No enclosing Or
// may rewind past it afterwards, and the driver is free to reclaim the bytes
// below it.
var Commit Parser[Unit] = func(in *input, pos int, more More, fk failK, sk succK[Unit]) state {
	in.commit(pos)
	return sk(in, pos, more, Unit{})
}

// Pos yields the current absolute position.
var Pos Parser[int] = func(in *input, pos int, more More, fk failK, sk succK[int]) state {
	return sk(in, pos, more, pos)
}

// Available yields the number of bytes currently available past the
// position, without suspending for more.
var Available Parser[int] = func(in *input, pos int, more More, fk failK, sk succK[int]) state {
	return sk(in, pos, more, in.length()-pos)
}

// EndOfInput succeeds only when every byte has been consumed and no more
// will arrive. While input may still come it suspends: bytes arriving after
// the prompt mean failure, and a prompt that comes back empty-and-complete
// means success.
var EndOfInput Parser[Unit] = func(in *input, pos int, more More, fk failK, sk succK[Unit]) state {
	if pos < in.length() {
		return fk(in, pos, more, nil, "end_of_input")
	}
	if more == Complete {
		return sk(in, pos, more, Unit{})
	}
	pfk := func(in *input, pos int, more More) state {
		return sk(in, pos, more, Unit{})
	}
	psk := func(in *input, pos int, more More) state {
		return fk(in, pos, more, nil, "end_of_input")
	}
	return prompt(in, pos, pfk, psk)
}

// AtEndOfInput yields whether the position is at the definitive end of
// input. Unlike EndOfInput it never fails.
var AtEndOfInput Parser[bool] = func(in *input, pos int, more More, fk failK, sk succK[bool]) state {
	if pos < in.length() {
		return sk(in, pos, more, false)
	}
	if more == Complete {
		return sk(in, pos, more, true)
	}
	pfk := func(in *input, pos int, more More) state {
		return sk(in, pos, more, true)
	}
	psk := func(in *input, pos int, more More) state {
		return sk(in, pos, more, false)
	}
	return prompt(in, pos, pfk, psk)
}

// EndOfLine consumes a "\n" or "\r\n".
var EndOfLine Parser[Unit] = Label(
	Or(
		Then(Char('\n'), Return(Unit{})),
		Then(String("\r\n"), Return(Unit{})),
	),
	"end_of_line")
