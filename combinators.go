package angstrom // import "github.com/kayceesrk/angstrom"

// Pair is the value of parsers that keep two results, such as Both and Scan.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// Bind sequences p with a parser derived from its value. A suspension inside
// p is transparent: its resumption closes over f and the outer
// continuations, so resuming picks up the data flow where it left off.
func Bind[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return func(in *input, pos int, more More, fk failK, sk succK[B]) state {
		next := func(in *input, pos int, more More, v A) state {
			return f(v)(in, pos, more, fk, sk)
		}
		return p(in, pos, more, fk, next)
	}
}

// Map transforms the value of p with f.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(in *input, pos int, more More, fk failK, sk succK[B]) state {
		next := func(in *input, pos int, more More, v A) state {
			return sk(in, pos, more, f(v))
		}
		return p(in, pos, more, fk, next)
	}
}

// Ap applies the function parsed by pf to the value parsed by pa.
func Ap[A, B any](pf Parser[func(A) B], pa Parser[A]) Parser[B] {
	return Lift2(func(f func(A) B, a A) B { return f(a) }, pf, pa)
}

// Then runs p, discards its value, then runs q.
func Then[A, B any](p Parser[A], q Parser[B]) Parser[B] {
	return func(in *input, pos int, more More, fk failK, sk succK[B]) state {
		next := func(in *input, pos int, more More, _ A) state {
			return q(in, pos, more, fk, sk)
		}
		return p(in, pos, more, fk, next)
	}
}

// Before runs p, then q, keeping p's value.
func Before[A, B any](p Parser[A], q Parser[B]) Parser[A] {
	return func(in *input, pos int, more More, fk failK, sk succK[A]) state {
		keep := func(in *input, pos int, more More, a A) state {
			drop := func(in *input, pos int, more More, _ B) state {
				return sk(in, pos, more, a)
			}
			return q(in, pos, more, fk, drop)
		}
		return p(in, pos, more, fk, keep)
	}
}

// Both runs p then q and pairs their values.
func Both[A, B any](p Parser[A], q Parser[B]) Parser[Pair[A, B]] {
	return Lift2(func(a A, b B) Pair[A, B] { return Pair[A, B]{a, b} }, p, q)
}

// Lift1 applies f to the value of pa.
func Lift1[A, R any](f func(A) R, pa Parser[A]) Parser[R] {
	return Map(pa, f)
}

// Lift2 runs pa then pb and combines their values with f.
func Lift2[A, B, R any](f func(A, B) R, pa Parser[A], pb Parser[B]) Parser[R] {
	return func(in *input, pos int, more More, fk failK, sk succK[R]) state {
		ka := func(in *input, pos int, more More, a A) state {
			kb := func(in *input, pos int, more More, b B) state {
				return sk(in, pos, more, f(a, b))
			}
			return pb(in, pos, more, fk, kb)
		}
		return pa(in, pos, more, fk, ka)
	}
}

// Lift3 runs pa, pb, then pc and combines their values with f.
func Lift3[A, B, C, R any](f func(A, B, C) R, pa Parser[A], pb Parser[B], pc Parser[C]) Parser[R] {
	return func(in *input, pos int, more More, fk failK, sk succK[R]) state {
		ka := func(in *input, pos int, more More, a A) state {
			kb := func(in *input, pos int, more More, b B) state {
				kc := func(in *input, pos int, more More, c C) state {
					return sk(in, pos, more, f(a, b, c))
				}
				return pc(in, pos, more, fk, kc)
			}
			return pb(in, pos, more, fk, kb)
		}
		return pa(in, pos, more, fk, ka)
	}
}

// Lift4 runs pa through pd and combines their values with f.
func Lift4[A, B, C, D, R any](f func(A, B, C, D) R, pa Parser[A], pb Parser[B], pc Parser[C], pd Parser[D]) Parser[R] {
	return func(in *input, pos int, more More, fk failK, sk succK[R]) state {
		ka := func(in *input, pos int, more More, a A) state {
			kb := func(in *input, pos int, more More, b B) state {
				kc := func(in *input, pos int, more More, c C) state {
					kd := func(in *input, pos int, more More, d D) state {
						return sk(in, pos, more, f(a, b, c, d))
					}
					return pd(in, pos, more, fk, kd)
				}
				return pc(in, pos, more, fk, kc)
			}
			return pb(in, pos, more, fk, kb)
		}
		return pa(in, pos, more, fk, ka)
	}
}

// Or tries p and, when p fails without an intervening Commit, runs q from
// the position where the choice began. A failure below a commit is
// propagated instead: committed bytes may already be gone from the driver's
// buffer, so rewinding past them is forbidden.
func Or[A any](p, q Parser[A]) Parser[A] {
	return func(in *input, pos int, more More, fk failK, sk succK[A]) state {
		catch := func(in2 *input, pos2 int, more2 More, marks []string, msg string) state {
			if in2.committed > pos {
				return fk(in2, pos2, more2, marks, msg)
			}
			return q(in2, pos, more2, fk, sk)
		}
		return p(in, pos, more, catch, sk)
	}
}

// Choice tries each parser in order, yielding the first success.
func Choice[A any](ps ...Parser[A]) Parser[A] {
	acc := FailWith[A]("no more choices")
	for i := len(ps) - 1; i >= 0; i-- {
		acc = Or(ps[i], acc)
	}
	return acc
}

// Option runs p, yielding dflt if p fails without consuming a commit.
func Option[A any](dflt A, p Parser[A]) Parser[A] {
	return Or(p, Return(dflt))
}

// Label names the parser: failures passing through pick up mark as context,
// outermost mark first.
func Label[A any](p Parser[A], mark string) Parser[A] {
	return func(in *input, pos int, more More, fk failK, sk succK[A]) state {
		annotate := func(in *input, pos int, more More, marks []string, msg string) state {
			return fk(in, pos, more, append([]string{mark}, marks...), msg)
		}
		return p(in, pos, more, annotate, sk)
	}
}

// Fix ties the knot for recursive grammars: f receives the parser being
// defined and returns its body. The indirection through a forward-declared
// variable stands in for lazy binding.
func Fix[A any](f func(Parser[A]) Parser[A]) Parser[A] {
	var p Parser[A]
	recur := Parser[A](func(in *input, pos int, more More, fk failK, sk succK[A]) state {
		return p(in, pos, more, fk, sk)
	})
	p = f(recur)
	return recur
}

func cons[A any](x A, xs []A) []A {
	return append([]A{x}, xs...)
}

// Many applies p zero or more times. No commit is inserted between
// iterations; an unbounded Many without an explicit Commit pins the whole
// repetition in the driver's buffer.
func Many[A any](p Parser[A]) Parser[[]A] {
	return Fix(func(m Parser[[]A]) Parser[[]A] {
		return Or(Lift2(cons[A], p, m), Return[[]A](nil))
	})
}

// Many1 applies p one or more times.
func Many1[A any](p Parser[A]) Parser[[]A] {
	return Lift2(cons[A], p, Many(p))
}

// ManyTill applies p until end succeeds, discarding end's value.
func ManyTill[A, B any](p Parser[A], end Parser[B]) Parser[[]A] {
	return Fix(func(m Parser[[]A]) Parser[[]A] {
		return Or(Then(end, Return[[]A](nil)), Lift2(cons[A], p, m))
	})
}

// SepBy applies p zero or more times, separated by sep.
func SepBy[A, S any](sep Parser[S], p Parser[A]) Parser[[]A] {
	return Or(SepBy1(sep, p), Return[[]A](nil))
}

// SepBy1 applies p one or more times, separated by sep.
func SepBy1[A, S any](sep Parser[S], p Parser[A]) Parser[[]A] {
	return Lift2(cons[A], p, Many(Then(sep, p)))
}

// SkipMany applies p zero or more times, discarding the values.
func SkipMany[A any](p Parser[A]) Parser[Unit] {
	return Fix(func(m Parser[Unit]) Parser[Unit] {
		return Or(Then(p, m), Return(Unit{}))
	})
}

// SkipMany1 applies p one or more times, discarding the values.
func SkipMany1[A any](p Parser[A]) Parser[Unit] {
	return Then(p, SkipMany(p))
}

// Count applies p exactly n times. A negative n is a programming error.
func Count[A any](n int, p Parser[A]) Parser[[]A] {
	if n < 0 {
		panic("angstrom: Count: negative count")
	}
	acc := Return[[]A](nil)
	for i := 0; i < n; i++ {
		acc = Lift2(cons[A], p, acc)
	}
	return acc
}

// List runs each parser in order and collects the values.
func List[A any](ps []Parser[A]) Parser[[]A] {
	acc := Return[[]A](nil)
	for i := len(ps) - 1; i >= 0; i-- {
		acc = Lift2(cons[A], ps[i], acc)
	}
	return acc
}
