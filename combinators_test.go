package angstrom

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func strs(p Parser[[][]byte]) Parser[[]string] {
	return Map(p, func(bs [][]byte) []string {
		out := make([]string, len(bs))
		for i, b := range bs {
			out[i] = string(b)
		}
		return out
	})
}

func TestChoice(t *testing.T) {
	fooOrBar := Or(String("foo"), String("bar"))

	t.Run("SecondBranch", func(t *testing.T) {
		got, err := fooOrBar.ParseOnlyString("bar")
		if err != nil || got != "bar" {
			t.Errorf("ParseOnly(%q) = (%q, %v); want (%q, nil)", "bar", got, err, "bar")
		}
	})

	t.Run("NeitherBranch", func(t *testing.T) {
		if _, err := fooOrBar.ParseOnlyString("baz"); err == nil {
			t.Error("ParseOnly(\"baz\") succeeded; want failure")
		}
	})

	t.Run("RewindsToChoicePoint", func(t *testing.T) {
		// The first branch consumes "ab" before failing; the second must
		// still see the whole input.
		p := Or(Then(String("ab"), String("cd")), String("abce"))
		got, err := p.ParseOnlyString("abce")
		if err != nil || got != "abce" {
			t.Errorf("got (%q, %v); want (%q, nil)", got, err, "abce")
		}
	})

	t.Run("ChoiceList", func(t *testing.T) {
		p := Choice(String("one"), String("two"), String("three"))
		got, err := p.ParseOnlyString("three")
		if err != nil || got != "three" {
			t.Errorf("got (%q, %v); want (%q, nil)", got, err, "three")
		}
	})

	t.Run("ChoiceExhausted", func(t *testing.T) {
		_, err := Choice[string]().ParseOnlyString("x")
		if err == nil || err.Error() != "no more choices" {
			t.Errorf("error = %v; want no more choices", err)
		}
	})

	t.Run("Option", func(t *testing.T) {
		p := Option("dflt", String("yes"))
		got, err := p.ParseOnlyString("no")
		if err != nil || got != "dflt" {
			t.Errorf("got (%q, %v); want (%q, nil)", got, err, "dflt")
		}
	})
}

func TestChoiceIdentities(t *testing.T) {
	q := String("q")

	t.Run("ReturnAbsorbsOr", func(t *testing.T) {
		got, err := Or(Return("a"), q).ParseOnlyString("q")
		if err != nil || got != "a" {
			t.Errorf("Or(Return, q) = (%q, %v); want (%q, nil)", got, err, "a")
		}
	})

	t.Run("FailIsLeftIdentity", func(t *testing.T) {
		got, err := Or(FailWith[string]("m"), q).ParseOnlyString("q")
		if err != nil || got != "q" {
			t.Errorf("Or(Fail, q) = (%q, %v); want (%q, nil)", got, err, "q")
		}
	})
}

func TestMonadLaws(t *testing.T) {
	// The laws are checked up to observable parse results.
	input := "1234"
	digit := Map(Satisfy(isDigit), func(c byte) int { return int(c - '0') })
	f := func(n int) Parser[int] { return Map(Satisfy(isDigit), func(c byte) int { return n*10 + int(c-'0') }) }
	g := func(n int) Parser[int] { return Return(n + 1) }

	runs := func(p Parser[int]) (int, error) { return p.ParseOnlyString(input) }

	t.Run("LeftIdentity", func(t *testing.T) {
		lv, le := runs(Bind(Return(7), f))
		rv, re := runs(f(7))
		if lv != rv || (le == nil) != (re == nil) {
			t.Errorf("Bind(Return(7), f) = (%v, %v); f(7) = (%v, %v)", lv, le, rv, re)
		}
	})

	t.Run("RightIdentity", func(t *testing.T) {
		lv, le := runs(Bind(digit, Return[int]))
		rv, re := runs(digit)
		if lv != rv || (le == nil) != (re == nil) {
			t.Errorf("Bind(p, Return) = (%v, %v); p = (%v, %v)", lv, le, rv, re)
		}
	})

	t.Run("Associativity", func(t *testing.T) {
		lv, le := runs(Bind(Bind(digit, f), g))
		rv, re := runs(Bind(digit, func(x int) Parser[int] { return Bind(f(x), g) }))
		if lv != rv || (le == nil) != (re == nil) {
			t.Errorf("(p>>=f)>>=g = (%v, %v); p>>=(f>>=g) = (%v, %v)", lv, le, rv, re)
		}
	})
}

func TestSequencing(t *testing.T) {
	t.Run("Before", func(t *testing.T) {
		got, err := Before(String("key"), Char(':')).ParseOnlyString("key:")
		if err != nil || got != "key" {
			t.Errorf("got (%q, %v); want (%q, nil)", got, err, "key")
		}
	})

	t.Run("Both", func(t *testing.T) {
		got, err := Both(String("a"), String("b")).ParseOnlyString("ab")
		if err != nil {
			t.Fatal(err)
		}
		want := Pair[string, string]{"a", "b"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Both (-want +got):\n%s", diff)
		}
	})

	t.Run("Ap", func(t *testing.T) {
		pf := Map(String("up:"), func(string) func(string) string { return strings.ToUpper })
		got, err := Ap(pf, String("hi")).ParseOnlyString("up:hi")
		if err != nil || got != "HI" {
			t.Errorf("got (%q, %v); want (%q, nil)", got, err, "HI")
		}
	})

	t.Run("Lift3", func(t *testing.T) {
		join := func(a, b, c string) string { return a + "|" + b + "|" + c }
		got, err := Lift3(join, String("x"), String("y"), String("z")).ParseOnlyString("xyz")
		if err != nil || got != "x|y|z" {
			t.Errorf("got (%q, %v); want (%q, nil)", got, err, "x|y|z")
		}
	})

	t.Run("Lift4", func(t *testing.T) {
		join := func(a, b, c, d string) string { return a + b + c + d }
		got, err := Lift4(join, String("a"), String("b"), String("c"), String("d")).ParseOnlyString("abcd")
		if err != nil || got != "abcd" {
			t.Errorf("got (%q, %v); want (%q, nil)", got, err, "abcd")
		}
	})

	t.Run("FailureFlowsThrough", func(t *testing.T) {
		p := Then(String("a"), Then(FailWith[string]("inner"), String("b")))
		_, err := p.ParseOnlyString("ab")
		if err == nil || err.Error() != "inner" {
			t.Errorf("error = %v; want inner", err)
		}
	})
}

func TestLabel(t *testing.T) {
	t.Run("SingleMark", func(t *testing.T) {
		_, err := Label(Char('b'), "b").ParseOnlyString("c")
		if err == nil || err.Error() != "b: char 'b'" {
			t.Errorf("error = %v; want %q", err, "b: char 'b'")
		}
	})

	t.Run("MarksOutermostFirst", func(t *testing.T) {
		p := Label(Label(FailWith[string]("msg"), "inner"), "outer")
		_, err := p.ParseOnlyString("")
		perr, ok := err.(*ParseError)
		if !ok {
			t.Fatalf("error = %T(%v); want *ParseError", err, err)
		}
		if diff := cmp.Diff([]string{"outer", "inner"}, perr.Marks); diff != "" {
			t.Errorf("marks (-want +got):\n%s", diff)
		}
		if got, want := perr.Error(), "outer > inner: msg"; got != want {
			t.Errorf("Error() = %q; want %q", got, want)
		}
	})

	t.Run("SuccessUnaffected", func(t *testing.T) {
		got, err := Label(String("ok"), "ctx").ParseOnlyString("ok")
		if err != nil || got != "ok" {
			t.Errorf("got (%q, %v); want (%q, nil)", got, err, "ok")
		}
	})
}

func TestRepetition(t *testing.T) {
	t.Run("ManyThenEnd", func(t *testing.T) {
		p := Then(Many(Char('a')), EndOfInput)
		if _, err := p.ParseOnlyString("aaaa"); err != nil {
			t.Errorf("on %q: %v", "aaaa", err)
		}
		if _, err := p.ParseOnlyString("aaab"); err == nil {
			t.Errorf("on %q: succeeded; want failure", "aaab")
		}
	})

	t.Run("ManyEmpty", func(t *testing.T) {
		got, err := Many(Char('a')).ParseOnlyString("")
		if err != nil || len(got) != 0 {
			t.Errorf("got (%v, %v); want empty", got, err)
		}
	})

	t.Run("Many1", func(t *testing.T) {
		got, err := Many1(Char('a')).ParseOnlyString("aab")
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]byte("aa"), got); diff != "" {
			t.Errorf("Many1 (-want +got):\n%s", diff)
		}
		if _, err := Many1(Char('a')).ParseOnlyString("b"); err == nil {
			t.Error("Many1 on no match succeeded; want failure")
		}
	})

	t.Run("SepBy", func(t *testing.T) {
		item := TakeWhile1(func(c byte) bool { return c != ',' })
		p := strs(SepBy(Char(','), item))
		got, err := p.ParseOnlyString("a,bb,ccc")
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]string{"a", "bb", "ccc"}, got); diff != "" {
			t.Errorf("SepBy (-want +got):\n%s", diff)
		}

		empty, err := p.ParseOnlyString("")
		if err != nil || len(empty) != 0 {
			t.Errorf("SepBy on empty = (%v, %v); want empty", empty, err)
		}
	})

	t.Run("SepBy1Empty", func(t *testing.T) {
		item := TakeWhile1(func(c byte) bool { return c != ',' })
		if _, err := SepBy1(Char(','), item).ParseOnlyString(""); err == nil {
			t.Error("SepBy1 on empty succeeded; want failure")
		}
	})

	t.Run("ManyTill", func(t *testing.T) {
		got, err := ManyTill(AnyChar, Char('.')).ParseOnlyString("ab.")
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]byte("ab"), got); diff != "" {
			t.Errorf("ManyTill (-want +got):\n%s", diff)
		}
	})

	t.Run("SkipMany", func(t *testing.T) {
		got, err := Then(SkipMany(Char(' ')), Pos).ParseOnlyString("   x")
		if err != nil || got != 3 {
			t.Errorf("got (%v, %v); want (3, nil)", got, err)
		}
	})

	t.Run("SkipMany1Empty", func(t *testing.T) {
		if _, err := SkipMany1(Char(' ')).ParseOnlyString("x"); err == nil {
			t.Error("SkipMany1 on no match succeeded; want failure")
		}
	})

	t.Run("Count", func(t *testing.T) {
		got, err := Count(3, AnyChar).ParseOnlyString("abcd")
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]byte("abc"), got); diff != "" {
			t.Errorf("Count (-want +got):\n%s", diff)
		}
	})

	t.Run("CountTooFew", func(t *testing.T) {
		if _, err := Count(3, AnyChar).ParseOnlyString("ab"); err == nil {
			t.Error("Count(3) on 2 bytes succeeded; want failure")
		}
	})

	t.Run("CountNegative", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("Count(-1) did not panic")
			}
		}()
		Count(-1, AnyChar)
	})

	t.Run("List", func(t *testing.T) {
		p := strs(List([]Parser[[]byte]{Take(1), Take(2), Take(3)}))
		got, err := p.ParseOnlyString("abbccc")
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]string{"a", "bb", "ccc"}, got); diff != "" {
			t.Errorf("List (-want +got):\n%s", diff)
		}
	})
}

func TestFix(t *testing.T) {
	// depth parses maximally nested parens and yields the nesting depth.
	depth := Fix(func(self Parser[int]) Parser[int] {
		nested := Lift2(func(_ byte, d int) int { return d + 1 },
			Char('('),
			Before(self, Char(')')))
		return Or(nested, Return(0))
	})

	cases := []struct {
		Input string
		Want  int
	}{
		{"", 0},
		{"()", 1},
		{"((()))", 3},
		{"x", 0},
	}
	for _, c := range cases {
		got, err := depth.ParseOnlyString(c.Input)
		if err != nil {
			t.Errorf("depth(%q): %v", c.Input, err)
			continue
		}
		if got != c.Want {
			t.Errorf("depth(%q) = %d; want %d", c.Input, got, c.Want)
		}
	}

	t.Run("Unbalanced", func(t *testing.T) {
		p := Then(depth, EndOfInput)
		if _, err := p.ParseOnlyString("(("); err == nil {
			t.Error("unbalanced input succeeded; want failure")
		}
	})
}

func TestDeterminism(t *testing.T) {
	p := strs(SepBy(Char(','), TakeWhile1(isDigit)))
	const input = "1,22,333"
	first, err1 := p.ParseOnlyString(input)
	second, err2 := p.ParseOnlyString(input)
	if err1 != nil || err2 != nil {
		t.Fatalf("errors: %v, %v", err1, err2)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("two runs disagree (-first +second):\n%s", diff)
	}
}
