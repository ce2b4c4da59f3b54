//go:build gofuzz
// +build gofuzz

package angstrom // import "github.com/kayceesrk/angstrom"

// fuzzGrammar is a grammar touching most of the combinator surface:
// whitespace-separated words, comma-separated digit runs, quoted spans.
func fuzzGrammar() Parser[[]string] {
	digits := TakeWhile1(func(c byte) bool { return c >= '0' && c <= '9' })
	word := TakeWhile1(func(c byte) bool { return c > ' ' && c != ',' && c != '"' })
	quoted := Then(Char('"'), Before(TakeTill(func(c byte) bool { return c == '"' }), Char('"')))
	item := Map(Choice(digits, quoted, word), func(b []byte) string { return string(b) })
	ws := SkipWhile(func(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == ',' })
	return Before(Many(Then(ws, item)), ws)
}

// Fuzz checks chunk invariance: feeding b one byte at a time must agree with
// parsing it whole.
func Fuzz(b []byte) (rc int) {
	p := fuzzGrammar()

	whole, wholeErr := p.ParseOnly(b)

	st := BufferedParse(p, nil, BufferSize(1))
	for i := range b {
		st = st.Feed(b[i : i+1])
	}
	st = st.FeedEOF()
	fed, fedErr := st.Result()

	if (wholeErr == nil) != (fedErr == nil) {
		panic("chunked/whole disagreement on outcome")
	}
	if wholeErr == nil {
		if len(whole) != len(fed) {
			panic("chunked/whole disagreement on value")
		}
		for i := range whole {
			if whole[i] != fed[i] {
				panic("chunked/whole disagreement on value")
			}
		}
	}
	return 0
}
