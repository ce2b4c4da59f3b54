// Package angstrom implements incremental, streaming parser combinators.
//
// Parsers are built by composing small primitives (match a byte, take
// N bytes, a literal string) with sequencing, biased choice, and
// repetition into larger grammars. A grammar built this way can be run
// against input that arrives in chunks: when a parser needs bytes that
// have not arrived yet it suspends, and the caller resumes it with the
// next chunk. A small grammar for a semicolon-terminated key/value
// statement looks like the following:
//
//	word := angstrom.TakeWhile1(func(c byte) bool {
//	        return c != '=' && c != ';'
//	})
//	stmt := angstrom.Lift2(
//	        func(k, v []byte) [2]string { return [2]string{string(k), string(v)} },
//	        angstrom.Before(word, angstrom.Char('=')),
//	        angstrom.Before(word, angstrom.Char(';')))
//
// Running it over a complete buffer:
//
//	kv, err := stmt.ParseOnly([]byte("host=example;"))
//
// Or incrementally, feeding chunks as they arrive:
//
//	st := angstrom.BufferedParse(stmt, nil)
//	st = st.Feed([]byte("host=ex"))
//	st = st.Feed([]byte("ample;"))
//	st = st.FeedEOF()
//	kv, err := st.Result()
//
// Choice is biased: Or(p, q) runs q only if p fails, and rewinds to the
// position where the choice began. Commit bounds that rewind: once a
// parser commits, no enclosing choice may backtrack past the commit
// point, and the driver is free to reclaim the committed prefix of its
// buffer. Long-running grammars should commit at record boundaries to
// keep memory bounded.
package angstrom // import "github.com/kayceesrk/angstrom"
