package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/kayceesrk/angstrom"
	"github.com/kr/pretty"
)

// The demo grammar: a sequence of "key = value;" statements. Each statement
// commits, so arbitrarily large inputs parse in constant buffer space.

type Statement struct {
	Key   string
	Value string
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isWord(c byte) bool {
	return !isSpace(c) && c != '=' && c != ';'
}

func document() angstrom.Parser[[]Statement] {
	ws := angstrom.SkipWhile(isSpace)
	word := angstrom.Map(angstrom.TakeWhile1(isWord), func(b []byte) string { return string(b) })
	stmt := angstrom.Lift2(
		func(k, v string) Statement { return Statement{Key: k, Value: v} },
		angstrom.Before(angstrom.Then(ws, word), angstrom.Then(ws, angstrom.Char('='))),
		angstrom.Before(angstrom.Then(ws, word), angstrom.Then(ws, angstrom.Char(';'))),
	)
	stmt = angstrom.Label(angstrom.Before(stmt, angstrom.Commit), "statement")
	return angstrom.Before(angstrom.Many(stmt), angstrom.Then(ws, angstrom.EndOfInput))
}

func main() {
	log.SetFlags(log.Lshortfile)
	if len(os.Args) == 1 {
		load("stdin", os.Stdin)
	}

	for _, p := range os.Args[1:] {
		loadFile(p)
	}
}

func loadFile(path string) {
	fi, err := os.Open(path)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	defer fi.Close()
	load(filepath.Base(path), fi)
}

func load(name string, file *os.File) {
	// Feed the parser in small chunks to exercise the incremental path.
	st := angstrom.BufferedParse(document(), nil, angstrom.BufferSize(64))
	chunk := make([]byte, 512)
	for {
		n, err := file.Read(chunk)
		if n > 0 {
			st = st.Feed(chunk[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatalf("error reading %s: %v", name, err)
		}
	}
	st = st.FeedEOF()

	doc, err := st.Result()
	if err != nil {
		log.Printf("%s: %v", name, err)
		return
	}
	fmt.Fprintf(os.Stderr, "%# v\n------------------------------------------------------------------------\n",
		pretty.Formatter(doc))
	os.Stderr.Sync()
}
