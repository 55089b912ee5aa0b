package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types of REPL commands.
const (
	tokEOF = iota
	tokNum
	tokID
	tokString
	tokKeyword
)

var tokNames = []string{"end of input", "number", "name", "string", "keyword"}

// The command keywords. Keywords may not be used as unquoted names.
var keywords = []string{"list", "show", "eval", "diff", "as", "tree", "def", "drop",
	"lit", "var", "check", "load", "save", "stats", "help", "quit"}

// token is a lexeme of a command line.
type token struct {
	kind   int
	lexeme string
	col    int
}

func (t token) String() string {
	if t.kind == tokEOF {
		return tokNames[tokEOF]
	}
	return fmt.Sprintf("%s '%s'", tokNames[t.kind], t.lexeme)
}

var lexer *lexmachine.Lexer
var lexerErr error
var initOnce sync.Once // monitors one-time initialization

// commandLexer creates the lexmachine lexer for REPL commands once.
func commandLexer() (*lexmachine.Lexer, error) {
	initOnce.Do(func() {
		lexer = lexmachine.NewLexer()
		for _, kw := range keywords {
			lexer.Add([]byte(kw), makeToken(tokKeyword))
		}
		lexer.Add([]byte(`#[^\n]*`), skip) // comments
		lexer.Add([]byte(`"[^"]*"`), makeToken(tokString))
		lexer.Add([]byte(`nan|[\+\-]?inf`), makeToken(tokNum))
		lexer.Add([]byte(`[\+\-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][\+\-]?[0-9]+)?`), makeToken(tokNum))
		lexer.Add([]byte(`([a-z]|[A-Z]|_|\.|/)([a-z]|[A-Z]|[0-9]|_|\.|/|\-|')*`), makeToken(tokID))
		lexer.Add([]byte(`( |\t|\n|\r)+`), skip)
		if lexerErr = lexer.Compile(); lexerErr != nil {
			tracer().Errorf("Error compiling DFA: %v", lexerErr)
		}
	})
	return lexer, lexerErr
}

// skip is an action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is an action which wraps a scanned match into a token.
func makeToken(kind int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(kind, string(m.Bytes), m), nil
	}
}

// tokenize splits a command line into tokens. The last token is always of
// type tokEOF.
func tokenize(line string) ([]token, error) {
	lx, err := commandLexer()
	if err != nil {
		return nil, err
	}
	scanner, err := lx.Scanner([]byte(line))
	if err != nil {
		return nil, err
	}
	var tokens []token
	for {
		tok, err, eof := scanner.Next()
		if err != nil {
			if ui, is := err.(*machines.UnconsumedInput); is {
				return nil, fmt.Errorf("unexpected input at column %d: %q", ui.StartColumn,
					unconsumed(ui))
			}
			return nil, err
		}
		if eof {
			break
		}
		t := tok.(*lexmachine.Token)
		lexeme := string(t.Lexeme)
		if t.Type == tokString {
			lexeme = strings.Trim(lexeme, `"`)
		}
		tokens = append(tokens, token{kind: t.Type, lexeme: lexeme, col: t.StartColumn})
	}
	tracer().Debugf("tokens = %v", tokens)
	return append(tokens, token{kind: tokEOF, col: len(line) + 1}), nil
}

func unconsumed(ui *machines.UnconsumedInput) string {
	end := ui.FailTC + 1
	if end > len(ui.Text) {
		end = len(ui.Text)
	}
	if ui.StartTC >= end {
		return ""
	}
	return string(ui.Text[ui.StartTC:end])
}

// --- Token stream ----------------------------------------------------------

// tokenStream is a cursor over the tokens of a command.
type tokenStream struct {
	tokens []token
	pos    int
}

func (ts *tokenStream) peek() token {
	return ts.tokens[ts.pos]
}

func (ts *tokenStream) next() token {
	t := ts.tokens[ts.pos]
	if t.kind != tokEOF {
		ts.pos++
	}
	return t
}

func (ts *tokenStream) atEnd() bool {
	return ts.peek().kind == tokEOF
}

// keyword consumes kw if it is the next token.
func (ts *tokenStream) keyword(kw string) bool {
	if t := ts.peek(); t.kind == tokKeyword && t.lexeme == kw {
		ts.pos++
		return true
	}
	return false
}

// name expects a name or a quoted string.
func (ts *tokenStream) name(what string) (string, error) {
	t := ts.next()
	if t.kind != tokID && t.kind != tokString {
		return "", fmt.Errorf("expected %s, found %v", what, t)
	}
	return t.lexeme, nil
}

// number expects a number.
func (ts *tokenStream) number() (float64, error) {
	t := ts.next()
	if t.kind != tokNum {
		return 0, fmt.Errorf("expected number, found %v", t)
	}
	return strconv.ParseFloat(t.lexeme, 64)
}

// end expects the end of the command.
func (ts *tokenStream) end() error {
	if t := ts.peek(); t.kind != tokEOF {
		return fmt.Errorf("unexpected %v at column %d", t, t.col)
	}
	return nil
}
