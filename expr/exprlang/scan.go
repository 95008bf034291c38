package exprlang

import (
	"fmt"
	"sync"

	"github.com/npillmayer/idioms/scanner"
	"github.com/timtadh/lexmachine"
)

// The tokens representing literal one-char lexemes
var literals = []string{"+", "(", ")", "="}

// tokenIds will be set in initTokens()
var tokenIds map[string]int // A map from the token names to their token types

var initOnce sync.Once // monitors one-time initialization
func initTokens() {
	initOnce.Do(func() {
		tokenIds = make(map[string]int)
		tokenIds["ID"] = scanner.Ident
		tokenIds["NUM"] = scanner.Int
		for _, lit := range literals {
			r := lit[0]
			tokenIds[lit] = int(r)
		}
	})
}

// tokenName is the inverse of Token, for error messages.
func tokenName(id int) string {
	switch id {
	case scanner.EOF:
		return "end of input"
	case scanner.Int:
		return "number"
	case scanner.Ident:
		return "identifier"
	}
	return fmt.Sprintf("'%c'", rune(id))
}

var lexerOnce sync.Once
var lexer *scanner.LMAdapter
var lexerErr error

// Lexer returns the lexmachine lexer for expressions. The DFA is compiled once.
func Lexer() (*scanner.LMAdapter, error) {
	lexerOnce.Do(func() {
		lexer, lexerErr = newLexer()
	})
	return lexer, lexerErr
}

func newLexer() (*scanner.LMAdapter, error) {
	initTokens()
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`;[^\n]*\n?`), scanner.Skip) // skip comments
		lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), makeToken("ID"))
		lexer.Add([]byte(`\-?[0-9]+`), makeToken("NUM"))
		lexer.Add([]byte(`( |\t|\n|\r)+`), scanner.Skip)
	}
	adapter, err := scanner.NewLMAdapter(init, literals, tokenIds)
	if err != nil {
		return nil, err
	}
	return adapter, nil
}

func makeToken(s string) lexmachine.Action {
	id, ok := tokenIds[s]
	if !ok {
		panic(fmt.Errorf("unknown token: %s", s))
	}
	return scanner.MakeToken(s, id)
}
