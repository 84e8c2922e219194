package curly

import (
	"strconv"
	"strings"
	"text/scanner"
)

const scannerMode = scanner.ScanIdents | scanner.ScanInts

type tokenKind int

const (
	tokLBrace tokenKind = iota
	tokRBrace
	tokIdent // identifiers, plus the operator symbols + and -
	tokInt
	tokPunct // any other non-brace rune; rejected by the parser, not here
)

type token struct {
	kind tokenKind
	text string
	n    int
}

func (t token) String() string {
	switch t.kind {
	case tokLBrace:
		return "{"
	case tokRBrace:
		return "}"
	case tokInt:
		return strconv.Itoa(t.n)
	default:
		return t.text
	}
}

// tokenize splits src into braces, identifiers, and integer literals.
// Other runes become punctuation tokens that no grammar shape accepts.
func tokenize(src string) ([]token, error) {
	var s scanner.Scanner
	var scanErr error
	// Init resets Mode and Error, so they go after it
	s.Init(strings.NewReader(src))
	s.Mode = scannerMode
	s.Error = func(_ *scanner.Scanner, msg string) {
		if scanErr == nil {
			scanErr = &SyntaxError{Fragment: msg}
		}
	}

	var toks []token
	for {
		r := s.Scan()
		if scanErr != nil {
			return nil, scanErr
		}
		switch r {
		case scanner.EOF:
			return toks, nil
		case scanner.Ident:
			toks = append(toks, token{kind: tokIdent, text: s.TokenText()})
		case scanner.Int:
			n, err := strconv.Atoi(s.TokenText())
			if err != nil {
				return nil, &SyntaxError{Fragment: s.TokenText()}
			}
			toks = append(toks, token{kind: tokInt, n: n})
		case '{':
			toks = append(toks, token{kind: tokLBrace})
		case '}':
			toks = append(toks, token{kind: tokRBrace})
		case '+', '-':
			toks = append(toks, token{kind: tokIdent, text: string(r)})
		default:
			// unknown runes still tokenize so the parser can report the
			// whole form they appear in, not just the rune
			toks = append(toks, token{kind: tokPunct, text: string(r)})
		}
	}
}
