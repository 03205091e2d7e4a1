package expr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokString
	tokNumber
	tokBool
	tokNull
	tokEq
	tokNeq
	tokAnd
	tokOr
	tokNot
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

type lexer struct {
	src string
	pos int
}

func (l *lexer) all() ([]token, error) {
	var out []token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		out = append(out, tok)
		if tok.kind == tokEOF {
			return out, nil
		}
	}
}

func (l *lexer) next() (token, error) {
	for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
		l.pos++
	}
	start := l.pos
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, pos: start}, nil
	}

	two := ""
	if l.pos+1 < len(l.src) {
		two = l.src[l.pos : l.pos+2]
	}
	switch two {
	case "==":
		l.pos += 2
		return token{kind: tokEq, text: two, pos: start}, nil
	case "!=":
		l.pos += 2
		return token{kind: tokNeq, text: two, pos: start}, nil
	case "&&":
		l.pos += 2
		return token{kind: tokAnd, text: two, pos: start}, nil
	case "||":
		l.pos += 2
		return token{kind: tokOr, text: two, pos: start}, nil
	}

	switch ch := l.src[l.pos]; ch {
	case '!':
		l.pos++
		return token{kind: tokNot, text: "!", pos: start}, nil
	case '(':
		l.pos++
		return token{kind: tokLParen, text: "(", pos: start}, nil
	case ')':
		l.pos++
		return token{kind: tokRParen, text: ")", pos: start}, nil
	case '"', '\'':
		return l.quoted(ch)
	case '=', '&', '|':
		return token{}, fmt.Errorf("unexpected %q at %d", ch, start)
	}

	for l.pos < len(l.src) && !isDelimiter(l.src[l.pos]) {
		l.pos++
	}
	word := l.src[start:l.pos]
	switch lower := strings.ToLower(word); {
	case lower == "true" || lower == "false":
		return token{kind: tokBool, text: lower, pos: start}, nil
	case lower == "null" || lower == "nil":
		return token{kind: tokNull, text: "null", pos: start}, nil
	case looksNumeric(word):
		return token{kind: tokNumber, text: word, pos: start}, nil
	default:
		return token{kind: tokIdent, text: word, pos: start}, nil
	}
}

func (l *lexer) quoted(quote byte) (token, error) {
	start := l.pos
	l.pos++
	escaped := false
	for l.pos < len(l.src) {
		ch := l.src[l.pos]
		l.pos++
		switch {
		case escaped:
			escaped = false
		case ch == '\\':
			escaped = true
		case ch == quote:
			body := l.src[start+1 : l.pos-1]
			if quote == '\'' {
				body = strings.ReplaceAll(body, `\'`, `'`)
				body = strings.ReplaceAll(body, `"`, `\"`)
			}
			value, err := strconv.Unquote(`"` + body + `"`)
			if err != nil {
				return token{}, fmt.Errorf("invalid string literal at %d: %w", start, err)
			}
			return token{kind: tokString, text: value, pos: start}, nil
		}
	}
	return token{}, errors.New("unterminated string literal")
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isDelimiter(ch byte) bool {
	return isSpace(ch) || strings.IndexByte("()!=&|\"'", ch) >= 0
}

func looksNumeric(word string) bool {
	if word == "" {
		return false
	}
	_, err := strconv.ParseFloat(word, 64)
	return err == nil
}
