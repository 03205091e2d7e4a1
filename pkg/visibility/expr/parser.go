package expr

import (
	"fmt"
	"strconv"

	"github.com/goliatone/go-condform/pkg/visibility"
)

// Expression is a compiled visibility rule.
type Expression struct {
	source string
	root   node
}

// Compile parses rule into an Expression.
func Compile(rule string) (*Expression, error) {
	lx := &lexer{src: rule}
	tokens, err := lx.all()
	if err != nil {
		return nil, fmt.Errorf("visibility/expr: %w", err)
	}

	p := &parser{tokens: tokens}
	root, err := p.or()
	if err != nil {
		return nil, fmt.Errorf("visibility/expr: %w", err)
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, fmt.Errorf("visibility/expr: unexpected %q at %d", tok.text, tok.pos)
	}
	return &Expression{source: rule, root: root}, nil
}

// String returns the rule source.
func (x *Expression) String() string {
	if x == nil {
		return ""
	}
	return x.source
}

// Eval evaluates the expression. Compiled expressions cannot fail at runtime:
// missing identifiers are treated as absent values.
func (x *Expression) Eval(ctx visibility.Context) bool {
	if x == nil || x.root == nil {
		return true
	}
	return x.root.eval(ctx)
}

type node interface {
	eval(ctx visibility.Context) bool
}

type orNode struct{ left, right node }

func (n orNode) eval(ctx visibility.Context) bool { return n.left.eval(ctx) || n.right.eval(ctx) }

type andNode struct{ left, right node }

func (n andNode) eval(ctx visibility.Context) bool { return n.left.eval(ctx) && n.right.eval(ctx) }

type notNode struct{ inner node }

func (n notNode) eval(ctx visibility.Context) bool { return !n.inner.eval(ctx) }

type truthyNode struct{ ident string }

func (n truthyNode) eval(ctx visibility.Context) bool {
	value, ok := resolve(ctx, n.ident)
	return ok && truthy(value)
}

type compareNode struct {
	ident  string
	negate bool
	want   any
}

func (n compareNode) eval(ctx visibility.Context) bool {
	value, _ := resolve(ctx, n.ident)
	return equal(value, n.want) != n.negate
}

type parser struct {
	tokens []token
	pos    int
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) accept(kind tokenKind) bool {
	if p.peek().kind != kind {
		return false
	}
	p.pos++
	return true
}

func (p *parser) or() (node, error) {
	left, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.accept(tokOr) {
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		left = orNode{left: left, right: right}
	}
	return left, nil
}

func (p *parser) and() (node, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.accept(tokAnd) {
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = andNode{left: left, right: right}
	}
	return left, nil
}

func (p *parser) unary() (node, error) {
	if p.accept(tokNot) {
		inner, err := p.unary()
		if err != nil {
			return nil, err
		}
		return notNode{inner: inner}, nil
	}
	return p.primary()
}

func (p *parser) primary() (node, error) {
	if p.accept(tokLParen) {
		inner, err := p.or()
		if err != nil {
			return nil, err
		}
		if !p.accept(tokRParen) {
			return nil, fmt.Errorf("missing ')' at %d", p.peek().pos)
		}
		return inner, nil
	}

	tok := p.peek()
	if tok.kind == tokEOF {
		return nil, fmt.Errorf("empty expression")
	}
	if tok.kind != tokIdent {
		return nil, fmt.Errorf("expected identifier, got %q at %d", tok.text, tok.pos)
	}
	p.pos++

	switch {
	case p.accept(tokEq):
		want, err := p.literal()
		if err != nil {
			return nil, err
		}
		return compareNode{ident: tok.text, want: want}, nil
	case p.accept(tokNeq):
		want, err := p.literal()
		if err != nil {
			return nil, err
		}
		return compareNode{ident: tok.text, negate: true, want: want}, nil
	default:
		return truthyNode{ident: tok.text}, nil
	}
}

func (p *parser) literal() (any, error) {
	tok := p.peek()
	p.pos++
	switch tok.kind {
	case tokString, tokIdent:
		// bare words compare as strings
		return tok.text, nil
	case tokBool:
		return tok.text == "true", nil
	case tokNull:
		return nil, nil
	case tokNumber:
		f, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q at %d", tok.text, tok.pos)
		}
		return f, nil
	default:
		p.pos--
		return nil, fmt.Errorf("expected literal, got %q at %d", tok.text, tok.pos)
	}
}
