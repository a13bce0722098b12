package query_language

import (
	"fmt"

	"go.uber.org/zap"
)

// Parse reads a whole query from the token stream:
//
//	query   := orExpr
//	orExpr  := andExpr ( OR andExpr )*
//	andExpr := listExpr ( AND listExpr )*
//	listExpr:= notExpr+
//	notExpr := NOT notExpr | atom
//	atom    := TEXT | ( orExpr )
//
// The result is not simplified.
func Parse(ts TokenStream) (Query, error) {
	p := parser{ts: ts}

	t, err := ts.Peek()
	if err != nil {
		return nil, err
	}
	if t.Type == TokenEOF {
		return Vacuous{}, nil
	}

	q, err := p.orExpr()
	if err != nil {
		return nil, err
	}

	t, err = ts.Next()
	if err != nil {
		return nil, err
	}
	if t.Type != TokenEOF {
		return nil, fmt.Errorf("%w %s", ErrUnparsedToken, t)
	}
	return q, nil
}

type parser struct {
	ts TokenStream
}

func (p *parser) peek() (TokenType, error) {
	t, err := p.ts.Peek()
	return t.Type, err
}

func (p *parser) orExpr() (Query, error) {
	return p.operands(TokenOr, p.andExpr, func(qs []Query) Query { return NewOr(qs...) })
}

func (p *parser) andExpr() (Query, error) {
	return p.operands(TokenAnd, p.listExpr, func(qs []Query) Query { return NewAnd(qs...) })
}

// operands parses operand (op operand)* and combines 2+ operands.
func (p *parser) operands(op TokenType, operand func() (Query, error), combine func([]Query) Query) (Query, error) {
	q, err := operand()
	if err != nil {
		return nil, err
	}
	qs := []Query{q}
	for {
		tt, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tt != op {
			break
		}
		if _, err = p.ts.Next(); err != nil {
			return nil, err
		}
		q, err = operand()
		if err != nil {
			return nil, err
		}
		qs = append(qs, q)
	}
	if len(qs) == 1 {
		return qs[0], nil
	}
	return combine(qs), nil
}

func (p *parser) listExpr() (Query, error) {
	q, err := p.notExpr()
	if err != nil {
		return nil, err
	}
	qs := []Query{q}
	for {
		tt, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tt != TokenLParen && tt != TokenNot && tt != TokenText {
			break
		}
		q, err = p.notExpr()
		if err != nil {
			return nil, err
		}
		qs = append(qs, q)
	}
	if len(qs) == 1 {
		return qs[0], nil
	}
	return NewList(qs...), nil
}

func (p *parser) notExpr() (Query, error) {
	tt, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tt != TokenNot {
		return p.atom()
	}
	if _, err = p.ts.Next(); err != nil {
		return nil, err
	}
	q, err := p.notExpr()
	if err != nil {
		return nil, err
	}
	return Not{Child: q}, nil
}

func (p *parser) atom() (Query, error) {
	t, err := p.ts.Next()
	if err != nil {
		return nil, err
	}
	switch t.Type {
	case TokenText:
		t = boundedTextToken(t.Terms, t.Proximity, zap.NewNop())
		if len(t.Terms) == 0 {
			return Vacuous{}, nil
		}
		return NewText(t.Proximity, t.Terms...), nil
	case TokenLParen:
		q, err := p.orExpr()
		if err != nil {
			return nil, err
		}
		t, err = p.ts.Next()
		if err != nil {
			return nil, err
		}
		if t.Type != TokenRParen {
			return nil, fmt.Errorf("%w: expected ) but got %s", ErrUnmatchedParenthesis, t)
		}
		return Paren{Child: q}, nil
	case TokenEOF:
		return nil, ErrUnexpectedEOF
	default:
		return nil, fmt.Errorf("%w %s", ErrUnrecognizedToken, t)
	}
}
