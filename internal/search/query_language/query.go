package query_language

import (
	"fmt"
	"strings"
)

// Query is a node of the query tree. The set of variants is closed:
// And, Or, List, Not, Paren, Text and Vacuous.
type Query interface {
	fmt.Stringer
	query()
}

// And requires every child to match.
type And struct{ Children []Query }

// Or requires any child to match.
type Or struct{ Children []Query }

// List is an implicit conjunction of juxtaposed queries: `a b`.
type List struct{ Children []Query }

type Not struct{ Child Query }

// Paren keeps explicit grouping, it does not change the meaning of the child.
type Paren struct{ Child Query }

// Text matches terms as a phrase, or within a window of Proximity tokens in any order when Proximity is set.
type Text struct {
	Terms     []Term
	Proximity int
}

// Vacuous imposes no constraint.
type Vacuous struct{}

func (And) query()     {}
func (Or) query()      {}
func (List) query()    {}
func (Not) query()     {}
func (Paren) query()   {}
func (Text) query()    {}
func (Vacuous) query() {}

func NewAnd(children ...Query) And {
	if len(children) < 2 {
		panic(fmt.Sprintf("AND needs at least 2 operands, got %d", len(children)))
	}
	return And{Children: children}
}

func NewOr(children ...Query) Or {
	if len(children) < 2 {
		panic(fmt.Sprintf("OR needs at least 2 operands, got %d", len(children)))
	}
	return Or{Children: children}
}

func NewList(children ...Query) List {
	if len(children) < 1 {
		panic("empty list")
	}
	return List{Children: children}
}

func NewText(proximity int, terms ...Term) Text {
	if len(terms) == 0 {
		panic("text without terms")
	}
	if proximity != 0 && (len(terms) < 2 || proximity < termsSize(terms)) {
		panic(fmt.Sprintf("proximity %d is invalid for %d terms", proximity, len(terms)))
	}
	return Text{Terms: terms, Proximity: proximity}
}

// IsVacuous reports whether the node imposes no constraint on its own.
// A text is vacuous when all of its terms are.
func IsVacuous(q Query) bool {
	switch q := q.(type) {
	case Vacuous:
		return true
	case Text:
		for _, t := range q.Terms {
			if !t.Vacuous() {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Children returns the direct descendants of a node.
func Children(q Query) []Query {
	switch q := q.(type) {
	case And:
		return q.Children
	case Or:
		return q.Children
	case List:
		return q.Children
	case Not:
		return []Query{q.Child}
	case Paren:
		return []Query{q.Child}
	default:
		return nil
	}
}

// Visit calls visit for every node, children first.
func Visit(q Query, visit func(Query)) {
	for _, c := range Children(q) {
		Visit(c, visit)
	}
	visit(q)
}

// Dump prints the structure of the tree: And(Text[a], Not(Text[b])).
func Dump(q Query) string {
	dumpAll := func(qs []Query) string {
		parts := make([]string, 0, len(qs))
		for _, c := range qs {
			parts = append(parts, Dump(c))
		}
		return strings.Join(parts, ", ")
	}

	switch q := q.(type) {
	case And:
		return fmt.Sprintf("And(%s)", dumpAll(q.Children))
	case Or:
		return fmt.Sprintf("Or(%s)", dumpAll(q.Children))
	case List:
		return fmt.Sprintf("List(%s)", dumpAll(q.Children))
	case Not:
		return fmt.Sprintf("Not(%s)", Dump(q.Child))
	case Paren:
		return fmt.Sprintf("Paren(%s)", Dump(q.Child))
	case Text:
		return "Text" + strings.TrimPrefix(TextToken(q.Proximity, q.Terms...).String(), "TEXT")
	case Vacuous:
		return "Vacuous"
	default:
		return fmt.Sprintf("%T", q)
	}
}
