package query_language

// Simplify removes vacuous subtrees and redundant nesting.
// Unchanged subtrees are returned as is, and Simplify(Simplify(q)) equals Simplify(q).
func Simplify(q Query) Query {
	s, _ := simplify(q)
	return s
}

func simplify(q Query) (Query, bool) {
	switch q := q.(type) {
	case And:
		return simplifyOperands(
			q, q.Children,
			func(c Query) ([]Query, bool) { a, ok := c.(And); return a.Children, ok },
			func(qs []Query) Query { return NewAnd(qs...) },
		)
	case Or:
		return simplifyOperands(
			q, q.Children,
			func(c Query) ([]Query, bool) { o, ok := c.(Or); return o.Children, ok },
			func(qs []Query) Query { return NewOr(qs...) },
		)
	case List:
		return simplifyOperands(
			q, q.Children,
			func(c Query) ([]Query, bool) { l, ok := c.(List); return l.Children, ok },
			func(qs []Query) Query { return NewList(qs...) },
		)
	case Not:
		child, changed := simplify(q.Child)
		if IsVacuous(child) {
			return Vacuous{}, true
		}
		if n, ok := child.(Not); ok {
			return n.Child, true
		}
		if !changed {
			return q, false
		}
		return Not{Child: child}, true
	case Paren:
		child, changed := simplify(q.Child)
		if IsVacuous(child) {
			return Vacuous{}, true
		}
		switch child.(type) {
		case Paren, Text, Not:
			return child, true
		}
		if !changed {
			return q, false
		}
		return Paren{Child: child}, true
	case Text:
		return simplifyText(q)
	default:
		return q, false
	}
}

// simplifyOperands simplifies the operands of an n-ary node. Operands of the same kind,
// bare or in parentheses, are merged into the parent.
func simplifyOperands(
	q Query,
	operands []Query,
	sameKind func(Query) ([]Query, bool),
	build func([]Query) Query,
) (Query, bool) {
	changed := false
	simplified := make([]Query, 0, len(operands))
	for _, operand := range operands {
		s, ch := simplify(operand)
		changed = changed || ch

		if IsVacuous(s) {
			changed = true
			continue
		}

		inner := s
		if p, ok := s.(Paren); ok {
			inner = p.Child
		}
		if grandChildren, ok := sameKind(inner); ok {
			simplified = append(simplified, grandChildren...)
			changed = true
			continue
		}

		simplified = append(simplified, s)
	}

	switch {
	case len(simplified) == 0:
		return Vacuous{}, true
	case len(simplified) == 1:
		return simplified[0], true
	case !changed:
		return q, false
	default:
		return build(simplified), true
	}
}

func simplifyText(q Text) (Query, bool) {
	kept := make([]Term, 0, len(q.Terms))
	for _, t := range q.Terms {
		if !t.Vacuous() {
			kept = append(kept, t)
		}
	}
	switch {
	case len(kept) == 0:
		return Vacuous{}, true
	case len(kept) == len(q.Terms):
		return q, false
	}
	proximity := q.Proximity
	if len(kept) < 2 {
		proximity = 0
	}
	return Text{Terms: kept, Proximity: proximity}, true
}
