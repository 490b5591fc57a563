// Package predicate assembles SQL WHERE clauses from ordered optional
// filter specs. Each spec contributes one conjunct plus its arguments, so
// query narrowing stays testable without a database.
package predicate

import "strings"

// Builder accumulates conjuncts in the order they are added. The zero value
// is empty and matches everything.
type Builder struct {
	conds []string
	args  []any
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{}
}

// Add appends one conjunct with its arguments.
func (b *Builder) Add(cond string, args ...any) *Builder {
	b.conds = append(b.conds, cond)
	b.args = append(b.args, args...)
	return b
}

// AddIf appends the conjunct only when ok is true. Arguments are evaluated
// by the caller either way, so guard pointer dereferences at the call site.
func (b *Builder) AddIf(ok bool, cond string, args ...any) *Builder {
	if !ok {
		return b
	}
	return b.Add(cond, args...)
}

// Or joins the sub-builder's conjuncts with OR and appends the
// parenthesized group as a single conjunct. An empty sub-builder adds
// nothing.
func (b *Builder) Or(sub *Builder) *Builder {
	if sub.Empty() {
		return b
	}
	b.conds = append(b.conds, "("+strings.Join(sub.conds, " OR ")+")")
	b.args = append(b.args, sub.args...)
	return b
}

// Empty reports whether no conjunct was added.
func (b *Builder) Empty() bool {
	return len(b.conds) == 0
}

// SQL renders the conjuncts joined with AND, empty string when nothing was
// added.
func (b *Builder) SQL() string {
	return strings.Join(b.conds, " AND ")
}

// Args returns the accumulated arguments in conjunct order.
func (b *Builder) Args() []any {
	return b.args
}
