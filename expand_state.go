package sqlexpand

import (
	"strings"
)

// expandState is the accumulator threaded through a single left-to-right
// expansion pass. paramOffset is the growth of the parameter list so far and
// queryOffset the growth of the query text, both relative to the input.
type expandState struct {
	query       string
	args        PositionalArgs
	types       PositionalTypes
	paramOffset int
	queryOffset int
}

func newPositionalExpandState(query SQLQuery, args PositionalArgs, types PositionalTypes) expandState {
	s := expandState{
		query: string(query),
		args:  make(PositionalArgs, len(args)),
		types: make(PositionalTypes, len(types)),
	}
	copy(s.args, args)
	copy(s.types, types)
	return s
}

func newNamedExpandState(query SQLQuery, capacity int) expandState {
	return expandState{
		query: string(query),
		args:  make(PositionalArgs, 0, capacity),
		types: make(PositionalTypes, 0, capacity),
	}
}

// replaceToken replaces the tokenLen bytes at offset (relative to the input
// query) with count comma-separated ? tokens and returns the growth of the
// query text.
func (s *expandState) replaceToken(offset, tokenLen, count int) (growth int) {
	repl := placeholderList(count)
	at := offset + s.queryOffset
	s.query = s.query[:at] + repl + s.query[at+tokenLen:]
	growth = len(repl) - tokenLen
	s.queryOffset += growth
	return growth
}

// spliceArray replaces the array-valued parameter at ordinal (relative to the
// input) with elems and its array type with len(elems) copies of elem.
func (s *expandState) spliceArray(ordinal int, elems []any, elem TypeTag) {
	at := ordinal + s.paramOffset
	tags := make(PositionalTypes, len(elems))
	for i := range tags {
		tags[i] = elem
	}
	s.args = splice(s.args, at, elems)
	s.types = splice(s.types, at, tags)
	s.paramOffset += len(elems) - 1
}

func (s *expandState) appendScalar(value any, tag TypeTag) {
	s.args = append(s.args, value)
	s.types = append(s.types, tag)
}

func (s *expandState) appendArray(elems []any, elem TypeTag) {
	s.args = append(s.args, elems...)
	for range elems {
		s.types = append(s.types, elem)
	}
}

// splice returns list with the element at i replaced by repl.
func splice[S ~[]E, E any](list S, i int, repl []E) S {
	out := make(S, 0, len(list)+len(repl)-1)
	out = append(out, list[:i]...)
	out = append(out, repl...)
	out = append(out, list[i+1:]...)
	return out
}

// placeholderList returns count ? tokens separated by ", ".
func placeholderList(count int) string {
	if count <= 1 {
		return string(positionalToken)
	}
	var b strings.Builder
	b.Grow(count*len(tokenSeparator) + 1)
	for i := 0; i < count; i++ {
		if i > 0 {
			b.WriteString(tokenSeparator)
		}
		b.WriteByte(positionalToken)
	}
	return b.String()
}

// expandElems returns the elements of an array value. An empty array still
// reserves one placeholder, bound to NULL.
func expandElems(v any) []any {
	elems := arrayElems(v)
	if len(elems) == 0 {
		elems = []any{nil}
	}
	return elems
}
