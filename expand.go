package sqlexpand

// ExpandedSQL is the result of expanding a statement's array parameters.
type ExpandedSQL struct {
	SQL   SQLQuery
	Args  Args
	Types Types

	// Expanded is false when the inputs were returned unchanged.
	Expanded bool
}

// Positional returns the positional parameters and types, or false when the
// result still uses named binding (a named pass-through).
func (e ExpandedSQL) Positional() (args PositionalArgs, types PositionalTypes, ok bool) {
	args, ok = e.Args.(PositionalArgs)
	if !ok {
		goto end
	}
	types, ok = e.Types.(PositionalTypes)
end:
	return args, types, ok
}

func (e ExpandedSQL) QueryString() string {
	return string(e.SQL)
}

// Expand rewrites query so that every parameter declared with an array type
// is bound to one ? per element, and returns the rewritten query together with
// parameters and types that line up one-to-one with its placeholders.
//
// Positional input is expanded in place: given "WHERE id IN (?)" with
// PositionalArgs{[]int{1, 2, 3}} and PositionalTypes{IntegerArrayTag} the
// result is "WHERE id IN (?, ?, ?)" with {1, 2, 3} and three IntegerTag.
//
// Named input is always converted to positional binding: each :name becomes
// one ? (or one ? per element for array types) and its value is appended in
// order of appearance, so a name used twice is bound twice.
//
// An empty array reserves a single ? bound to nil so the statement stays
// valid SQL.
//
// The inputs are returned unchanged, with Expanded false, when positional
// input has no array types, when args and types differ in length or binding
// mode, or when either is nil. Use ExpandStrict to get an error instead.
func Expand(query SQLQuery, args Args, types Types) ExpandedSQL {
	e, _ := expand(query, args, types, false, Locate)
	return e
}

// ExpandStrict is Expand but fails on conditions Expand passes through:
// ErrParameterTypeCountMismatch, ErrBindModeMismatch, ErrMissingParameter and
// ErrInvalidTypeTag.
func ExpandStrict(query SQLQuery, args Args, types Types) (ExpandedSQL, error) {
	return expand(query, args, types, true, Locate)
}

type locateFunc func(SQLQuery, BindMode) Placeholders

func expand(query SQLQuery, args Args, types Types, strict bool, locate locateFunc) (e ExpandedSQL, err error) {
	e = ExpandedSQL{SQL: query, Args: args, Types: types}

	err = checkExpandable(args, types)
	if err != nil {
		goto end
	}
	switch a := args.(type) {
	case PositionalArgs:
		e, err = expandPositional(query, a, types.(PositionalTypes), strict, locate)
	case NamedArgs:
		e, err = expandNamed(query, a, types.(NamedTypes), strict, locate)
	}
end:
	if !strict {
		err = nil
	}
	return e, err
}

func checkExpandable(args Args, types Types) (err error) {
	switch {
	case args == nil || types == nil:
		err = NewErr(ErrBindModeMismatch, "reason", "nil args or types")
	case args.BindMode() != types.BindMode():
		err = NewErr(ErrBindModeMismatch,
			"args", args.BindMode(),
			"types", types.BindMode(),
		)
	case args.Len() != types.Len():
		err = NewErr(ErrParameterTypeCountMismatch,
			"args", args.Len(),
			"types", types.Len(),
		)
	}
	return err
}

func expandPositional(query SQLQuery, args PositionalArgs, types PositionalTypes, strict bool, locate locateFunc) (e ExpandedSQL, err error) {
	var state expandState
	var placeholders Placeholders
	var arrays map[int]struct{}

	e = ExpandedSQL{SQL: query, Args: args, Types: types}

	if strict {
		err = checkTypeTags(types)
		if err != nil {
			goto end
		}
	}
	arrays = types.arrayKeys()
	if len(arrays) == 0 {
		goto end
	}

	placeholders = locate(query, PositionalBindMode)
	state = newPositionalExpandState(query, args, types)
	for _, p := range placeholders {
		_, ok := arrays[p.Ordinal]
		if !ok {
			continue
		}
		elems := expandElems(args[p.Ordinal])
		state.spliceArray(p.Ordinal, elems, types[p.Ordinal].Elem())
		state.replaceToken(p.Offset, p.Len(), len(elems))
	}

	e = ExpandedSQL{
		SQL:      SQLQuery(state.query),
		Args:     state.args,
		Types:    state.types,
		Expanded: true,
	}
end:
	return e, err
}

func expandNamed(query SQLQuery, args NamedArgs, types NamedTypes, strict bool, locate locateFunc) (e ExpandedSQL, err error) {
	var state expandState
	var placeholders Placeholders
	var errs []error

	e = ExpandedSQL{SQL: query, Args: args, Types: types}
	arrays := types.arrayKeys()

	placeholders = locate(query, NamedBindMode)
	state = newNamedExpandState(query, len(placeholders))
	for _, p := range placeholders {
		value, ok := args[p.Name]
		if !ok && strict {
			errs = append(errs, NewErr(ErrMissingParameter, "name", p.Name, "offset", p.Offset))
		}
		tag, ok := types[p.Name]
		if !ok {
			tag = Scalar(DefaultScalarType)
		}
		if strict && !tag.IsValid() {
			errs = append(errs, NewErr(ErrInvalidTypeTag, "name", p.Name, "type_tag", tag))
		}
		_, ok = arrays[p.Name]
		if !ok {
			state.appendScalar(value, tag)
			state.replaceToken(p.Offset, p.Len(), 1)
			continue
		}
		elems := expandElems(value)
		state.appendArray(elems, tag.Elem())
		state.replaceToken(p.Offset, p.Len(), len(elems))
	}
	err = CombineErrs(errs)
	if err != nil {
		goto end
	}

	e = ExpandedSQL{
		SQL:      SQLQuery(state.query),
		Args:     state.args,
		Types:    state.types,
		Expanded: true,
	}
end:
	return e, err
}

func checkTypeTags(types PositionalTypes) (err error) {
	var errs []error
	for i, tag := range types {
		if tag.IsValid() {
			continue
		}
		errs = append(errs, NewErr(ErrInvalidTypeTag, "ordinal", i, "type_tag", tag))
	}
	return CombineErrs(errs)
}
