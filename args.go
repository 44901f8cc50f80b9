package sqlexpand

// Args is a parameter collection: PositionalArgs or NamedArgs.
type Args interface {
	BindMode() BindMode
	Len() int
	isArgs()
}

// Types is a type collection parallel to an Args: PositionalTypes or NamedTypes.
type Types interface {
	BindMode() BindMode
	Len() int
	isTypes()
}

// PositionalArgs binds values to ? placeholders by 0-based ordinal.
type PositionalArgs []any

// NamedArgs binds values to :name placeholders. A name may be used by more
// than one placeholder.
type NamedArgs map[Identifier]any

// PositionalTypes declares the type of each PositionalArgs value.
type PositionalTypes []TypeTag

// NamedTypes declares the type of each NamedArgs value.
type NamedTypes map[Identifier]TypeTag

var (
	_ Args  = PositionalArgs(nil)
	_ Args  = NamedArgs(nil)
	_ Types = PositionalTypes(nil)
	_ Types = NamedTypes(nil)
)

func (PositionalArgs) BindMode() BindMode  { return PositionalBindMode }
func (a PositionalArgs) Len() int          { return len(a) }
func (PositionalArgs) isArgs()             {}
func (NamedArgs) BindMode() BindMode       { return NamedBindMode }
func (a NamedArgs) Len() int               { return len(a) }
func (NamedArgs) isArgs()                  {}
func (PositionalTypes) BindMode() BindMode { return PositionalBindMode }
func (t PositionalTypes) Len() int         { return len(t) }
func (PositionalTypes) isTypes()           {}
func (NamedTypes) BindMode() BindMode      { return NamedBindMode }
func (t NamedTypes) Len() int              { return len(t) }
func (NamedTypes) isTypes()                {}

// arrayKeys returns the ordinals whose declared type is an array type.
func (t PositionalTypes) arrayKeys() map[int]struct{} {
	keys := make(map[int]struct{})
	for i, tag := range t {
		if !tag.IsArray() {
			continue
		}
		keys[i] = struct{}{}
	}
	return keys
}

// arrayKeys returns the names whose declared type is an array type.
func (t NamedTypes) arrayKeys() map[Identifier]struct{} {
	keys := make(map[Identifier]struct{})
	for name, tag := range t {
		if !tag.IsArray() {
			continue
		}
		keys[name] = struct{}{}
	}
	return keys
}
