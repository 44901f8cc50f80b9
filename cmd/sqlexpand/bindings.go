package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mikeschinkel/go-sqlexpand"
)

// decodeBindings decodes --args and --types. Numbers become int64 unless
// their declared type is real.
func decodeBindings(argsJSON, typesJSON string) (args sqlexpand.Args, types sqlexpand.Types, err error) {
	var raw any

	err = decodeJSON(argsJSON, &raw)
	if err != nil {
		err = fmt.Errorf("invalid --args: %w", err)
		goto end
	}
	switch rv := raw.(type) {
	case []any:
		var pt sqlexpand.PositionalTypes
		err = decodeJSON(typesJSON, &pt)
		if err != nil {
			err = fmt.Errorf("invalid --types: %w", err)
			goto end
		}
		pa := make(sqlexpand.PositionalArgs, len(rv))
		for i, v := range rv {
			tag := sqlexpand.AnyTag
			if i < len(pt) {
				tag = pt[i]
			}
			pa[i] = normalizeValue(v, tag)
		}
		args, types = pa, pt
	case map[string]any:
		var nt sqlexpand.NamedTypes
		err = decodeJSON(typesJSON, &nt)
		if err != nil {
			err = fmt.Errorf("invalid --types: %w", err)
			goto end
		}
		na := make(sqlexpand.NamedArgs, len(rv))
		for name, v := range rv {
			tag, ok := nt[sqlexpand.Identifier(name)]
			if !ok {
				tag = sqlexpand.AnyTag
			}
			na[sqlexpand.Identifier(name)] = normalizeValue(v, tag)
		}
		args, types = na, nt
	default:
		err = fmt.Errorf("invalid --args: expected a JSON array or object, got %s", strings.TrimSpace(argsJSON))
	}
end:
	return args, types, err
}

func normalizeValue(v any, tag sqlexpand.TypeTag) any {
	switch tv := v.(type) {
	case json.Number:
		return normalizeNumber(tv, tag.Scalar)
	case []any:
		out := make([]any, len(tv))
		for i, e := range tv {
			out[i] = normalizeValue(e, tag.Elem())
		}
		return out
	}
	return v
}

func normalizeNumber(n json.Number, st sqlexpand.ScalarType) any {
	if st != sqlexpand.RealScalar {
		i, err := n.Int64()
		if err == nil {
			return i
		}
	}
	f, err := n.Float64()
	if err != nil {
		return n.String()
	}
	return f
}
