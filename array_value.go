package sqlexpand

import (
	"reflect"
)

// arrayElems returns the elements of an array-typed parameter value. Slices
// and arrays yield their elements, nil yields none and any other value is a
// one-element array. []byte is a single value, not a list of bytes.
func arrayElems(v any) (elems []any) {
	var rv reflect.Value

	switch tv := v.(type) {
	case nil:
		goto end
	case []any:
		elems = tv
		goto end
	case []byte:
		elems = []any{tv}
		goto end
	}

	rv = reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		elems = make([]any, rv.Len())
		for i := range elems {
			elems[i] = rv.Index(i).Interface()
		}
	case reflect.Pointer:
		if rv.IsNil() {
			goto end
		}
		elems = arrayElems(rv.Elem().Interface())
	default:
		elems = []any{v}
	}
end:
	return elems
}
