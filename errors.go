// Package sqlexpand/errors defines error values used throughout the sqlexpand package.
// These sentinel errors provide specific error types for different failure modes
// during placeholder location, expansion and rebinding.
package sqlexpand

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for various sqlexpand operations.
var (
	// ErrFormatParamFuncRequired indicates that Rebind was called without a FormatParamFunc.
	ErrFormatParamFuncRequired = errors.New("format param func is required")

	// ErrParameterTypeCountMismatch indicates that the number of parameters does
	// not match the number of declared types.
	ErrParameterTypeCountMismatch = errors.New("parameter count does not match type count")

	// ErrBindModeMismatch indicates that parameters and types use different
	// binding modes, e.g. named parameters with positional types.
	ErrBindModeMismatch = errors.New("parameters and types use different bind modes")

	// ErrMissingParameter indicates that a named placeholder has no bound value.
	ErrMissingParameter = errors.New("missing parameter")

	ErrInvalidTypeTag = errors.New("invalid type tag")

	ErrInvalidTypeCode = errors.New("invalid type code")

	ErrInvalidBindMode = errors.New("invalid bind mode")
)

// NewErr builds an error from a mix of errors and key/value pairs, e.g.
//
//	NewErr(ErrMissingParameter, "name", name, "offset", 12)
//
// errors.Is matches every error passed in.
func NewErr(parts ...any) error {
	e := &contextErr{}
	for i := 0; i < len(parts); i++ {
		switch p := parts[i].(type) {
		case nil:
			continue
		case error:
			e.errs = append(e.errs, p)
		case string:
			if i+1 >= len(parts) {
				e.kvs = append(e.kvs, errKV{key: "extra", value: p})
				continue
			}
			e.kvs = append(e.kvs, errKV{key: p, value: parts[i+1]})
			i++
		default:
			e.kvs = append(e.kvs, errKV{key: "extra", value: p})
		}
	}
	return e
}

// CombineErrs joins errs into a single error, or returns nil when errs holds
// no non-nil errors.
func CombineErrs(errs []error) error {
	return errors.Join(errs...)
}

type errKV struct {
	key   string
	value any
}

type contextErr struct {
	errs []error
	kvs  []errKV
}

func (e *contextErr) Error() string {
	var b strings.Builder
	for i, err := range e.errs {
		if i > 0 {
			b.WriteString(": ")
		}
		b.WriteString(err.Error())
	}
	if len(e.kvs) == 0 {
		goto end
	}
	b.WriteString(" [")
	for i, kv := range e.kvs {
		if i > 0 {
			b.WriteString(", ")
		}
		_, _ = fmt.Fprintf(&b, "%s=%v", kv.key, kv.value)
	}
	b.WriteString("]")
end:
	return b.String()
}

func (e *contextErr) Unwrap() []error {
	return e.errs
}
