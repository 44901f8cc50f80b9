package sqlexpand

import (
	"strings"
)

// ScalarType is the declared type of a single parameter value.
type ScalarType string

func (st ScalarType) Normalize() ScalarType {
	switch st {
	case IntScalar:
		return IntegerScalar
	case TextScalar:
		return StringScalar
	}
	return st
}

const (
	AnyScalar     ScalarType = "any"
	IntegerScalar ScalarType = "integer"
	IntScalar     ScalarType = "int"
	RealScalar    ScalarType = "real"
	StringScalar  ScalarType = "string"
	TextScalar    ScalarType = "text"
	JSONScalar    ScalarType = "json"
	BoolScalar    ScalarType = "bool"
	TimeScalar    ScalarType = "time"
	BlobScalar    ScalarType = "blob"
)

// TypeCode is the legacy numeric encoding of a TypeTag. The code of an array
// type is the code of its element type plus ArrayTypeOffset.
type TypeCode int

var scalarCodes = map[ScalarType]TypeCode{
	IntegerScalar: 1,
	RealScalar:    2,
	StringScalar:  3,
	JSONScalar:    4,
	BoolScalar:    5,
	TimeScalar:    6,
	BlobScalar:    7,
	AnyScalar:     8,
}

// TypeTag is the declared type of a parameter. When Array is set the
// parameter is bound to a sequence of Scalar values and is expanded into one
// placeholder per element. Only integer and string have array variants.
type TypeTag struct {
	Scalar ScalarType
	Array  bool
}

type TypeTags []TypeTag

var (
	AnyTag          = Scalar(AnyScalar)
	IntegerTag      = Scalar(IntegerScalar)
	RealTag         = Scalar(RealScalar)
	StringTag       = Scalar(StringScalar)
	JSONTag         = Scalar(JSONScalar)
	BoolTag         = Scalar(BoolScalar)
	TimeTag         = Scalar(TimeScalar)
	BlobTag         = Scalar(BlobScalar)
	IntegerArrayTag = ArrayOf(IntegerScalar)
	StringArrayTag  = ArrayOf(StringScalar)
)

func Scalar(st ScalarType) TypeTag {
	return TypeTag{Scalar: st.Normalize()}
}

func ArrayOf(st ScalarType) TypeTag {
	return TypeTag{Scalar: st.Normalize(), Array: true}
}

func (t TypeTag) IsArray() bool {
	return t.Array
}

// Elem returns the scalar tag of an array tag, or t itself for a scalar tag.
func (t TypeTag) Elem() TypeTag {
	return TypeTag{Scalar: t.Scalar}
}

func (t TypeTag) IsValid() (valid bool) {
	_, ok := scalarCodes[t.Scalar]
	if !ok {
		goto end
	}
	if !t.Array {
		valid = true
		goto end
	}
	switch t.Scalar {
	case IntegerScalar, StringScalar:
		valid = true
	}
end:
	return valid
}

func (t TypeTag) String() string {
	if t.Array {
		return string(t.Scalar) + "[]"
	}
	return string(t.Scalar)
}

// Code returns the legacy numeric code of t, or 0 if t is not valid.
func (t TypeTag) Code() (code TypeCode) {
	if !t.IsValid() {
		goto end
	}
	code = scalarCodes[t.Scalar]
	if t.Array {
		code += ArrayTypeOffset
	}
end:
	return code
}

func (t TypeTag) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TypeTag) UnmarshalText(text []byte) (err error) {
	*t, err = ParseTypeTag(string(text))
	return err
}

// TypeTagFromCode decodes a legacy numeric type code.
func TypeTagFromCode(code TypeCode) (t TypeTag, err error) {
	elem := code
	array := code > ArrayTypeOffset
	if array {
		elem -= ArrayTypeOffset
	}
	for st, c := range scalarCodes {
		if c != elem {
			continue
		}
		t = TypeTag{Scalar: st, Array: array}
		break
	}
	if !t.IsValid() {
		err = NewErr(ErrInvalidTypeCode, "type_code", int(code))
		t = TypeTag{}
	}
	return t, err
}

// ParseTypeTag parses names such as "int", "string", "int[]" or "string[]".
func ParseTypeTag(s string) (t TypeTag, err error) {
	var name string
	if s == "" {
		t = Scalar(DefaultScalarType)
		goto end
	}
	name = strings.ToLower(strings.TrimSpace(s))
	if strings.HasSuffix(name, "[]") {
		t = ArrayOf(ScalarType(strings.TrimSuffix(name, "[]")))
	} else {
		t = Scalar(ScalarType(name))
	}
	if !t.IsValid() {
		err = NewErr(ErrInvalidTypeTag, "type_tag", s)
		t = TypeTag{}
	}
end:
	return t, err
}

func ParseTypeTags(ss []string) (tags TypeTags, err error) {
	var errs []error
	if len(ss) == 0 {
		goto end
	}
	tags = make(TypeTags, len(ss))
	for i, s := range ss {
		tag, err := ParseTypeTag(s)
		if err != nil {
			errs = append(errs, NewErr(err, "index", i))
			continue
		}
		tags[i] = tag
	}
	err = CombineErrs(errs)
end:
	return tags, err
}
