package sqlexpand

const (
	// DefaultCacheSize is the number of located statements an Expander keeps
	// when ExpanderArgs.CacheSize is not set.
	DefaultCacheSize = 1000

	// ArrayTypeOffset is the distance between the legacy numeric code of an
	// array type and the code of its element type.
	ArrayTypeOffset TypeCode = 100

	// DefaultScalarType is used for named placeholders that have no declared type.
	DefaultScalarType = AnyScalar

	positionalToken = '?'
	namedToken      = ':'
	tokenSeparator  = ", "
)
