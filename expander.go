package sqlexpand

import (
	"io"
	"log/slog"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

type ExpanderArgs struct {
	// CacheSize is the number of located statements to keep. Zero or less
	// means DefaultCacheSize.
	CacheSize int

	// Strict makes Expand fail instead of passing its inputs through.
	Strict bool

	Logger *slog.Logger
}

type cacheEntry struct {
	stmt         SQLQuery
	mode         BindMode
	placeholders Placeholders
}

// Expander is Locate, Expand and Rebind with an LRU cache of located
// placeholders, for callers that preprocess the same statements repeatedly.
// It is safe for concurrent use.
type Expander struct {
	cache  *lru.Cache[uint64, cacheEntry]
	strict bool
	logger *slog.Logger
}

func NewExpander(args ExpanderArgs) (x *Expander, err error) {
	var cache *lru.Cache[uint64, cacheEntry]

	size := args.CacheSize
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err = lru.New[uint64, cacheEntry](size)
	if err != nil {
		goto end
	}
	x = &Expander{
		cache:  cache,
		strict: args.Strict,
		logger: args.Logger,
	}
	if x.logger == nil {
		x.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
end:
	return x, err
}

// Locate is the cached form of the package-level Locate.
func (x *Expander) Locate(stmt SQLQuery, mode BindMode) Placeholders {
	key := cacheKey(stmt, mode)
	entry, ok := x.cache.Get(key)
	if ok && entry.stmt == stmt && entry.mode == mode {
		return entry.placeholders.clone()
	}
	x.logger.Debug("locate cache miss",
		"mode", mode,
		"length", len(stmt),
	)
	ps := Locate(stmt, mode)
	x.cache.Add(key, cacheEntry{
		stmt:         stmt,
		mode:         mode,
		placeholders: ps.clone(),
	})
	return ps
}

// Expand expands query like the package-level Expand, or like ExpandStrict
// when the Expander was created with ExpanderArgs.Strict. Without Strict the
// returned error is always nil.
func (x *Expander) Expand(query SQLQuery, args Args, types Types) (e ExpandedSQL, err error) {
	e, err = expand(query, args, types, x.strict, x.Locate)
	if err != nil {
		x.logger.Debug("expand failed", "error", err)
		goto end
	}
	if e.Expanded {
		goto end
	}
	err = checkExpandable(args, types)
	if err == nil {
		x.logger.Debug("expand passed inputs through", "reason", "no array parameters")
		goto end
	}
	x.logger.Debug("expand passed inputs through", "reason", err)
	err = nil
end:
	return e, err
}

func (x *Expander) Rebind(query SQLQuery, formatFunc FormatParamFunc) (SQLQuery, error) {
	return rebind(query, x.Locate(query, PositionalBindMode), formatFunc)
}

// Len returns the number of cached statements.
func (x *Expander) Len() int {
	return x.cache.Len()
}

func (x *Expander) Purge() {
	x.cache.Purge()
}

func cacheKey(stmt SQLQuery, mode BindMode) uint64 {
	d := xxhash.New()
	_, _ = d.Write([]byte{byte(mode)})
	_, _ = d.WriteString(string(stmt))
	return d.Sum64()
}
