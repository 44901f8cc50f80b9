package sqlexpand

import (
	"bytes"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExpander(t *testing.T, args ExpanderArgs) *Expander {
	t.Helper()
	x, err := NewExpander(args)
	require.NoError(t, err)
	return x
}

func TestExpander_Locate(t *testing.T) {
	x := newTestExpander(t, ExpanderArgs{CacheSize: 2})
	sql := SQLQuery("SELECT * FROM t WHERE a = ? AND b = :b")

	first := x.Locate(sql, PositionalBindMode)
	assert.Equal(t, 1, x.Len())
	assert.Equal(t, Locate(sql, PositionalBindMode), first)

	// Same statement, other mode, is a separate entry.
	named := x.Locate(sql, NamedBindMode)
	assert.Equal(t, 2, x.Len())
	assert.Equal(t, Locate(sql, NamedBindMode), named)

	// Mutating a returned slice must not corrupt the cache.
	first[0].Offset = -1
	assert.Equal(t, Locate(sql, PositionalBindMode), x.Locate(sql, PositionalBindMode))

	x.Locate("SELECT ?", PositionalBindMode)
	assert.Equal(t, 2, x.Len())

	x.Purge()
	assert.Equal(t, 0, x.Len())
}

func TestExpander_Expand(t *testing.T) {
	x := newTestExpander(t, ExpanderArgs{})
	tests := []struct {
		sql   SQLQuery
		args  Args
		types Types
	}{
		{
			sql:   "WHERE id IN (?)",
			args:  PositionalArgs{[]int{1, 2, 3}},
			types: PositionalTypes{IntegerArrayTag},
		},
		{
			sql:   "WHERE id IN (:ids) AND x = :x",
			args:  NamedArgs{"ids": []int{1, 2}, "x": 5},
			types: NamedTypes{"ids": IntegerArrayTag, "x": IntegerTag},
		},
		{
			sql:   "WHERE id IN (?) AND x = ?",
			args:  PositionalArgs{[]int{1, 2}, 3},
			types: PositionalTypes{IntegerArrayTag},
		},
		{
			sql:   "WHERE a = :a AND b = :b",
			args:  NamedArgs{"a": 1, "c": 2},
			types: NamedTypes{"a": IntegerTag, "c": IntegerTag},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.sql), func(t *testing.T) {
			// Twice: once scanning, once from the cache.
			for i := 0; i < 2; i++ {
				result, err := x.Expand(tt.sql, tt.args, tt.types)
				require.NoError(t, err)
				if diff := cmp.Diff(Expand(tt.sql, tt.args, tt.types), result); diff != "" {
					t.Errorf("Expander.Expand() mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestExpander_Strict(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	x := newTestExpander(t, ExpanderArgs{Strict: true, Logger: logger})

	result, err := x.Expand("WHERE id IN (?) AND x = ?",
		PositionalArgs{[]int{1, 2}, 3},
		PositionalTypes{IntegerArrayTag},
	)
	assert.True(t, errors.Is(err, ErrParameterTypeCountMismatch))
	assert.False(t, result.Expanded)
	assert.Contains(t, buf.String(), "expand failed")

	result, err = x.Expand("WHERE id IN (?)",
		PositionalArgs{[]int{1, 2}},
		PositionalTypes{IntegerArrayTag},
	)
	require.NoError(t, err)
	assert.Equal(t, SQLQuery("WHERE id IN (?, ?)"), result.SQL)
}

func TestExpander_LogsPassThrough(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	x := newTestExpander(t, ExpanderArgs{Logger: logger})

	_, err := x.Expand("WHERE a = ?", PositionalArgs{1}, PositionalTypes{IntegerTag})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "no array parameters")

	buf.Reset()
	_, err = x.Expand("WHERE a = ?", PositionalArgs{1}, PositionalTypes{})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "parameter count does not match type count")
}

func TestExpander_Rebind(t *testing.T) {
	x := newTestExpander(t, ExpanderArgs{})

	sql, err := x.Rebind("SELECT '?' FROM t WHERE a = ? AND b = ?", DollarFormat)
	require.NoError(t, err)
	assert.Equal(t, SQLQuery("SELECT '?' FROM t WHERE a = $1 AND b = $2"), sql)

	_, err = x.Rebind("SELECT ?", nil)
	assert.True(t, errors.Is(err, ErrFormatParamFuncRequired))
}

func TestExpander_Concurrent(t *testing.T) {
	x := newTestExpander(t, ExpanderArgs{CacheSize: 4})
	sqls := []SQLQuery{
		"WHERE a IN (?)",
		"WHERE a IN (?) AND b = ?",
		"SELECT ? FROM t WHERE a IN (?)",
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sql := sqls[i%len(sqls)]
			n := len(Locate(sql, PositionalBindMode))
			args := make(PositionalArgs, n)
			types := make(PositionalTypes, n)
			for j := range args {
				args[j] = []int{i, i + 1}
				types[j] = IntegerArrayTag
			}
			result, err := x.Expand(sql, args, types)
			assert.NoError(t, err)
			assert.Len(t, result.Args, 2*n)
		}(i)
	}
	wg.Wait()
}
