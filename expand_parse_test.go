package sqlexpand

import (
	"testing"

	"github.com/pingcap/tidb/pkg/parser"
	_ "github.com/pingcap/tidb/pkg/parser/test_driver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExpand_ProducesParsableSQL checks expanded statements with a real SQL
// parser, including empty arrays that must not leave "IN ()" behind.
func TestExpand_ProducesParsableSQL(t *testing.T) {
	tests := []struct {
		name  string
		sql   SQLQuery
		args  Args
		types Types
	}{
		{
			name:  "positional int array",
			sql:   "SELECT * FROM users WHERE id IN (?)",
			args:  PositionalArgs{[]int{1, 2, 3}},
			types: PositionalTypes{IntegerArrayTag},
		},
		{
			name:  "positional empty array",
			sql:   "SELECT * FROM users WHERE id IN (?) AND status = ?",
			args:  PositionalArgs{[]int{}, "active"},
			types: PositionalTypes{IntegerArrayTag, StringTag},
		},
		{
			name:  "positional arrays with quoted question mark",
			sql:   "SELECT 'what?' AS q FROM users WHERE id IN (?) AND name IN (?)",
			args:  PositionalArgs{[]int{1, 2}, []string{"a", "b", "c"}},
			types: PositionalTypes{IntegerArrayTag, StringArrayTag},
		},
		{
			name:  "named arrays",
			sql:   "SELECT * FROM users WHERE id IN (:ids) AND org_id = :org AND tag IN (:tags)",
			args:  NamedArgs{"ids": []int{1, 2}, "org": 7, "tags": []string{"x"}},
			types: NamedTypes{"ids": IntegerArrayTag, "org": IntegerTag, "tags": StringArrayTag},
		},
		{
			name:  "named empty array",
			sql:   "DELETE FROM users WHERE id IN (:ids)",
			args:  NamedArgs{"ids": []int{}},
			types: NamedTypes{"ids": IntegerArrayTag},
		},
		{
			name:  "insert with literal colons",
			sql:   "INSERT INTO events (at, kind) VALUES ('12:30:00', :kind)",
			args:  NamedArgs{"kind": "login"},
			types: NamedTypes{"kind": StringTag},
		},
	}

	p := parser.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Expand(tt.sql, tt.args, tt.types)
			require.True(t, result.Expanded)

			stmts, _, err := p.Parse(result.QueryString(), "", "")
			require.NoError(t, err, "expanded SQL: %s", result.SQL)
			assert.Len(t, stmts, 1)
		})
	}
}
