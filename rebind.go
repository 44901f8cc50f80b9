package sqlexpand

import (
	"fmt"
	"strings"
)

var (
	// QuestionFormat renders ? for MySQL and SQLite.
	QuestionFormat FormatParamFunc = func(int) string { return "?" }

	// DollarFormat renders $1, $2, ... for PostgreSQL.
	DollarFormat FormatParamFunc = func(i int) string { return fmt.Sprintf("$%d", i) }

	// AtPFormat renders @p1, @p2, ... for SQL Server.
	AtPFormat FormatParamFunc = func(i int) string { return fmt.Sprintf("@p%d", i) }
)

// FormatParamFuncFor returns the FormatParamFunc registered under name:
// "question", "dollar" or "atp".
func FormatParamFuncFor(name string) (ff FormatParamFunc, ok bool) {
	switch strings.ToLower(name) {
	case "", "question", "mysql", "sqlite":
		ff, ok = QuestionFormat, true
	case "dollar", "postgres":
		ff, ok = DollarFormat, true
	case "atp", "sqlserver":
		ff, ok = AtPFormat, true
	}
	return ff, ok
}

type rebindEdit struct {
	start, end int
	repl       string
}

// Rebind replaces every unquoted ? in query with formatFunc(i), i being the
// 1-based position of the placeholder.
//
// FormatParamFunc examples:
//
//	Postgres: func(i int) string { return fmt.Sprintf("$%d", i) }
//	MySQL/SQLite: func(int) string { return "?" }
//	SQL Server: func(i int) string { return fmt.Sprintf("@p%d", i) }
func Rebind(query SQLQuery, formatFunc FormatParamFunc) (SQLQuery, error) {
	return rebind(query, Locate(query, PositionalBindMode), formatFunc)
}

func rebind(query SQLQuery, placeholders Placeholders, formatFunc FormatParamFunc) (sql SQLQuery, err error) {
	var edits []rebindEdit

	if formatFunc == nil {
		err = ErrFormatParamFuncRequired
		goto end
	}
	sql = query
	if len(placeholders) == 0 {
		goto end
	}
	edits = make([]rebindEdit, len(placeholders))
	for i, p := range placeholders {
		edits[i] = rebindEdit{
			start: p.Offset,
			end:   p.Offset + p.Len(),
			repl:  formatFunc(i + 1),
		}
	}
	sql = buildSQL(string(query), edits)
end:
	return sql, err
}

func buildSQL(src string, edits []rebindEdit) SQLQuery {
	var b strings.Builder
	var last int

	last = 0
	for _, e := range edits {
		if e.start > last {
			b.WriteString(src[last:e.start])
		}
		b.WriteString(e.repl)
		last = e.end
	}
	if last < len(src) {
		b.WriteString(src[last:])
	}
	return SQLQuery(b.String())
}
