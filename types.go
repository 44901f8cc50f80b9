// Package sqlexpand preprocesses SQL statements before they are handed to a
// database driver. It locates ? and :name placeholders outside of quoted
// literals and expands parameters bound to array values into one placeholder
// per element (e.g. for IN (...) clauses), keeping the statement, the
// parameter values and their declared types aligned.
//
// All offsets are byte offsets into the statement.
package sqlexpand

// Identifier is a placeholder name: one or more ASCII letters, digits or
// underscores, e.g. id, user_id, 2fa or _x. Names are case-sensitive.
type Identifier string

// SQLQuery is for the generic form of SQL query which can be for SQLite3,
// Postgres, MySQL, etc.
type SQLQuery string

// FormatParamFunc renders the placeholder for the 1-based parameter index i.
type FormatParamFunc = func(i int) string
