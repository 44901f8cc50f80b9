// Command sqlexpand locates placeholders in a SQL statement, expands array
// parameters into one placeholder per element and rebinds ? placeholders for
// a target driver.
//
// Usage:
//
//	sqlexpand locate --mode named "SELECT * FROM t WHERE id IN (:ids)"
//	sqlexpand expand --args '{"ids":[1,2,3]}' --types '{"ids":"int[]"}' "SELECT * FROM t WHERE id IN (:ids)"
//	sqlexpand expand --args '[[1,2],"x"]' --types '["int[]","string"]' --format dollar "WHERE a IN (?) AND b = ?"
//	sqlexpand rebind --format dollar "SELECT * FROM t WHERE a = ? AND b = ?"
//
// Set LOG_LEVEL=debug to see pass-through decisions on stderr.
package main

import (
	"os"
)

func main() {
	logger := newLogger(os.Getenv("LOG_LEVEL"), os.Stderr)
	cmd := newRootCommand(logger)
	err := cmd.Execute()
	if err != nil {
		logger.Error("sqlexpand failed", "error", err)
		os.Exit(1)
	}
}
