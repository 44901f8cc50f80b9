package test

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/mikeschinkel/go-sqlexpand"
)

// TestFuzzCorpus replays each saved FuzzLocate corpus file with timeout detection.
func TestFuzzCorpus(t *testing.T) {
	corpusDir := "testdata/fuzz/FuzzLocate"
	entries, err := os.ReadDir(corpusDir)
	if os.IsNotExist(err) {
		t.Skipf("no fuzz corpus at %s", corpusDir)
	}
	if err != nil {
		t.Fatalf("Failed to read corpus directory: %v", err)
	}

	infiniteLoops := []string{}
	panics := []string{}
	successes := []string{}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		input, ok := readCorpusString(t, filepath.Join(corpusDir, entry.Name()))
		if !ok {
			continue
		}

		done := make(chan struct{})
		var result sqlexpand.Placeholders
		var panicErr error

		go func() {
			defer func() {
				if r := recover(); r != nil {
					panicErr = fmt.Errorf("PANIC: %v", r)
				}
				close(done)
			}()

			result = sqlexpand.Locate(sqlexpand.SQLQuery(input), sqlexpand.NamedBindMode)
		}()

		select {
		case <-done:
			if panicErr != nil {
				panics = append(panics, entry.Name())
				t.Errorf("%-20s %v", entry.Name(), panicErr)
			} else {
				successes = append(successes, entry.Name())
				t.Logf("%-20s OK: %d placeholders", entry.Name(), len(result))
			}
		case <-time.After(10 * time.Second):
			infiniteLoops = append(infiniteLoops, entry.Name())
			t.Errorf("%-20s INFINITE LOOP: %q", entry.Name(), input)
		}
	}

	// Summary
	t.Logf("\n=== SUMMARY ===")
	t.Logf("Total files: %d", len(entries))
	t.Logf("Infinite loops: %d", len(infiniteLoops))
	t.Logf("Panics: %d", len(panics))
	t.Logf("Successes: %d", len(successes))

	if len(infiniteLoops) > 0 {
		t.Logf("\nFiles causing infinite loops:")
		for _, name := range infiniteLoops {
			t.Logf("  - %s", name)
		}
		t.Fatalf("Found %d infinite loop(s)", len(infiniteLoops))
	}
}

// readCorpusString returns the string(...) value on the second line of a Go
// fuzz corpus file.
func readCorpusString(t *testing.T, path string) (input string, ok bool) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Logf("Failed to open %s: %v", path, err)
		return "", false
	}
	defer func() {
		err := f.Close()
		if err != nil {
			t.Error(err.Error())
		}
	}()

	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if lineNum != 2 { // Second line contains string("...")
			continue
		}
		line := scanner.Text()
		if !strings.HasPrefix(line, "string(") || !strings.HasSuffix(line, ")") {
			break
		}
		unquoted, err := strconv.Unquote(line[7 : len(line)-1])
		if err != nil {
			t.Logf("Error unquoting %s: %v", path, err)
			break
		}
		return unquoted, unquoted != ""
	}
	return "", false
}
