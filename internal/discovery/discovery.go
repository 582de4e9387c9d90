// Package discovery scans a directory for unit-test benches following the
// svut naming conventions.
package discovery

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

var supportedPrefixes = []string{"tb_", "ts_", "testbench_", "testsuite_", "unit_test_"}

var supportedSuffixes = []string{
	"_unit_test.v", "_unit_test.sv",
	"_testbench.v", "_testbench.sv",
	"_testsuite.v", "_testsuite.sv",
	"_tb.v", "_tb.sv", "_ts.v", "_ts.sv",
}

// FindTestbenches returns the testbench files found in dir, recognized by
// the conventional name prefixes and suffixes. A file matching both a
// prefix and a suffix is reported once. The result is sorted so batch
// order is deterministic.
func FindTestbenches(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s for testbenches: %w", dir, err)
	}

	seen := make(map[string]bool)
	var files []string

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !matchesConvention(name) {
			continue
		}
		if !seen[name] {
			seen[name] = true
			files = append(files, name)
		}
	}

	sort.Strings(files)
	return files, nil
}

func matchesConvention(name string) bool {
	for _, suffix := range supportedSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	for _, prefix := range supportedPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
