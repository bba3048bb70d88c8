package main

import (
	"fmt"
	"io"
	"os"
)

// fetcher reads an input from a local file, or from stdin for "-" or an
// empty path. This is CLI-specific logic and is not part of the core library.
type fetcher struct {
	stdin io.Reader
}

// newFetcher creates a new fetcher reading stdin from r
func newFetcher(r io.Reader) *fetcher {
	return &fetcher{stdin: r}
}

// fetch returns the raw bytes of path.
func (f *fetcher) fetch(path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(f.stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read from stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return data, nil
}
