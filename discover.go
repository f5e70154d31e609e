package ingest

import (
	"errors"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
)

// globBatch is the number of directory entries read per ReadDir call
const globBatch = 256

// Glob lazily yields the files directly inside dir whose name matches
// pattern. Entries are read from the directory in batches, so a flat
// directory with millions of files is never held in memory at once.
// A missing or unreadable dir, or a malformed pattern, yields nothing.
func Glob(dir, pattern string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return
		}

		d, err := os.Open(dir)
		if err != nil {
			return
		}
		defer d.Close()

		for {
			entries, err := d.ReadDir(globBatch)
			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				if ok, _ := filepath.Match(pattern, entry.Name()); !ok {
					continue
				}
				if !yield(filepath.Join(dir, entry.Name())) {
					return
				}
			}
			// io.EOF or a read error both end the listing
			if err != nil {
				return
			}
		}
	}
}

// Walk returns every file under dir, at any depth, whose name matches
// pattern. Paths are in traversal order. A dir that does not exist
// produces an empty result rather than an error.
func Walk(dir, pattern string) ([]string, error) {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, err
	}

	var matches []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		if ok, _ := filepath.Match(pattern, d.Name()); ok {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return matches, nil
}
