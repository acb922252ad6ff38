// Package series assigns invoice numbers from the contents of the
// output directory and guards the final write against collisions.
// Numbering is content-addressed: the next number is the series start
// plus the count of existing entries sharing the invoice's slug prefix.
package series

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrDocumentExists is returned when the computed target filename is
// already present in the output directory.
var ErrDocumentExists = errors.New("a document with this filename already exists")

// Resolver numbers and writes invoices into one output directory.
type Resolver struct {
	dir string
}

// NewResolver validates that dir exists and is a directory.
func NewResolver(dir string) (*Resolver, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("output directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("output directory %s is not a directory", dir)
	}
	return &Resolver{dir: dir}, nil
}

// Dir returns the resolved output directory.
func (r *Resolver) Dir() string {
	return r.dir
}

// NextNumber returns start plus the count of directory entries whose
// name begins with slugPrefix. Re-running against a directory holding N
// matching documents yields start+N.
func (r *Resolver) NextNumber(slugPrefix string, start uint64) (uint64, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return 0, fmt.Errorf("listing %s: %w", r.dir, err)
	}
	var count uint64
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), slugPrefix) {
			count++
		}
	}
	return start + count, nil
}

// Write stores the rendered document under filename and returns the
// canonical absolute path. The existence check plus the exclusive
// create means a colliding name fails with ErrDocumentExists and never
// overwrites a prior invoice.
func (r *Resolver) Write(filename string, content []byte) (string, error) {
	target := filepath.Join(r.dir, filename)
	if _, err := os.Stat(target); err == nil {
		return "", fmt.Errorf("%s: %w", target, ErrDocumentExists)
	}

	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("%s: %w", target, ErrDocumentExists)
		}
		return "", fmt.Errorf("creating %s: %w", target, err)
	}

	if _, err := f.Write(content); err != nil {
		f.Close()
		os.Remove(target)
		return "", fmt.Errorf("writing %s: %w", target, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", target, err)
	}

	abs, err := filepath.Abs(target)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", target, err)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}
	return abs, nil
}

// Issued lists the rendered documents in the output directory, sorted
// by name. A non-empty slugPrefix narrows the listing to one series.
func (r *Resolver) Issued(slugPrefix string) ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", r.dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".html") {
			continue
		}
		if slugPrefix != "" && !strings.HasPrefix(e.Name(), slugPrefix) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}
