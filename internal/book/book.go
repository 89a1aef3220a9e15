// Package book manages notebook files: single sqlite databases named
// <name>.book, discovered in the user data directory or the current working
// directory.
package book

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/quillbook/quill/internal/store"
)

const fileExt = ".book"

// Notebook is an opened notebook: its display name, the backing file and the
// store holding the only database handle for the session.
type Notebook struct {
	Name  string
	Path  string
	Store *store.Store
}

// DataDir returns the per-user quill data directory, creating it on first use.
func DataDir() (string, error) {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve user data directory: %w", err)
		}
		base = filepath.Join(home, ".local", "share")
	}
	dir := filepath.Join(base, "quill")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create data directory: %w", err)
	}
	return dir, nil
}

// Create makes a new notebook file in dir and applies the schema. It refuses
// to overwrite an existing notebook.
func Create(name, dir string) (*Notebook, error) {
	path := filepath.Join(dir, name+fileExt)
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("a notebook named %q already exists", name)
	}

	s, err := store.Open(path)
	if err != nil {
		return nil, err
	}

	log.Printf("created notebook %q at %s", name, path)
	return &Notebook{Name: name, Path: path, Store: s}, nil
}

// Open looks for <name>.book first in dir, then in the current working
// directory.
func Open(name, dir string) (*Notebook, error) {
	path := filepath.Join(dir, name+fileExt)
	if _, err := os.Stat(path); err != nil {
		cwd, cwdErr := os.Getwd()
		if cwdErr != nil {
			return nil, fmt.Errorf("resolve working directory: %w", cwdErr)
		}
		local := filepath.Join(cwd, name+fileExt)
		if _, err := os.Stat(local); err != nil {
			return nil, fmt.Errorf("no notebook named %q was found", name)
		}
		path = local
	}

	s, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	return &Notebook{Name: name, Path: path, Store: s}, nil
}

// Delete removes the notebook file from dir.
func Delete(name, dir string) error {
	path := filepath.Join(dir, name+fileExt)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("no notebook named %q exists", name)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("delete notebook: %w", err)
	}
	log.Printf("deleted notebook %q", name)
	return nil
}

// List returns the names of the notebooks stored in dir, sorted.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read data directory: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), fileExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), fileExt))
	}
	sort.Strings(names)
	return names, nil
}

// Close releases the notebook's database handle.
func (n *Notebook) Close() error {
	return n.Store.Close()
}
