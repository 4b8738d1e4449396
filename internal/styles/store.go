package styles

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	// ErrStyleNotFound is returned when a style name matches neither a
	// default nor a custom file.
	ErrStyleNotFound = errors.New("style not found")
	// ErrDefaultStyle is returned on attempts to delete a built-in style.
	ErrDefaultStyle = errors.New("cannot delete default style")
)

// Store serves style descriptors: the immutable built-in set plus custom
// styles persisted as one JSON file per style under dir. Defaults always
// shadow same-named custom files on read.
type Store struct {
	mu       sync.Mutex
	dir      string
	defaults map[string]Descriptor
}

// NewStore creates a store rooted at dir. The directory is created if
// missing; default files are only written by an explicit EnsureDefaults
// call.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create styles directory: %w", err)
	}
	return &Store{dir: dir, defaults: defaultStyles()}, nil
}

// EnsureDefaults materializes each built-in style as a JSON file,
// skipping files that already exist.
func (s *Store) EnsureDefaults() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for name, desc := range s.defaults {
		path := s.path(name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := writeDescriptor(path, desc); err != nil {
			return fmt.Errorf("write default style %s: %w", name, err)
		}
	}
	return nil
}

// List returns all known styles keyed by name, defaults first, then any
// custom files not shadowing a default.
func (s *Store) List() (map[string]Overview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]Overview, len(s.defaults))
	for name, desc := range s.defaults {
		out[name] = Overview{Name: desc.Name, Description: desc.Description, Source: SourceDefault}
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read styles directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".json")
		if _, ok := out[name]; ok {
			continue
		}
		desc, err := readDescriptor(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			// Unreadable custom file: skip it rather than failing the listing.
			continue
		}
		displayName := desc.Name
		if displayName == "" {
			displayName = name
		}
		description := desc.Description
		if description == "" {
			description = "Custom style"
		}
		out[name] = Overview{Name: displayName, Description: description, Source: SourceCustom}
	}

	return out, nil
}

// Get returns the descriptor and source tag for a style name, defaults
// first.
func (s *Store) Get(name string) (Descriptor, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(name)
}

// get is Get without locking. Callers must hold mu.
func (s *Store) get(name string) (Descriptor, string, error) {
	if desc, ok := s.defaults[name]; ok {
		return cloneDescriptor(desc), SourceDefault, nil
	}

	desc, err := readDescriptor(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return Descriptor{}, "", fmt.Errorf("%w: %s", ErrStyleNotFound, name)
		}
		return Descriptor{}, "", fmt.Errorf("read style %s: %w", name, err)
	}
	return desc, SourceCustom, nil
}

// Put writes a custom style file, creating or replacing it.
func (s *Store) Put(name string, desc Descriptor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := writeDescriptor(s.path(name), desc); err != nil {
		return fmt.Errorf("write style %s: %w", name, err)
	}
	return nil
}

// Delete removes a custom style. Built-in styles cannot be deleted.
func (s *Store) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.defaults[name]; ok {
		return fmt.Errorf("%w: %s", ErrDefaultStyle, name)
	}
	err := os.Remove(s.path(name))
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrStyleNotFound, name)
	}
	if err != nil {
		return fmt.Errorf("delete style %s: %w", name, err)
	}
	return nil
}

// Derive creates a new custom style cloned from an existing one. The
// lock is held across the read and the write so the clone is taken from
// a consistent snapshot of the base style.
func (s *Store) Derive(name, base string) (Descriptor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	desc, _, err := s.get(base)
	if err != nil {
		return Descriptor{}, err
	}
	desc.Name = name
	desc.Description = fmt.Sprintf("Custom style based on %s", base)
	if err := writeDescriptor(s.path(name), desc); err != nil {
		return Descriptor{}, fmt.Errorf("write style %s: %w", name, err)
	}
	return desc, nil
}

func (s *Store) path(name string) string {
	// Strip path separators so style names cannot escape the directory.
	name = filepath.Base(name)
	return filepath.Join(s.dir, name+".json")
}

func readDescriptor(path string) (Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Descriptor{}, err
	}
	var desc Descriptor
	if err := json.Unmarshal(data, &desc); err != nil {
		return Descriptor{}, fmt.Errorf("decode style file: %w", err)
	}
	return desc, nil
}

func writeDescriptor(path string, desc Descriptor) error {
	data, err := json.MarshalIndent(desc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func cloneDescriptor(d Descriptor) Descriptor {
	out := d
	out.HeaderStyles = make(map[string]HeaderStyle, len(d.HeaderStyles))
	for k, v := range d.HeaderStyles {
		out.HeaderStyles[k] = v
	}
	out.SectionStyles = make(map[string]SectionStyle, len(d.SectionStyles))
	for k, v := range d.SectionStyles {
		out.SectionStyles[k] = v
	}
	return out
}
